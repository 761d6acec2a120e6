package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_GetFilePath(t *testing.T) {
	storage := NewStorageService("./uploads")
	assert.Equal(t, filepath.Join("uploads", "resume_x.pdf"), storage.GetFilePath("resume_x.pdf"))
}

func TestStorage_EnsureUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	storage := NewStorageService(dir)

	require.NoError(t, storage.EnsureUploadDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory.
	assert.NoError(t, storage.EnsureUploadDir())
}

func TestStorage_DeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	path := filepath.Join(dir, "resume_old.pdf")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	require.NoError(t, storage.DeleteFile("resume_old.pdf"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, storage.DeleteFile("resume_never_existed.pdf"))
}

func TestStorage_DeleteOlderThan(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	oldFile := filepath.Join(dir, "resume_old.pdf")
	newFile := filepath.Join(dir, "resume_new.pdf")
	require.NoError(t, os.WriteFile(oldFile, []byte("old"), 0644))
	require.NoError(t, os.WriteFile(newFile, []byte("new"), 0644))

	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, stale, stale))

	deleted, err := storage.DeleteOlderThan(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(newFile)
	assert.NoError(t, err)
}

func TestStorage_DeleteOlderThan_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	subdir := filepath.Join(dir, "keep")
	require.NoError(t, os.Mkdir(subdir, 0755))
	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(subdir, stale, stale))

	deleted, err := storage.DeleteOlderThan(time.Now())
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = os.Stat(subdir)
	assert.NoError(t, err)
}
