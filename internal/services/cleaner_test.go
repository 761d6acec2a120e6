package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_RemovesExpiredUploads(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	expired := filepath.Join(dir, "resume_expired.pdf")
	require.NoError(t, os.WriteFile(expired, []byte("old"), 0644))
	stale := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(expired, stale, stale))

	cleaner := NewCleaner(storage, 10*time.Millisecond, time.Minute)
	cleaner.Start()
	defer cleaner.Stop()

	assert.Eventually(t, func() bool {
		_, err := os.Stat(expired)
		return os.IsNotExist(err)
	}, time.Second, 10*time.Millisecond)
}

func TestCleaner_StopTerminatesLoop(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	cleaner := NewCleaner(storage, 5*time.Millisecond, time.Minute)

	cleaner.Start()

	done := make(chan struct{})
	go func() {
		cleaner.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleaner did not stop in time")
	}
}
