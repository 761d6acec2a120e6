package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_NAME", "GEMINI_TIMEOUT", "UPLOAD_PATH",
		"MAX_FILE_SIZE", "CLEANER_SWEEP_INTERVAL", "UPLOAD_RETENTION",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "resume_analyzer", cfg.Database.DBName)
	assert.Equal(t, 15*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, "./uploads", cfg.Storage.UploadPath)
	assert.Equal(t, int64(2097152), cfg.Storage.MaxFileSize)
	assert.Equal(t, 10*time.Minute, cfg.Cleaner.SweepInterval)
	assert.Equal(t, time.Hour, cfg.Cleaner.Retention)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_TIMEOUT", "30s")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("UPLOAD_RETENTION", "45m")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, int64(1048576), cfg.Storage.MaxFileSize)
	assert.Equal(t, 45*time.Minute, cfg.Cleaner.Retention)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("GEMINI_TIMEOUT", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 15*time.Second, cfg.Gemini.Timeout)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db.internal",
			Port:     "5433",
			User:     "app",
			Password: "secret",
			DBName:   "resumes",
		},
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=app password=secret dbname=resumes sslmode=disable",
		cfg.GetDatabaseDSN())
}
