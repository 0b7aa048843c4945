package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Logging config
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Archive config
	assert.Equal(t, -1, cfg.Archive.CompressionLevel)
	assert.Equal(t, 4096, cfg.Archive.GunzipBufferSize)
	assert.Equal(t, uint32(0o755), cfg.Archive.DirMode)
	assert.Equal(t, os.FileMode(0o755), cfg.DirPerm())

	// Metrics config
	assert.False(t, cfg.Metrics.Enabled)

	assert.NoError(t, cfg.Validate())
}

func TestLoadOrDefault(t *testing.T) {
	// Should return default when no env vars set
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 4096, cfg.Archive.GunzipBufferSize)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"FSUTIL_LOG_LEVEL":     "debug",
		"FSUTIL_LOG_DEV":       "true",
		"FSUTIL_ZIP_LEVEL":     "9",
		"FSUTIL_GUNZIP_BUFFER": "65536",
		"FSUTIL_DIR_MODE":      "0700",
		"FSUTIL_METRICS":       "true",
	}

	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	// Verify logging config
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	// Verify archive config
	assert.Equal(t, 9, cfg.Archive.CompressionLevel)
	assert.Equal(t, 65536, cfg.Archive.GunzipBufferSize)
	assert.Equal(t, os.FileMode(0o700), cfg.DirPerm())

	// Verify metrics config
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadWithInvalidValues(t *testing.T) {
	t.Run("unparseable number", func(t *testing.T) {
		t.Setenv("FSUTIL_GUNZIP_BUFFER", "lots")

		_, err := Load()
		assert.Error(t, err)

		// LoadOrDefault falls back
		assert.Equal(t, 4096, LoadOrDefault().Archive.GunzipBufferSize)
	})

	t.Run("compression level out of range", func(t *testing.T) {
		t.Setenv("FSUTIL_ZIP_LEVEL", "12")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero buffer", func(t *testing.T) {
		t.Setenv("FSUTIL_GUNZIP_BUFFER", "0")

		_, err := Load()
		assert.Error(t, err)
	})
}
