package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all library configuration.
type Config struct {
	Logging LogConfig
	Archive ArchiveConfig
	Metrics MetricsConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"FSUTIL_LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"FSUTIL_LOG_DEV" default:"false"`
}

// ArchiveConfig holds zip and gzip configuration.
type ArchiveConfig struct {
	// CompressionLevel is the flate level for zip entries, -1 selects the default.
	CompressionLevel int    `envconfig:"FSUTIL_ZIP_LEVEL" default:"-1"`
	GunzipBufferSize int    `envconfig:"FSUTIL_GUNZIP_BUFFER" default:"4096"`
	DirMode          uint32 `envconfig:"FSUTIL_DIR_MODE" default:"0755"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool `envconfig:"FSUTIL_METRICS" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
		Archive: ArchiveConfig{
			CompressionLevel: -1,
			GunzipBufferSize: 4096,
			DirMode:          0o755,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// Validate checks value ranges the environment cannot express.
func (c *Config) Validate() error {
	if c.Archive.CompressionLevel < -2 || c.Archive.CompressionLevel > 9 {
		return fmt.Errorf("invalid zip compression level %d", c.Archive.CompressionLevel)
	}
	if c.Archive.GunzipBufferSize <= 0 {
		return fmt.Errorf("invalid gunzip buffer size %d", c.Archive.GunzipBufferSize)
	}
	if c.Archive.DirMode > uint32(os.ModePerm) {
		return fmt.Errorf("invalid directory mode %o", c.Archive.DirMode)
	}
	return nil
}

// DirPerm returns the directory creation mode as an os.FileMode.
func (c *Config) DirPerm() os.FileMode {
	return os.FileMode(c.Archive.DirMode) & os.ModePerm
}
