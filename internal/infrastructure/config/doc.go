// Package config provides 12-factor configuration management for fsutil.
//
// Configuration is loaded from environment variables with sensible defaults.
// Nothing is persisted; every process reads its own environment.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Archive: Zip compression level, gunzip buffer size, directory creation mode
//   - Metrics: Whether operation metrics are recorded
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("zip level %d\n", cfg.Archive.CompressionLevel)
//
// Environment Variables:
//   - FSUTIL_LOG_LEVEL, FSUTIL_LOG_DEV
//   - FSUTIL_ZIP_LEVEL, FSUTIL_GUNZIP_BUFFER, FSUTIL_DIR_MODE
//   - FSUTIL_METRICS
package config
