package fsutil

import (
	"context"
	"os"
	"sync"

	"github.com/GriffinCanCode/fsutil/internal/infrastructure/config"
	"github.com/GriffinCanCode/fsutil/internal/infrastructure/logging"
	"github.com/GriffinCanCode/fsutil/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fsutil/internal/providers/filesystem"
	"github.com/GriffinCanCode/fsutil/internal/shared/utils"
)

// New creates Ops with explicit options. Unset collaborators default to a
// no-op logger, os.Remove and config.Default settings.
func New(opts ...Option) *Ops {
	return filesystem.New(opts...)
}

// NewFromConfig creates Ops with a logger and, when enabled, metrics built
// from cfg. Options are applied after the configuration.
func NewFromConfig(cfg *Config, opts ...Option) (*Ops, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return nil, err
	}

	base := []Option{
		filesystem.WithConfig(cfg),
		filesystem.WithLogger(logger.Logger),
	}
	if cfg.Metrics.Enabled {
		base = append(base, filesystem.WithMetrics(monitoring.NewMetrics()))
	}
	return filesystem.New(append(base, opts...)...), nil
}

// NewFromEnv creates Ops from FSUTIL_* environment variables
func NewFromEnv(opts ...Option) (*Ops, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}

var (
	defaultOps  *Ops
	defaultOnce sync.Once
)

// Default returns the shared instance used by the package-level functions.
// It is built from the environment on first use, falling back to defaults
// when the environment is invalid.
func Default() *Ops {
	defaultOnce.Do(func() {
		ops, err := NewFromConfig(config.LoadOrDefault())
		if err != nil {
			ops = filesystem.New(filesystem.WithLogger(logging.NewDefault().Logger))
		}
		defaultOps = ops
	})
	return defaultOps
}

// Size returns the byte size of a file, or of every file below a directory.
// Symlinks count as their own size and are not entered.
func Size(ctx context.Context, path string) (uint64, error) {
	return Default().TotalSize(ctx, path, false)
}

// ListFiles returns files below root with an accepted extension
func ListFiles(ctx context.Context, root string, extensions []string, recursive bool) ([]string, error) {
	return Default().ListFiles(ctx, root, extensions, recursive)
}

// Remove deletes path, emptying directories first when recursive is set
func Remove(ctx context.Context, path string, recursive bool) error {
	return Default().Remove(ctx, path, recursive)
}

// RemoveEach removes paths in order, stopping at the first failure
func RemoveEach(ctx context.Context, paths []string, recursive bool) ([]*Result, error) {
	return Default().RemoveEach(ctx, paths, recursive)
}

// Zip archives root into destination
func Zip(ctx context.Context, root, destination string) (*ArchiveStats, error) {
	return Default().Zip(ctx, root, destination)
}

// Unzip extracts archive into destination, or beside the archive when empty
func Unzip(ctx context.Context, archive, destination string) (*ArchiveStats, error) {
	return Default().Unzip(ctx, archive, destination)
}

// Gunzip decompresses source into destination
func Gunzip(ctx context.Context, source, destination string, bufferSize int) (int64, error) {
	return Default().Gunzip(ctx, source, destination, bufferSize)
}

// ZipSize returns the total uncompressed size of an archive's members
func ZipSize(archive string) (uint64, error) {
	return Default().ZipSize(archive)
}

// ZipList describes every member of an archive
func ZipList(archive string) ([]ArchiveEntry, error) {
	return Default().ZipList(archive)
}

// Find returns files below root matching a ** pattern
func Find(ctx context.Context, root, pattern string) ([]string, error) {
	return Default().Find(ctx, root, pattern)
}

// Glob expands a filesystem pattern
func Glob(pattern string) ([]string, error) {
	return Default().Glob(pattern)
}

// Read returns the contents of a file
func Read(path string) ([]byte, error) { return Default().Read(path) }

// Write creates or truncates path and writes data to it
func Write(path string, data []byte) error { return Default().Write(path, data) }

// Rewrite replaces the contents of path
func Rewrite(path string, data []byte) error { return Default().Rewrite(path, data) }

// Append adds data to the end of path
func Append(path string, data []byte) error { return Default().Append(path, data) }

// Copy copies a file, keeping its permissions
func Copy(src, dst string) error { return Default().Copy(src, dst) }

// Move relocates src to dst
func Move(src, dst string) error { return Default().Move(src, dst) }

// Rename renames src to dst
func Rename(src, dst string) error { return Default().Rename(src, dst) }

// CreateFile creates path or updates its modification time
func CreateFile(path string) error { return Default().CreateFile(path) }

// CreateTempFile creates an empty file in the temp directory and returns its path
func CreateTempFile() (string, error) { return Default().CreateTempFile() }

// Exists reports whether path exists
func Exists(path string) bool { return Default().Exists(path) }

// IsFile reports whether path is a regular file
func IsFile(path string) bool { return Default().IsFile(path) }

// IsDir reports whether path is a directory
func IsDir(path string) bool { return Default().IsDir(path) }

// IsLink reports whether path is a symlink
func IsLink(path string) bool { return Default().IsLink(path) }

// Timestamp returns the modification time of path in Unix seconds
func Timestamp(path string) (int64, error) { return Default().Timestamp(path) }

// Format returns the absolute path with symlinks resolved
func Format(path string) (string, error) { return Default().Format(path) }

// MIME detects the content type of a file
func MIME(path string) (string, error) { return Default().MIME(path) }

// Scan returns the sorted entry names of a directory
func Scan(directory string) ([]string, error) { return Default().Scan(directory) }

// HashSHA1 returns the hex SHA-1 digest of a file
func HashSHA1(path string) (string, error) { return Default().Hash(path, utils.SHA1) }

// HashMD5 returns the hex MD5 digest of a file
func HashMD5(path string) (string, error) { return Default().Hash(path, utils.MD5) }

// HashCRC32 returns the IEEE CRC-32 checksum of a file
func HashCRC32(path string) (uint32, error) { return Default().CRC32(path) }

// ChangeExtension renames path to a new extension and returns the new path
func ChangeExtension(path, ext string) (string, error) {
	return Default().ChangeExtension(path, ext)
}

// ChangeName renames path to a new stem, keeping its extension
func ChangeName(path, name string) (string, error) {
	return Default().ChangeName(path, name)
}

// CreateDirectory creates path. A zero mode uses the configured mode.
func CreateDirectory(path string, mode os.FileMode, recursive bool) error {
	return Default().CreateDirectory(path, mode, recursive)
}
