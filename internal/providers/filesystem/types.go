package filesystem

import (
	"io/fs"
	"os"
	"time"

	"github.com/GriffinCanCode/fsutil/internal/infrastructure/config"
	"github.com/GriffinCanCode/fsutil/internal/infrastructure/logging"
	"github.com/GriffinCanCode/fsutil/internal/infrastructure/monitoring"
	"go.uber.org/zap"
)

// Kind classifies a visited path
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindSymlink // Symlink that was not followed, or whose target is missing
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Order selects when a directory is yielded relative to its descendants
type Order int

const (
	PreOrder  Order = iota // Directory before its contents
	PostOrder              // Directory after all of its contents
)

// TraversalOptions configures a walk
type TraversalOptions struct {
	Recursive      bool
	FollowSymlinks bool
	Order          Order
}

// Entry is a single path produced by a walk
type Entry struct {
	Path    string
	Name    string
	Kind    Kind
	Depth   int  // 1 for direct children of the root, 0 for a file root
	Symlink bool // Reached through a symlink that was followed

	info   fs.FileInfo
	dirent fs.DirEntry
}

// Info returns the entry's metadata. For followed symlinks this describes the
// target; otherwise it describes the link or file itself.
func (e Entry) Info() (fs.FileInfo, error) {
	if e.info != nil {
		return e.info, nil
	}
	if e.dirent != nil {
		return e.dirent.Info()
	}
	return os.Lstat(e.Path)
}

// Size returns the entry's byte size
func (e Entry) Size() (int64, error) {
	info, err := e.Info()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func kindOf(info fs.FileInfo) Kind {
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return KindSymlink
	case info.IsDir():
		return KindDirectory
	default:
		return KindFile
	}
}

// ArchiveStats summarizes a zip or unzip run
type ArchiveStats struct {
	Files int   `json:"files"`
	Dirs  int   `json:"dirs"`
	Bytes int64 `json:"bytes"`
}

// ArchiveEntry describes one member of a zip archive
type ArchiveEntry struct {
	Name           string    `json:"name"`
	Size           uint64    `json:"size"`
	CompressedSize uint64    `json:"compressed_size"`
	Modified       time.Time `json:"modified"`
	IsDir          bool      `json:"is_dir"`
}

// Removal is one step of a removal plan
type Removal struct {
	Path string
	Kind Kind
}

// Remover deletes a single file, symlink or empty directory
type Remover interface {
	Remove(name string) error
}

// RemoverFunc adapts a function to Remover
type RemoverFunc func(name string) error

func (f RemoverFunc) Remove(name string) error { return f(name) }

// FilesystemOps carries the collaborators shared by all operations. It holds
// no per-call state and is safe for concurrent use.
type FilesystemOps struct {
	logger  *zap.Logger
	warner  logging.Warner
	metrics *monitoring.Metrics
	remover Remover

	compressionLevel int
	bufferSize       int
	dirMode          os.FileMode
}

// Option configures FilesystemOps
type Option func(*FilesystemOps)

// WithLogger sets the debug logger. It also receives warnings unless
// WithWarner is given.
func WithLogger(logger *zap.Logger) Option {
	return func(o *FilesystemOps) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWarner sets the sink for non-fatal notifications
func WithWarner(w logging.Warner) Option {
	return func(o *FilesystemOps) {
		o.warner = w
	}
}

// WithMetrics enables operation metrics
func WithMetrics(m *monitoring.Metrics) Option {
	return func(o *FilesystemOps) {
		o.metrics = m
	}
}

// WithRemover replaces os.Remove for removal operations
func WithRemover(r Remover) Option {
	return func(o *FilesystemOps) {
		if r != nil {
			o.remover = r
		}
	}
}

// WithCompressionLevel sets the flate level used for zip entries
func WithCompressionLevel(level int) Option {
	return func(o *FilesystemOps) {
		o.compressionLevel = level
	}
}

// WithBufferSize sets the default gunzip chunk size
func WithBufferSize(size int) Option {
	return func(o *FilesystemOps) {
		if size > 0 {
			o.bufferSize = size
		}
	}
}

// WithDirMode sets the mode for directories created by extraction
func WithDirMode(mode os.FileMode) Option {
	return func(o *FilesystemOps) {
		o.dirMode = mode & os.ModePerm
	}
}

// WithConfig applies archive settings from cfg
func WithConfig(cfg *config.Config) Option {
	return func(o *FilesystemOps) {
		if cfg == nil {
			return
		}
		o.compressionLevel = cfg.Archive.CompressionLevel
		if cfg.Archive.GunzipBufferSize > 0 {
			o.bufferSize = cfg.Archive.GunzipBufferSize
		}
		o.dirMode = cfg.DirPerm()
	}
}

// New creates FilesystemOps with defaults matching config.Default
func New(opts ...Option) *FilesystemOps {
	defaults := config.Default()
	o := &FilesystemOps{
		logger:           zap.NewNop(),
		remover:          RemoverFunc(os.Remove),
		compressionLevel: defaults.Archive.CompressionLevel,
		bufferSize:       defaults.Archive.GunzipBufferSize,
		dirMode:          defaults.DirPerm(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.warner == nil {
		o.warner = o.logger
	}
	return o
}

// Metrics returns the metrics sink, nil when disabled
func (o *FilesystemOps) Metrics() *monitoring.Metrics {
	return o.metrics
}
