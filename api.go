package fsutil

import (
	"github.com/GriffinCanCode/fsutil/internal/infrastructure/config"
	"github.com/GriffinCanCode/fsutil/internal/infrastructure/logging"
	"github.com/GriffinCanCode/fsutil/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fsutil/internal/providers/filesystem"
	"github.com/GriffinCanCode/fsutil/internal/shared/paths"
	"github.com/GriffinCanCode/fsutil/internal/shared/types"
	"github.com/GriffinCanCode/fsutil/internal/shared/utils"
)

// Re-export types from internal packages for the public API.
type (
	// Ops runs filesystem operations with a fixed set of collaborators.
	Ops = filesystem.FilesystemOps

	// Option configures Ops.
	Option = filesystem.Option

	// Entry is a single path produced by a walk.
	Entry = filesystem.Entry

	// Kind classifies an entry as file, directory or symlink.
	Kind = filesystem.Kind

	// Order selects pre-order or post-order traversal.
	Order = filesystem.Order

	// TraversalOptions configures a walk.
	TraversalOptions = filesystem.TraversalOptions

	// Walker is a pull iterator over a directory tree.
	Walker = filesystem.Walker

	// ExtensionSet is a case-insensitive list of accepted extensions.
	ExtensionSet = filesystem.ExtensionSet

	// Removal is one step of a removal plan.
	Removal = filesystem.Removal

	// Remover deletes a single file, symlink or empty directory.
	Remover = filesystem.Remover

	// RemoverFunc adapts a function to Remover.
	RemoverFunc = filesystem.RemoverFunc

	// ArchiveStats summarizes a zip or unzip run.
	ArchiveStats = filesystem.ArchiveStats

	// ArchiveEntry describes one member of a zip archive.
	ArchiveEntry = filesystem.ArchiveEntry

	// ArchivePlanEntry maps a walked entry to its archive name.
	ArchivePlanEntry = filesystem.ArchivePlanEntry

	// Provider exposes Ops as a tool catalog.
	Provider = filesystem.Provider

	// Result is the outcome of an operation on one path.
	Result = types.Result

	// Status is a Result outcome.
	Status = types.Status

	// PathParts holds the components of a path.
	PathParts = paths.Parts

	// HashAlgorithm names a digest algorithm.
	HashAlgorithm = utils.HashAlgorithm

	// Config holds library configuration.
	Config = config.Config

	// Warner receives non-fatal notifications.
	Warner = logging.Warner

	// Metrics holds Prometheus collectors for operations.
	Metrics = monitoring.Metrics
)

// Re-export enum constants.
const (
	KindFile      = filesystem.KindFile
	KindDirectory = filesystem.KindDirectory
	KindSymlink   = filesystem.KindSymlink

	PreOrder  = filesystem.PreOrder
	PostOrder = filesystem.PostOrder

	StatusSucceeded     = types.StatusSucceeded
	StatusFailed        = types.StatusFailed
	StatusNotApplicable = types.StatusNotApplicable
	StatusSkipped       = types.StatusSkipped

	SHA1   = utils.SHA1
	MD5    = utils.MD5
	CRC32  = utils.CRC32
	SHA256 = utils.SHA256
	XXH64  = utils.XXH64
)

// Re-export option constructors.
var (
	WithLogger           = filesystem.WithLogger
	WithWarner           = filesystem.WithWarner
	WithMetrics          = filesystem.WithMetrics
	WithRemover          = filesystem.WithRemover
	WithCompressionLevel = filesystem.WithCompressionLevel
	WithBufferSize       = filesystem.WithBufferSize
	WithDirMode          = filesystem.WithDirMode
	WithConfig           = filesystem.WithConfig
)

// Re-export constructors and stateless helpers.
var (
	NewWalker      = filesystem.NewWalker
	Walk           = filesystem.Walk
	NewProvider    = filesystem.NewProvider
	NewMetrics     = monitoring.NewMetrics
	MatchExtension = filesystem.MatchExtension
	LoadConfig     = config.Load
	DefaultConfig  = config.Default

	SplitPath  = paths.Split
	DirName    = paths.DirName
	Basename   = paths.Basename
	FileName   = paths.Name
	Extension  = paths.Extension
	Combine    = paths.Combine
	Relativize = paths.Relativize
)
