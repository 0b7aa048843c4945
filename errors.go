package fsutil

import (
	"github.com/GriffinCanCode/fsutil/internal/providers/filesystem"
	"github.com/GriffinCanCode/fsutil/internal/shared/types"
)

// Errors re-exported from the filesystem provider.
var (
	// ErrNotFound is returned when the root or source path does not exist.
	ErrNotFound = filesystem.ErrNotFound

	// ErrNotADirectory is returned when a directory was required.
	ErrNotADirectory = filesystem.ErrNotADirectory

	// ErrNotAFile is returned when a file was required, including a
	// non-recursive remove of a non-empty directory.
	ErrNotAFile = filesystem.ErrNotAFile

	// ErrUnsupported is returned when a path kind cannot take part in an operation.
	ErrUnsupported = filesystem.ErrUnsupported

	// ErrIO is returned when an underlying read, write, open or close failed.
	ErrIO = filesystem.ErrIO

	// ErrTraversal is returned when a followed symlink leads to an ancestor.
	ErrTraversal = filesystem.ErrTraversal

	// ErrInvalidEntry is returned for archive entries escaping the destination.
	ErrInvalidEntry = filesystem.ErrInvalidEntry

	// ErrInvalidPattern is returned for malformed glob patterns.
	ErrInvalidPattern = filesystem.ErrInvalidPattern

	// ErrNotApplicable is matched by every unsupported-kind error.
	ErrNotApplicable = types.ErrNotApplicable
)

// Error types re-exported from the filesystem provider.
type (
	// OpError records a failed operation, its path, kind and cause.
	OpError = filesystem.OpError

	// BulkError names the item that stopped a bulk operation.
	BulkError = filesystem.BulkError
)
