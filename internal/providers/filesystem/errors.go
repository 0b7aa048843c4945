package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/GriffinCanCode/fsutil/internal/shared/types"
)

// kindError is a taxonomy sentinel. parent lets a kind also match a broader
// one through errors.Is.
type kindError struct {
	name   string
	parent error
}

func (e *kindError) Error() string { return e.name }
func (e *kindError) Unwrap() error { return e.parent }

// Error taxonomy. Every failure returned by this package matches exactly one
// of these through errors.Is.
var (
	// ErrNotFound is returned when the root or source path does not exist.
	ErrNotFound error = &kindError{name: "not found"}

	// ErrNotADirectory is returned when a directory was required.
	ErrNotADirectory error = &kindError{name: "not a directory"}

	// ErrNotAFile is returned when a file (or an empty directory) was required,
	// for example a non-recursive remove of a non-empty directory.
	ErrNotAFile error = &kindError{name: "not a file"}

	// ErrUnsupported is returned when the path kind cannot take part in the
	// operation, such as zipping a device node. It classifies as not applicable.
	ErrUnsupported error = &kindError{name: "unsupported", parent: types.ErrNotApplicable}

	// ErrIO is returned when an underlying read, write, open or close failed.
	ErrIO error = &kindError{name: "i/o failure"}

	// ErrTraversal is returned when a followed symlink leads back to one of
	// its ancestor directories.
	ErrTraversal error = &kindError{name: "symlink cycle"}

	// ErrInvalidEntry is returned when an archive entry would land outside
	// the extraction directory.
	ErrInvalidEntry error = &kindError{name: "invalid archive entry"}

	// ErrInvalidPattern is returned for malformed glob patterns.
	ErrInvalidPattern error = &kindError{name: "invalid pattern"}
)

// errSameFile is the cause when an output path resolves to its own input.
var errSameFile = errors.New("source and destination are the same file")

// OpError records a failed operation, the path involved, the taxonomy kind
// and the underlying cause.
type OpError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// BulkError reports the item that stopped a sequential bulk operation
type BulkError struct {
	Index int
	Path  string
	Err   error
}

func (e *BulkError) Error() string {
	return fmt.Sprintf("item %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *BulkError) Unwrap() error { return e.Err }

// wrapErr classifies err under op and path. Errors that already carry a kind
// and context cancellations pass through unchanged.
func wrapErr(op, path string, err error) error {
	if err == nil {
		return nil
	}

	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	kind := ErrIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = ErrNotFound
	case errors.Is(err, fs.ErrInvalid):
		kind = ErrUnsupported
	}
	return &OpError{Op: op, Path: path, Kind: kind, Err: err}
}

// ioErr wraps err with ErrIO regardless of its cause
func ioErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &OpError{Op: op, Path: path, Kind: ErrIO, Err: err}
}
