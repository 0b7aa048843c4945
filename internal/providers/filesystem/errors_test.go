package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/GriffinCanCode/fsutil/internal/shared/types"
	"github.com/stretchr/testify/assert"
)

func TestOpErrorMatchesKindAndCause(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}
	err := wrapErr("read", "/x", cause)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrIO)
	assert.Contains(t, err.Error(), "read /x: not found")

	var opErr *OpError
	assert.True(t, errors.As(err, &opErr))
	assert.Equal(t, "read", opErr.Op)
}

func TestWrapErrPassThrough(t *testing.T) {
	assert.NoError(t, wrapErr("op", "/x", nil))

	canceled := fmt.Errorf("stopped: %w", context.Canceled)
	assert.Same(t, canceled, wrapErr("op", "/x", canceled))

	inner := &OpError{Op: "walk", Path: "/y", Kind: ErrTraversal}
	assert.Same(t, inner, wrapErr("size", "/x", inner))

	assert.ErrorIs(t, wrapErr("op", "/x", errors.New("disk on fire")), ErrIO)
}

func TestUnsupportedIsNotApplicable(t *testing.T) {
	err := &OpError{Op: "zip", Path: "/dev/null", Kind: ErrUnsupported}

	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, err, types.ErrNotApplicable)
	assert.Equal(t, types.StatusNotApplicable, types.FromError("/dev/null", err).Status)
	assert.Equal(t, types.StatusFailed, types.FromError("/x", &OpError{Op: "zip", Path: "/x", Kind: ErrIO}).Status)
}

func TestBulkError(t *testing.T) {
	err := &BulkError{Index: 2, Path: "/c", Err: &OpError{Op: "remove", Path: "/c", Kind: ErrNotFound}}

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "item 2 (/c): remove /c: not found", err.Error())
}
