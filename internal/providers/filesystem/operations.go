package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/fsutil/internal/shared/paths"
	"go.uber.org/multierr"
)

// Copy copies the file at src to dst, keeping src's permission bits.
// An existing dst is truncated.
func (o *FilesystemOps) Copy(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return wrapErr("copy", src, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(in))

	info, err := in.Stat()
	if err != nil {
		return wrapErr("copy", src, err)
	}
	if info.IsDir() {
		return &OpError{Op: "copy", Path: src, Kind: ErrNotAFile}
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return wrapErr("copy", dst, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	if _, err := io.Copy(out, in); err != nil {
		return ioErr("copy", dst, err)
	}
	return nil
}

// Move renames src to dst. Both must be on the same filesystem.
func (o *FilesystemOps) Move(src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		if isNotExist(err) {
			return &OpError{Op: "move", Path: src, Kind: ErrNotFound, Err: err}
		}
		return ioErr("move", src, err)
	}
	return nil
}

// Rename is Move
func (o *FilesystemOps) Rename(src, dst string) error {
	return o.Move(src, dst)
}

// ChangeExtension renames path so that its extension becomes ext and returns
// the new path. The leading dot on ext is optional.
func (o *FilesystemOps) ChangeExtension(path, ext string) (string, error) {
	parts := paths.Split(path)
	name := parts.Stem
	if ext = strings.TrimLeft(ext, "."); ext != "" {
		name += "." + ext
	}
	target := filepath.Join(parts.Dir, name)
	if err := o.Move(path, target); err != nil {
		return "", err
	}
	return target, nil
}

// ChangeName renames path so that its stem becomes name, keeping the
// extension, and returns the new path.
func (o *FilesystemOps) ChangeName(path, name string) (string, error) {
	parts := paths.Split(path)
	if parts.HasExt {
		name += "." + parts.Ext
	}
	target := filepath.Join(parts.Dir, name)
	if err := o.Move(path, target); err != nil {
		return "", err
	}
	return target, nil
}
