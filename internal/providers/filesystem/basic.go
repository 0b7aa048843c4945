package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.uber.org/multierr"
)

const defaultFileMode os.FileMode = 0o644

// Read returns the full content of path
func (o *FilesystemOps) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapErr("read", path, err)
	}
	return data, nil
}

// Write creates or truncates path and writes data to it
func (o *FilesystemOps) Write(path string, data []byte) error {
	if err := os.WriteFile(path, data, defaultFileMode); err != nil {
		return wrapErr("write", path, err)
	}
	return nil
}

// Rewrite replaces the content of path. It is Write under another name.
func (o *FilesystemOps) Rewrite(path string, data []byte) error {
	return o.Write(path, data)
}

// Append adds data to the end of path, creating it if needed
func (o *FilesystemOps) Append(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, defaultFileMode)
	if err != nil {
		return wrapErr("append", path, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if _, err := f.Write(data); err != nil {
		return ioErr("append", path, err)
	}
	return nil
}

// CreateFile creates path if missing and sets its modification time to now
func (o *FilesystemOps) CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, defaultFileMode)
	if err != nil {
		return wrapErr("create", path, err)
	}
	if err := f.Close(); err != nil {
		return ioErr("create", path, err)
	}
	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return wrapErr("create", path, err)
	}
	return nil
}

// CreateTempFile creates an empty file in the system temp directory and
// returns its path. The caller owns the file.
func (o *FilesystemOps) CreateTempFile() (string, error) {
	f, err := os.CreateTemp("", "fsutil-*")
	if err != nil {
		return "", ioErr("create temp", os.TempDir(), err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return "", ioErr("create temp", name, err)
	}
	return name, nil
}

// Exists reports whether path exists, following symlinks
func (o *FilesystemOps) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path is a regular file, following symlinks
func (o *FilesystemOps) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path is a directory, following symlinks
func (o *FilesystemOps) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsLink reports whether path itself is a symlink
func (o *FilesystemOps) IsLink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
