package filesystem

import (
	"path/filepath"

	"github.com/GriffinCanCode/fsutil/internal/shared/utils"
	"github.com/gabriel-vasile/mimetype"
)

// Timestamp returns the modification time of path in Unix seconds
func (o *FilesystemOps) Timestamp(path string) (int64, error) {
	info, err := statPath(path, true)
	if err != nil {
		return 0, wrapErr("timestamp", path, err)
	}
	return info.ModTime().Unix(), nil
}

// Format returns the absolute path of path with every symlink resolved
func (o *FilesystemOps) Format(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", wrapErr("format", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", wrapErr("format", path, err)
	}
	return resolved, nil
}

// MIME detects the media type of path from its content
func (o *FilesystemOps) MIME(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", wrapErr("mime", path, err)
	}
	return mtype.String(), nil
}

// Hash returns the hex digest of path's content using algorithm
func (o *FilesystemOps) Hash(path string, algorithm utils.HashAlgorithm) (string, error) {
	sum, err := utils.NewHasher(algorithm).HashFile(path)
	if err != nil {
		return "", wrapErr("hash", path, err)
	}
	return sum, nil
}

// CRC32 returns the IEEE checksum of path's content
func (o *FilesystemOps) CRC32(path string) (uint32, error) {
	sum, err := utils.CRC32File(path)
	if err != nil {
		return 0, wrapErr("hash", path, err)
	}
	return sum, nil
}
