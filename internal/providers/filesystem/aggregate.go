package filesystem

import (
	"context"
	"io/fs"
	"os"

	"github.com/GriffinCanCode/fsutil/internal/infrastructure/monitoring"
	"go.uber.org/zap"
)

// TotalSize returns the byte size of root: the file size for a file, or the
// sum of all file sizes below a directory. Directories contribute nothing.
// Without followSymlinks a link counts as its own size and is not entered.
func (o *FilesystemOps) TotalSize(ctx context.Context, root string, followSymlinks bool) (total uint64, err error) {
	timer := monitoring.NewTimer(o.metrics, "size")
	defer func() { timer.StopErr(err) }()

	info, err := statPath(root, followSymlinks)
	if err != nil {
		return 0, wrapErr("size", root, err)
	}
	if !info.IsDir() {
		return uint64(info.Size()), nil
	}

	visited := 0
	opts := TraversalOptions{Recursive: true, FollowSymlinks: followSymlinks, Order: PreOrder}
	for entry, err := range Walk(ctx, root, opts) {
		if err != nil {
			return 0, err
		}
		visited++
		if entry.Kind == KindDirectory {
			continue
		}
		size, err := entry.Size()
		if err != nil {
			return 0, wrapErr("size", entry.Path, err)
		}
		total += uint64(size)
	}

	o.metrics.AddEntries("size", visited)
	o.logger.Debug("size computed",
		zap.String("path", root),
		zap.Uint64("bytes", total),
		zap.Int("entries", visited))
	return total, nil
}

// ListFiles returns the paths of regular files below root whose extension is
// in extensions, in pre-order. Symlinks are followed. A missing or
// non-directory root is reported through the warner and yields no paths.
func (o *FilesystemOps) ListFiles(ctx context.Context, root string, extensions []string, recursive bool) (files []string, err error) {
	timer := monitoring.NewTimer(o.metrics, "list_files")
	defer func() { timer.StopErr(err) }()

	files = []string{}
	info, statErr := os.Stat(root)
	switch {
	case statErr != nil:
		o.warner.Warn("directory does not exist", zap.String("path", root))
		return files, nil
	case !info.IsDir():
		o.warner.Warn("not a directory", zap.String("path", root))
		return files, nil
	}

	accepted := ExtensionSet(extensions)
	visited := 0
	opts := TraversalOptions{Recursive: recursive, FollowSymlinks: true, Order: PreOrder}
	for entry, err := range Walk(ctx, root, opts) {
		if err != nil {
			return nil, err
		}
		visited++
		if entry.Kind == KindFile && accepted.Matches(entry.Path) {
			files = append(files, entry.Path)
		}
	}

	o.metrics.AddEntries("list_files", visited)
	return files, nil
}

// statPath stats path, following a final symlink when follow is set. A
// dangling link falls back to the link itself.
func statPath(path string, follow bool) (fs.FileInfo, error) {
	if !follow {
		return os.Lstat(path)
	}
	info, err := os.Stat(path)
	if err == nil {
		return info, nil
	}
	if linfo, lerr := os.Lstat(path); lerr == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		return linfo, nil
	}
	return nil, err
}
