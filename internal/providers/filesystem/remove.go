package filesystem

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/GriffinCanCode/fsutil/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fsutil/internal/shared/types"
	"go.uber.org/zap"
)

// PlanRemoval returns the order in which Remove would delete root and its
// contents: children before parents, root last. Symlinks are never entered.
func (o *FilesystemOps) PlanRemoval(ctx context.Context, root string) ([]Removal, error) {
	root = removalRoot(root)
	info, err := os.Lstat(root)
	if err != nil {
		return nil, wrapErr("plan removal", root, err)
	}

	var plan []Removal
	if info.IsDir() {
		for entry, err := range Walk(ctx, root, TraversalOptions{Recursive: true, Order: PostOrder}) {
			if err != nil {
				return nil, err
			}
			plan = append(plan, Removal{Path: entry.Path, Kind: entry.Kind})
		}
	}
	return append(plan, Removal{Path: root, Kind: kindOf(info)}), nil
}

// Remove deletes root. Files and symlinks are unlinked; a symlink's target is
// never touched. A directory is emptied in post-order first when recursive is
// set, otherwise it must already be empty. The first failure stops the run,
// so no directory is attempted while anything below it remains.
func (o *FilesystemOps) Remove(ctx context.Context, root string, recursive bool) (err error) {
	timer := monitoring.NewTimer(o.metrics, "remove")
	defer func() { timer.StopErr(err) }()

	root = removalRoot(root)
	info, err := os.Lstat(root)
	if err != nil {
		return wrapErr("remove", root, err)
	}
	if !info.IsDir() {
		return o.removeOne(root, kindOf(info))
	}

	removed := 0
	if recursive {
		for entry, err := range Walk(ctx, root, TraversalOptions{Recursive: true, Order: PostOrder}) {
			if err != nil {
				return err
			}
			if err := o.removeOne(entry.Path, entry.Kind); err != nil {
				return err
			}
			removed++
		}
	}
	if err := o.removeOne(root, KindDirectory); err != nil {
		return err
	}

	o.metrics.AddEntries("remove", removed+1)
	o.logger.Debug("removed", zap.String("path", root), zap.Int("entries", removed+1))
	return nil
}

// RemoveEach removes paths in order and stops at the first failure. Every
// path gets a result; the ones after the failure are marked skipped. The
// returned error is a *BulkError naming the failed item.
func (o *FilesystemOps) RemoveEach(ctx context.Context, paths []string, recursive bool) ([]*types.Result, error) {
	results := make([]*types.Result, len(paths))
	for i, path := range paths {
		if err := o.Remove(ctx, path, recursive); err != nil {
			results[i] = types.FromError(path, err)
			for j := i + 1; j < len(paths); j++ {
				results[j] = types.Skipped(paths[j])
			}
			return results, &BulkError{Index: i, Path: path, Err: err}
		}
		results[i] = types.Success(path, nil)
	}
	return results, nil
}

// removalRoot drops trailing separators so that Lstat sees a symlink root as
// the link itself instead of resolving "link/" to its target.
func removalRoot(root string) string {
	if root == "" {
		return root
	}
	return filepath.Clean(root)
}

func (o *FilesystemOps) removeOne(path string, kind Kind) error {
	err := o.remover.Remove(path)
	if err == nil {
		return nil
	}
	if kind == KindDirectory && !errors.Is(err, os.ErrNotExist) && dirHasEntries(path) {
		return &OpError{Op: "remove", Path: path, Kind: ErrNotAFile, Err: err}
	}
	return wrapErr("remove", path, err)
}

func dirHasEntries(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	names, err := f.Readdirnames(1)
	return len(names) > 0 && (err == nil || errors.Is(err, io.EOF))
}
