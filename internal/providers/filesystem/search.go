package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/GriffinCanCode/fsutil/internal/infrastructure/monitoring"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// Find returns the files below root whose root-relative, slash separated
// path matches pattern. Patterns support "**". Results are sorted.
func (o *FilesystemOps) Find(ctx context.Context, root, pattern string) (matches []string, err error) {
	timer := monitoring.NewTimer(o.metrics, "find")
	defer func() { timer.StopErr(err) }()

	if !doublestar.ValidatePattern(pattern) {
		return nil, &OpError{Op: "find", Path: pattern, Kind: ErrInvalidPattern}
	}

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, wrapErr("find", root, err)
	}
	if !info.IsDir() {
		return nil, &OpError{Op: "find", Path: root, Kind: ErrNotADirectory}
	}

	var mu sync.Mutex
	matches = []string{}
	visited := 0
	conf := fastwalk.Config{Follow: false, NumWorkers: 1}

	err = fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			return wrapErr("find", path, err)
		}
		if path == root || d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return &OpError{Op: "find", Path: pattern, Kind: ErrInvalidPattern, Err: err}
		}

		mu.Lock()
		visited++
		if ok {
			matches = append(matches, path)
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(matches)
	o.metrics.AddEntries("find", visited)
	return matches, nil
}

// Glob expands a filesystem pattern such as "/srv/**/*.log"
func (o *FilesystemOps) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, &OpError{Op: "glob", Path: pattern, Kind: ErrInvalidPattern, Err: err}
		}
		return nil, wrapErr("glob", pattern, err)
	}
	if matches == nil {
		matches = []string{}
	}
	return matches, nil
}
