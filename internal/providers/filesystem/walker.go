package filesystem

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Walker is a pull iterator over a directory tree. It keeps an explicit stack
// of open directories, so memory grows with depth rather than breadth times
// depth, and it never starts goroutines.
//
// A directory root is not yielded itself. A root that is a file, or a
// symlink that is not followed, is yielded as a single entry with Depth 0.
// The first error ends the walk; later calls to Next return it again.
type Walker struct {
	ctx  context.Context
	root string
	opts TraversalOptions

	stack   []*frame
	started bool
	err     error
}

type frame struct {
	path    string
	entry   *Entry      // nil for the root
	info    fs.FileInfo // followed identity, set when symlinks are followed
	depth   int
	entries []fs.DirEntry
	read    bool
	next    int
}

// NewWalker creates a walker over root. Nothing is read until Next is called.
func NewWalker(ctx context.Context, root string, opts TraversalOptions) *Walker {
	return &Walker{ctx: ctx, root: root, opts: opts}
}

// Walk returns an iterator over root. Iteration stops after the first error.
func Walk(ctx context.Context, root string, opts TraversalOptions) iter.Seq2[Entry, error] {
	return NewWalker(ctx, root, opts).All()
}

// All adapts the walker to a range-over-func iterator
func (w *Walker) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for {
			entry, err := w.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(entry, err) || err != nil {
				return
			}
		}
	}
}

// Next returns the next entry, or io.EOF once the tree is exhausted
func (w *Walker) Next() (Entry, error) {
	if w.err != nil {
		return Entry{}, w.err
	}
	if !w.started {
		w.started = true
		entry, single, err := w.start()
		if err != nil {
			return w.fail(err)
		}
		if single {
			w.err = io.EOF
			return entry, nil
		}
	}

	for {
		if err := w.ctx.Err(); err != nil {
			return w.fail(err)
		}
		if len(w.stack) == 0 {
			w.err = io.EOF
			return Entry{}, io.EOF
		}

		top := w.stack[len(w.stack)-1]
		if !top.read {
			entries, err := os.ReadDir(top.path)
			if err != nil {
				return w.fail(wrapErr("walk", top.path, err))
			}
			top.entries = entries
			top.read = true
		}

		if top.next >= len(top.entries) {
			w.stack = w.stack[:len(w.stack)-1]
			top.entries = nil
			if w.opts.Order == PostOrder && top.entry != nil {
				return *top.entry, nil
			}
			continue
		}

		de := top.entries[top.next]
		top.next++

		entry, child, err := w.visit(top, de)
		if err != nil {
			return w.fail(err)
		}
		if child != nil {
			w.stack = append(w.stack, child)
			if w.opts.Order == PostOrder {
				continue
			}
		}
		return entry, nil
	}
}

func (w *Walker) fail(err error) (Entry, error) {
	w.stack = nil
	w.err = err
	return Entry{}, err
}

// start inspects the root. single is true when the root is a leaf and the
// returned entry is the whole walk.
func (w *Walker) start() (Entry, bool, error) {
	if err := w.ctx.Err(); err != nil {
		return Entry{}, false, err
	}

	info, err := os.Lstat(w.root)
	if err != nil {
		return Entry{}, false, wrapErr("walk", w.root, err)
	}

	leaf := Entry{Path: w.root, Name: filepath.Base(w.root), Kind: kindOf(info), info: info}
	if info.Mode()&fs.ModeSymlink != 0 {
		if !w.opts.FollowSymlinks {
			return leaf, true, nil
		}
		target, err := os.Stat(w.root)
		if err != nil {
			// Dangling link: stays a symlink leaf
			return leaf, true, nil
		}
		info = target
		leaf.Kind = kindOf(target)
		leaf.info = target
		leaf.Symlink = true
	}

	if !info.IsDir() {
		return leaf, true, nil
	}

	root := &frame{path: w.root}
	if w.opts.FollowSymlinks {
		root.info = info
	}
	w.stack = append(w.stack, root)
	return Entry{}, false, nil
}

// visit classifies one directory entry and returns a frame to push when the
// entry is a directory that should be descended into.
func (w *Walker) visit(parent *frame, de fs.DirEntry) (Entry, *frame, error) {
	path := filepath.Join(parent.path, de.Name())
	entry := Entry{
		Path:   path,
		Name:   de.Name(),
		Depth:  parent.depth + 1,
		dirent: de,
	}

	mode := de.Type()
	switch {
	case mode&fs.ModeSymlink != 0:
		entry.Kind = KindSymlink
		if !w.opts.FollowSymlinks {
			return entry, nil, nil
		}
		target, err := os.Stat(path)
		if err != nil {
			return entry, nil, nil
		}
		entry.Symlink = true
		entry.info = target
		entry.dirent = nil
		if !target.IsDir() {
			entry.Kind = KindFile
			return entry, nil, nil
		}
		entry.Kind = KindDirectory
		if !w.opts.Recursive {
			return entry, nil, nil
		}
		if w.onStack(target) {
			return Entry{}, nil, &OpError{Op: "walk", Path: path, Kind: ErrTraversal}
		}
		return entry, w.descend(entry, target), nil

	case mode.IsDir():
		entry.Kind = KindDirectory
		if !w.opts.Recursive {
			return entry, nil, nil
		}
		var info fs.FileInfo
		if w.opts.FollowSymlinks {
			var err error
			if info, err = de.Info(); err != nil {
				return Entry{}, nil, wrapErr("walk", path, err)
			}
		}
		return entry, w.descend(entry, info), nil

	default:
		entry.Kind = KindFile
		return entry, nil, nil
	}
}

func (w *Walker) descend(entry Entry, info fs.FileInfo) *frame {
	e := entry
	return &frame{path: entry.Path, entry: &e, info: info, depth: entry.Depth}
}

// onStack reports whether target is one of the directories currently open
func (w *Walker) onStack(target fs.FileInfo) bool {
	for _, f := range w.stack {
		if f.info != nil && os.SameFile(f.info, target) {
			return true
		}
	}
	return false
}
