package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Separator is the canonical separator used when joining paths on disk
const Separator = string(filepath.Separator)

// separators holds every separator accepted on input. On Unix this is just
// "/", on Windows both "\" and "/".
const separators = "/" + string(os.PathSeparator)

// Parts holds the components of a path
type Parts struct {
	Dir    string
	Base   string
	Stem   string
	Ext    string
	HasExt bool
}

// Split decomposes a path into its directory, basename, stem and extension.
// Trailing separators are ignored, so "/srv/http/" splits like "/srv/http".
// An empty path yields empty parts.
func Split(path string) Parts {
	if path == "" {
		return Parts{}
	}

	trimmed := strings.TrimRight(path, separators)
	if trimmed == "" {
		// Path was only separators: the root itself
		return Parts{Dir: Separator}
	}

	var parts Parts
	idx := strings.LastIndexAny(trimmed, separators)
	switch {
	case idx < 0:
		parts.Dir = "."
		parts.Base = trimmed
	case idx == 0:
		parts.Dir = trimmed[:1]
		parts.Base = trimmed[1:]
	default:
		parts.Dir = strings.TrimRight(trimmed[:idx], separators)
		if parts.Dir == "" {
			parts.Dir = trimmed[:1]
		}
		parts.Base = trimmed[idx+1:]
	}

	parts.Stem = parts.Base
	if dot := strings.LastIndex(parts.Base, "."); dot >= 0 {
		parts.Stem = parts.Base[:dot]
		parts.Ext = parts.Base[dot+1:]
		parts.HasExt = true
	}
	return parts
}

// DirName returns the directory component of path
func DirName(path string) string {
	return Split(path).Dir
}

// Basename returns the name plus extension of path
func Basename(path string) string {
	return Split(path).Base
}

// Name returns the name of path without its extension
func Name(path string) string {
	return Split(path).Stem
}

// Extension returns the extension of path without the leading dot
func Extension(path string) string {
	return Split(path).Ext
}

// Combine joins segments with the canonical separator.
//
// The first segment only loses trailing separators. Every later segment loses
// leading and trailing separators and dots, so relative markers such as "./"
// collapse. Segments left empty after trimming are skipped. A first segment
// made only of separators keeps a single root.
func Combine(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}

	out := make([]string, 0, len(segments))
	rooted := false

	first := segments[0]
	head := strings.TrimRight(first, separators)
	if head == "" && first != "" {
		rooted = true
	} else if head != "" {
		out = append(out, head)
	}

	for _, seg := range segments[1:] {
		seg = strings.Trim(seg, separators+".")
		if seg == "" {
			continue
		}
		out = append(out, seg)
	}

	joined := strings.Join(out, Separator)
	if rooted {
		return Separator + joined
	}
	return joined
}

// Relativize strips rootPath and the following separator from fullPath.
// A path equal to the root yields its basename. The second result is false
// when fullPath does not live under rootPath.
func Relativize(fullPath, rootPath string) (string, bool) {
	root := strings.TrimRight(rootPath, separators)
	if fullPath == rootPath || fullPath == root {
		return Basename(fullPath), true
	}

	prefix := root + Separator
	if root == "" {
		// Root of the filesystem: every absolute path is under it
		prefix = Separator
	}

	rel, ok := strings.CutPrefix(fullPath, prefix)
	if !ok || rel == "" {
		return "", false
	}
	return rel, true
}

// ToSlash converts every separator to "/" for use as an archive entry name
func ToSlash(path string) string {
	return strings.ReplaceAll(filepath.ToSlash(path), `\`, "/")
}
