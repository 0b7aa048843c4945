package filesystem

import (
	"strings"

	"github.com/GriffinCanCode/fsutil/internal/shared/paths"
)

// ExtensionSet is a list of accepted file extensions. Entries are compared
// case-insensitively and may be written with or without a leading dot.
// An empty set accepts every extension.
type ExtensionSet []string

// Matches reports whether the extension of path is accepted
func (s ExtensionSet) Matches(path string) bool {
	return MatchExtension(paths.Extension(path), s)
}

// MatchExtension reports whether ext is in accepted. A path without an
// extension has ext "" and only matches a set containing "".
func MatchExtension(ext string, accepted []string) bool {
	if len(accepted) == 0 {
		return true
	}
	ext = normalizeExtension(ext)
	for _, candidate := range accepted {
		if normalizeExtension(candidate) == ext {
			return true
		}
	}
	return false
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimLeft(ext, "."))
}
