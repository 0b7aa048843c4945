// Package paths provides pure path-string helpers shared by traversal and archiving.
//
// Nothing in this package touches the filesystem; every function works on
// path strings alone, so the path does not need to exist.
//
// # Operations
//
//   - Split: decompose a path into dir, basename, stem and extension
//   - Combine: join segments with the canonical separator, trimming separator and "." noise
//   - Relativize: strip a root prefix to build archive entry names
//   - ToSlash: normalize separators to "/" for archive entries
//
// # Usage
//
//	import "github.com/GriffinCanCode/fsutil/internal/shared/paths"
//
//	parts := paths.Split("/srv/http/backup.zip")
//	// parts.Dir == "/srv/http", parts.Stem == "backup", parts.Ext == "zip"
//
//	p := paths.Combine("/srv/http/", "./site/", "index.html")
//	// p == "/srv/http/site/index.html"
package paths
