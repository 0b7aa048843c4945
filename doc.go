// Package fsutil provides filesystem traversal and the operations built on
// it: total size, extension-filtered listing, recursive removal, and ZIP and
// gzip archive handling.
//
// Every walking operation is synchronous, accepts a context, and reports
// failures as errors that match one of the sentinel kinds ([ErrNotFound],
// [ErrIO], [ErrTraversal], ...) through errors.Is.
//
// # Quick Start
//
// Use the package-level functions with configuration from the environment:
//
//	size, err := fsutil.Size(ctx, "/srv/http")
//	files, err := fsutil.ListFiles(ctx, "/srv/http", []string{"php", "html"}, true)
//	stats, err := fsutil.Zip(ctx, "/srv/http/site.com", "/srv/backup.zip")
//
// Or build an instance with explicit collaborators:
//
//	ops := fsutil.New(
//	    fsutil.WithLogger(logger),
//	    fsutil.WithCompressionLevel(9),
//	)
//	err := ops.Remove(ctx, "/srv/http/cache", true)
//
// # Configuration
//
// [Default] and the package-level functions read FSUTIL_* environment
// variables once: FSUTIL_LOG_LEVEL, FSUTIL_LOG_DEV, FSUTIL_ZIP_LEVEL,
// FSUTIL_GUNZIP_BUFFER, FSUTIL_DIR_MODE and FSUTIL_METRICS.
package fsutil
