// Package filesystem implements tree traversal and the operations built on it.
//
// This package is organized into specialized modules:
//   - walker: Pull-based directory walk (pre-order or post-order, optional symlink following)
//   - extensions: Case-insensitive extension filter
//   - aggregate: Total size and extension-filtered file listing
//   - remove: Post-order removal, removal plans and bulk removal
//   - archives: ZIP creation and extraction
//   - gzip: Streaming gzip decompression
//   - basic, operations, directory, metadata: One-call file primitives
//   - search: Pattern matching with ** support
//   - provider: Tool catalog and parameter dispatch
//
// All operations:
//   - Run synchronously on the calling goroutine
//   - Accept a context wherever a tree is walked
//   - Return errors that match one sentinel (ErrNotFound, ErrIO, ...) via errors.Is
//
// Example Usage:
//
//	ops := filesystem.New(filesystem.WithLogger(logger))
//	size, err := ops.TotalSize(ctx, "/srv/http", false)
package filesystem
