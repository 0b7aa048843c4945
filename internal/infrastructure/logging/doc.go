// Package logging provides structured logging using uber/zap.
//
// This package offers two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Library defaults log warnings and above to stderr. Callers embedding fsutil
// in a larger program usually pass their own *zap.Logger instead.
//
// Warner is the narrow interface operations use for non-fatal notifications
// (for example a search root that does not exist). The default is a no-op
// logger chosen when the operations are constructed.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Warn("directory does not exist", zap.String("path", root))
package logging
