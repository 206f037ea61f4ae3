// Package diag threads a structured, context-scoped logger through the
// concurrent per-package workers of the call-graph driver (C7), so every
// recoverable-diagnostic line (spec.md §7) is automatically tagged with
// the translation unit that produced it without passing a logger
// parameter through every function signature in apicall/symbolize.
package diag

import (
	"context"
	"log/slog"

	slogctx "github.com/veqryn/slog-context"
)

// NewContext attaches logger to ctx for later retrieval by Warn/Error.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return slogctx.NewCtx(ctx, logger)
}

// With returns a context whose logger has the given key/value pairs
// attached to every subsequent record — used by the driver to tag a
// worker's context with the package path it owns before handing it to
// C2-C6.
func With(ctx context.Context, args ...any) context.Context {
	return slogctx.With(ctx, args...)
}

// Warn logs a recoverable diagnostic: unrecognized expression shape,
// unsupported operator, or any other case that substitutes ir.Unknown
// instead of aborting (spec.md §7 "Recoverable (diagnostic + Unknown)").
func Warn(ctx context.Context, msg string, args ...any) {
	slogctx.Warn(ctx, msg, args...)
}

// Skip logs a recoverable diagnostic for a statement that was dropped
// entirely rather than degraded to Unknown (spec.md §7 "Recoverable
// (diagnostic + skip)"): an indirect/unresolved callee, or a requested
// statement missing from the traversal.
func Skip(ctx context.Context, msg string, args ...any) {
	slogctx.Warn(ctx, msg, args...)
}

// Info logs routine progress, e.g. per-package symbolization start/end.
func Info(ctx context.Context, msg string, args ...any) {
	slogctx.Info(ctx, msg, args...)
}
