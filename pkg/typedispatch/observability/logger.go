// Package observability provides logging, metrics, and tracing support for
// typedispatch stores.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import "log/slog"

// All logging helpers tolerate a nil logger, which disables output.

// LogBind logs the application of a binding batch.
func LogBind(logger *slog.Logger, store, kind, guardID string, count int) {
	if logger == nil {
		return
	}
	logger.Debug("bindings applied",
		slog.String("store", store),
		slog.String("kind", kind),
		slog.String("guard_id", guardID),
		slog.Int("count", count),
	)
}

// LogRelease logs a guard releasing its snapshot.
func LogRelease(logger *slog.Logger, store, kind, guardID string, count int) {
	if logger == nil {
		return
	}
	logger.Debug("bindings restored",
		slog.String("store", store),
		slog.String("kind", kind),
		slog.String("guard_id", guardID),
		slog.Int("count", count),
	)
}

// LogRegistrationSkipped logs a declarative registration that was skipped
// because no type key could be inferred. This is the library's only
// warning-level event; execution continues.
func LogRegistrationSkipped(logger *slog.Logger, store, kind, reason string) {
	if logger == nil {
		return
	}
	logger.Warn("registration skipped",
		slog.String("store", store),
		slog.String("kind", kind),
		slog.String("reason", reason),
	)
}
