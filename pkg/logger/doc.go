// Package logger provides structured logging with context extraction and Sentry integration.
//
// It extends log/slog with automatic context-based attribute injection and
// optional Sentry error reporting.
//
// Create a logger with context extractors:
//
//	requestIDExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if reqID, ok := ctx.Value(requestIDKey).(string); ok && reqID != "" {
//			return slog.String("request_id", reqID), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(requestIDExtractor)
//	log.InfoContext(ctx, "request processed", slog.Int("status", 200))
//
// For production error tracking, use NewWithSentry. If SENTRY_DSN is empty,
// the logger gracefully falls back to stdout-only logging, so the same code
// path works in development and production.
package logger
