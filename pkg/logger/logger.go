// Package logger provides a structured, levelled logger built on log/slog.
//
// Setup picks the handler from the app environment: human-readable text in
// development, JSON in production. WithCtx returns a logger pre-tagged with
// the request ID injected by the Logger middleware, so every log line from a
// handler is automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("product added", "product_id", id)
//	// → time=... level=INFO msg="product added" request_id=a1b2c3d4 product_id=...
package logger

import (
	"context"
	"log/slog"
	"os"
)

var L = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Setup configures the base logger for the given environment and returns it.
// Call once at boot, before the first request is served.
func Setup(env string) *slog.Logger {
	var handler slog.Handler
	switch env {
	case "production", "prod":
		// structured JSON for log aggregators
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
	return L
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the per-request logger stored in ctx by the Logger
// middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level on the base logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level on the base logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level on the base logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level on the base logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }
