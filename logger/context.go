package logger

import (
	"context"
	"log/slog"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const loggerKey ContextKey = "logger"

// FromContext retrieves the logger from the context.
// If no logger is found, it returns the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithSubmission adds a submission id attribute to the logger in the context.
// Pipeline steps log through this so every line of one generation run can be
// correlated.
func WithSubmission(ctx context.Context, submissionID string) context.Context {
	l := FromContext(ctx).With("submission_id", submissionID)
	return WithLogger(ctx, l)
}
