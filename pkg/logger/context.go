package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	runIDKey  contextKey = "run_id"
	fileKey   contextKey = "file"
	loggerKey contextKey = "logger"
)

// WithRunID adds the verification run id to context
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// WithFile adds the listing file being processed to context
func WithFile(ctx context.Context, file string) context.Context {
	return context.WithValue(ctx, fileKey, file)
}

// WithLogger adds logger to context
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts logger from context with all accumulated fields
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
		return l
	}

	l := Logger

	var fields []zap.Field

	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		fields = append(fields, zap.String("run_id", runID))
	}

	if file, ok := ctx.Value(fileKey).(string); ok && file != "" {
		fields = append(fields, zap.String("file", file))
	}

	if len(fields) > 0 {
		l = l.With(fields...)
	}

	return l
}

// CountField returns a zap field for a branch count
func CountField(name string, count int) zap.Field {
	return zap.Int(name, count)
}
