package logging

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type traceIDKey struct{}

// NewTraceID generates a lexicographically sortable trace ID for one
// program invocation.
func NewTraceID() string {
	return ulid.Make().String()
}

// ContextWithTraceID attaches a trace ID to ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID attached to ctx, or empty.
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithTraceID stamps every event from the returned logger with the
// trace ID.
func WithTraceID(logger zerolog.Logger, traceID string) zerolog.Logger {
	return logger.With().Str("trace_id", traceID).Logger()
}

// GetOrGenerateTraceID returns the trace ID from ctx, generating a fresh
// one when the context carries none.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewTraceID()
}
