package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InjectTraceID attaches a fresh trace id to the context logger so every log
// line of one invocation can be correlated.
func InjectTraceID(ctx context.Context) context.Context {
	id := uuid.New().String()
	logger := log.With().Str("traceId", id).Logger()
	return logger.WithContext(ctx)
}

// WithOperation tags the context logger with the execute operation being
// processed.
func WithOperation(ctx context.Context, operation string) context.Context {
	logger := log.Ctx(ctx).With().Str("operation", operation).Logger()
	return logger.WithContext(ctx)
}
