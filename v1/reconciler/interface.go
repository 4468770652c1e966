package reconciler

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Logger defines the interface for logging operations in the reconciler package.
// *logger.Logger satisfies it.
//
//go:generate mockgen -source=interface.go -destination=mock_logger.go -package=reconciler
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Tracer opens spans around batches and single schemas. *tracer.Tracer satisfies it.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)
	RecordErrorOnSpan(span trace.Span, err error)
	SetAttributes(span trace.Span, attrs map[string]interface{})
}
