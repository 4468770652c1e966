package report

import "context"

// Logger is the subset of the std logger used by LogReporter.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// CarrierSource injects the trace context of ctx into message headers.
// *tracer.Tracer implements it.
type CarrierSource interface {
	GetCarrier(ctx context.Context) map[string]string
}
