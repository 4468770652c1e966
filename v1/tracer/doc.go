// Package tracer provides distributed tracing using OpenTelemetry.
//
// The reconciler opens one span per batch and one per subject through this
// package; the logger attaches the resulting trace and span ids to its
// entries, and the Kafka reporter forwards the trace context with every
// audit event (see GetCarrier).
//
// Spans are exported over OTLP/HTTP when Config.EnableExport is set. The
// exporter honours the standard OTEL_EXPORTER_OTLP_* environment variables
// unless Config.Endpoint is given.
package tracer
