// Package observability defines the hook through which schemasync components report
// the operations they perform.
//
// Components never depend on a concrete metrics or tracing backend. Instead they accept an
// optional Observer and emit one OperationContext per completed operation. The metrics
// package ships a Prometheus-backed Observer; tests usually plug in a recording Observer.
//
// Example:
//
//	client, _ := schema_registry.NewClient(cfg)
//	client = client.WithObserver(metricsObserver)
package observability

import "time"

// Observer receives a notification for every completed operation.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a single completed operation.
type OperationContext struct {
	// Component is the emitting package, e.g. "schema_registry" or "reconciler".
	Component string

	// Operation is the verb, e.g. "register_schema" or "download".
	Operation string

	// Resource is the primary target, usually a subject name.
	Resource string

	// SubResource carries secondary detail such as a version or an object key.
	SubResource string

	Duration time.Duration

	// Error is the operation's failure, nil on success.
	Error error

	// Size is the payload size in bytes when one applies.
	Size int64

	// Metadata holds operation specific details (outcome, schema_type, dry_run, ...).
	Metadata map[string]interface{}
}

// Status returns "error" when the operation failed and "success" otherwise.
func (o OperationContext) Status() string {
	if o.Error != nil {
		return "error"
	}
	return "success"
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
