package schema_registry

import (
	"time"

	"github.com/Aleph-Alpha/schemasync/v1/observability"
)

// observeOperation notifies the observer about a registry call if one is configured.
//
// Notes:
//   - resource: subject name ("" for global calls)
//   - subResource: schema type, version selector or compatibility level
func (c *Client) observeOperation(operation, resource, subResource string, duration time.Duration, err error, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "schema_registry",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Metadata:    metadata,
	})
}
