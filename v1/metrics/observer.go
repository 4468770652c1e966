package metrics

import (
	"strconv"

	"github.com/Aleph-Alpha/schemasync/v1/observability"
)

// ObserveOperation records op in the operation metrics. Operations that
// carry an "outcome" in their metadata are also counted per outcome.
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	m.operationsTotal.WithLabelValues(op.Component, op.Operation, op.Status()).Inc()
	m.operationDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())

	outcome, ok := op.Metadata["outcome"].(string)
	if !ok {
		return
	}
	dryRun, _ := op.Metadata["dry_run"].(bool)
	m.outcomesTotal.WithLabelValues(op.Operation, outcome, strconv.FormatBool(dryRun)).Inc()
}
