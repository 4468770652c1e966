package reconciler

import (
	"errors"
	"testing"
	"time"

	"github.com/Aleph-Alpha/schemasync/v1/topology"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReportDeduplicatesByIdentity(t *testing.T) {
	orders := topology.NewSchema("orders-value", topology.SchemaTypeAvro)
	payments := topology.NewSchema("payments-value", topology.SchemaTypeAvro)
	lookalike := topology.NewSchema("orders-value", topology.SchemaTypeAvro)

	report := newReport(OperationRegister, false, time.Now())
	report.add(Outcome{Subject: "orders-value", Schema: orders, Kind: OutcomeCompatibilityUpdated})
	report.add(Outcome{Subject: "orders-value", Schema: orders, Kind: OutcomeRegistered})
	report.add(Outcome{Subject: "payments-value", Schema: payments, Kind: OutcomeSkippedUnchanged})
	report.add(Outcome{Subject: "orders-value", Schema: lookalike, Kind: OutcomeRegistered})

	assert.Equal(t, []*topology.Schema{orders, lookalike}, report.Schemas())
	assert.Equal(t, []string{"orders-value"}, report.Subjects())
	assert.True(t, report.Contains("orders-value"))
	assert.False(t, report.Contains("payments-value"))
	assert.Equal(t, 2, report.Count(OutcomeRegistered))
	assert.NoError(t, report.Err())

	_, err := uuid.Parse(report.RunID)
	assert.NoError(t, err)
}

func TestReportFailures(t *testing.T) {
	first, second := errors.New("first"), errors.New("second")
	report := newReport(OperationDelete, false, time.Unix(0, 0))
	report.add(Outcome{Subject: "a-value", Kind: OutcomeFailed, Err: first})
	report.add(Outcome{Subject: "b-value", Kind: OutcomeDeleted})
	report.add(Outcome{Subject: "c-value", Kind: OutcomeFailed, Err: second})
	report.FinishedAt = time.Unix(2, 0)

	assert.Len(t, report.Failures(), 2)
	assert.ErrorIs(t, report.Err(), first)
	assert.ErrorIs(t, report.Err(), second)
	assert.Equal(t, 2*time.Second, report.Duration())
	assert.False(t, report.NothingToRemove())
}

func TestOutcomeKindActed(t *testing.T) {
	acted := map[OutcomeKind]bool{
		OutcomeRegistered:             true,
		OutcomeCompatibilityUpdated:   true,
		OutcomeDownloaded:             true,
		OutcomeDeleted:                true,
		OutcomeSkippedUnchanged:       false,
		OutcomeCompatibilityUnchanged: false,
		OutcomeNotFound:               false,
		OutcomeFailed:                 false,
		OutcomeNothingToRemove:        false,
	}
	for kind, want := range acted {
		assert.Equal(t, want, kind.Acted(), kind.String())
	}
}
