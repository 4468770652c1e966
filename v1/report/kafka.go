package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Aleph-Alpha/schemasync/v1/kafka"
	"github.com/Aleph-Alpha/schemasync/v1/reconciler"
)

// Event is the audit record published for every outcome of a batch.
type Event struct {
	RunID                 string    `json:"run_id"`
	Operation             string    `json:"operation"`
	DryRun                bool      `json:"dry_run"`
	Subject               string    `json:"subject,omitempty"`
	Outcome               string    `json:"outcome"`
	SchemaType            string    `json:"schema_type,omitempty"`
	Compatibility         string    `json:"compatibility,omitempty"`
	PreviousCompatibility string    `json:"previous_compatibility,omitempty"`
	SchemaID              int       `json:"schema_id,omitempty"`
	Version               int       `json:"version,omitempty"`
	Versions              []int     `json:"versions,omitempty"`
	Path                  string    `json:"path,omitempty"`
	Error                 string    `json:"error,omitempty"`
	DurationMs            int64     `json:"duration_ms"`
	Timestamp             time.Time `json:"timestamp"`
}

// NewEvent flattens one outcome of rep.
func NewEvent(rep *reconciler.Report, o reconciler.Outcome) Event {
	event := Event{
		RunID:                 rep.RunID,
		Operation:             string(rep.Operation),
		DryRun:                rep.DryRun,
		Subject:               o.Subject,
		Outcome:               o.Kind.String(),
		Compatibility:         o.Compatibility,
		PreviousCompatibility: o.PreviousCompatibility,
		SchemaID:              o.SchemaID,
		Version:               o.Version,
		Versions:              o.Versions,
		Path:                  o.Path,
		DurationMs:            o.Duration.Milliseconds(),
		Timestamp:             rep.FinishedAt,
	}
	if o.Schema != nil {
		event.SchemaType = o.Schema.Type.String()
	}
	if o.Err != nil {
		event.Error = o.Err.Error()
	}
	return event
}

// KafkaReporter publishes an Event per outcome. The subject is the message key
// so all events of a subject land on the same partition.
type KafkaReporter struct {
	publisher kafka.Publisher
	carrier   CarrierSource
}

func NewKafkaReporter(publisher kafka.Publisher) *KafkaReporter {
	return &KafkaReporter{publisher: publisher}
}

// WithCarrier attaches the trace context of the reporting ctx to every message.
func (r *KafkaReporter) WithCarrier(carrier CarrierSource) *KafkaReporter {
	r.carrier = carrier
	return r
}

// Report publishes every outcome, continuing past failures. The returned
// error joins all publish failures.
func (r *KafkaReporter) Report(ctx context.Context, rep *reconciler.Report) error {
	if rep == nil {
		return nil
	}
	headers := map[string]string{
		"content-type":      "application/json",
		"schemasync-run-id": rep.RunID,
	}
	if r.carrier != nil {
		for k, v := range r.carrier.GetCarrier(ctx) {
			headers[k] = v
		}
	}

	var errs []error
	for _, o := range rep.Outcomes {
		payload, err := json.Marshal(NewEvent(rep, o))
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to encode audit event for %q: %w", o.Subject, err))
			continue
		}
		if err := r.publisher.Publish(ctx, o.Subject, payload, headers); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
