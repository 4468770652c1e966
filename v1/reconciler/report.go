package reconciler

import (
	"context"
	"errors"
	"time"

	"github.com/Aleph-Alpha/schemasync/v1/topology"
	"github.com/google/uuid"
)

// Operation names the batch a Report belongs to.
type Operation string

const (
	OperationRegister Operation = "register"
	OperationDownload Operation = "download"
	OperationDelete   Operation = "delete"
)

// Reporter receives every finished batch report.
type Reporter interface {
	Report(ctx context.Context, report *Report) error
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ctx context.Context, report *Report) error

func (f ReporterFunc) Report(ctx context.Context, report *Report) error { return f(ctx, report) }

// Report collects the outcomes of one batch in the order they were produced.
type Report struct {
	RunID      string
	Operation  Operation
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []Outcome
}

func newReport(op Operation, dryRun bool, now time.Time) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Operation: op,
		DryRun:    dryRun,
		StartedAt: now,
	}
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Schemas returns the schemas acted upon, each descriptor once, in order of
// first appearance. Identity is the descriptor pointer.
func (r *Report) Schemas() []*topology.Schema {
	seen := make(map[*topology.Schema]struct{})
	var schemas []*topology.Schema
	for _, o := range r.Outcomes {
		if o.Schema == nil || !o.Kind.Acted() {
			continue
		}
		if _, ok := seen[o.Schema]; ok {
			continue
		}
		seen[o.Schema] = struct{}{}
		schemas = append(schemas, o.Schema)
	}
	return schemas
}

// Subjects returns the names of the subjects acted upon, each once.
func (r *Report) Subjects() []string {
	seen := make(map[string]struct{})
	var subjects []string
	for _, o := range r.Outcomes {
		if !o.Kind.Acted() {
			continue
		}
		if _, ok := seen[o.Subject]; ok {
			continue
		}
		seen[o.Subject] = struct{}{}
		subjects = append(subjects, o.Subject)
	}
	return subjects
}

// Contains reports whether subject was acted upon.
func (r *Report) Contains(subject string) bool {
	for _, s := range r.Subjects() {
		if s == subject {
			return true
		}
	}
	return false
}

// Failures returns the failed outcomes.
func (r *Report) Failures() []Outcome {
	var failures []Outcome
	for _, o := range r.Outcomes {
		if o.Kind == OutcomeFailed {
			failures = append(failures, o)
		}
	}
	return failures
}

// Count returns the number of outcomes of the given kind.
func (r *Report) Count(kind OutcomeKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// NothingToRemove reports whether a delete batch was called without subjects.
func (r *Report) NothingToRemove() bool {
	return r.Count(OutcomeNothingToRemove) > 0
}

// Err joins the errors of all failed outcomes.
func (r *Report) Err() error {
	var errs []error
	for _, o := range r.Failures() {
		errs = append(errs, o.Err)
	}
	return errors.Join(errs...)
}

// Duration is the wall time between start and finish of the batch.
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
