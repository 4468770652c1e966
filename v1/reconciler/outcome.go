package reconciler

import (
	"time"

	"github.com/Aleph-Alpha/schemasync/v1/topology"
)

// OutcomeKind tags what happened to one schema or subject during a batch.
type OutcomeKind string

const (
	OutcomeRegistered             OutcomeKind = "registered"
	OutcomeCompatibilityUpdated   OutcomeKind = "compatibility-updated"
	OutcomeSkippedUnchanged       OutcomeKind = "skipped-unchanged"
	OutcomeCompatibilityUnchanged OutcomeKind = "compatibility-unchanged"
	OutcomeDownloaded             OutcomeKind = "downloaded"
	OutcomeNotFound               OutcomeKind = "not-found"
	OutcomeDeleted                OutcomeKind = "deleted"
	OutcomeFailed                 OutcomeKind = "failed"
	OutcomeNothingToRemove        OutcomeKind = "nothing-to-remove"
)

// Acted reports whether the kind stands for a change that was made, or
// would have been made in dry-run.
func (k OutcomeKind) Acted() bool {
	switch k {
	case OutcomeRegistered, OutcomeCompatibilityUpdated, OutcomeDownloaded, OutcomeDeleted:
		return true
	}
	return false
}

func (k OutcomeKind) String() string { return string(k) }

// Outcome is the result of one step of a batch. Schema is nil for delete
// outcomes, which only know the subject.
type Outcome struct {
	Subject string
	Schema  *topology.Schema
	Kind    OutcomeKind
	DryRun  bool

	// SchemaID and Version are set when the registry reported them.
	SchemaID int
	Version  int

	// Compatibility is the level after the step; PreviousCompatibility the level before.
	Compatibility         string
	PreviousCompatibility string

	// Path is the local file read or written.
	Path string

	// Versions lists the versions removed by a delete.
	Versions []int

	Duration time.Duration
	Err      error
}

func failedOutcome(subject string, schema *topology.Schema, dryRun bool, err error) Outcome {
	return Outcome{Subject: subject, Schema: schema, Kind: OutcomeFailed, DryRun: dryRun, Err: err}
}
