package report

import (
	"context"
	"errors"

	"github.com/Aleph-Alpha/schemasync/v1/reconciler"
)

// LogReporter writes a summary line per report and an error line per failure.
type LogReporter struct {
	logger Logger
}

func NewLogReporter(logger Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(_ context.Context, rep *reconciler.Report) error {
	if rep == nil {
		return nil
	}
	for _, o := range rep.Failures() {
		r.logger.Error("Reconciliation step failed", o.Err, map[string]interface{}{
			"run_id":  rep.RunID,
			"subject": o.Subject,
		})
	}

	counts := make(map[string]interface{})
	for _, o := range rep.Outcomes {
		n, _ := counts[o.Kind.String()].(int)
		counts[o.Kind.String()] = n + 1
	}
	r.logger.Info("Reconciliation finished", nil, map[string]interface{}{
		"run_id":      rep.RunID,
		"operation":   string(rep.Operation),
		"dry_run":     rep.DryRun,
		"changed":     len(rep.Subjects()),
		"outcomes":    counts,
		"duration_ms": rep.Duration().Milliseconds(),
	})
	return nil
}

// MultiReporter fans a report out to every reporter in order.
type MultiReporter []reconciler.Reporter

func (m MultiReporter) Report(ctx context.Context, rep *reconciler.Report) error {
	var errs []error
	for _, r := range m {
		if err := r.Report(ctx, rep); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
