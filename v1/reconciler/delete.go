package reconciler

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aleph-Alpha/schemasync/v1/schema_registry"
)

// DeleteSubjects removes subjects from the registry. Duplicates and empty
// names are dropped. Without subjects the report carries a single
// OutcomeNothingToRemove and no registry call is made; in dry-run every
// subject is reported as deleted without calling the registry.
//
// Deletion is best effort: every subject is attempted, failures are recorded
// as failed outcomes and returned joined once all subjects were processed.
// A subject that is already gone is reported as OutcomeNotFound.
func (e *Engine) DeleteSubjects(ctx context.Context, subjects []string) (*Report, error) {
	unique := dedupe(subjects)
	ctx, span, report := e.startBatch(ctx, OperationDelete, len(unique))

	if len(unique) == 0 {
		e.logger.Info("No subjects to be removed from cluster", nil)
		report.add(Outcome{Kind: OutcomeNothingToRemove, DryRun: e.dryRun})
		return e.finishBatch(ctx, span, report, nil)
	}

	if e.dryRun {
		for _, subject := range unique {
			report.add(Outcome{Subject: subject, Kind: OutcomeDeleted, DryRun: true})
		}
		e.logger.Info("Subjects to be removed from cluster", nil, map[string]interface{}{"subjects": unique})
		return e.finishBatch(ctx, span, report, nil)
	}

	var errs []error
	for _, subject := range unique {
		if err := e.deleteOne(ctx, report, subject); err != nil {
			errs = append(errs, err)
		}
	}
	e.logger.Info("Subjects removed from cluster", nil, map[string]interface{}{
		"subjects": report.Subjects(),
		"failed":   len(errs),
	})
	return e.finishBatch(ctx, span, report, errors.Join(errs...))
}

func (e *Engine) deleteOne(ctx context.Context, report *Report, subject string) (err error) {
	ctx, end := e.schemaSpan(ctx, "reconciler.delete_subject", subject)
	defer func() { end(err) }()

	start := e.now()
	versions, err := e.registry.DeleteSubject(ctx, subject)
	switch {
	case err == nil:
		report.add(Outcome{Subject: subject, Kind: OutcomeDeleted, Versions: versions, Duration: e.since(start)})
		return nil
	case schema_registry.IsNotFound(err):
		e.logger.Debug("Subject already absent from schema registry", nil, map[string]interface{}{"subject": subject})
		report.add(Outcome{Subject: subject, Kind: OutcomeNotFound, Duration: e.since(start)})
		return nil
	default:
		err = fmt.Errorf("failed to delete subject '%s': %w", subject, err)
		report.add(e.failed(subject, nil, start, err))
		return err
	}
}

func dedupe(subjects []string) []string {
	seen := make(map[string]struct{}, len(subjects))
	unique := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		if subject == "" {
			continue
		}
		if _, ok := seen[subject]; ok {
			continue
		}
		seen[subject] = struct{}{}
		unique = append(unique, subject)
	}
	return unique
}
