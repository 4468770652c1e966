package reconciler

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Aleph-Alpha/schemasync/v1/logger"
	"github.com/Aleph-Alpha/schemasync/v1/observability"
	"github.com/Aleph-Alpha/schemasync/v1/schema_registry"
	"github.com/Aleph-Alpha/schemasync/v1/topology"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Engine reconciles desired schemas against a schema registry.
//
// Every batch runs sequentially. Each subject's registry calls form a
// read-before-write sequence (resolve, then set) that is not transactional:
// a failure part way leaves the subject partially updated and is returned.
// In dry-run the engine takes exactly the same decisions and only skips the
// final mutating call.
type Engine struct {
	registry schema_registry.Registry
	store    SchemaStore
	dryRun   bool

	logger   Logger
	observer observability.Observer
	tracer   Tracer
	reporter Reporter
	now      func() time.Time
}

// NewEngine creates an engine on registry. A nil store selects a FileStore
// on the OS filesystem.
func NewEngine(registry schema_registry.Registry, store SchemaStore, cfg Config) (*Engine, error) {
	if registry == nil {
		return nil, fmt.Errorf("schema registry is required")
	}
	if store == nil {
		store = NewFileStore(nil)
	}

	return &Engine{
		registry: registry,
		store:    store,
		dryRun:   cfg.DryRun,
		logger:   logger.NewNop(),
		tracer:   noopTracer{tracer: noop.NewTracerProvider().Tracer("")},
		now:      time.Now,
	}, nil
}

// WithLogger sets the logger. A nil logger is ignored.
func (e *Engine) WithLogger(l Logger) *Engine {
	if l != nil {
		e.logger = l
	}
	return e
}

// WithObserver attaches an observer notified once per outcome.
func (e *Engine) WithObserver(observer observability.Observer) *Engine {
	e.observer = observer
	return e
}

// WithTracer sets the tracer used for batch and schema spans. A nil tracer is ignored.
func (e *Engine) WithTracer(t Tracer) *Engine {
	if t != nil {
		e.tracer = t
	}
	return e
}

// WithReporter sets the reporter that receives every finished batch report.
func (e *Engine) WithReporter(r Reporter) *Engine {
	e.reporter = r
	return e
}

// DryRun reports whether the engine skips mutating calls.
func (e *Engine) DryRun() bool { return e.dryRun }

// ResolveCompatibility returns the effective compatibility level of subject:
// the subject's own level when set, otherwise the registry's global default.
// The global default is queried at most once.
func (e *Engine) ResolveCompatibility(ctx context.Context, subject string) (string, error) {
	res := e.registry.GetCompatibility(ctx, subject)
	switch res.Status() {
	case schema_registry.StatusFound:
		return res.Value(), nil
	case schema_registry.StatusNotFound:
		if subject == "" {
			return "", fmt.Errorf("global compatibility is not configured: %w", res.Err())
		}
	default:
		return "", fmt.Errorf("failed to get compatibility of subject '%s': %w", subject, res.Err())
	}

	global := e.registry.GetCompatibility(ctx, "")
	switch global.Status() {
	case schema_registry.StatusFound:
		return global.Value(), nil
	case schema_registry.StatusNotFound:
		return "", fmt.Errorf("global compatibility is not configured: %w", global.Err())
	default:
		return "", fmt.Errorf("failed to get global compatibility: %w", global.Err())
	}
}

// ListSubjects returns every registry subject in sorted order.
func (e *Engine) ListSubjects(ctx context.Context) ([]string, error) {
	subjects, err := e.registry.GetAllSubjects(ctx)
	if err != nil {
		return nil, err
	}
	sorted := append([]string(nil), subjects...)
	sort.Strings(sorted)
	return sorted, nil
}

// SchemaType returns the type of the latest registered version of subject.
func (e *Engine) SchemaType(ctx context.Context, subject string) (topology.SchemaType, error) {
	metadata, err := e.registry.GetLatestSchemaMetadata(ctx, subject).Get()
	if err != nil {
		return "", fmt.Errorf("failed to get latest schema of subject '%s': %w", subject, err)
	}
	if metadata == nil {
		return "", newSchemaError(subject, "inspect", ErrMissingMetadata)
	}
	if metadata.Type == "" {
		return "", newSchemaError(subject, "inspect", ErrMissingSchemaType)
	}
	return topology.ParseSchemaType(metadata.Type)
}

// OrphanedSubjects returns the registry subjects not declared in desired, sorted.
func (e *Engine) OrphanedSubjects(ctx context.Context, desired []*topology.Schema) ([]string, error) {
	declared := make(map[string]struct{}, len(desired))
	for _, schema := range desired {
		if schema != nil {
			declared[schema.Subject] = struct{}{}
		}
	}

	subjects, err := e.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	var orphaned []string
	for _, subject := range subjects {
		if _, ok := declared[subject]; !ok {
			orphaned = append(orphaned, subject)
		}
	}
	return orphaned, nil
}

func (e *Engine) startBatch(ctx context.Context, op Operation, size int) (context.Context, trace.Span, *Report) {
	ctx, span := e.tracer.StartSpan(ctx, "reconciler."+string(op))
	e.tracer.SetAttributes(span, map[string]interface{}{
		"schemasync.operation": string(op),
		"schemasync.dry_run":   e.dryRun,
		"schemasync.batch":     size,
	})
	return ctx, span, newReport(op, e.dryRun, e.now())
}

// finishBatch closes the span, notifies the observer and hands the report to
// the reporter. The report is handed over even when the batch failed.
func (e *Engine) finishBatch(ctx context.Context, span trace.Span, report *Report, err error) (*Report, error) {
	report.FinishedAt = e.now()
	if err != nil {
		e.tracer.RecordErrorOnSpan(span, err)
	}
	e.tracer.SetAttributes(span, map[string]interface{}{
		"schemasync.run_id":   report.RunID,
		"schemasync.outcomes": len(report.Outcomes),
		"schemasync.acted":    len(report.Subjects()),
	})
	span.End()

	for _, o := range report.Outcomes {
		e.observeOutcome(report.Operation, o)
	}

	if e.reporter != nil {
		if rerr := e.reporter.Report(ctx, report); rerr != nil {
			e.logger.Warn("failed to report outcomes", rerr, map[string]interface{}{
				"run_id":    report.RunID,
				"operation": string(report.Operation),
			})
		}
	}
	return report, err
}

// schemaSpan opens a span for one subject and returns a function that closes it.
func (e *Engine) schemaSpan(ctx context.Context, name, subject string) (context.Context, func(error)) {
	ctx, span := e.tracer.StartSpan(ctx, name)
	e.tracer.SetAttributes(span, map[string]interface{}{"schemasync.subject": subject})
	return ctx, func(err error) {
		if err != nil {
			e.tracer.RecordErrorOnSpan(span, err)
		}
		span.End()
	}
}

func (e *Engine) observeOutcome(op Operation, o Outcome) {
	if e.observer == nil {
		return
	}
	e.observer.ObserveOperation(observability.OperationContext{
		Component:   "reconciler",
		Operation:   string(op),
		Resource:    o.Subject,
		SubResource: string(o.Kind),
		Duration:    o.Duration,
		Error:       o.Err,
		Metadata: map[string]interface{}{
			"dry_run": o.DryRun,
			"outcome": string(o.Kind),
		},
	})
}

type noopTracer struct {
	tracer trace.Tracer
}

func (t noopTracer) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name)
}

func (t noopTracer) RecordErrorOnSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func (t noopTracer) SetAttributes(trace.Span, map[string]interface{}) {}
