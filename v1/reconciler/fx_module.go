package reconciler

import (
	"github.com/Aleph-Alpha/schemasync/v1/logger"
	"github.com/Aleph-Alpha/schemasync/v1/observability"
	"github.com/Aleph-Alpha/schemasync/v1/schema_registry"
	"github.com/Aleph-Alpha/schemasync/v1/tracer"
	"go.uber.org/fx"
)

// FXModule provides the reconciliation *Engine.
//
// It requires a schema_registry.Registry and a reconciler.Config. A
// SchemaStore, *logger.Logger, observability.Observer, *tracer.Tracer and
// Reporter are picked up when present in the container.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    schema_registry.FXModule,
//	    reconciler.FXModule,
//	    fx.Supply(reconciler.Config{DryRun: true}),
//	)
var FXModule = fx.Module("reconciler",
	fx.Provide(
		NewEngineWithDI,
	),
)

// EngineParams groups the dependencies of the engine.
type EngineParams struct {
	fx.In

	Config   Config
	Registry schema_registry.Registry
	Store    SchemaStore            `optional:"true"`
	Logger   *logger.Logger         `optional:"true"`
	Observer observability.Observer `optional:"true"`
	Tracer   *tracer.Tracer         `optional:"true"`
	Reporter Reporter               `optional:"true"`
}

// NewEngineWithDI creates the engine from injected dependencies.
func NewEngineWithDI(p EngineParams) (*Engine, error) {
	engine, err := NewEngine(p.Registry, p.Store, p.Config)
	if err != nil {
		return nil, err
	}
	if p.Logger != nil {
		engine.WithLogger(p.Logger)
	}
	if p.Tracer != nil {
		engine.WithTracer(p.Tracer)
	}
	return engine.WithObserver(p.Observer).WithReporter(p.Reporter), nil
}
