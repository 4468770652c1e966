package tracer

import (
	"context"

	"github.com/Aleph-Alpha/schemasync/v1/logger"
	"go.uber.org/fx"
)

// FXModule provides a *Tracer built from a tracer.Config and shuts it down,
// flushing pending spans, when the application stops.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Supply(tracer.Config{ServiceName: "schemasync"}),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewTracerWithDI,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// TracerParams groups the dependencies of the tracer.
type TracerParams struct {
	fx.In

	Config Config
	Logger *logger.Logger `optional:"true"`
}

// NewTracerWithDI creates the tracer from injected dependencies.
func NewTracerWithDI(p TracerParams) (*Tracer, error) {
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return NewClient(p.Config, log)
}

// RegisterTracerLifecycle registers the shutdown hook of the tracer.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			tracer.logger.Info("shutting down tracer...", nil)
			if tracer.tracer == nil {
				tracer.logger.Warn("tracer was nil during shutdown", nil)
				return nil
			}
			return tracer.Shutdown(ctx)
		},
	})
}
