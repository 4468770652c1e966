package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/schemasync/v1/logger"
	"github.com/Aleph-Alpha/schemasync/v1/observability"
)

// FXModule provides *Metrics, and the same instance as MetricsCollector and
// observability.Observer, so every component built with an optional Observer
// reports into Prometheus.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Supply(metrics.Config{ServiceName: "schemasync", TextfilePath: "/var/lib/node_exporter/schemasync.prom"}),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) MetricsCollector { return m },
		func(m *Metrics) observability.Observer { return m },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// MetricsLifecycleParams groups the dependencies of the lifecycle hooks.
type MetricsLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Config    Config
	Logger    *logger.Logger `optional:"true"`
}

// RegisterMetricsLifecycle starts the HTTP server when Config.Serve is set
// and, on stop, shuts it down and writes the textfile dump when configured.
func RegisterMetricsLifecycle(p MetricsLifecycleParams) {
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}
	m := p.Metrics

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !p.Config.Serve {
				return nil
			}
			go func() {
				log.Info("Starting Prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})

				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Error starting Prometheus metrics server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			var errs []error
			if p.Config.Serve {
				log.Info("Shutting down Prometheus metrics server", nil, nil)
				errs = append(errs, m.Server.Shutdown(ctx))
			}
			if p.Config.TextfilePath != "" {
				if err := m.WriteTextfile(p.Config.TextfilePath); err != nil {
					log.Error("Failed to write metrics textfile", err, map[string]interface{}{
						"path": p.Config.TextfilePath,
					})
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		},
	})
}
