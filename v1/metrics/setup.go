package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns an isolated Prometheus registry, the built-in operation
// metrics and the HTTP server exposing them.
type Metrics struct {
	// Server exposes the /metrics endpoint.
	Server *http.Server

	// Registry is the service's own registry. Metrics registered through the
	// Create* helpers carry the service label as well.
	Registry *prometheus.Registry

	cfg        Config
	registerer prometheus.Registerer

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	outcomesTotal     *prometheus.CounterVec
}

// NewMetrics sets up a dedicated registry, wraps it with a constant
// service label and registers the operation metrics:
//
//	<namespace>_operations_total{component,operation,status}
//	<namespace>_operation_duration_seconds{component,operation}
//	<namespace>_outcomes_total{operation,outcome,dry_run}
func NewMetrics(cfg Config) *Metrics {
	if cfg.Address == "" {
		cfg.Address = DefaultMetricsAddress
	}
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}

	registry := prometheus.NewRegistry()

	// All metrics emitted by this service carry service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		cfg:        cfg,
		registerer: wrappedRegistry,
	}

	m.operationsTotal = createCounterVec(cfg.Namespace, "operations_total", "Total number of completed operations", []string{"component", "operation", "status"})
	m.operationDuration = createHistogramVec(cfg.Namespace, "operation_duration_seconds", "Duration of operations in seconds", []string{"component", "operation"}, prometheus.DefBuckets)
	m.outcomesTotal = createCounterVec(cfg.Namespace, "outcomes_total", "Reconciliation outcomes by kind", []string{"operation", "outcome", "dry_run"})

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.outcomesTotal,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	return m
}

// WriteTextfile dumps every metric to path, atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
