package metrics

// Default port for metrics server if none is specified.
const DefaultMetricsAddress = ":9090"

// DefaultNamespace prefixes every built-in metric.
const DefaultNamespace = "schemasync"

// Config defines the configuration of the Prometheus metrics.
type Config struct {
	// Serve starts the /metrics HTTP server. A one-shot CLI run usually leaves
	// it off and relies on TextfilePath instead.
	Serve bool `yaml:"serve" envconfig:"METRICS_SERVE"`

	// Address determines the network address where the metrics HTTP server listens.
	//
	// Default: ":9090"
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// EnableDefaultCollectors registers the Go runtime, process and build info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace prefixes all built-in metric names.
	//
	// Default: "schemasync"
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// ServiceName is attached as the "service" label to every metric.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// TextfilePath, when set, receives a dump of all metrics on shutdown in the
	// node-exporter textfile collector format.
	TextfilePath string `yaml:"textfile_path" envconfig:"METRICS_TEXTFILE_PATH"`
}
