package tracer

// Config defines the tracer settings.
type Config struct {
	// ServiceName is recorded as the service.name resource attribute.
	ServiceName string `yaml:"serviceName" envconfig:"TRACER_SERVICE_NAME" default:"schemasync"`

	// AppEnv is recorded as the deployment environment.
	AppEnv string `yaml:"appEnv" envconfig:"TRACER_APP_ENV" default:"development"`

	// EnableExport sends spans to an OTLP/HTTP collector. Without it spans
	// are still created so trace ids reach the logs.
	EnableExport bool `yaml:"enableExport" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint overrides the collector URL. When empty the standard
	// OTEL_EXPORTER_OTLP_* environment variables apply.
	Endpoint string `yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`
}
