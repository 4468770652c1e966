package schema_registry

import "time"

// Registry backends accepted by NewRegistry.
const (
	TypeConfluent = "confluent"
	TypeApicurio  = "apicurio"
	TypeMemory    = "memory"
)

// apicurioCompatPath is the Confluent compatible API root of an Apicurio registry.
const apicurioCompatPath = "/apis/ccompat/v7"

const defaultTimeout = 10 * time.Second

// Config holds configuration for schema registry client
type Config struct {
	// Type selects the backend: confluent (default), apicurio or memory.
	Type string `yaml:"type" envconfig:"SCHEMA_REGISTRY_TYPE" default:"confluent"`

	// URL is the schema registry endpoint (e.g., "http://localhost:8081")
	URL string `yaml:"url" envconfig:"SCHEMA_REGISTRY_URL"`

	// Username for basic auth (optional)
	Username string `yaml:"username" envconfig:"SCHEMA_REGISTRY_USERNAME"`

	// Password for basic auth (optional)
	Password string `yaml:"password" envconfig:"SCHEMA_REGISTRY_PASSWORD"`

	// Token is sent as a bearer token when set. It takes precedence over basic auth.
	Token string `yaml:"token" envconfig:"SCHEMA_REGISTRY_TOKEN"`

	// Timeout for HTTP requests
	Timeout time.Duration `yaml:"timeout" envconfig:"SCHEMA_REGISTRY_TIMEOUT" default:"10s"`
}
