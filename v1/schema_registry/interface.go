package schema_registry

import "context"

//go:generate mockgen -source=interface.go -destination=mock_registry.go -package=schema_registry

// Registry is the adapter over a Confluent compatible schema registry used by
// the reconciler. Lookups return a tagged Result so that legitimate absences
// (unknown subject, schema or subject-level config) are told apart from
// failures without inspecting error codes. Mutations return plain errors.
type Registry interface {
	// GetCompatibility returns the subject's compatibility level. An empty
	// subject selects the global default.
	GetCompatibility(ctx context.Context, subject string) Result[string]

	// UpdateCompatibility sets the subject's compatibility level and returns
	// the level confirmed by the registry.
	UpdateCompatibility(ctx context.Context, subject, level string) (string, error)

	// GetLatestSchemaMetadata returns the latest registered version of a subject.
	GetLatestSchemaMetadata(ctx context.Context, subject string) Result[*Metadata]

	// GetAllSubjects lists every subject known to the registry.
	GetAllSubjects(ctx context.Context) ([]string, error)

	// GetAllVersions lists the version numbers registered under a subject.
	GetAllVersions(ctx context.Context, subject string) Result[[]int]

	// GetVersion returns the version under which schema is registered for subject.
	GetVersion(ctx context.Context, subject string, schema ParsedSchema) Result[int]

	// TestCompatibility checks schema against the latest version of subject.
	TestCompatibility(ctx context.Context, subject string, schema ParsedSchema) Result[bool]

	// Register registers schema under subject and returns the schema id.
	Register(ctx context.Context, subject string, schema ParsedSchema) (int, error)

	// DeleteSubject soft-deletes every version of subject and returns the deleted versions.
	DeleteSubject(ctx context.Context, subject string) ([]int, error)

	// ParseSchema parses raw content as the given schema type.
	ParseSchema(schemaType, raw string) (ParsedSchema, error)
}

// Metadata contains metadata about a registered schema
type Metadata struct {
	ID      int    `json:"id"`
	Version int    `json:"version"`
	Schema  string `json:"schema"`
	Subject string `json:"subject"`
	Type    string `json:"schemaType,omitempty"`
}
