// Package schema_registry provides the adapter between schemasync and a
// Confluent compatible schema registry.
//
// # Overview
//
// The Registry interface covers the calls the reconciler needs: reading and
// updating compatibility levels, reading the latest version and the version
// list of a subject, looking up the version of a given schema, testing
// compatibility, registering and deleting.
//
// Implementations:
//   - Client talks to Confluent Schema Registry, or to Apicurio through its
//     ccompat API, over HTTP with basic or bearer authentication.
//   - MemoryRegistry keeps everything in process and mirrors the registry's
//     not-found behaviour. It is used by tests and by the "memory" type.
//   - MockRegistry is the gomock mock of Registry.
//
// NewRegistry picks one from Config.Type:
//
//	| Type      | Backend        | Base path                  |
//	|-----------|----------------|----------------------------|
//	| confluent | Client         | Config.URL                 |
//	| apicurio  | Client         | Config.URL/apis/ccompat/v7 |
//	| memory    | MemoryRegistry | none                       |
//
// # Tagged Results
//
// Lookups whose absence is meaningful return a Result instead of a pair of
// value and error, so callers can tell "not there" from "broken":
//
//	res := registry.GetAllVersions(ctx, "orders-value")
//	switch res.Status() {
//	case schema_registry.StatusFound:
//	    versions := res.Value()
//	case schema_registry.StatusNotFound:
//	    // subject was never registered
//	default:
//	    return res.Err()
//	}
//
// OrElse collapses not-found into a fallback and keeps failures:
//
//	level, err := registry.GetCompatibility(ctx, subject).OrElse("")
//
// The zero Result reads as failed, never as found.
//
// # Error Codes
//
// Not-found is derived from the Confluent error codes:
//
//	| Code  | Meaning                              | Result    |
//	|-------|--------------------------------------|-----------|
//	| 40401 | subject not found                    | NotFound  |
//	| 40403 | schema not found                     | NotFound  |
//	| 40408 | no subject-level compatibility       | NotFound  |
//	| 40402 | version not found                    | Failed    |
//	| other | any other non-2xx response           | Failed    |
//
// Failures carry a *RegistryError with the HTTP status, the registry error
// code and its message. IsNotFound reports whether an error is one of the
// not-found codes, which DeleteSubject callers use since deletion returns
// a plain error.
//
// # Schemas
//
// Raw content is parsed into a ParsedSchema before it is sent:
//
//	parsed, err := schema_registry.ParseSchema("AVRO", raw)
//	if err != nil {
//	    return err // errors.Is(err, schema_registry.ErrInvalidSchema)
//	}
//	id, err := registry.Register(ctx, "orders-value", parsed)
//
// AVRO is parsed with hamba/avro, PROTOBUF is compiled with protocompile and
// JSON is compiled with santhosh-tekuri/jsonschema. An empty type means AVRO.
//
// The registry always receives the schema text as written, trimmed of
// surrounding whitespace. Avro defaults, docs and aliases are part of that
// text and must reach the registry: compatibility checks such as BACKWARD
// depend on field defaults. Canonical is only used to compare two schemas
// locally (the MemoryRegistry version lookup); for Avro and JSON it is the
// compact JSON with sorted keys, for protobuf the trimmed source.
// AvroSchema.ParsingCanonicalForm exposes the Avro Parsing Canonical Form for
// fingerprinting, which drops defaults and docs.
//
// # In-Memory Registry
//
// MemoryRegistry starts with a global level of BACKWARD and hands out ids
// per distinct schema, so the same content under two subjects shares an id.
// Registering content that already exists under a subject returns the
// existing id without a new version. It returns the submitted text from
// GetLatestSchemaMetadata. Compatibility is only checked between schema
// types unless a CompatibilityFunc is installed:
//
//	registry := schema_registry.NewMemoryRegistry().
//	    WithCompatibilityFunc(func(level string, latest, candidate schema_registry.ParsedSchema) bool {
//	        return level != "FULL"
//	    })
//
// Calls and Mutations count the requests made, which tests use to assert
// that a dry run never mutates the registry.
//
// # Observability
//
// Client reports every HTTP call to an optional observability.Observer with
// component "schema_registry", the operation name, the subject as resource
// and the duration.
//
// # Using with FX
//
//	app := fx.New(
//	    logger.FXModule,
//	    schema_registry.FXModule,
//	    fx.Supply(schema_registry.Config{
//	        URL:     os.Getenv("SCHEMA_REGISTRY_URL"),
//	        Timeout: 30 * time.Second,
//	    }),
//	    fx.Invoke(func(registry schema_registry.Registry) {
//	        // use registry
//	    }),
//	)
//
// Configuration:
//
//	| Field    | Env                      | Default   |
//	|----------|--------------------------|-----------|
//	| Type     | SCHEMA_REGISTRY_TYPE     | confluent |
//	| URL      | SCHEMA_REGISTRY_URL      |           |
//	| Username | SCHEMA_REGISTRY_USERNAME |           |
//	| Password | SCHEMA_REGISTRY_PASSWORD |           |
//	| Token    | SCHEMA_REGISTRY_TOKEN    |           |
//	| Timeout  | SCHEMA_REGISTRY_TIMEOUT  | 10s       |
package schema_registry
