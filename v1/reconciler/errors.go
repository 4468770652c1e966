package reconciler

import (
	"errors"
	"fmt"

	"github.com/Aleph-Alpha/schemasync/v1/topology"
)

var (
	// ErrInvalidSchemaPath is returned when no local file path can be derived for a schema.
	ErrInvalidSchemaPath = topology.ErrInvalidSchemaPath

	// ErrEmptySchema is returned when a local schema file is empty or blank.
	ErrEmptySchema = errors.New("schema file must not be empty")

	// ErrUnparsableSchema is returned when local content cannot be parsed as its declared type.
	ErrUnparsableSchema = errors.New("schema could not be parsed")

	// ErrIncompatibleSchema is returned when local content fails the registry compatibility test.
	ErrIncompatibleSchema = errors.New("schema is incompatible to existing schemas")

	// ErrMissingMetadata is returned when the registry answers without schema metadata.
	ErrMissingMetadata = errors.New("no schema metadata available")

	// ErrMissingSchemaType is returned when neither the descriptor nor the registry names a type.
	ErrMissingSchemaType = errors.New("no schema type specified")

	// ErrMissingContent is returned when the registry metadata carries no schema text.
	ErrMissingContent = errors.New("no schema content available")

	// ErrNilSchema is returned when a nil descriptor is passed where one is required.
	ErrNilSchema = errors.New("no schema given")
)

// SchemaError is a configuration error attributed to a single subject.
type SchemaError struct {
	Subject string
	Op      string
	Err     error
}

func newSchemaError(subject, op string, err error) *SchemaError {
	return &SchemaError{Subject: subject, Op: op, Err: err}
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s subject '%s': %v", e.Op, e.Subject, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
