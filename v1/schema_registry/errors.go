package schema_registry

import (
	"errors"
	"fmt"
)

// Confluent error codes that denote a legitimate absence rather than a failure.
const (
	ErrorCodeSubjectNotFound              = 40401
	ErrorCodeVersionNotFound              = 40402
	ErrorCodeSchemaNotFound               = 40403
	ErrorCodeSubjectCompatibilityNotFound = 40408
)

var (
	// ErrNotFound is matched by every not-found RegistryError.
	ErrNotFound = errors.New("schema registry: not found")

	// ErrInvalidSchema is returned when raw content cannot be parsed as the declared type.
	ErrInvalidSchema = errors.New("schema registry: invalid schema")

	// ErrUnknownSchemaType is returned for schema types other than AVRO, JSON and PROTOBUF.
	ErrUnknownSchemaType = errors.New("schema registry: unknown schema type")
)

// RegistryError is the error body returned by a Confluent compatible registry.
type RegistryError struct {
	StatusCode int    `json:"-"`
	ErrorCode  int    `json:"error_code"`
	Message    string `json:"message"`
}

func (e *RegistryError) Error() string {
	if e.ErrorCode == 0 {
		return fmt.Sprintf("schema registry returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("schema registry returned status %d (error code %d): %s", e.StatusCode, e.ErrorCode, e.Message)
}

// NotFound reports whether the error denotes an unknown subject, schema or
// subject-level compatibility setting. An unknown version (40402) is not
// included: it only occurs for explicit version lookups, which the
// reconciler never issues.
func (e *RegistryError) NotFound() bool {
	switch e.ErrorCode {
	case ErrorCodeSubjectNotFound, ErrorCodeSchemaNotFound, ErrorCodeSubjectCompatibilityNotFound:
		return true
	}
	return false
}

// Is lets errors.Is(err, ErrNotFound) match not-found registry errors.
func (e *RegistryError) Is(target error) bool {
	return target == ErrNotFound && e.NotFound()
}

// IsNotFound reports whether err is a not-found registry condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func newRegistryError(status, code int, format string, args ...interface{}) *RegistryError {
	return &RegistryError{StatusCode: status, ErrorCode: code, Message: fmt.Sprintf(format, args...)}
}
