package topology

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidSchemaPath is returned when no local path can be derived for a schema.
var ErrInvalidSchemaPath = errors.New("invalid schema file path")

// SchemaPath returns the local file of schema under directory:
//
//	<directory>/<subject>.<avsc|json|proto>
//
// The mapping is deterministic. Subjects that would escape directory are rejected.
func SchemaPath(schema *Schema, directory string) (string, error) {
	if schema == nil {
		return "", fmt.Errorf("%w: schema is nil", ErrInvalidSchemaPath)
	}
	if strings.TrimSpace(directory) == "" {
		return "", fmt.Errorf("%w: directory is empty for subject %q", ErrInvalidSchemaPath, schema.Subject)
	}
	name, err := SchemaFileName(schema)
	if err != nil {
		return "", err
	}
	return filepath.Join(directory, name), nil
}

// SchemaFileName returns the base file name of schema, without directory.
func SchemaFileName(schema *Schema) (string, error) {
	subject := strings.TrimSpace(schema.Subject)
	if subject == "" {
		return "", fmt.Errorf("%w: subject is empty", ErrInvalidSchemaPath)
	}
	if strings.ContainsAny(subject, `/\`) || strings.Contains(subject, "..") {
		return "", fmt.Errorf("%w: subject %q is not a valid file name", ErrInvalidSchemaPath, subject)
	}
	ext := schema.Type.Extension()
	if ext == "" {
		return "", fmt.Errorf("%w: unknown schema type %q for subject %q", ErrInvalidSchemaPath, schema.Type, subject)
	}
	return subject + "." + ext, nil
}
