package topology

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// SchemaType is the serialization format of a schema as named by the registry.
type SchemaType string

const (
	SchemaTypeAvro     SchemaType = "AVRO"
	SchemaTypeJSON     SchemaType = "JSON"
	SchemaTypeProtobuf SchemaType = "PROTOBUF"
)

// CompatibilityMode is a registry-enforced evolution rule for a subject.
type CompatibilityMode string

const (
	CompatibilityBackward           CompatibilityMode = "BACKWARD"
	CompatibilityBackwardTransitive CompatibilityMode = "BACKWARD_TRANSITIVE"
	CompatibilityForward            CompatibilityMode = "FORWARD"
	CompatibilityForwardTransitive  CompatibilityMode = "FORWARD_TRANSITIVE"
	CompatibilityFull               CompatibilityMode = "FULL"
	CompatibilityFullTransitive     CompatibilityMode = "FULL_TRANSITIVE"
	CompatibilityNone               CompatibilityMode = "NONE"
)

var schemaTypes = []SchemaType{SchemaTypeAvro, SchemaTypeJSON, SchemaTypeProtobuf}

var compatibilityModes = []CompatibilityMode{
	CompatibilityBackward,
	CompatibilityBackwardTransitive,
	CompatibilityForward,
	CompatibilityForwardTransitive,
	CompatibilityFull,
	CompatibilityFullTransitive,
	CompatibilityNone,
}

// ParseSchemaType maps a registry or manifest value onto a SchemaType.
// Matching is case-insensitive.
func ParseSchemaType(value string) (SchemaType, error) {
	normalized := SchemaType(strings.ToUpper(strings.TrimSpace(value)))
	for _, t := range schemaTypes {
		if t == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown schema type %q", value)
}

// ParseCompatibilityMode maps a registry or manifest value onto a CompatibilityMode.
// Matching is case-insensitive.
func ParseCompatibilityMode(value string) (CompatibilityMode, error) {
	normalized := CompatibilityMode(strings.ToUpper(strings.TrimSpace(value)))
	for _, m := range compatibilityModes {
		if m == normalized {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown compatibility mode %q", value)
}

// Valid reports whether t is one of the known schema types.
func (t SchemaType) Valid() bool {
	return t.Extension() != ""
}

// Extension is the file extension used for local schema files of this type.
func (t SchemaType) Extension() string {
	switch t {
	case SchemaTypeAvro:
		return "avsc"
	case SchemaTypeJSON:
		return "json"
	case SchemaTypeProtobuf:
		return "proto"
	default:
		return ""
	}
}

func (t SchemaType) String() string { return string(t) }

// UnmarshalYAML accepts any casing of a known schema type.
func (t *SchemaType) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseSchemaType(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = parsed
	return nil
}

func (m CompatibilityMode) String() string { return string(m) }

// UnmarshalYAML accepts any casing of a known compatibility mode.
func (m *CompatibilityMode) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseCompatibilityMode(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*m = parsed
	return nil
}

// Schema describes one desired or observed schema.
//
// Subject is the identity. Type must be known before a registration or a download can
// complete; an empty CompatibilityMode means the registry default applies.
type Schema struct {
	Subject           string            `yaml:"subject" json:"subject" validate:"required"`
	Type              SchemaType        `yaml:"type" json:"type,omitempty" validate:"omitempty,oneof=AVRO JSON PROTOBUF"`
	CompatibilityMode CompatibilityMode `yaml:"compatibilityMode" json:"compatibilityMode,omitempty" validate:"omitempty,oneof=BACKWARD BACKWARD_TRANSITIVE FORWARD FORWARD_TRANSITIVE FULL FULL_TRANSITIVE NONE"`
}

// NewSchema returns a descriptor for subject with the given type and no explicit mode.
func NewSchema(subject string, schemaType SchemaType) *Schema {
	return &Schema{Subject: subject, Type: schemaType}
}

// Validate checks the struct constraints of s.
func (s *Schema) Validate() error {
	if s == nil {
		return fmt.Errorf("schema is nil")
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid schema %q: %w", s.Subject, err)
	}
	return nil
}

// CompatibilityOrDefault renders the mode for humans, "default" when none is set.
func (s *Schema) CompatibilityOrDefault() string {
	if s.CompatibilityMode == "" {
		return "default"
	}
	return string(s.CompatibilityMode)
}

func (s *Schema) String() string {
	return fmt.Sprintf("Schema{subject=%q, type=%q, compatibilityMode=%q}", s.Subject, s.Type, s.CompatibilityMode)
}

var validate = validator.New(validator.WithRequiredStructEnabled())
