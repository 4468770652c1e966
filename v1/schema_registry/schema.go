package schema_registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bufbuild/protocompile"
	"github.com/hamba/avro/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Schema types understood by the registry.
const (
	TypeAvro     = "AVRO"
	TypeJSON     = "JSON"
	TypeProtobuf = "PROTOBUF"
)

// ParsedSchema is raw schema content that was successfully parsed as its
// declared type. Raw is the content as read and is what the registry
// receives. Canonical is a whitespace- and key-order-insensitive form used
// only to compare two schemas locally; it keeps every attribute of the
// source, including Avro defaults and docs.
type ParsedSchema interface {
	SchemaType() string
	Raw() string
	Canonical() string
}

// ParseSchema parses raw content as schemaType. An empty schemaType is
// treated as AVRO, matching the registry's own default.
func ParseSchema(schemaType, raw string) (ParsedSchema, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty content", ErrInvalidSchema)
	}

	switch normalizeType(schemaType) {
	case TypeAvro:
		return parseAvro(raw)
	case TypeJSON:
		return parseJSON(raw)
	case TypeProtobuf:
		return parseProtobuf(raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchemaType, schemaType)
	}
}

func normalizeType(schemaType string) string {
	t := strings.ToUpper(strings.TrimSpace(schemaType))
	if t == "" {
		return TypeAvro
	}
	return t
}

// AvroSchema is an Avro schema parsed with hamba/avro.
type AvroSchema struct {
	raw       string
	canonical string
	schema    avro.Schema
}

func parseAvro(raw string) (*AvroSchema, error) {
	// A fresh cache per parse keeps named types from leaking between subjects.
	s, err := avro.ParseWithCache(raw, "", &avro.SchemaCache{})
	if err != nil {
		return nil, fmt.Errorf("%w: avro: %v", ErrInvalidSchema, err)
	}

	canonical, err := canonicalJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: avro: %v", ErrInvalidSchema, err)
	}
	return &AvroSchema{raw: raw, canonical: canonical, schema: s}, nil
}

func (s *AvroSchema) SchemaType() string { return TypeAvro }
func (s *AvroSchema) Raw() string        { return s.raw }

// Canonical returns the compact, key-sorted JSON of the source. Defaults,
// docs and aliases survive, so two schemas differing only in a field default
// are distinct.
func (s *AvroSchema) Canonical() string { return s.canonical }

// ParsingCanonicalForm returns the Avro Parsing Canonical Form, which drops
// defaults, docs and aliases. Never send it to a registry.
func (s *AvroSchema) ParsingCanonicalForm() string { return s.schema.String() }

// Schema exposes the parsed Avro schema.
func (s *AvroSchema) Schema() avro.Schema { return s.schema }

// JSONSchema is a JSON Schema document compiled with santhosh-tekuri/jsonschema.
type JSONSchema struct {
	raw       string
	canonical string
	compiled  *jsonschema.Schema
}

const jsonSchemaResource = "schema.json"

func parseJSON(raw string) (*JSONSchema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(jsonSchemaResource, strings.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrInvalidSchema, err)
	}
	compiled, err := compiler.Compile(jsonSchemaResource)
	if err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrInvalidSchema, err)
	}

	canonical, err := canonicalJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrInvalidSchema, err)
	}
	return &JSONSchema{raw: raw, canonical: canonical, compiled: compiled}, nil
}

// canonicalJSON re-encodes the document with sorted object keys and no
// insignificant whitespace. Array order and numbers are kept verbatim.
func canonicalJSON(raw string) (string, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (s *JSONSchema) SchemaType() string { return TypeJSON }
func (s *JSONSchema) Raw() string        { return s.raw }
func (s *JSONSchema) Canonical() string  { return s.canonical }

// Validate checks a decoded JSON document against the schema.
func (s *JSONSchema) Validate(doc interface{}) error {
	return s.compiled.Validate(doc)
}

// ProtobufSchema is a .proto file compiled with protocompile.
type ProtobufSchema struct {
	raw        string
	descriptor protoreflect.FileDescriptor
}

const protobufFileName = "schema.proto"

func parseProtobuf(raw string) (*ProtobufSchema, error) {
	resolver := &singleFileResolver{fileName: protobufFileName, content: raw}
	compiler := protocompile.Compiler{
		Resolver:       protocompile.WithStandardImports(resolver),
		SourceInfoMode: protocompile.SourceInfoNone,
	}

	files, err := compiler.Compile(context.Background(), protobufFileName)
	if err != nil {
		return nil, fmt.Errorf("%w: protobuf: %v", ErrInvalidSchema, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: protobuf: no files compiled", ErrInvalidSchema)
	}
	return &ProtobufSchema{raw: raw, descriptor: files[0]}, nil
}

func (s *ProtobufSchema) SchemaType() string { return TypeProtobuf }
func (s *ProtobufSchema) Raw() string        { return s.raw }

// Canonical returns the trimmed source. The registry normalizes protobuf
// schemas itself, so the text is sent as written.
func (s *ProtobufSchema) Canonical() string { return strings.TrimSpace(s.raw) }

// Descriptor exposes the compiled file descriptor.
func (s *ProtobufSchema) Descriptor() protoreflect.FileDescriptor { return s.descriptor }

// MessageNames returns the fully qualified names of the top-level messages.
func (s *ProtobufSchema) MessageNames() []string {
	messages := s.descriptor.Messages()
	names := make([]string, 0, messages.Len())
	for i := 0; i < messages.Len(); i++ {
		names = append(names, string(messages.Get(i).FullName()))
	}
	return names
}

type singleFileResolver struct {
	fileName string
	content  string
}

func (r *singleFileResolver) FindFileByPath(path string) (protocompile.SearchResult, error) {
	if path == r.fileName {
		return protocompile.SearchResult{
			Source: strings.NewReader(r.content),
		}, nil
	}
	return protocompile.SearchResult{}, fmt.Errorf("file not found: %s", path)
}
