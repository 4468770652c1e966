package schema_registry

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// DefaultCompatibility is the global level of a fresh MemoryRegistry.
const DefaultCompatibility = "BACKWARD"

// CompatibilityFunc decides whether candidate may follow latest under level.
type CompatibilityFunc func(level string, latest, candidate ParsedSchema) bool

// MemoryRegistry is an in-process Registry with the same not-found semantics
// as a Confluent registry. It backs tests and the "memory" registry type.
//
// Schemas are compared by canonical form and returned as submitted.
// Compatibility only rejects a change of schema type unless a
// CompatibilityFunc is installed.
type MemoryRegistry struct {
	mu            sync.Mutex
	global        string
	nextID        int
	ids           map[string]int
	subjects      map[string]*memorySubject
	compatibility CompatibilityFunc
	calls         map[string]int
}

type memorySubject struct {
	compatibility string
	versions      []memoryVersion
	nextVersion   int
}

type memoryVersion struct {
	id     int
	number int
	schema ParsedSchema
}

// NewMemoryRegistry returns an empty registry with global level BACKWARD.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		global:   DefaultCompatibility,
		ids:      make(map[string]int),
		subjects: make(map[string]*memorySubject),
		calls:    make(map[string]int),
	}
}

// WithCompatibilityFunc installs the check used by TestCompatibility and Register.
func (m *MemoryRegistry) WithCompatibilityFunc(fn CompatibilityFunc) *MemoryRegistry {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.compatibility = fn
	return m
}

// Calls returns how often each Registry method was invoked.
func (m *MemoryRegistry) Calls() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.calls))
	for k, v := range m.calls {
		out[k] = v
	}
	return out
}

// Mutations returns the number of calls that changed registry state.
func (m *MemoryRegistry) Mutations() int {
	calls := m.Calls()
	return calls["UpdateCompatibility"] + calls["Register"] + calls["DeleteSubject"]
}

func (m *MemoryRegistry) record(method string) {
	m.calls[method]++
}

func (m *MemoryRegistry) GetCompatibility(_ context.Context, subject string) Result[string] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetCompatibility")

	if subject == "" {
		return Found(m.global)
	}
	s, ok := m.subjects[subject]
	if !ok || s.compatibility == "" {
		return NotFound[string](newRegistryError(http.StatusNotFound, ErrorCodeSubjectCompatibilityNotFound,
			"Subject '%s' does not have subject-level compatibility configured", subject))
	}
	return Found(s.compatibility)
}

func (m *MemoryRegistry) UpdateCompatibility(_ context.Context, subject, level string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("UpdateCompatibility")

	level = strings.ToUpper(level)
	if subject == "" {
		m.global = level
		return level, nil
	}
	m.subject(subject).compatibility = level
	return level, nil
}

func (m *MemoryRegistry) GetLatestSchemaMetadata(_ context.Context, subject string) Result[*Metadata] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetLatestSchemaMetadata")

	s, ok := m.subjects[subject]
	if !ok || len(s.versions) == 0 {
		return NotFound[*Metadata](subjectNotFound(subject))
	}
	latest := s.versions[len(s.versions)-1]
	return Found(&Metadata{
		ID:      latest.id,
		Version: latest.number,
		Schema:  latest.schema.Raw(),
		Subject: subject,
		Type:    latest.schema.SchemaType(),
	})
}

func (m *MemoryRegistry) GetAllSubjects(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetAllSubjects")

	subjects := make([]string, 0, len(m.subjects))
	for name, s := range m.subjects {
		if len(s.versions) > 0 {
			subjects = append(subjects, name)
		}
	}
	sort.Strings(subjects)
	return subjects, nil
}

func (m *MemoryRegistry) GetAllVersions(_ context.Context, subject string) Result[[]int] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetAllVersions")

	s, ok := m.subjects[subject]
	if !ok || len(s.versions) == 0 {
		return NotFound[[]int](subjectNotFound(subject))
	}
	versions := make([]int, 0, len(s.versions))
	for _, v := range s.versions {
		versions = append(versions, v.number)
	}
	return Found(versions)
}

func (m *MemoryRegistry) GetVersion(_ context.Context, subject string, schema ParsedSchema) Result[int] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetVersion")

	s, ok := m.subjects[subject]
	if !ok || len(s.versions) == 0 {
		return NotFound[int](subjectNotFound(subject))
	}
	if v, ok := s.find(schema); ok {
		return Found(v.number)
	}
	return NotFound[int](newRegistryError(http.StatusNotFound, ErrorCodeSchemaNotFound, "Schema not found"))
}

func (m *MemoryRegistry) TestCompatibility(_ context.Context, subject string, schema ParsedSchema) Result[bool] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("TestCompatibility")

	s, ok := m.subjects[subject]
	if !ok || len(s.versions) == 0 {
		return NotFound[bool](subjectNotFound(subject))
	}
	return Found(m.compatible(s, schema))
}

func (m *MemoryRegistry) Register(_ context.Context, subject string, schema ParsedSchema) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Register")

	s := m.subject(subject)
	if v, ok := s.find(schema); ok {
		return v.id, nil
	}
	if len(s.versions) > 0 && !m.compatible(s, schema) {
		return 0, newRegistryError(http.StatusConflict, 409,
			"Schema being registered is incompatible with an earlier schema for subject %q", subject)
	}

	key := schema.SchemaType() + "\x00" + schema.Canonical()
	id, ok := m.ids[key]
	if !ok {
		m.nextID++
		id = m.nextID
		m.ids[key] = id
	}
	s.nextVersion++
	s.versions = append(s.versions, memoryVersion{id: id, number: s.nextVersion, schema: schema})
	return id, nil
}

func (m *MemoryRegistry) DeleteSubject(_ context.Context, subject string) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteSubject")

	s, ok := m.subjects[subject]
	if !ok || len(s.versions) == 0 {
		return nil, subjectNotFound(subject)
	}
	versions := make([]int, 0, len(s.versions))
	for _, v := range s.versions {
		versions = append(versions, v.number)
	}
	delete(m.subjects, subject)
	return versions, nil
}

func (m *MemoryRegistry) ParseSchema(schemaType, raw string) (ParsedSchema, error) {
	return ParseSchema(schemaType, raw)
}

// subject returns the named subject, creating it when missing. Callers hold mu.
func (m *MemoryRegistry) subject(name string) *memorySubject {
	s, ok := m.subjects[name]
	if !ok {
		s = &memorySubject{}
		m.subjects[name] = s
	}
	return s
}

// compatible applies the effective level of s to candidate. Callers hold mu.
func (m *MemoryRegistry) compatible(s *memorySubject, candidate ParsedSchema) bool {
	level := s.compatibility
	if level == "" {
		level = m.global
	}
	if level == "NONE" {
		return true
	}
	latest := s.versions[len(s.versions)-1].schema
	if latest.SchemaType() != candidate.SchemaType() {
		return false
	}
	if m.compatibility != nil {
		return m.compatibility(level, latest, candidate)
	}
	return true
}

func (s *memorySubject) find(schema ParsedSchema) (memoryVersion, bool) {
	for _, v := range s.versions {
		if v.schema.SchemaType() == schema.SchemaType() && v.schema.Canonical() == schema.Canonical() {
			return v, true
		}
	}
	return memoryVersion{}, false
}

func subjectNotFound(subject string) *RegistryError {
	return newRegistryError(http.StatusNotFound, ErrorCodeSubjectNotFound, "Subject '%s' not found.", subject)
}
