package topology

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Manifest is the desired state handed to the reconciler by the command line.
//
//	schemas:
//	  - subject: orders-value
//	    type: AVRO
//	    compatibilityMode: BACKWARD
//	removedSubjects:
//	  - legacy-orders-value
type Manifest struct {
	Schemas         []*Schema `yaml:"schemas" validate:"dive,required"`
	RemovedSubjects []string  `yaml:"removedSubjects" validate:"dive,required"`
}

// LoadManifest reads and validates a YAML manifest from fs.
func LoadManifest(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates a YAML manifest. Unknown keys are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifest); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// Validate checks field constraints and rejects duplicate subjects.
func (m *Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}
	seen := make(map[string]struct{}, len(m.Schemas))
	for _, schema := range m.Schemas {
		if _, ok := seen[schema.Subject]; ok {
			return fmt.Errorf("invalid manifest: subject %q declared twice", schema.Subject)
		}
		seen[schema.Subject] = struct{}{}
	}
	return nil
}

// Subjects returns the declared subjects in manifest order.
func (m *Manifest) Subjects() []string {
	subjects := make([]string, 0, len(m.Schemas))
	for _, schema := range m.Schemas {
		subjects = append(subjects, schema.Subject)
	}
	return subjects
}
