package reconciler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aleph-Alpha/schemasync/v1/topology"
	"github.com/spf13/afero"
)

// SchemaStore is where local schema files live. Path derives the location
// of a schema deterministically from its subject, type and a root directory.
type SchemaStore interface {
	Path(schema *topology.Schema, directory string) (string, error)

	// Read returns the content at path. Blank content fails with ErrEmptySchema.
	Read(ctx context.Context, path string) (string, error)

	// Write replaces the content at path, creating it when missing.
	Write(ctx context.Context, path, content string) error
}

// FileStore keeps schema files on an afero filesystem.
type FileStore struct {
	fs afero.Fs
}

// NewFileStore returns a store on fs. A nil fs selects the OS filesystem.
func NewFileStore(fs afero.Fs) *FileStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileStore{fs: fs}
}

func (s *FileStore) Path(schema *topology.Schema, directory string) (string, error) {
	return topology.SchemaPath(schema, directory)
}

func (s *FileStore) Read(_ context.Context, path string) (string, error) {
	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptySchema, path)
	}
	return string(content), nil
}

func (s *FileStore) Write(_ context.Context, path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open schema file %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}
	return f.Close()
}
