package minio

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/Aleph-Alpha/schemasync/v1/reconciler"
	"github.com/Aleph-Alpha/schemasync/v1/topology"
)

// SchemaStore keeps schema files as objects. The key of a schema is
//
//	<prefix>/<directory>/<subject>.<ext>
//
// so a bucket can hold the same layout as a local schema directory.
type SchemaStore struct {
	client Client
	prefix string
}

var _ reconciler.SchemaStore = (*SchemaStore)(nil)

func NewSchemaStore(client Client, prefix string) *SchemaStore {
	return &SchemaStore{client: client, prefix: strings.Trim(prefix, "/")}
}

func (s *SchemaStore) Path(schema *topology.Schema, directory string) (string, error) {
	local, err := topology.SchemaPath(schema, directory)
	if err != nil {
		return "", err
	}
	key := path.Clean(filepath.ToSlash(local))
	if s.prefix != "" {
		key = path.Join(s.prefix, key)
	}
	return strings.TrimPrefix(key, "/"), nil
}

func (s *SchemaStore) Read(ctx context.Context, key string) (string, error) {
	content, err := s.client.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to read schema object %s: %w", key, err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", fmt.Errorf("%w: %s", reconciler.ErrEmptySchema, key)
	}
	return string(content), nil
}

func (s *SchemaStore) Write(ctx context.Context, key, content string) error {
	if _, err := s.client.Put(ctx, key, strings.NewReader(content), int64(len(content))); err != nil {
		return fmt.Errorf("failed to write schema object %s: %w", key, err)
	}
	return nil
}
