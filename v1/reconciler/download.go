package reconciler

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aleph-Alpha/schemasync/v1/schema_registry"
	"github.com/Aleph-Alpha/schemasync/v1/topology"
)

// DownloadSchema exports the latest registered version of schema's subject
// to directory. A subject unknown to the registry yields OutcomeNotFound.
// On success the descriptor's Type and CompatibilityMode are set from the
// registry and the file is created or truncated (logged only in dry-run).
// Re-running against an unchanged registry writes byte-identical files.
func (e *Engine) DownloadSchema(ctx context.Context, schema *topology.Schema, directory string) (Outcome, error) {
	if schema == nil {
		return Outcome{}, ErrNilSchema
	}
	subject := schema.Subject

	res := e.registry.GetLatestSchemaMetadata(ctx, subject)
	switch res.Status() {
	case schema_registry.StatusFound:
	case schema_registry.StatusNotFound:
		e.logger.Info("Subject not found in schema registry, skipping", nil, map[string]interface{}{"subject": subject})
		return Outcome{Subject: subject, Schema: schema, Kind: OutcomeNotFound, DryRun: e.dryRun}, nil
	default:
		return Outcome{}, fmt.Errorf("failed to get latest schema of subject '%s': %w", subject, res.Err())
	}

	metadata := res.Value()
	if metadata == nil {
		return Outcome{}, newSchemaError(subject, "download", ErrMissingMetadata)
	}
	if metadata.Type == "" {
		return Outcome{}, newSchemaError(subject, "download", ErrMissingSchemaType)
	}
	schemaType, err := topology.ParseSchemaType(metadata.Type)
	if err != nil {
		return Outcome{}, newSchemaError(subject, "download", err)
	}

	level, err := e.ResolveCompatibility(ctx, subject)
	if err != nil {
		return Outcome{}, err
	}
	var mode topology.CompatibilityMode
	if level != "" {
		if mode, err = topology.ParseCompatibilityMode(level); err != nil {
			return Outcome{}, newSchemaError(subject, "download", err)
		}
	}

	if strings.TrimSpace(metadata.Schema) == "" {
		return Outcome{}, newSchemaError(subject, "download", ErrMissingContent)
	}

	resolved := *schema
	resolved.Type = schemaType
	path, err := e.store.Path(&resolved, directory)
	if err != nil {
		return Outcome{}, newSchemaError(subject, "download", err)
	}

	schema.Type = schemaType
	if mode != "" {
		schema.CompatibilityMode = mode
	}

	outcome := Outcome{
		Subject:       subject,
		Schema:        schema,
		Kind:          OutcomeDownloaded,
		DryRun:        e.dryRun,
		SchemaID:      metadata.ID,
		Version:       metadata.Version,
		Compatibility: level,
		Path:          path,
	}
	fields := map[string]interface{}{
		"subject": subject,
		"type":    string(schemaType),
		"version": metadata.Version,
		"path":    path,
	}
	if e.dryRun {
		e.logger.Info("Schema to be downloaded", nil, fields)
		return outcome, nil
	}

	if err := e.store.Write(ctx, path, metadata.Schema); err != nil {
		return Outcome{}, err
	}
	e.logger.Info("Schema downloaded", nil, fields)
	return outcome, nil
}

// DownloadSchemas downloads every schema in order. The first error is
// recorded as a failed outcome, stops the batch and is returned along with
// the partial report.
func (e *Engine) DownloadSchemas(ctx context.Context, schemas []*topology.Schema, directory string) (*Report, error) {
	ctx, span, report := e.startBatch(ctx, OperationDownload, len(schemas))

	for _, schema := range schemas {
		if err := e.downloadOne(ctx, report, schema, directory); err != nil {
			return e.finishBatch(ctx, span, report, err)
		}
	}
	return e.finishBatch(ctx, span, report, nil)
}

// DownloadAll downloads the latest version of every registry subject.
func (e *Engine) DownloadAll(ctx context.Context, directory string) (*Report, error) {
	subjects, err := e.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	schemas := make([]*topology.Schema, 0, len(subjects))
	for _, subject := range subjects {
		schemas = append(schemas, &topology.Schema{Subject: subject})
	}
	return e.DownloadSchemas(ctx, schemas, directory)
}

func (e *Engine) downloadOne(ctx context.Context, report *Report, schema *topology.Schema, directory string) (err error) {
	subject := ""
	if schema != nil {
		subject = schema.Subject
	}
	ctx, end := e.schemaSpan(ctx, "reconciler.download_schema", subject)
	defer func() { end(err) }()

	start := e.now()
	outcome, err := e.DownloadSchema(ctx, schema, directory)
	if err != nil {
		report.add(e.failed(subject, schema, start, err))
		return err
	}
	outcome.Duration = e.since(start)
	report.add(outcome)
	return nil
}
