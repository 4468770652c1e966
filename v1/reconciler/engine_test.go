package reconciler

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Aleph-Alpha/schemasync/v1/observability"
	sr "github.com/Aleph-Alpha/schemasync/v1/schema_registry"
	"github.com/Aleph-Alpha/schemasync/v1/topology"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const schemaDir = "schemas"

const ordersAvro = `{
  "type": "record",
  "name": "Order",
  "namespace": "com.acme",
  "fields": [{"name": "id", "type": "string"}]
}`

const ordersAvroV2 = `{
  "type": "record",
  "name": "Order",
  "namespace": "com.acme",
  "fields": [
    {"name": "id", "type": "string"},
    {"name": "note", "type": ["null", "string"], "default": null}
  ]
}`

var errBoom = errors.New("connection reset by peer")

func writeSchemaFile(t *testing.T, fs afero.Fs, schema *topology.Schema, content string) string {
	t.Helper()
	path, err := topology.SchemaPath(schema, schemaDir)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	return path
}

func newMockEngine(t *testing.T, dryRun bool) (*Engine, *sr.MockRegistry, afero.Fs) {
	t.Helper()
	ctrl := gomock.NewController(t)
	registry := sr.NewMockRegistry(ctrl)
	fs := afero.NewMemMapFs()
	engine, err := NewEngine(registry, NewFileStore(fs), Config{DryRun: dryRun})
	require.NoError(t, err)
	return engine, registry, fs
}

func expectParse(registry *sr.MockRegistry) {
	registry.EXPECT().ParseSchema(gomock.Any(), gomock.Any()).DoAndReturn(sr.ParseSchema).AnyTimes()
}

func TestNewEngineRequiresRegistry(t *testing.T) {
	_, err := NewEngine(nil, nil, Config{})
	assert.Error(t, err)
}

func TestResolveCompatibility(t *testing.T) {
	ctx := context.Background()

	t.Run("subject level", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().GetCompatibility(gomock.Any(), "orders-value").Return(sr.Found("FULL"))

		level, err := engine.ResolveCompatibility(ctx, "orders-value")
		require.NoError(t, err)
		assert.Equal(t, "FULL", level)
	})

	t.Run("falls back to global once", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		gomock.InOrder(
			registry.EXPECT().GetCompatibility(gomock.Any(), "orders-value").Return(sr.NotFound[string](nil)),
			registry.EXPECT().GetCompatibility(gomock.Any(), "").Return(sr.Found("BACKWARD")).Times(1),
		)

		level, err := engine.ResolveCompatibility(ctx, "orders-value")
		require.NoError(t, err)
		assert.Equal(t, "BACKWARD", level)
	})

	t.Run("global not found is an error", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().GetCompatibility(gomock.Any(), "orders-value").Return(sr.NotFound[string](nil))
		registry.EXPECT().GetCompatibility(gomock.Any(), "").Return(sr.NotFound[string](nil)).Times(1)

		_, err := engine.ResolveCompatibility(ctx, "orders-value")
		assert.ErrorIs(t, err, sr.ErrNotFound)
	})

	t.Run("failure propagates without fallback", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().GetCompatibility(gomock.Any(), "orders-value").Return(sr.Failed[string](errBoom))

		_, err := engine.ResolveCompatibility(ctx, "orders-value")
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestApplyCompatibility(t *testing.T) {
	ctx := context.Background()

	t.Run("no declared mode makes no registry call", func(t *testing.T) {
		engine, _, _ := newMockEngine(t, false)

		outcome, err := engine.ApplyCompatibility(ctx, topology.NewSchema("orders-value", topology.SchemaTypeAvro))
		require.NoError(t, err)
		assert.Equal(t, OutcomeCompatibilityUnchanged, outcome.Kind)
	})

	t.Run("already effective", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().GetCompatibility(gomock.Any(), "orders-value").Return(sr.NotFound[string](nil))
		registry.EXPECT().GetCompatibility(gomock.Any(), "").Return(sr.Found("BACKWARD"))

		schema := &topology.Schema{Subject: "orders-value", Type: topology.SchemaTypeAvro, CompatibilityMode: topology.CompatibilityBackward}
		outcome, err := engine.ApplyCompatibility(ctx, schema)
		require.NoError(t, err)
		assert.Equal(t, OutcomeCompatibilityUnchanged, outcome.Kind)
		assert.Equal(t, "BACKWARD", outcome.Compatibility)
	})

	t.Run("updates a different mode", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().GetCompatibility(gomock.Any(), "orders-value").Return(sr.Found("BACKWARD"))
		registry.EXPECT().UpdateCompatibility(gomock.Any(), "orders-value", "FULL").Return("FULL", nil)

		schema := &topology.Schema{Subject: "orders-value", Type: topology.SchemaTypeAvro, CompatibilityMode: topology.CompatibilityFull}
		outcome, err := engine.ApplyCompatibility(ctx, schema)
		require.NoError(t, err)
		assert.Equal(t, OutcomeCompatibilityUpdated, outcome.Kind)
		assert.Equal(t, "FULL", outcome.Compatibility)
		assert.Equal(t, "BACKWARD", outcome.PreviousCompatibility)
		assert.Same(t, schema, outcome.Schema)
	})

	t.Run("dry-run reports the change without calling the registry", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, true)
		registry.EXPECT().GetCompatibility(gomock.Any(), "orders-value").Return(sr.Found("BACKWARD"))

		schema := &topology.Schema{Subject: "orders-value", Type: topology.SchemaTypeAvro, CompatibilityMode: topology.CompatibilityFull}
		outcome, err := engine.ApplyCompatibility(ctx, schema)
		require.NoError(t, err)
		assert.Equal(t, OutcomeCompatibilityUpdated, outcome.Kind)
		assert.True(t, outcome.DryRun)
	})

	t.Run("nil schema", func(t *testing.T) {
		engine, _, _ := newMockEngine(t, false)
		_, err := engine.ApplyCompatibility(ctx, nil)
		assert.ErrorIs(t, err, ErrNilSchema)
	})
}

func TestResolveVersion(t *testing.T) {
	ctx := context.Background()
	parsed, err := sr.ParseSchema(sr.TypeAvro, ordersAvro)
	require.NoError(t, err)

	t.Run("unknown subject is version 0 without lookup", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().GetAllVersions(gomock.Any(), "orders-value").Return(sr.NotFound[[]int](nil))

		version, err := engine.ResolveVersion(ctx, "orders-value", parsed)
		require.NoError(t, err)
		assert.Zero(t, version)
	})

	t.Run("no versions is version 0", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().GetAllVersions(gomock.Any(), "orders-value").Return(sr.Found([]int{}))

		version, err := engine.ResolveVersion(ctx, "orders-value", parsed)
		require.NoError(t, err)
		assert.Zero(t, version)
	})

	t.Run("unknown schema is version 0", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().GetAllVersions(gomock.Any(), "orders-value").Return(sr.Found([]int{1, 2}))
		registry.EXPECT().GetVersion(gomock.Any(), "orders-value", parsed).Return(sr.NotFound[int](nil))

		version, err := engine.ResolveVersion(ctx, "orders-value", parsed)
		require.NoError(t, err)
		assert.Zero(t, version)
	})

	t.Run("matching version", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().GetAllVersions(gomock.Any(), "orders-value").Return(sr.Found([]int{1, 2}))
		registry.EXPECT().GetVersion(gomock.Any(), "orders-value", parsed).Return(sr.Found(2))

		version, err := engine.ResolveVersion(ctx, "orders-value", parsed)
		require.NoError(t, err)
		assert.Equal(t, 2, version)
	})

	t.Run("failure propagates", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().GetAllVersions(gomock.Any(), "orders-value").Return(sr.Failed[[]int](errBoom))

		_, err := engine.ResolveVersion(ctx, "orders-value", parsed)
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestTestCompatible(t *testing.T) {
	ctx := context.Background()
	parsed, err := sr.ParseSchema(sr.TypeAvro, ordersAvro)
	require.NoError(t, err)

	engine, registry, _ := newMockEngine(t, false)
	gomock.InOrder(
		registry.EXPECT().TestCompatibility(gomock.Any(), "new-value", parsed).Return(sr.NotFound[bool](nil)),
		registry.EXPECT().TestCompatibility(gomock.Any(), "orders-value", parsed).Return(sr.Found(false)),
		registry.EXPECT().TestCompatibility(gomock.Any(), "broken-value", parsed).Return(sr.Failed[bool](errBoom)),
	)

	compatible, err := engine.TestCompatible(ctx, "new-value", parsed)
	require.NoError(t, err)
	assert.True(t, compatible, "an unregistered subject is compatible")

	compatible, err = engine.TestCompatible(ctx, "orders-value", parsed)
	require.NoError(t, err)
	assert.False(t, compatible)

	_, err = engine.TestCompatible(ctx, "broken-value", parsed)
	assert.ErrorIs(t, err, errBoom)
}

// orders-value has no versions and a valid local Avro file without a declared mode.
func TestRegisterSchemasNewSubject(t *testing.T) {
	ctx := context.Background()
	engine, registry, fs := newMockEngine(t, false)
	schema := topology.NewSchema("orders-value", topology.SchemaTypeAvro)
	writeSchemaFile(t, fs, schema, ordersAvro)

	expectParse(registry)
	registry.EXPECT().TestCompatibility(gomock.Any(), "orders-value", gomock.Any()).Return(sr.NotFound[bool](nil))
	registry.EXPECT().GetAllVersions(gomock.Any(), "orders-value").Return(sr.NotFound[[]int](nil))
	registry.EXPECT().Register(gomock.Any(), "orders-value", gomock.Any()).Return(11, nil)

	report, err := engine.RegisterSchemas(ctx, []*topology.Schema{schema}, schemaDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"orders-value"}, report.Subjects())
	assert.Equal(t, []*topology.Schema{schema}, report.Schemas())
	assert.Equal(t, 1, report.Count(OutcomeRegistered))
	assert.Equal(t, 1, report.Count(OutcomeCompatibilityUnchanged))
	assert.Equal(t, 11, report.Outcomes[1].SchemaID)
}

// orders-value already has version 1 matching the local content.
func TestRegisterSchemasExistingVersion(t *testing.T) {
	ctx := context.Background()
	engine, registry, fs := newMockEngine(t, false)
	schema := topology.NewSchema("orders-value", topology.SchemaTypeAvro)
	writeSchemaFile(t, fs, schema, ordersAvro)

	expectParse(registry)
	registry.EXPECT().TestCompatibility(gomock.Any(), "orders-value", gomock.Any()).Return(sr.Found(true))
	registry.EXPECT().GetAllVersions(gomock.Any(), "orders-value").Return(sr.Found([]int{1}))
	registry.EXPECT().GetVersion(gomock.Any(), "orders-value", gomock.Any()).Return(sr.Found(1))
	registry.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	report, err := engine.RegisterSchemas(ctx, []*topology.Schema{schema}, schemaDir)
	require.NoError(t, err)
	assert.False(t, report.Contains("orders-value"))
	assert.Empty(t, report.Schemas())
	require.Equal(t, 1, report.Count(OutcomeSkippedUnchanged))
	assert.Equal(t, 1, report.Outcomes[1].Version)
}

func TestRegisterSchemaRejectsIncompatibleContent(t *testing.T) {
	ctx := context.Background()
	engine, registry, fs := newMockEngine(t, false)
	schema := topology.NewSchema("orders-value", topology.SchemaTypeAvro)
	writeSchemaFile(t, fs, schema, ordersAvroV2)

	expectParse(registry)
	registry.EXPECT().TestCompatibility(gomock.Any(), "orders-value", gomock.Any()).Return(sr.Found(false))
	registry.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := engine.RegisterSchema(ctx, schema, schemaDir)
	require.ErrorIs(t, err, ErrIncompatibleSchema)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "orders-value", schemaErr.Subject)
	assert.Contains(t, err.Error(), "orders-value")
}

func TestRegisterSchemaInputErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		schema  *topology.Schema
		content string
		want    error
	}{
		{name: "missing file", schema: topology.NewSchema("orders-value", topology.SchemaTypeAvro), want: afero.ErrFileNotFound},
		{name: "blank file", schema: topology.NewSchema("orders-value", topology.SchemaTypeAvro), content: " \n\t", want: ErrEmptySchema},
		{name: "unparsable", schema: topology.NewSchema("orders-value", topology.SchemaTypeAvro), content: "record Order {}", want: ErrUnparsableSchema},
		{name: "proto as avro", schema: topology.NewSchema("orders-value", topology.SchemaTypeProtobuf), content: ordersAvro, want: ErrUnparsableSchema},
		{name: "missing type", schema: &topology.Schema{Subject: "orders-value"}, want: ErrMissingSchemaType},
		{name: "invalid path", schema: topology.NewSchema("../orders-value", topology.SchemaTypeAvro), want: ErrInvalidSchemaPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, registry, fs := newMockEngine(t, false)
			expectParse(registry)
			if tt.content != "" {
				writeSchemaFile(t, fs, tt.schema, tt.content)
			}

			_, err := engine.RegisterSchema(ctx, tt.schema, schemaDir)
			assert.ErrorIs(t, err, tt.want)
			var schemaErr *SchemaError
			assert.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestRegisterSchemasStopsAtFirstError(t *testing.T) {
	ctx := context.Background()
	engine, _, fs := newMockEngine(t, false)
	broken := topology.NewSchema("broken-value", topology.SchemaTypeAvro)
	writeSchemaFile(t, fs, broken, "  ")
	untouched := topology.NewSchema("orders-value", topology.SchemaTypeAvro)
	writeSchemaFile(t, fs, untouched, ordersAvro)

	var reported *Report
	engine.WithReporter(ReporterFunc(func(_ context.Context, r *Report) error {
		reported = r
		return nil
	}))

	report, err := engine.RegisterSchemas(ctx, []*topology.Schema{nil, broken, untouched}, schemaDir)
	require.ErrorIs(t, err, ErrEmptySchema)
	require.NotNil(t, report)
	assert.Same(t, report, reported, "the partial report is still handed to the reporter")

	failures := report.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "broken-value", failures[0].Subject)
	for _, o := range report.Outcomes {
		assert.NotEqual(t, "orders-value", o.Subject)
	}
}

func TestRegisterSchemasTransportErrorPropagates(t *testing.T) {
	ctx := context.Background()
	engine, registry, fs := newMockEngine(t, false)
	schema := &topology.Schema{Subject: "orders-value", Type: topology.SchemaTypeAvro, CompatibilityMode: topology.CompatibilityFull}
	writeSchemaFile(t, fs, schema, ordersAvro)

	registry.EXPECT().GetCompatibility(gomock.Any(), "orders-value").Return(sr.Found("BACKWARD"))
	registry.EXPECT().UpdateCompatibility(gomock.Any(), "orders-value", "FULL").Return("", errBoom)

	report, err := engine.RegisterSchemas(ctx, []*topology.Schema{schema}, schemaDir)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, report.Count(OutcomeFailed))
}

func TestDeleteSubjects(t *testing.T) {
	ctx := context.Background()

	t.Run("empty set makes no registry call", func(t *testing.T) {
		engine, _, _ := newMockEngine(t, false)

		report, err := engine.DeleteSubjects(ctx, nil)
		require.NoError(t, err)
		assert.True(t, report.NothingToRemove())
		assert.Empty(t, report.Subjects())
	})

	t.Run("dry-run reports without deleting", func(t *testing.T) {
		engine, _, _ := newMockEngine(t, true)

		report, err := engine.DeleteSubjects(ctx, []string{"a-value", "b-value", "a-value"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a-value", "b-value"}, report.Subjects())
		for _, o := range report.Outcomes {
			assert.True(t, o.DryRun)
		}
	})

	t.Run("best effort", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().DeleteSubject(gomock.Any(), "a-value").Return(nil, errBoom)
		registry.EXPECT().DeleteSubject(gomock.Any(), "b-value").Return([]int{1, 2}, nil)
		registry.EXPECT().DeleteSubject(gomock.Any(), "gone-value").Return(nil, &sr.RegistryError{StatusCode: 404, ErrorCode: sr.ErrorCodeSubjectNotFound})

		report, err := engine.DeleteSubjects(ctx, []string{"a-value", "b-value", "gone-value"})
		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, []string{"b-value"}, report.Subjects())
		assert.Equal(t, 1, report.Count(OutcomeFailed))
		assert.Equal(t, 1, report.Count(OutcomeNotFound))
		assert.Equal(t, []int{1, 2}, report.Outcomes[1].Versions)
	})
}

func TestDownloadSchema(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the latest version and fills the descriptor", func(t *testing.T) {
		engine, registry, fs := newMockEngine(t, false)
		registry.EXPECT().GetLatestSchemaMetadata(gomock.Any(), "orders-value").Return(sr.Found(&sr.Metadata{ID: 4, Version: 2, Schema: ordersAvro, Type: "AVRO"}))
		registry.EXPECT().GetCompatibility(gomock.Any(), "orders-value").Return(sr.NotFound[string](nil))
		registry.EXPECT().GetCompatibility(gomock.Any(), "").Return(sr.Found("FULL_TRANSITIVE"))

		schema := &topology.Schema{Subject: "orders-value"}
		outcome, err := engine.DownloadSchema(ctx, schema, schemaDir)
		require.NoError(t, err)
		assert.Equal(t, OutcomeDownloaded, outcome.Kind)
		assert.Equal(t, topology.SchemaTypeAvro, schema.Type)
		assert.Equal(t, topology.CompatibilityFullTransitive, schema.CompatibilityMode)
		assert.Equal(t, filepath.Join(schemaDir, "orders-value.avsc"), outcome.Path)

		content, err := afero.ReadFile(fs, outcome.Path)
		require.NoError(t, err)
		assert.Equal(t, ordersAvro, string(content))
	})

	t.Run("overwrites shorter content", func(t *testing.T) {
		engine, registry, fs := newMockEngine(t, false)
		schema := &topology.Schema{Subject: "orders-value", Type: topology.SchemaTypeAvro}
		path := writeSchemaFile(t, fs, schema, ordersAvroV2)
		registry.EXPECT().GetLatestSchemaMetadata(gomock.Any(), "orders-value").Return(sr.Found(&sr.Metadata{Schema: ordersAvro, Type: "AVRO"}))
		registry.EXPECT().GetCompatibility(gomock.Any(), "orders-value").Return(sr.Found("NONE"))

		_, err := engine.DownloadSchema(ctx, schema, schemaDir)
		require.NoError(t, err)
		content, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		assert.Equal(t, ordersAvro, string(content))
	})

	t.Run("unknown subject is skipped", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().GetLatestSchemaMetadata(gomock.Any(), "ghost-value").Return(sr.NotFound[*sr.Metadata](nil))

		outcome, err := engine.DownloadSchema(ctx, &topology.Schema{Subject: "ghost-value"}, schemaDir)
		require.NoError(t, err)
		assert.Equal(t, OutcomeNotFound, outcome.Kind)
	})

	t.Run("dry-run does not write", func(t *testing.T) {
		engine, registry, fs := newMockEngine(t, true)
		registry.EXPECT().GetLatestSchemaMetadata(gomock.Any(), "orders-value").Return(sr.Found(&sr.Metadata{Schema: ordersAvro, Type: "AVRO"}))
		registry.EXPECT().GetCompatibility(gomock.Any(), "orders-value").Return(sr.Found("BACKWARD"))

		outcome, err := engine.DownloadSchema(ctx, &topology.Schema{Subject: "orders-value"}, schemaDir)
		require.NoError(t, err)
		assert.Equal(t, OutcomeDownloaded, outcome.Kind)
		exists, err := afero.Exists(fs, outcome.Path)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	metadataErrors := []struct {
		name     string
		metadata *sr.Metadata
		want     error
	}{
		{name: "nil metadata", metadata: nil, want: ErrMissingMetadata},
		{name: "missing type", metadata: &sr.Metadata{Schema: ordersAvro}, want: ErrMissingSchemaType},
		{name: "missing content", metadata: &sr.Metadata{Type: "AVRO"}, want: ErrMissingContent},
	}
	for _, tt := range metadataErrors {
		t.Run(tt.name, func(t *testing.T) {
			engine, registry, _ := newMockEngine(t, false)
			registry.EXPECT().GetLatestSchemaMetadata(gomock.Any(), "orders-value").Return(sr.Found(tt.metadata))
			registry.EXPECT().GetCompatibility(gomock.Any(), "orders-value").Return(sr.Found("BACKWARD")).AnyTimes()

			schema := &topology.Schema{Subject: "orders-value"}
			_, err := engine.DownloadSchema(ctx, schema, schemaDir)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, schema.Type, "a failed download leaves the descriptor untouched")
		})
	}

	t.Run("nil schema", func(t *testing.T) {
		engine, _, _ := newMockEngine(t, false)
		_, err := engine.DownloadSchema(ctx, nil, schemaDir)
		assert.ErrorIs(t, err, ErrNilSchema)
	})

	t.Run("registry failure", func(t *testing.T) {
		engine, registry, _ := newMockEngine(t, false)
		registry.EXPECT().GetLatestSchemaMetadata(gomock.Any(), "orders-value").Return(sr.Failed[*sr.Metadata](errBoom))

		_, err := engine.DownloadSchema(ctx, &topology.Schema{Subject: "orders-value"}, schemaDir)
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestEngineLogsRegistration(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	registry := sr.NewMockRegistry(ctrl)
	log := NewMockLogger(ctrl)
	fs := afero.NewMemMapFs()
	engine, err := NewEngine(registry, NewFileStore(fs), Config{})
	require.NoError(t, err)
	engine.WithLogger(log)

	schema := topology.NewSchema("orders-value", topology.SchemaTypeAvro)
	writeSchemaFile(t, fs, schema, ordersAvro)

	expectParse(registry)
	registry.EXPECT().TestCompatibility(gomock.Any(), "orders-value", gomock.Any()).Return(sr.NotFound[bool](nil))
	registry.EXPECT().GetAllVersions(gomock.Any(), "orders-value").Return(sr.NotFound[[]int](nil))
	registry.EXPECT().Register(gomock.Any(), "orders-value", gomock.Any()).Return(3, nil)

	log.EXPECT().Debug("Compatibility for subject is default", nil, gomock.Any()).Times(1)
	log.EXPECT().Info("Schema registered", nil, gomock.Any()).Times(1)

	_, err = engine.RegisterSchemas(ctx, []*topology.Schema{schema}, schemaDir)
	require.NoError(t, err)
}

type recordingObserver struct {
	ops []observability.OperationContext
}

func (o *recordingObserver) ObserveOperation(op observability.OperationContext) {
	o.ops = append(o.ops, op)
}

func TestEngineObservesOutcomes(t *testing.T) {
	ctx := context.Background()
	engine, registry, _ := newMockEngine(t, false)
	observer := &recordingObserver{}
	engine.WithObserver(observer)
	registry.EXPECT().DeleteSubject(gomock.Any(), "orders-value").Return([]int{1}, nil)

	_, err := engine.DeleteSubjects(ctx, []string{"orders-value"})
	require.NoError(t, err)

	require.Len(t, observer.ops, 1)
	assert.Equal(t, "reconciler", observer.ops[0].Component)
	assert.Equal(t, "delete", observer.ops[0].Operation)
	assert.Equal(t, "orders-value", observer.ops[0].Resource)
	assert.Equal(t, string(OutcomeDeleted), observer.ops[0].SubResource)
}
