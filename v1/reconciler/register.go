package reconciler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Aleph-Alpha/schemasync/v1/schema_registry"
	"github.com/Aleph-Alpha/schemasync/v1/topology"
)

// ApplyCompatibility brings the subject's compatibility level to the one
// declared on schema. A schema without a declared mode, or one whose mode is
// already effective, yields OutcomeCompatibilityUnchanged. Otherwise the
// level is updated (skipped in dry-run) and OutcomeCompatibilityUpdated is
// returned.
func (e *Engine) ApplyCompatibility(ctx context.Context, schema *topology.Schema) (Outcome, error) {
	if schema == nil {
		return Outcome{}, ErrNilSchema
	}
	subject := schema.Subject
	outcome := Outcome{Subject: subject, Schema: schema, Kind: OutcomeCompatibilityUnchanged, DryRun: e.dryRun}

	desired := string(schema.CompatibilityMode)
	if desired == "" {
		e.logger.Debug("Compatibility for subject is default", nil, map[string]interface{}{"subject": subject})
		return outcome, nil
	}

	current, err := e.ResolveCompatibility(ctx, subject)
	if err != nil {
		return Outcome{}, err
	}
	outcome.PreviousCompatibility = current
	outcome.Compatibility = current
	if strings.EqualFold(current, desired) {
		e.logger.Debug("Compatibility for subject is already set", nil, map[string]interface{}{
			"subject":       subject,
			"compatibility": current,
		})
		return outcome, nil
	}

	outcome.Kind = OutcomeCompatibilityUpdated
	outcome.Compatibility = desired
	if e.dryRun {
		e.logger.Info("Compatibility to be updated", nil, map[string]interface{}{
			"subject":       subject,
			"compatibility": desired,
			"previous":      current,
		})
		return outcome, nil
	}

	updated, err := e.registry.UpdateCompatibility(ctx, subject, desired)
	if err != nil {
		return Outcome{}, err
	}
	if updated != "" {
		outcome.Compatibility = updated
	}
	e.logger.Info("Compatibility updated", nil, map[string]interface{}{
		"subject":       subject,
		"compatibility": outcome.Compatibility,
		"previous":      current,
	})
	return outcome, nil
}

// TestCompatible checks parsed against the latest version of subject. A
// subject that was never registered is compatible with anything.
func (e *Engine) TestCompatible(ctx context.Context, subject string, parsed schema_registry.ParsedSchema) (bool, error) {
	compatible, err := e.registry.TestCompatibility(ctx, subject, parsed).OrElse(true)
	if err != nil {
		return false, fmt.Errorf("failed to test compatibility of subject '%s': %w", subject, err)
	}
	return compatible, nil
}

// ResolveVersion returns the version under which parsed is registered for
// subject, or 0 when it is not registered. Registry versions start at 1.
func (e *Engine) ResolveVersion(ctx context.Context, subject string, parsed schema_registry.ParsedSchema) (int, error) {
	versions, err := e.registry.GetAllVersions(ctx, subject).OrElse(nil)
	if err != nil {
		return 0, fmt.Errorf("failed to list versions of subject '%s': %w", subject, err)
	}
	if len(versions) == 0 {
		return 0, nil
	}

	version, err := e.registry.GetVersion(ctx, subject, parsed).OrElse(0)
	if err != nil {
		return 0, fmt.Errorf("failed to look up version of subject '%s': %w", subject, err)
	}
	return version, nil
}

// RegisterSchema registers the local content of schema found under
// directory. Content that is already registered yields
// OutcomeSkippedUnchanged; new content yields OutcomeRegistered (the
// registry call is skipped in dry-run). Content that cannot be read, parsed
// or that is incompatible fails with a *SchemaError and never reaches the
// registry's register call.
func (e *Engine) RegisterSchema(ctx context.Context, schema *topology.Schema, directory string) (Outcome, error) {
	if schema == nil {
		return Outcome{}, ErrNilSchema
	}
	subject := schema.Subject
	if schema.Type == "" {
		return Outcome{}, newSchemaError(subject, "register", ErrMissingSchemaType)
	}

	path, err := e.store.Path(schema, directory)
	if err != nil {
		return Outcome{}, newSchemaError(subject, "register", err)
	}
	content, err := e.store.Read(ctx, path)
	if err != nil {
		return Outcome{}, newSchemaError(subject, "register", err)
	}
	parsed, err := e.registry.ParseSchema(string(schema.Type), content)
	if err == nil && parsed == nil {
		err = fmt.Errorf("parser returned no schema")
	}
	if err != nil {
		return Outcome{}, newSchemaError(subject, "register", fmt.Errorf("%w: type %s: %w", ErrUnparsableSchema, schema.Type, err))
	}

	compatible, err := e.TestCompatible(ctx, subject, parsed)
	if err != nil {
		return Outcome{}, err
	}
	if !compatible {
		return Outcome{}, newSchemaError(subject, "register", fmt.Errorf("%w: type %s", ErrIncompatibleSchema, schema.Type))
	}

	version, err := e.ResolveVersion(ctx, subject, parsed)
	if err != nil {
		return Outcome{}, err
	}
	fields := map[string]interface{}{
		"subject": subject,
		"type":    string(schema.Type),
		"path":    path,
	}
	if version > 0 {
		fields["version"] = version
		e.logger.Debug("Schema for subject already exists", nil, fields)
		return Outcome{Subject: subject, Schema: schema, Kind: OutcomeSkippedUnchanged, DryRun: e.dryRun, Version: version, Path: path}, nil
	}

	outcome := Outcome{Subject: subject, Schema: schema, Kind: OutcomeRegistered, DryRun: e.dryRun, Path: path}
	if e.dryRun {
		e.logger.Info("Schema to be registered", nil, fields)
		return outcome, nil
	}

	id, err := e.registry.Register(ctx, subject, parsed)
	if err != nil {
		return Outcome{}, err
	}
	outcome.SchemaID = id
	fields["schema_id"] = id
	e.logger.Info("Schema registered", nil, fields)
	return outcome, nil
}

// RegisterSchemas applies the declared compatibility and then registers the
// content of every non-nil schema, in order. The first error is recorded as
// a failed outcome, stops the batch and is returned along with the partial
// report.
func (e *Engine) RegisterSchemas(ctx context.Context, schemas []*topology.Schema, directory string) (*Report, error) {
	ctx, span, report := e.startBatch(ctx, OperationRegister, len(schemas))

	for _, schema := range schemas {
		if schema == nil {
			continue
		}
		if err := e.registerOne(ctx, report, schema, directory); err != nil {
			return e.finishBatch(ctx, span, report, err)
		}
	}
	return e.finishBatch(ctx, span, report, nil)
}

func (e *Engine) registerOne(ctx context.Context, report *Report, schema *topology.Schema, directory string) (err error) {
	ctx, end := e.schemaSpan(ctx, "reconciler.register_schema", schema.Subject)
	defer func() { end(err) }()

	start := e.now()
	compatibility, err := e.ApplyCompatibility(ctx, schema)
	if err != nil {
		report.add(e.failed(schema.Subject, schema, start, err))
		return err
	}
	compatibility.Duration = e.since(start)
	report.add(compatibility)

	start = e.now()
	registration, err := e.RegisterSchema(ctx, schema, directory)
	if err != nil {
		report.add(e.failed(schema.Subject, schema, start, err))
		return err
	}
	registration.Duration = e.since(start)
	report.add(registration)
	return nil
}

func (e *Engine) failed(subject string, schema *topology.Schema, start time.Time, err error) Outcome {
	o := failedOutcome(subject, schema, e.dryRun, err)
	o.Duration = e.since(start)
	e.logger.Error("Schema reconciliation failed", err, map[string]interface{}{"subject": subject})
	return o
}

func (e *Engine) since(start time.Time) time.Duration {
	return e.now().Sub(start)
}
