// Package reconciler converges a schema registry towards a declared set of
// schemas.
//
// # Overview
//
// The Engine compares what a manifest declares (subject, schema type,
// compatibility mode and a schema file on disk) with what the registry
// holds, and takes the minimal set of actions to make the two agree. It
// drives three batch operations:
//
//   - RegisterSchemas: per schema, update the compatibility level when a
//     different one is declared, then register the local file content unless
//     an identical version already exists. The first failure stops the batch.
//   - DownloadSchemas / DownloadAll: export the latest version of each subject
//     into local files, filling in type and compatibility on the descriptor.
//   - DeleteSubjects: best-effort removal of subjects that are no longer
//     declared.
//
// The single-schema steps (ResolveCompatibility, ApplyCompatibility,
// ResolveVersion, TestCompatible, RegisterSchema, DownloadSchema) are
// exported as well and return the same Outcome values the batches collect.
//
// # Architecture
//
//	┌────────────────────────────────────────────────┐
//	│    cmd/schemasync (register, download, ...)    │
//	└────────────────────────┬───────────────────────┘
//	                         ▼
//	┌────────────────────────────────────────────────┐
//	│               reconciler.Engine                │
//	│    decisions, outcomes, spans, observations    │
//	└───────┬────────────────┬────────────────┬──────┘
//	        ▼                ▼                ▼
//	┌───────────────┐┌───────────────┐┌───────────────┐
//	│   Registry    ││  SchemaStore  ││   Reporter    │
//	│ (http/memory) ││ (afero/minio) ││ (table/kafka) │
//	└───────────────┘└───────────────┘└───────────────┘
//
// # Absence Is Not Failure
//
// Registry absences (unknown subject, schema or subject-level config) are
// part of the normal flow:
//
//	| Lookup               | On not-found                         |
//	|----------------------|--------------------------------------|
//	| subject compatibility| global level applies                 |
//	| global compatibility | error wrapping ErrNotFound           |
//	| version of a schema  | 0, the schema is new                 |
//	| compatibility test   | compatible, nothing to compare with  |
//	| latest version       | download skipped, OutcomeNotFound    |
//	| delete subject       | OutcomeNotFound, batch continues     |
//
// Any other registry error is a failure and carries the subject in its
// message.
//
// # Outcomes and Reports
//
// Every batch produces a Report with one tagged Outcome per step:
//
//	| Kind                    | Acted | Produced by               |
//	|-------------------------|-------|---------------------------|
//	| registered              | yes   | RegisterSchema            |
//	| compatibility-updated   | yes   | ApplyCompatibility        |
//	| skipped-unchanged       | no    | RegisterSchema            |
//	| compatibility-unchanged | no    | ApplyCompatibility        |
//	| downloaded              | yes   | DownloadSchema            |
//	| deleted                 | yes   | DeleteSubjects            |
//	| not-found               | no    | DownloadSchema, Delete... |
//	| nothing-to-remove       | no    | DeleteSubjects (empty)    |
//	| failed                  | no    | any step                  |
//
// Report.Schemas and Report.Subjects list only the entries that acted, so
// a second identical run yields an empty change set. The Report is handed
// to the configured Reporter even when the batch aborts.
//
// # Dry Run
//
// Dry-run is fixed at construction through Config.DryRun. A dry-run engine
// takes exactly the same decisions as a real one, reads the same registry
// state and reports the same outcome kinds with DryRun set, but never
// calls UpdateCompatibility, Register or DeleteSubject and never writes a
// file.
//
// # Usage
//
//	registry, err := schema_registry.NewClient(schema_registry.Config{URL: "http://localhost:8081"})
//	if err != nil {
//	    return err
//	}
//	engine, err := reconciler.NewEngine(registry, reconciler.NewFileStore(afero.NewOsFs()), reconciler.Config{})
//	if err != nil {
//	    return err
//	}
//
//	manifest, err := topology.LoadManifest(afero.NewOsFs(), "schemas.yaml")
//	if err != nil {
//	    return err
//	}
//	report, err := engine.RegisterSchemas(ctx, manifest.Schemas, "schemas")
//	if err != nil {
//	    return err // report still lists what happened before the failure
//	}
//	for _, schema := range report.Schemas() {
//	    fmt.Println(schema.Subject)
//	}
//
// Removing subjects the manifest no longer declares:
//
//	orphans, err := engine.OrphanedSubjects(ctx, manifest.Schemas)
//	if err != nil {
//	    return err
//	}
//	report, err := engine.DeleteSubjects(ctx, orphans)
//	if report.NothingToRemove() {
//	    fmt.Println("Nothing to remove.")
//	}
//
// # Storage
//
// Local schema files go through a SchemaStore. FileStore keeps them on an
// afero filesystem at <directory>/<subject>.<ext>, where ext is avsc, json
// or proto. The minio package provides a bucket-backed SchemaStore with
// the same layout under a key prefix.
//
// # Using with FX
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    schema_registry.FXModule,
//	    reconciler.FXModule,
//	    fx.Supply(reconciler.Config{DryRun: true}),
//	    fx.Provide(func() reconciler.SchemaStore {
//	        return reconciler.NewFileStore(afero.NewOsFs())
//	    }),
//	    fx.Invoke(func(engine *reconciler.Engine) {
//	        // use engine
//	    }),
//	)
//
// Store, Logger, Observer, Tracer and Reporter are optional. Without a
// store the engine uses the OS filesystem.
package reconciler
