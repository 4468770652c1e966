package reconciler

// Config holds the process-wide settings of the reconciliation engine.
// DryRun is read once by NewEngine and never changes for the engine's lifetime.
type Config struct {
	// DryRun computes and reports every decision without mutating the registry
	// or writing files.
	DryRun bool `yaml:"dryRun" envconfig:"SCHEMASYNC_DRY_RUN"`

	// Directory is the default root of local schema files.
	Directory string `yaml:"directory" envconfig:"SCHEMASYNC_DIRECTORY" default:"schemas"`
}
