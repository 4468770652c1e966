package main

import (
	"github.com/Aleph-Alpha/schemasync/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	fs afero.Fs

	configPath  string
	registryURL string
	directory   string
	logLevel    string
	dryRun      bool
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{fs: fs}
	command := &cobra.Command{
		Use:           "schemasync",
		Short:         "Reconcile local schema definitions with a schema registry",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := command.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to the YAML configuration file")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "decide and report without mutating the registry or local files")
	flags.StringVar(&opts.directory, "directory", "", "root directory of local schema files")
	flags.StringVar(&opts.registryURL, "registry-url", "", "schema registry base URL")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warning, error)")

	command.AddCommand(
		newRegisterCommand(opts),
		newDownloadCommand(opts),
		newDeleteCommand(opts),
		newPruneCommand(opts),
		newSubjectsCommand(opts),
	)
	return command
}

// loadConfig reads the configuration and applies the flags the user set.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dry-run") {
		cfg.Reconciler.DryRun = o.dryRun
	}
	if flags.Changed("directory") {
		cfg.Reconciler.Directory = o.directory
	}
	if flags.Changed("registry-url") {
		cfg.Registry.URL = o.registryURL
	}
	if flags.Changed("log-level") {
		cfg.Logger.Level = o.logLevel
	}
	return cfg, nil
}
