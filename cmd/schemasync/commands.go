package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aleph-Alpha/schemasync/v1/report"
	"github.com/Aleph-Alpha/schemasync/v1/topology"
	"github.com/spf13/cobra"
)

func newRegisterCommand(opts *rootOptions) *cobra.Command {
	var manifestPath string
	command := &cobra.Command{
		Use:   "register",
		Short: "Register the schemas declared in a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, err := topology.LoadManifest(opts.fs, manifestPath)
			if err != nil {
				return err
			}
			return opts.run(cmd, func(ctx context.Context, s session) error {
				_, err := s.engine.RegisterSchemas(ctx, manifest.Schemas, s.cfg.Reconciler.Directory)
				return err
			})
		},
	}
	command.Flags().StringVar(&manifestPath, "manifest", "", "manifest declaring the desired schemas")
	_ = command.MarkFlagRequired("manifest")
	return command
}

func newDownloadCommand(opts *rootOptions) *cobra.Command {
	var manifestPath string
	var all bool
	command := &cobra.Command{
		Use:   "download",
		Short: "Export registered schemas to local files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if all == (manifestPath != "") {
				return errors.New("exactly one of --manifest or --all is required")
			}
			var schemas []*topology.Schema
			if manifestPath != "" {
				manifest, err := topology.LoadManifest(opts.fs, manifestPath)
				if err != nil {
					return err
				}
				schemas = manifest.Schemas
			}
			return opts.run(cmd, func(ctx context.Context, s session) error {
				var err error
				if all {
					_, err = s.engine.DownloadAll(ctx, s.cfg.Reconciler.Directory)
				} else {
					_, err = s.engine.DownloadSchemas(ctx, schemas, s.cfg.Reconciler.Directory)
				}
				return err
			})
		},
	}
	command.Flags().StringVar(&manifestPath, "manifest", "", "manifest declaring the schemas to download")
	command.Flags().BoolVar(&all, "all", false, "download every subject in the registry")
	return command
}

func newDeleteCommand(opts *rootOptions) *cobra.Command {
	var manifestPath string
	command := &cobra.Command{
		Use:   "delete [SUBJECT...]",
		Short: "Delete subjects and all their versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects := append([]string(nil), args...)
			if manifestPath != "" {
				manifest, err := topology.LoadManifest(opts.fs, manifestPath)
				if err != nil {
					return err
				}
				subjects = append(subjects, manifest.RemovedSubjects...)
			}
			return opts.run(cmd, func(ctx context.Context, s session) error {
				_, err := s.engine.DeleteSubjects(ctx, subjects)
				return err
			})
		},
	}
	command.Flags().StringVar(&manifestPath, "manifest", "", "manifest whose removedSubjects are deleted")
	return command
}

func newPruneCommand(opts *rootOptions) *cobra.Command {
	var manifestPath string
	command := &cobra.Command{
		Use:   "prune",
		Short: "Delete registry subjects the manifest does not declare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, err := topology.LoadManifest(opts.fs, manifestPath)
			if err != nil {
				return err
			}
			return opts.run(cmd, func(ctx context.Context, s session) error {
				orphans, err := s.engine.OrphanedSubjects(ctx, manifest.Schemas)
				if err != nil {
					return err
				}
				_, err = s.engine.DeleteSubjects(ctx, orphans)
				return err
			})
		},
	}
	command.Flags().StringVar(&manifestPath, "manifest", "", "manifest declaring the subjects to keep")
	_ = command.MarkFlagRequired("manifest")
	return command
}

func newSubjectsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "List registry subjects with their type and compatibility",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, s session) error {
				subjects, err := s.engine.ListSubjects(ctx)
				if err != nil {
					return err
				}
				rows := make([]report.SubjectRow, 0, len(subjects))
				for _, subject := range subjects {
					schemaType, err := s.engine.SchemaType(ctx, subject)
					if err != nil {
						return fmt.Errorf("subject %s: %w", subject, err)
					}
					level, err := s.engine.ResolveCompatibility(ctx, subject)
					if err != nil {
						return fmt.Errorf("subject %s: %w", subject, err)
					}
					rows = append(rows, report.SubjectRow{Subject: subject, Type: schemaType.String(), Compatibility: level})
				}
				s.table.WriteSubjects(rows)
				return nil
			})
		},
	}
}
