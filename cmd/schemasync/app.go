package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Aleph-Alpha/schemasync/internal/config"
	"github.com/Aleph-Alpha/schemasync/v1/kafka"
	"github.com/Aleph-Alpha/schemasync/v1/logger"
	"github.com/Aleph-Alpha/schemasync/v1/metrics"
	"github.com/Aleph-Alpha/schemasync/v1/minio"
	"github.com/Aleph-Alpha/schemasync/v1/reconciler"
	"github.com/Aleph-Alpha/schemasync/v1/report"
	"github.com/Aleph-Alpha/schemasync/v1/schema_registry"
	"github.com/Aleph-Alpha/schemasync/v1/tracer"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// session is what a command gets to work with while the application runs.
type session struct {
	cfg    *config.Config
	engine *reconciler.Engine
	table  *report.TableReporter
}

func appOptions(cfg *config.Config, out io.Writer) []fx.Option {
	options := []fx.Option{
		fx.Supply(
			cfg.Logger,
			cfg.Tracer,
			cfg.Metrics,
			cfg.Registry,
			cfg.Reconciler,
			cfg.Report,
		),
		fx.Provide(
			fx.Annotate(
				func() io.Writer { return out },
				fx.ResultTags(`name:"report_output"`),
			),
		),
		logger.FXModule,
		tracer.FXModule,
		metrics.FXModule,
		schema_registry.FXModule,
		report.FXModule,
		reconciler.FXModule,
	}

	if cfg.Logger.Level == logger.Debug {
		options = append(options, fx.WithLogger(func(l *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Zap}
		}))
	} else {
		options = append(options, fx.NopLogger)
	}

	if cfg.Kafka.Enabled() {
		options = append(options, fx.Supply(cfg.Kafka), kafka.FXModule)
	}
	if cfg.Minio.Enabled() {
		options = append(options, fx.Supply(cfg.Minio), minio.FXModule)
	}
	return options
}

// run starts the application, hands the session to fn and stops the
// application again, whatever fn returned.
func (o *rootOptions) run(cmd *cobra.Command, fn func(ctx context.Context, s session) error) (err error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	s := session{cfg: cfg}
	app := fx.New(append(appOptions(cfg, cmd.OutOrStdout()), fx.Populate(&s.engine, &s.table))...)
	if err := app.Err(); err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		if stopErr := app.Stop(stopCtx); stopErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to stop application: %w", stopErr))
		}
	}()

	return fn(ctx, s)
}
