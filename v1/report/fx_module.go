package report

import (
	"io"

	"github.com/Aleph-Alpha/schemasync/v1/kafka"
	"github.com/Aleph-Alpha/schemasync/v1/logger"
	"github.com/Aleph-Alpha/schemasync/v1/reconciler"
	"github.com/Aleph-Alpha/schemasync/v1/tracer"
	"go.uber.org/fx"
)

// FXModule provides the reconciler.Reporter assembled from Config and the
// sinks present in the container, plus the *TableReporter used for listings.
//
// The console output defaults to stdout and can be replaced by supplying an
// io.Writer named "report_output".
var FXModule = fx.Module("report",
	fx.Provide(
		NewTableReporterWithDI,
		NewReporterWithDI,
	),
)

// TableParams groups the dependencies of the table reporter.
type TableParams struct {
	fx.In

	Output io.Writer `name:"report_output" optional:"true"`
}

func NewTableReporterWithDI(p TableParams) *TableReporter {
	return NewTableReporter(p.Output)
}

// ReporterParams groups the dependencies of the combined reporter.
type ReporterParams struct {
	fx.In

	Config    Config
	Table     *TableReporter
	Logger    *logger.Logger  `optional:"true"`
	Publisher kafka.Publisher `optional:"true"`
	Tracer    *tracer.Tracer  `optional:"true"`
}

// NewReporterWithDI combines the configured sinks. The log sink comes first so
// a failing audit publish never hides the summary line.
func NewReporterWithDI(p ReporterParams) reconciler.Reporter {
	var reporters MultiReporter
	if p.Logger != nil {
		reporters = append(reporters, NewLogReporter(p.Logger))
	}
	if p.Config.Table {
		reporters = append(reporters, p.Table)
	}
	if p.Config.Audit && p.Publisher != nil {
		audit := NewKafkaReporter(p.Publisher)
		if p.Tracer != nil {
			audit.WithCarrier(p.Tracer)
		}
		reporters = append(reporters, audit)
	}
	return reporters
}
