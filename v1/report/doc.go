// Package report delivers reconciliation reports to people and systems.
//
// Every batch run by the reconciler ends with a *reconciler.Report. This
// package turns it into a console table (go-pretty), a structured log summary
// and, optionally, one Kafka audit Event per outcome carrying the run id and
// the trace context as message headers.
//
//	reporter := report.MultiReporter{
//		report.NewLogReporter(log),
//		report.NewTableReporter(os.Stdout),
//		report.NewKafkaReporter(publisher).WithCarrier(tr),
//	}
//	engine.WithReporter(reporter)
package report
