package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Aleph-Alpha/schemasync/v1/kafka"
	"github.com/Aleph-Alpha/schemasync/v1/logger"
	"github.com/Aleph-Alpha/schemasync/v1/reconciler"
	"github.com/Aleph-Alpha/schemasync/v1/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
)

var errBoom = errors.New("boom")

func sampleReport(dryRun bool) *reconciler.Report {
	orders := &topology.Schema{Subject: "orders-value", Type: topology.SchemaTypeAvro, CompatibilityMode: topology.CompatibilityFull}
	payments := topology.NewSchema("payments-value", topology.SchemaTypeProtobuf)
	return &reconciler.Report{
		RunID:      "2f1d3c8e-6a61-4c4f-9a7e-0d9b8f1c2a11",
		Operation:  reconciler.OperationRegister,
		DryRun:     dryRun,
		StartedAt:  time.Unix(100, 0),
		FinishedAt: time.Unix(101, 0),
		Outcomes: []reconciler.Outcome{
			{Subject: "orders-value", Schema: orders, Kind: reconciler.OutcomeCompatibilityUpdated, Compatibility: "FULL", PreviousCompatibility: "BACKWARD"},
			{Subject: "orders-value", Schema: orders, Kind: reconciler.OutcomeRegistered, SchemaID: 7},
			{Subject: "payments-value", Schema: payments, Kind: reconciler.OutcomeFailed, Err: errBoom},
		},
	}
}

type recordingLogger struct {
	infos  []map[string]interface{}
	errors []error
}

func (l *recordingLogger) Info(_ string, _ error, fields ...map[string]interface{}) {
	l.infos = append(l.infos, fields...)
}

func (l *recordingLogger) Error(_ string, err error, _ ...map[string]interface{}) {
	l.errors = append(l.errors, err)
}

type staticCarrier map[string]string

func (c staticCarrier) GetCarrier(context.Context) map[string]string { return c }

func TestTableReporterRendersOutcomes(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewTableReporter(&out).Report(context.Background(), sampleReport(true)))

	text := strings.ToLower(out.String())
	assert.Contains(t, text, "register (dry-run)")
	assert.Contains(t, text, "compatibility mode")
	assert.Contains(t, text, "orders-value")
	assert.Contains(t, text, "compatibility-updated")
	assert.Contains(t, text, "payments-value")
	assert.Contains(t, text, "protobuf")
	assert.Contains(t, text, "failed: boom")
	assert.Contains(t, text, DefaultCompatibility)
	assert.Contains(t, text, "1 changed")
}

func TestTableReporterNothingToRemove(t *testing.T) {
	var out bytes.Buffer
	rep := &reconciler.Report{Operation: reconciler.OperationDelete, Outcomes: []reconciler.Outcome{{Kind: reconciler.OutcomeNothingToRemove}}}
	require.NoError(t, NewTableReporter(&out).Report(context.Background(), rep))
	assert.Equal(t, "Nothing to remove.\n", out.String())

	out.Reset()
	require.NoError(t, NewTableReporter(&out).Report(context.Background(), &reconciler.Report{}))
	assert.Empty(t, out.String())
}

func TestTableReporterListsAbsentSubjectsOnDelete(t *testing.T) {
	var out bytes.Buffer
	rep := &reconciler.Report{
		Operation: reconciler.OperationDelete,
		Outcomes: []reconciler.Outcome{
			{Subject: "orders-value", Kind: reconciler.OutcomeDeleted, Versions: []int{1, 2}},
			{Subject: "gone-value", Kind: reconciler.OutcomeNotFound},
		},
	}
	require.NoError(t, NewTableReporter(&out).Report(context.Background(), rep))

	assert.Equal(t, []string{"orders-value"}, rep.Subjects())
	text := strings.ToLower(out.String())
	assert.Contains(t, text, "orders-value")
	assert.Contains(t, text, "gone-value")
	assert.Contains(t, text, "not-found")
	assert.Contains(t, text, "1 changed")
}

func TestWriteSubjects(t *testing.T) {
	var out bytes.Buffer
	NewTableReporter(&out).WriteSubjects([]SubjectRow{
		{Subject: "orders-value", Type: "AVRO", Compatibility: "FULL"},
		{Subject: "payments-value", Type: "PROTOBUF"},
	})
	text := out.String()
	assert.Contains(t, text, "orders-value")
	assert.Contains(t, text, "FULL")
	assert.Contains(t, text, DefaultCompatibility)
}

func TestKafkaReporterPublishesOneEventPerOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := kafka.NewMockPublisher(ctrl)
	rep := sampleReport(false)

	var events []Event
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, value []byte, headers map[string]string) error {
			var event Event
			require.NoError(t, json.Unmarshal(value, &event))
			assert.Equal(t, event.Subject, key)
			assert.Equal(t, "application/json", headers["content-type"])
			assert.Equal(t, rep.RunID, headers["schemasync-run-id"])
			assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", headers["traceparent"])
			events = append(events, event)
			return nil
		}).
		Times(3)

	reporter := NewKafkaReporter(publisher).WithCarrier(staticCarrier{
		"traceparent": "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
	})
	require.NoError(t, reporter.Report(context.Background(), rep))

	require.Len(t, events, 3)
	assert.Equal(t, "compatibility-updated", events[0].Outcome)
	assert.Equal(t, "BACKWARD", events[0].PreviousCompatibility)
	assert.Equal(t, 7, events[1].SchemaID)
	assert.Equal(t, "AVRO", events[1].SchemaType)
	assert.Equal(t, "boom", events[2].Error)
	assert.Equal(t, "register", events[2].Operation)
}

func TestKafkaReporterContinuesPastPublishErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := kafka.NewMockPublisher(ctrl)
	gomock.InOrder(
		publisher.EXPECT().Publish(gomock.Any(), "orders-value", gomock.Any(), gomock.Any()).Return(errBoom),
		publisher.EXPECT().Publish(gomock.Any(), "orders-value", gomock.Any(), gomock.Any()).Return(nil),
		publisher.EXPECT().Publish(gomock.Any(), "payments-value", gomock.Any(), gomock.Any()).Return(nil),
	)

	err := NewKafkaReporter(publisher).Report(context.Background(), sampleReport(false))
	assert.ErrorIs(t, err, errBoom)
}

func TestLogReporter(t *testing.T) {
	log := &recordingLogger{}
	require.NoError(t, NewLogReporter(log).Report(context.Background(), sampleReport(false)))

	assert.Equal(t, []error{errBoom}, log.errors)
	require.Len(t, log.infos, 1)
	summary := log.infos[0]
	assert.Equal(t, 1, summary["changed"])
	assert.Equal(t, int64(1000), summary["duration_ms"])
	assert.Equal(t, map[string]interface{}{
		"compatibility-updated": 1,
		"registered":            1,
		"failed":                1,
	}, summary["outcomes"])
}

func TestMultiReporterJoinsErrors(t *testing.T) {
	var calls int
	failing := reconciler.ReporterFunc(func(context.Context, *reconciler.Report) error {
		calls++
		return errBoom
	})
	ok := reconciler.ReporterFunc(func(context.Context, *reconciler.Report) error {
		calls++
		return nil
	})

	err := MultiReporter{failing, ok, failing}.Report(context.Background(), sampleReport(false))
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 3, calls)
	assert.NoError(t, MultiReporter{}.Report(context.Background(), sampleReport(false)))
}

func TestFXModuleAssemblesSinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := kafka.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	var out bytes.Buffer
	var reporter reconciler.Reporter
	app := fxtest.New(t,
		FXModule,
		fx.Supply(Config{Table: true, Audit: true}),
		fx.Supply(logger.NewNop()),
		fx.Provide(
			func() kafka.Publisher { return publisher },
			fx.Annotate(func() io.Writer { return &out }, fx.ResultTags(`name:"report_output"`)),
		),
		fx.Populate(&reporter),
	)
	app.RequireStart()
	defer app.RequireStop()

	sinks, ok := reporter.(MultiReporter)
	require.True(t, ok)
	assert.Len(t, sinks, 3)

	require.NoError(t, reporter.Report(context.Background(), sampleReport(false)))
	assert.Contains(t, out.String(), "orders-value")
}
