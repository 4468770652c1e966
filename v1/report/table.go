package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Aleph-Alpha/schemasync/v1/reconciler"
	"github.com/jedib0t/go-pretty/v6/table"
)

// DefaultCompatibility is printed for subjects without an explicit level.
const DefaultCompatibility = "default"

// TableReporter prints reports as console tables.
type TableReporter struct {
	out io.Writer
}

// NewTableReporter writes to out, or to stdout when out is nil.
func NewTableReporter(out io.Writer) *TableReporter {
	if out == nil {
		out = os.Stdout
	}
	return &TableReporter{out: out}
}

func (r *TableReporter) Report(_ context.Context, rep *reconciler.Report) error {
	if rep == nil {
		return nil
	}
	if rep.NothingToRemove() {
		_, err := fmt.Fprintln(r.out, "Nothing to remove.")
		return err
	}
	if len(rep.Outcomes) == 0 {
		return nil
	}

	t := r.newWriter()
	title := string(rep.Operation)
	if rep.DryRun {
		title += " (dry-run)"
	}
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Subject", "Type", "Compatibility Mode", "Outcome", "Version"})
	for _, o := range rep.Outcomes {
		t.AppendRow(table.Row{o.Subject, schemaType(o), compatibility(o), outcomeCell(o), versionCell(o)})
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d changed", len(rep.Subjects())), ""})
	t.Render()
	return nil
}

// SubjectRow is one line of a subject listing.
type SubjectRow struct {
	Subject       string
	Type          string
	Compatibility string
}

// WriteSubjects prints a subject listing.
func (r *TableReporter) WriteSubjects(rows []SubjectRow) {
	t := r.newWriter()
	t.AppendHeader(table.Row{"Subject", "Type", "Compatibility Mode"})
	for _, row := range rows {
		level := row.Compatibility
		if level == "" {
			level = DefaultCompatibility
		}
		t.AppendRow(table.Row{row.Subject, row.Type, level})
	}
	t.Render()
}

func (r *TableReporter) newWriter() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	return t
}

func schemaType(o reconciler.Outcome) string {
	if o.Schema == nil || o.Schema.Type == "" {
		return "-"
	}
	return o.Schema.Type.String()
}

func compatibility(o reconciler.Outcome) string {
	if o.Compatibility != "" {
		return o.Compatibility
	}
	if o.Schema != nil && o.Schema.CompatibilityMode != "" {
		return o.Schema.CompatibilityMode.String()
	}
	return DefaultCompatibility
}

func outcomeCell(o reconciler.Outcome) string {
	if o.Kind == reconciler.OutcomeFailed && o.Err != nil {
		return fmt.Sprintf("%s: %v", o.Kind, o.Err)
	}
	return o.Kind.String()
}

func versionCell(o reconciler.Outcome) string {
	if o.Version == 0 {
		return ""
	}
	return strconv.Itoa(o.Version)
}
