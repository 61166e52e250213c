// Package report renders a feature table as HTML, JSON, or styled
// text, and writes rendered reports to disk.
package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/genoreport/internal/table"
)

// SchemaVersion is the version of the JSON report layout.
const SchemaVersion = "1.0.0"

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version  string        `json:"version"`
	Rows     []table.Row   `json:"rows"`
	Summary  table.Summary `json:"summary"`
	Warnings []string      `json:"warnings"`
}

// WriteJSON writes the table as formatted JSON to the writer.
func WriteJSON(w io.Writer, t *table.Table) error {
	rows := t.Rows
	if rows == nil {
		rows = []table.Row{}
	}
	warnings := t.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	summary := t.Summary
	if summary == nil {
		summary = table.NewSummary()
	}
	report := JSONReport{
		Version:  SchemaVersion,
		Rows:     rows,
		Summary:  summary,
		Warnings: warnings,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
