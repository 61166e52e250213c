package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/unbound-force/genoreport/internal/table"
)

//go:embed assets/report.html.tmpl
var htmlSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlSource))

// HTMLOptions sets the page text of an HTML report.
type HTMLOptions struct {
	Title   string
	Heading string
}

type htmlData struct {
	Title   string
	Heading string
	Rows    []table.Row
	Summary table.Summary
}

// WriteHTML writes the table as a self-contained HTML page with a
// "Main Table" tab and a "Summary" tab. The main table is shown on
// load. All row text is HTML-escaped.
func WriteHTML(w io.Writer, t *table.Table, opts HTMLOptions) error {
	data := htmlData{
		Title:   opts.Title,
		Heading: opts.Heading,
		Rows:    t.Rows,
		Summary: t.Summary,
	}
	if err := htmlTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}
	return nil
}
