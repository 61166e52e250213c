package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	ftable "github.com/unbound-force/genoreport/internal/table"
)

// maxCell bounds the width of free-text columns in terminal tables.
const maxCell = 40

// WriteText writes the table as human-readable styled text to the
// writer: the main table, the summary table, and any warnings.
func WriteText(w io.Writer, t *ftable.Table) error {
	s := DefaultStyles()

	fmt.Fprintln(w, s.Header.Render("=== Main Table ==="))
	if len(t.Rows) == 0 {
		fmt.Fprintln(w, s.Muted.Render("    No CDS, tRNA, or rRNA features."))
	} else {
		fmt.Fprintln(w, RenderRows(t.Rows, s))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Header.Render("=== Summary ==="))
	fmt.Fprintln(w, RenderSummary(t.Summary, s))

	if len(t.Warnings) > 0 {
		fmt.Fprintln(w)
		for _, msg := range t.Warnings {
			fmt.Fprintln(w, s.Warning.Render("warning: "+msg))
		}
	}

	fmt.Fprintf(w, "\n%s\n", s.Header.Render(fmt.Sprintf(
		"%d row(s), %d tracked feature(s), %d warning(s)",
		len(t.Rows), t.Summary.Total(), len(t.Warnings))))

	return nil
}

// RenderRows renders main-table rows as a bordered terminal table.
func RenderRows(rows []ftable.Row, s Styles) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.Type,
			truncate(r.Name, maxCell),
			r.Annotator,
			r.Alignment,
			truncate(r.Function, maxCell),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if col == 0 && row >= 0 && row < len(cells) {
				return s.TypeStyle(cells[row][0])
			}
			return lipgloss.NewStyle()
		}).
		Headers("TYPE", "NAME", "ANNOTATOR", "SCORE/COVERAGE/MATCH", "FUNCTION").
		Rows(cells...).
		String()
}

// RenderSummary renders per-category counts as a bordered terminal
// table.
func RenderSummary(summary ftable.Summary, s Styles) string {
	cells := make([][]string, 0, len(summary))
	for _, cc := range summary {
		cells = append(cells, []string{string(cc.Category), strconv.Itoa(cc.Count)})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			return lipgloss.NewStyle()
		}).
		Headers("ENTRY TYPE", "COUNT").
		Rows(cells...).
		String()
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
