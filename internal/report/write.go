package report

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/unbound-force/genoreport/internal/table"
)

// Output formats accepted by Render and WriteFile.
const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatText = "text"
)

// Options controls report rendering.
type Options struct {
	Format string
	HTML   HTMLOptions
}

// ValidFormat reports whether format names a supported output format.
func ValidFormat(format string) bool {
	switch format {
	case FormatHTML, FormatJSON, FormatText:
		return true
	}
	return false
}

// Render writes the table to w in the requested format.
func Render(w io.Writer, t *table.Table, opts Options) error {
	switch opts.Format {
	case FormatHTML, "":
		return WriteHTML(w, t, opts.HTML)
	case FormatJSON:
		return WriteJSON(w, t)
	case FormatText:
		return WriteText(w, t)
	default:
		return fmt.Errorf("invalid format %q: must be 'html', 'json', or 'text'", opts.Format)
	}
}

// WriteFile renders the report in memory and then writes it to path,
// replacing any existing file. The destination is not touched when
// rendering fails.
func WriteFile(path string, t *table.Table, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, t, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing report %q: %w", path, err)
	}
	return nil
}
