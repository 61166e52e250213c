// Package table derives the main feature table and the per-category
// summary counts from a list of annotation features.
package table

import (
	"fmt"

	"github.com/unbound-force/genoreport/internal/alignment"
	"github.com/unbound-force/genoreport/internal/annotation"
)

// DefaultPlaceholder is the function text used for rows without a
// product description.
const DefaultPlaceholder = "No function description available"

// Row is one line of the main table.
type Row struct {
	// Type is the feature type (CDS, tRNA or rRNA).
	Type string `json:"type"`

	// Name is the gene name, falling back to the product text.
	Name string `json:"name"`

	// Annotator names the annotating tool.
	Annotator string `json:"annotator"`

	// Alignment is the rendered score/coverage/match string for the
	// row's gene, or empty when none was found.
	Alignment string `json:"alignment"`

	// Function is the product text, falling back to the placeholder.
	Function string `json:"function"`
}

// Table is the derived report content.
type Table struct {
	Rows     []Row    `json:"rows"`
	Summary  Summary  `json:"summary"`
	Warnings []string `json:"warnings,omitempty"`
}

// Options configures Build.
type Options struct {
	// Placeholder replaces an empty product in the Function column.
	// Defaults to DefaultPlaceholder.
	Placeholder string
}

// Build derives the table in two passes over features, both in input
// order. The first pass counts categories and collects alignment
// metrics keyed by gene name (last write wins). The second pass builds
// rows for CDS, tRNA and rRNA features and joins the metrics on the
// row's display name.
func Build(features []annotation.Feature, opts Options) *Table {
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}

	t := &Table{
		Rows:    []Row{},
		Summary: NewSummary(),
	}

	byGene := make(map[string]alignment.Metrics)
	for _, f := range features {
		if c, ok := ParseCategory(f.Type); ok {
			t.Summary.increment(c)
		}

		if f.Gene == "" || !alignment.HasMarkers(f.Info) {
			continue
		}
		m, err := alignment.Parse(f.Info)
		if err != nil {
			t.Warnings = append(t.Warnings,
				fmt.Sprintf("parsing 'info' field for gene %s (feature %d): %v", f.Gene, f.Index, err))
			continue
		}
		byGene[f.Gene] = m
	}

	for _, f := range features {
		if !IsRowType(f.Type) {
			continue
		}
		t.Rows = append(t.Rows, newRow(f, byGene, opts.Placeholder))
	}

	return t
}

func newRow(f annotation.Feature, byGene map[string]alignment.Metrics, placeholder string) Row {
	name := f.Gene
	if name == "" {
		name = f.Product
	}

	function := f.Product
	if function == "" {
		function = placeholder
	}

	// Rows without a gene join on their product name.
	var aln string
	if name != "" {
		if m, ok := byGene[name]; ok {
			aln = m.String()
		}
	}

	return Row{
		Type:      f.Type,
		Name:      name,
		Annotator: f.Annotator,
		Alignment: aln,
		Function:  function,
	}
}
