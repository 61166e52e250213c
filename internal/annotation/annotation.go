// Package annotation defines the genomic feature record and loads
// annotation documents from JSON.
package annotation

// Feature is one annotated genomic element from the input's
// "features" array. Fields that are absent or not JSON strings are
// left empty.
type Feature struct {
	// Index is the position of the entry in the features array,
	// counting skipped entries.
	Index int

	// Type is the category tag (e.g. "gene", "CDS", "rRNA", "tRNA").
	Type string

	// Gene is the gene name.
	Gene string

	// Product is the free-text function description.
	Product string

	// Annotator names the tool that produced the feature.
	Annotator string

	// Info is a free-text annotation blob that may carry alignment
	// metrics ("psl score ..., coverage ...%, match ...%").
	Info string
}

// Document is a loaded annotation document.
type Document struct {
	// Features holds the well-formed entries in input order.
	Features []Feature

	// Skipped counts entries of the features array that were not
	// JSON objects.
	Skipped int
}
