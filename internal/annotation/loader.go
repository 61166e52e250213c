package annotation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrDecode is returned when the input is not a single JSON object.
var ErrDecode = errors.New("decoding JSON")

// ErrFeaturesNotList is returned when the "features" key is present
// but does not hold an array.
var ErrFeaturesNotList = errors.New("'features' key is missing or not a list")

// Load reads and decodes the annotation document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input %q: %w", path, err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses a single JSON document from r and extracts its
// feature records. Entries that are not objects are skipped and
// counted in Document.Skipped. Input must be valid UTF-8.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrDecode)
	}
	dec := json.NewDecoder(bytes.NewReader(data))

	var top map[string]json.RawMessage
	if err := dec.Decode(&top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if top == nil {
		return nil, fmt.Errorf("%w: document is null, expected an object", ErrDecode)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after top-level object", ErrDecode)
	}

	doc := &Document{Features: []Feature{}}

	raw, ok := top["features"]
	if !ok {
		return doc, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil || entries == nil {
		return nil, ErrFeaturesNotList
	}

	for i, entry := range entries {
		var fields map[string]any
		if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
			doc.Skipped++
			continue
		}
		doc.Features = append(doc.Features, Feature{
			Index:     i,
			Type:      stringField(fields, "type"),
			Gene:      stringField(fields, "gene"),
			Product:   stringField(fields, "product"),
			Annotator: stringField(fields, "annotator"),
			Info:      stringField(fields, "info"),
		})
	}

	return doc, nil
}

// stringField returns fields[key] when it is a JSON string, else "".
func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}
