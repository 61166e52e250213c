package alignment

import (
	"errors"
	"strings"
	"testing"
)

func TestHasMarkers(t *testing.T) {
	tests := []struct {
		info string
		want bool
	}{
		{"psl score 98, coverage 100%, match 99%", true},
		{"match 99%, coverage 100%, psl score 98,", true},
		{"psl score 98, coverage 100%", false},
		{"PSL SCORE 98, COVERAGE 100%, MATCH 99%", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasMarkers(tt.info); got != tt.want {
			t.Errorf("HasMarkers(%q) = %v, want %v", tt.info, got, tt.want)
		}
	}
}

func TestParse_WellFormed(t *testing.T) {
	m, err := Parse("psl score 98, coverage 100%, match 99%")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := Metrics{Score: "98", Coverage: "100%", Match: "99%"}
	if m != want {
		t.Errorf("Parse = %+v, want %+v", m, want)
	}
	if got := m.String(); got != "psl score 98, coverage 100%, match 99%" {
		t.Errorf("String() = %q", got)
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	m, err := Parse("psl score   1234.5  ,coverage\t87.3 %; match  96.10%")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := Metrics{Score: "1234.5", Coverage: "87.3%", Match: "96.10%"}
	if m != want {
		t.Errorf("Parse = %+v, want %+v", m, want)
	}
}

func TestParse_EmbeddedInLongerText(t *testing.T) {
	info := "similar to dnaA; psl score 512, coverage 98.2%, match 97.5% (blat)"
	m, err := Parse(info)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.String() != "psl score 512, coverage 98.2%, match 97.5%" {
		t.Errorf("String() = %q", m.String())
	}
}

func TestParse_MarkersInAnyOrder(t *testing.T) {
	m, err := Parse("match 91%, coverage 80%, psl score 40,")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := Metrics{Score: "40", Coverage: "80%", Match: "91%"}
	if m != want {
		t.Errorf("Parse = %+v, want %+v", m, want)
	}
}

func TestParse_MissingDelimiter(t *testing.T) {
	tests := []struct {
		name   string
		info   string
		metric string
	}{
		{"no comma after score", "psl score 98 coverage 100% match 99%", "score"},
		{"no percent after coverage", "psl score 98, match 99, coverage 100", "coverage"},
		{"no percent after match", "coverage 100%, psl score 98, match 99", "match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.info)
			if !errors.Is(err, ErrMissingDelimiter) {
				t.Fatalf("expected ErrMissingDelimiter, got %v", err)
			}
			if !strings.HasPrefix(err.Error(), tt.metric) {
				t.Errorf("error should name %q, got: %s", tt.metric, err)
			}
		})
	}
}
