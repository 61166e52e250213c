// Package alignment extracts PSL alignment-quality metrics (score,
// coverage, match) from the free-text info field of a feature.
//
// The info text is semi-structured, e.g.
//
//	"psl score 98, coverage 100%, match 99%"
//
// Each metric is located independently: the score runs from its marker
// to the next comma, coverage and match run from their markers to the
// next percent sign.
package alignment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Marker strings that must all appear in an info field before it is
// considered to carry alignment metrics.
const (
	ScoreMarker    = "psl score"
	CoverageMarker = "coverage"
	MatchMarker    = "match"
)

// ErrMissingDelimiter is returned by Parse when a marker is present
// but not followed by its terminating delimiter.
var ErrMissingDelimiter = errors.New("missing delimiter")

var (
	scorePattern    = regexp.MustCompile(`psl score(?P<score>[^,]*),`)
	coveragePattern = regexp.MustCompile(`coverage(?P<coverage>[^%]*)%`)
	matchPattern    = regexp.MustCompile(`match(?P<match>[^%]*)%`)
)

// Metrics holds the display values of one alignment.
type Metrics struct {
	Score    string
	Coverage string
	Match    string
}

// String renders the metrics as "psl score S, coverage C, match M".
func (m Metrics) String() string {
	return fmt.Sprintf("psl score %s, coverage %s, match %s", m.Score, m.Coverage, m.Match)
}

// HasMarkers reports whether info mentions all three metric markers.
// Matching is case-sensitive.
func HasMarkers(info string) bool {
	return strings.Contains(info, ScoreMarker) &&
		strings.Contains(info, CoverageMarker) &&
		strings.Contains(info, MatchMarker)
}

// Parse extracts the metrics from info. Coverage and match values are
// returned with a trailing "%".
func Parse(info string) (Metrics, error) {
	score, err := capture(scorePattern, "score", info)
	if err != nil {
		return Metrics{}, err
	}
	coverage, err := capture(coveragePattern, "coverage", info)
	if err != nil {
		return Metrics{}, err
	}
	match, err := capture(matchPattern, "match", info)
	if err != nil {
		return Metrics{}, err
	}

	return Metrics{
		Score:    score,
		Coverage: coverage + "%",
		Match:    match + "%",
	}, nil
}

// capture returns the trimmed value of the named group in re's first
// match against s.
func capture(re *regexp.Regexp, group, s string) (string, error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%s: %w", group, ErrMissingDelimiter)
	}
	return strings.TrimSpace(m[re.SubexpIndex(group)]), nil
}
