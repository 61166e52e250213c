package table

// Category is a feature type tracked by the summary table.
type Category string

// Tracked categories.
const (
	Gene Category = "gene"
	CDS  Category = "CDS"
	RRNA Category = "rRNA"
	TRNA Category = "tRNA"
)

// Categories lists the tracked categories in summary display order.
var Categories = []Category{Gene, CDS, RRNA, TRNA}

// RowTypes lists the feature types that produce main-table rows.
var RowTypes = []Category{CDS, TRNA, RRNA}

// ParseCategory returns the tracked category for a feature type.
// Matching is exact and case-sensitive.
func ParseCategory(featureType string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == featureType {
			return c, true
		}
	}
	return "", false
}

// IsRowType reports whether features of this type appear in the main
// table.
func IsRowType(featureType string) bool {
	for _, c := range RowTypes {
		if string(c) == featureType {
			return true
		}
	}
	return false
}

// CategoryCount pairs a category with its feature count.
type CategoryCount struct {
	Category Category `json:"type"`
	Count    int      `json:"count"`
}

// Summary holds one count per tracked category, in Categories order.
type Summary []CategoryCount

// NewSummary returns a summary with every category at zero.
func NewSummary() Summary {
	s := make(Summary, len(Categories))
	for i, c := range Categories {
		s[i] = CategoryCount{Category: c}
	}
	return s
}

// Count returns the count for c, or 0 for an untracked category.
func (s Summary) Count(c Category) int {
	for _, cc := range s {
		if cc.Category == c {
			return cc.Count
		}
	}
	return 0
}

// Total returns the sum of all counts.
func (s Summary) Total() int {
	total := 0
	for _, cc := range s {
		total += cc.Count
	}
	return total
}

func (s Summary) increment(c Category) {
	for i := range s {
		if s[i].Category == c {
			s[i].Count++
			return
		}
	}
}
