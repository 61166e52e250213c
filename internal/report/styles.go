package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for section headers.
	Header lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TypeCDS, TypeTRNA and TypeRRNA color-code the type column.
	TypeCDS  lipgloss.Style
	TypeTRNA lipgloss.Style
	TypeRRNA lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Warning styles parse warnings.
	Warning lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),

		TypeCDS:  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		TypeTRNA: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		TypeRRNA: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),

		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// TypeStyle returns the style for a feature type.
func (s Styles) TypeStyle(featureType string) lipgloss.Style {
	switch featureType {
	case "CDS":
		return s.TypeCDS
	case "tRNA":
		return s.TypeTRNA
	case "rRNA":
		return s.TypeRRNA
	default:
		return s.Muted
	}
}
