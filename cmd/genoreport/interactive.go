package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/unbound-force/genoreport/internal/report"
	"github.com/unbound-force/genoreport/internal/table"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Switch   key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Switch, k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Switch:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch view")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("36")).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// view selects which table the viewer shows.
type view int

const (
	mainView view = iota
	summaryView
)

func (v view) String() string {
	if v == summaryView {
		return "Summary"
	}
	return "Main Table"
}

// tableModel is the Bubble Tea model for browsing a report's tables.
type tableModel struct {
	heading  string
	tbl      *table.Table
	active   view
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
}

func newTableModel(tbl *table.Table, heading string) tableModel {
	return tableModel{
		heading: heading,
		tbl:     tbl,
		active:  mainView,
		help:    help.New(),
		keys:    defaultKeyMap,
	}
}

// renderView renders the content of one view of the table.
func renderView(tbl *table.Table, v view) string {
	s := report.DefaultStyles()
	var sb strings.Builder

	switch v {
	case summaryView:
		sb.WriteString(report.RenderSummary(tbl.Summary, s))
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(
			fmt.Sprintf("%d tracked feature(s)", tbl.Summary.Total())))
	default:
		if len(tbl.Rows) == 0 {
			sb.WriteString(statusStyle.Render("No CDS, tRNA, or rRNA features."))
		} else {
			sb.WriteString(report.RenderRows(tbl.Rows, s))
		}
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(fmt.Sprintf("%d row(s)", len(tbl.Rows))))
	}
	for _, w := range tbl.Warnings {
		sb.WriteString("\n")
		sb.WriteString(s.Warning.Render("warning: " + w))
	}
	sb.WriteString("\n")

	return sb.String()
}

func (m tableModel) header() string {
	tabs := make([]string, 0, 2)
	for _, v := range []view{mainView, summaryView} {
		style := inactiveTabStyle
		if v == m.active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(v.String()))
	}
	return titleStyle.Render(m.heading) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m tableModel) Init() tea.Cmd {
	return nil
}

func (m tableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.header())
		footerHeight := 2
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(renderView(m.tbl, m.active))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Switch):
			if m.active == mainView {
				m.active = summaryView
			} else {
				m.active = mainView
			}
			if m.ready {
				m.viewport.SetContent(renderView(m.tbl, m.active))
				m.viewport.GotoTop()
			}
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m tableModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.header() + m.viewport.View() + "\n" + footer
}

// runInteractive launches the Bubble Tea TUI for browsing the tables.
func runInteractive(tbl *table.Table, heading string) error {
	model := newTableModel(tbl, heading)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
