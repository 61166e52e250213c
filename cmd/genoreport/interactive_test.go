package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/unbound-force/genoreport/internal/annotation"
	"github.com/unbound-force/genoreport/internal/table"
)

func sampleTable() *table.Table {
	return table.Build([]annotation.Feature{
		{Type: "gene", Gene: "dnaA", Info: "psl score 98, coverage 100%, match 99%"},
		{Type: "CDS", Gene: "dnaA", Product: "chromosomal replication initiator", Annotator: "toolX"},
		{Type: "rRNA", Product: "23S ribosomal RNA"},
	}, table.Options{})
}

func TestRenderView_MainTable(t *testing.T) {
	output := renderView(sampleTable(), mainView)

	for _, want := range []string{"dnaA", "toolX", "23S ribosomal RNA", "2 row(s)"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected main view to contain %q, got:\n%s", want, output)
		}
	}
}

func TestRenderView_EmptyMainTable(t *testing.T) {
	output := renderView(table.Build(nil, table.Options{}), mainView)

	if !strings.Contains(output, "No CDS, tRNA, or rRNA features.") {
		t.Errorf("expected empty notice, got:\n%s", output)
	}
	if !strings.Contains(output, "0 row(s)") {
		t.Errorf("expected '0 row(s)', got:\n%s", output)
	}
}

func TestRenderView_Summary(t *testing.T) {
	output := renderView(sampleTable(), summaryView)

	for _, want := range []string{"gene", "CDS", "rRNA", "tRNA", "3 tracked feature(s)"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected summary view to contain %q, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "toolX") {
		t.Error("summary view should not contain main-table rows")
	}
}

func TestRenderView_Warnings(t *testing.T) {
	tbl := table.Build([]annotation.Feature{
		{Type: "gene", Gene: "polA", Info: "psl score 1 coverage 2 match 3"},
	}, table.Options{})

	output := renderView(tbl, summaryView)
	if !strings.Contains(output, "polA") {
		t.Errorf("expected warning naming polA, got:\n%s", output)
	}
}

func TestTableModel_InitializingUntilSized(t *testing.T) {
	m := newTableModel(sampleTable(), "Genomic Data")
	if m.View() != "Initializing..." {
		t.Errorf("unexpected view before sizing: %q", m.View())
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := updated.(tableModel).View()
	if !strings.Contains(view, "Genomic Data") {
		t.Errorf("expected heading in view, got:\n%s", view)
	}
	if !strings.Contains(view, "dnaA") {
		t.Errorf("expected main table in view, got:\n%s", view)
	}
}

func TestTableModel_SwitchView(t *testing.T) {
	var m tea.Model = newTableModel(sampleTable(), "Genomic Data")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.(tableModel).active != summaryView {
		t.Fatalf("expected summary view after tab")
	}
	if !strings.Contains(m.View(), "3 tracked feature(s)") {
		t.Errorf("expected summary content, got:\n%s", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.(tableModel).active != mainView {
		t.Errorf("expected main view after second tab")
	}
}

func TestTableModel_Quit(t *testing.T) {
	m := newTableModel(sampleTable(), "Genomic Data")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}
