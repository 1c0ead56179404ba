package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/kundali/pkg/dasha"
	"github.com/matzehuels/kundali/pkg/graha"
)

func sampleRows(t *testing.T) ([]dasha.Row, time.Time) {
	t.Helper()
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	tree, err := dasha.Generate(0, birth, dasha.Options{Levels: 2})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return dasha.Flatten(tree, dasha.FlattenOptions{}), birth
}

func TestBuildDashaTree(t *testing.T) {
	rows, _ := sampleRows(t)
	roots := buildDashaTree(rows)
	if len(roots) != 9 {
		t.Fatalf("len(roots) = %d, want 9", len(roots))
	}
	if roots[0].Row.Lord != graha.Ketu || roots[1].Row.Lord != graha.Venus {
		t.Errorf("first lords = %v, %v, want Ketu, Venus", roots[0].Row.Lord, roots[1].Row.Lord)
	}
	for _, r := range roots {
		if len(r.Children) != 9 {
			t.Errorf("%v has %d children, want 9", r.Row.Lord, len(r.Children))
		}
		if r.Children[0].Row.Lord != r.Row.Lord {
			t.Errorf("%v first antar = %v, want %v", r.Row.Lord, r.Children[0].Row.Lord, r.Row.Lord)
		}
	}
}

func TestDashaBrowserStartsOnRunningPeriod(t *testing.T) {
	rows, birth := sampleRows(t)
	m := NewDashaBrowserModel(rows, birth.AddDate(10, 0, 0))
	if got := m.top().Cursor; got != 1 {
		t.Errorf("Cursor = %d, want 1 (Venus)", got)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDashaBrowserNavigation(t *testing.T) {
	rows, birth := sampleRows(t)
	start := NewDashaBrowserModel(rows, birth.AddDate(1, 0, 0))

	next, _ := start.Update(key("down"))
	m := next.(DashaBrowserModel)
	if got := m.top().Cursor; got != 1 {
		t.Fatalf("Cursor after down = %d, want 1", got)
	}
	if got := start.top().Cursor; got != 0 {
		t.Errorf("original model Cursor = %d, want 0", got)
	}

	next, _ = m.Update(key("enter"))
	m = next.(DashaBrowserModel)
	if len(m.Stack) != 2 {
		t.Fatalf("len(Stack) after enter = %d, want 2", len(m.Stack))
	}
	if f := m.top(); len(f.Nodes) != 9 || f.Nodes[0].Row.Lord != graha.Venus {
		t.Errorf("child frame = %d nodes starting %v, want 9 starting Venus", len(f.Nodes), f.Nodes[0].Row.Lord)
	}
	if !strings.Contains(m.View(), "Venus") {
		t.Error("View() does not mention Venus")
	}

	next, _ = m.Update(key("backspace"))
	m = next.(DashaBrowserModel)
	if len(m.Stack) != 1 || m.top().Cursor != 1 {
		t.Errorf("after back: len(Stack) = %d, Cursor = %d, want 1, 1", len(m.Stack), m.top().Cursor)
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q returned nil command, want tea.Quit")
	}
}

func TestDashaBrowserWindowSize(t *testing.T) {
	rows, birth := sampleRows(t)
	m := NewDashaBrowserModel(rows, birth)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 6})
	if got := next.(DashaBrowserModel).Height; got != 5 {
		t.Errorf("Height = %d, want 5", got)
	}
}

func TestDashaTableDepth(t *testing.T) {
	rows, birth := sampleRows(t)
	out := dashaTable(rows, dasha.Maha, birth)
	if strings.Contains(out, "Antar") {
		t.Error("depth 1 table lists Antar rows")
	}
	out = dashaTable(rows, dasha.Antar, birth)
	if !strings.Contains(out, "Ketu / Venus") {
		t.Error("depth 2 table missing Ketu / Venus antar")
	}
}
