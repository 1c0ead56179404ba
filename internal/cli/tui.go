package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/kundali/pkg/dasha"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listCurrentStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Dasha tree
// =============================================================================

// dashaNode is a flattened row with its sub-periods re-attached.
type dashaNode struct {
	Row      dasha.Row
	Children []*dashaNode
}

// buildDashaTree rebuilds the period hierarchy from depth-first rows.
func buildDashaTree(rows []dasha.Row) []*dashaNode {
	var roots []*dashaNode
	var stack []*dashaNode
	for _, r := range rows {
		n := &dashaNode{Row: r}
		for len(stack) > 0 && stack[len(stack)-1].Row.Level >= r.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)
		}
		stack = append(stack, n)
	}
	return roots
}

// =============================================================================
// DashaBrowserModel - Interactive dasha browser
// =============================================================================

// dashaFrame is one level of the browser: the periods listed and the
// cursor within them.
type dashaFrame struct {
	Title  string
	Nodes  []*dashaNode
	Cursor int
	Offset int
}

// DashaBrowserModel is the bubbletea model for browsing dasha periods.
type DashaBrowserModel struct {
	Stack  []dashaFrame
	Now    time.Time
	Height int
}

// NewDashaBrowserModel creates a browser over rows with the cursor on the
// period running at now.
func NewDashaBrowserModel(rows []dasha.Row, now time.Time) DashaBrowserModel {
	roots := buildDashaTree(rows)
	f := dashaFrame{Title: "Maha-Dasha", Nodes: roots}
	f.Cursor = runningIndex(roots, now)
	m := DashaBrowserModel{Stack: []dashaFrame{f}, Now: now, Height: 15}
	m.scroll()
	return m
}

func runningIndex(nodes []*dashaNode, t time.Time) int {
	for i, n := range nodes {
		if !t.Before(n.Row.Start) && t.Before(n.Row.End) {
			return i
		}
	}
	return 0
}

func (m DashaBrowserModel) top() *dashaFrame {
	return &m.Stack[len(m.Stack)-1]
}

// scroll keeps the cursor inside the visible window.
func (m DashaBrowserModel) scroll() {
	f := m.top()
	if f.Cursor < f.Offset {
		f.Offset = f.Cursor
	}
	if f.Cursor >= f.Offset+m.Height {
		f.Offset = f.Cursor - m.Height + 1
	}
}

func (m DashaBrowserModel) Init() tea.Cmd {
	return nil
}

func (m DashaBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.Stack = append([]dashaFrame(nil), m.Stack...)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		f := m.top()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if f.Cursor > 0 {
				f.Cursor--
			}
		case "down", "j":
			if f.Cursor < len(f.Nodes)-1 {
				f.Cursor++
			}
		case "enter", "right", "l":
			if len(f.Nodes) == 0 {
				return m, nil
			}
			n := f.Nodes[f.Cursor]
			if len(n.Children) == 0 {
				return m, nil
			}
			child := dashaFrame{
				Title:  f.Title + " › " + n.Row.Lord.String(),
				Nodes:  n.Children,
				Cursor: runningIndex(n.Children, m.Now),
			}
			m.Stack = append(m.Stack, child)
		case "backspace", "left", "h":
			if len(m.Stack) > 1 {
				m.Stack = m.Stack[:len(m.Stack)-1]
			}
		}
		m.scroll()
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		m.scroll()
	}
	return m, nil
}

func (m DashaBrowserModel) View() string {
	var b strings.Builder
	f := m.top()

	b.WriteString(StyleTitle.Render(f.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  ⌫ back  q quit"))
	b.WriteString("\n\n")

	end := f.Offset + m.Height
	if end > len(f.Nodes) {
		end = len(f.Nodes)
	}

	rows := [][]string{}
	for i := f.Offset; i < end; i++ {
		n := f.Nodes[i]
		cursor := "  "
		if i == f.Cursor {
			cursor = "▸ "
		}
		running := ""
		if !m.Now.Before(n.Row.Start) && m.Now.Before(n.Row.End) {
			running = iconCurrent
		}
		sub := ""
		if len(n.Children) > 0 {
			sub = fmt.Sprintf("%d", len(n.Children))
		}
		rows = append(rows, []string{
			cursor, running, n.Row.Lord.String(),
			n.Row.Start.Format(dateLayout), n.Row.End.Format(dateLayout),
			formatYears(n.Row.End.Sub(n.Row.Start), dasha.DefaultYearDays), sub,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Lord", "Start", "End", "Length", "Sub").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := f.Offset + row
			if idx >= len(f.Nodes) {
				return lipgloss.NewStyle()
			}
			n := f.Nodes[idx]
			switch {
			case idx == f.Cursor:
				return listSelectedStyle
			case !m.Now.Before(n.Row.Start) && m.Now.Before(n.Row.End):
				return listCurrentStyle
			case n.Row.End.Before(m.Now):
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", f.Cursor+1, len(f.Nodes))))

	return b.String()
}
