package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/kundali/pkg/strength"
)

// Palette. Green and red double as benefic and malefic.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle is used for chart names and section headings.
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell        = lipgloss.NewStyle().Padding(0, 1)
)

const (
	iconArrow   = "→"
	iconCurrent = "●"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// statusIcons maps a status line kind to its glyph and color.
var statusIcons = map[string]struct {
	glyph string
	color lipgloss.Color
}{
	"ok":   {"✓", colorGreen},
	"fail": {"✗", colorRed},
	"warn": {"!", colorYellow},
	"info": {"›", colorGray},
}

func printStatus(kind, msg string) {
	ic := statusIcons[kind]
	fmt.Println(lipgloss.NewStyle().Foreground(ic.color).Render(ic.glyph) + " " + msg)
}

func printSuccess(format string, args ...any) { printStatus("ok", fmt.Sprintf(format, args...)) }
func printError(format string, args ...any)   { printStatus("fail", fmt.Sprintf(format, args...)) }
func printInfo(format string, args ...any)    { printStatus("info", fmt.Sprintf(format, args...)) }

func printWarning(format string, args ...any) {
	printStatus("warn", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a label padded to a fixed column and its value.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// statsLine summarizes a report as "9 planets · 2 warnings · cached".
func statsLine(planets, warnings int, cached bool) string {
	var parts []string
	if planets > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d planets", planets)))
	}
	if warnings > 0 {
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if cached {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorGreen).Render(iconCached))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorGray).Render(iconFresh))
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}

// newTable returns a rounded table with gray bold headers.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			return styleCell
		})
}

// bandStyle colors a strength band from green to red.
func bandStyle(b strength.Band) lipgloss.Style {
	switch b {
	case strength.HighlyBeneficial, strength.Beneficial:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case strength.Mixed:
		return lipgloss.NewStyle().Foreground(colorYellow)
	case strength.Challenging, strength.HighlyChallenging:
		return lipgloss.NewStyle().Foreground(colorRed)
	default:
		return StyleDim
	}
}
