package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(string(ColorMuted))).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(string(ColorPrimary)))
	s.Cell = s.Cell.
		Foreground(lipgloss.Color(string(ColorPrimary)))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(string(ColorPrimary))).
		Background(lipgloss.Color("")).
		Bold(false)

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// PercentText formats a percentage with severity coloring against the
// given thresholds.
func PercentText(percent float64, warning, critical int) string {
	text := fmt.Sprintf("%5.1f%%", percent)

	var color lipgloss.Color
	switch {
	case percent >= float64(critical):
		color = ColorError
	case percent >= float64(warning):
		color = ColorWarning
	default:
		color = ColorSuccess
	}

	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// UsageBar renders a bracketed percent bar for plain CLI output.
func UsageBar(width int, percent float64) string {
	if width < 3 {
		width = 3
	}
	inner := width - 2

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(inner))
	if filled > inner {
		filled = inner
	}

	bar := "["
	for i := 0; i < inner; i++ {
		if i < filled {
			bar += "="
		} else {
			bar += " "
		}
	}
	return bar + "]"
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	for visibleLen < width {
		s += " "
		visibleLen++
	}
	return s
}

// KeyValue renders an aligned "label  value" line for CLI output.
func KeyValue(label, value string, labelWidth int) string {
	styled := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(ColorSecondary))).
		Render(label)
	return padRight(styled, labelWidth) + " " + value
}

// Header renders a bold section header for CLI output.
func Header(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(string(ColorPrimary))).
		Render(text)
}

// Muted renders dimmed helper text.
func Muted(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(ColorMuted))).
		Render(text)
}
