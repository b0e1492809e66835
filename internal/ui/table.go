package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
// A zero Width sizes the column to fit its widest cell.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a non-focused Bubbles table with the default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: fitWidth(c, i, rows)}
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
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.Foreground(ColorPrimary)
	// Nothing is ever selected in CLI output; keep row 0 unhighlighted.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

func fitWidth(c TableColumn, idx int, rows []table.Row) int {
	if c.Width > 0 {
		return c.Width
	}
	w := lipgloss.Width(c.Title)
	for _, r := range rows {
		if idx < len(r) {
			w = max(w, lipgloss.Width(r[idx]))
		}
	}
	return w
}

// RenderSimpleTable renders a non-interactive table string.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	return NewTable(columns, tableRows).View()
}

// Muted renders s in the muted color.
func Muted(s string) string {
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(s)
}
