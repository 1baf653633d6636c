package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows in aligned, fixed-width columns.
type Table struct {
	Headers  []string
	Rows     [][]string
	MaxWidth int  // Max width per column (0 = auto)
	Styled   bool // Color the header and separator
}

// ColumnWidths calculates column widths from headers and content.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	if t.MaxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], t.MaxWidth)
		}
	}
	return widths
}

// Render outputs the table to a string.
func (t *Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := t.ColumnWidths()
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(ColorSecondary)

	var sb strings.Builder

	cells := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		cells[i] = padRight(h, widths[i])
	}
	header := strings.TrimRight(strings.Join(cells, "  "), " ")

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	separator := strings.Join(seps, "──")

	if t.Styled {
		header = headerStyle.Render(header)
		separator = dimStyle.Render(separator)
	}
	sb.WriteString(header + "\n" + separator + "\n")

	for _, row := range t.Rows {
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			cells[i] = padRight(Truncate(val, widths[i]), widths[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " ") + "\n")
	}

	return sb.String()
}

// padRight pads a string to the specified display width.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
