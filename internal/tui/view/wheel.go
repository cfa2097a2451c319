package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WheelColumn is one column of a wheel panel: a window of row labels with
// the current row in the middle.
type WheelColumn struct {
	Title   string
	Rows    []string
	Current int // index into Rows of the committed row
}

// WheelState describes a complete wheel panel.
type WheelState struct {
	Title   string
	Columns []WheelColumn
	Focused int // index of the column keyboard input turns
	Footer  string
}

// WheelStyles carries the styles a wheel panel renders with.
type WheelStyles struct {
	Panel        lipgloss.Style
	Title        lipgloss.Style
	Row          lipgloss.Style
	Muted        lipgloss.Style
	Current      lipgloss.Style
	CurrentFocus lipgloss.Style
}

// RenderWheel renders a bordered wheel panel: title, the columns side by
// side and a key hint at the bottom. Rows past a column's edge arrive as
// empty strings and render as blanks, which is what makes the bounded year
// column read as a wheel running out of values.
func RenderWheel(state WheelState, styles WheelStyles) string {
	cols := make([]string, 0, len(state.Columns))
	for i, col := range state.Columns {
		cols = append(cols, renderWheelColumn(col, i == state.Focused, styles))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, interleaveGap(cols, styles.Row)...)

	width := lipgloss.Width(body)
	parts := []string{
		styles.Title.Width(width).Render(state.Title),
		styles.Row.Render(strings.Repeat(" ", width)),
		body,
	}
	if state.Footer != "" {
		parts = append(parts,
			styles.Row.Render(strings.Repeat(" ", width)),
			styles.Muted.Width(width).Align(lipgloss.Center).Render(state.Footer),
		)
	}
	return styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderWheelColumn(col WheelColumn, focused bool, styles WheelStyles) string {
	width := columnWidth(col)

	lines := make([]string, 0, len(col.Rows)+1)
	lines = append(lines, styles.Muted.Width(width).Align(lipgloss.Center).Render(col.Title))
	for i, row := range col.Rows {
		style := styles.Row
		switch {
		case i == col.Current && focused:
			style = styles.CurrentFocus
		case i == col.Current:
			style = styles.Current
		case row == "":
			style = styles.Muted
		}
		lines = append(lines, style.Width(width).Align(lipgloss.Center).Render(row))
	}
	return strings.Join(lines, "\n")
}

func columnWidth(col WheelColumn) int {
	width := lipgloss.Width(col.Title)
	for _, row := range col.Rows {
		if w := lipgloss.Width(row); w > width {
			width = w
		}
	}
	return width + 2
}

// interleaveGap inserts a one-cell styled gap between columns so the panel
// background stays unbroken. The gap spans the full column height; joining
// a shorter block would pad with unstyled whitespace.
func interleaveGap(cols []string, gap lipgloss.Style) []string {
	if len(cols) < 2 {
		return cols
	}
	rows := 1
	for _, c := range cols {
		if n := strings.Count(c, "\n") + 1; n > rows {
			rows = n
		}
	}
	sepLines := make([]string, rows)
	for i := range sepLines {
		sepLines[i] = gap.Render(" ")
	}
	sep := strings.Join(sepLines, "\n")

	out := make([]string, 0, len(cols)*2-1)
	for i, c := range cols {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, c)
	}
	return out
}
