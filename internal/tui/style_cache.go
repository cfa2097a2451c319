// Package tui provides the terminal user interface for almanaque.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/almanaque/internal/picker"
)

// StyleCache stores width-specific styles to avoid per-cell mutations.
type StyleCache struct {
	Banner       lipgloss.Style
	Weekday      lipgloss.Style
	WeekdayToday lipgloss.Style
	EmptyCell    lipgloss.Style
	Cursor       lipgloss.Style
	Day          lipgloss.Style
	Today        lipgloss.Style
	Unavailable  lipgloss.Style
	Selected     lipgloss.Style
	Range        lipgloss.Style
	Pressed      lipgloss.Style
}

// NewStyleCache precomputes all width-dependent styles for the grid.
func NewStyleCache(styles *Styles, width int) StyleCache {
	return StyleCache{
		Banner:       styles.BannerStyleWidth(width * 7),
		Weekday:      styles.WeekdayStyleWidth(width),
		WeekdayToday: styles.WeekdayTodayStyleWidth(width),
		EmptyCell:    styles.EmptyCellStyleWidth(width),
		Cursor:       styles.CursorStyleWidth(width),
		Day:          styles.DayStyleWidth(width),
		Today:        styles.TodayStyleWidth(width),
		Unavailable:  styles.UnavailableStyleWidth(width),
		Selected:     styles.SelectedStyleWidth(width),
		Range:        styles.RangeStyleWidth(width),
		Pressed:      styles.PressedStyleWidth(width),
	}
}

// styleFor picks the precomputed style for a cell. The cursor wins over
// the cell kind, a pressed highlight over everything but the cursor.
func (sc *StyleCache) styleFor(cell picker.Cell, cursor bool) lipgloss.Style {
	if cursor {
		return sc.Cursor
	}
	if cell.Highlight {
		return sc.Pressed
	}
	switch cell.Kind {
	case picker.CellSelected:
		return sc.Selected
	case picker.CellRange:
		return sc.Range
	case picker.CellUnavailable:
		return sc.Unavailable
	case picker.CellCurrent:
		return sc.Today
	case picker.CellEmpty:
		return sc.EmptyCell
	default:
		return sc.Day
	}
}
