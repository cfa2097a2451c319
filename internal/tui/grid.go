// Package tui provides the terminal user interface for almanaque.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/almanaque/internal/dateutil"
	"github.com/javiermolinar/almanaque/internal/pager"
	"github.com/javiermolinar/almanaque/internal/picker"
	"github.com/javiermolinar/almanaque/internal/tui/view"
)

// wheelVisibleRows is the window of rows a wheel column shows; the
// current row sits in the middle.
const wheelVisibleRows = 7

// renderGridArea renders the scrollable region between the weekday
// header and the footer: month pages, or a wheel panel when one is
// open. During a fade the area stays blank so mode switches read as a
// clean cut.
func (m Model) renderGridArea() string {
	height := m.gridHeight()
	if height <= 0 {
		return ""
	}
	if !m.layout.Ready() || m.window == nil || m.fading > 0 {
		return m.blankGridArea(height)
	}

	switch m.mode {
	case ModeWheel:
		return m.wheelPanel(height)
	case ModeTime:
		return m.timePanel(height)
	}

	if m.layout.Axis() == pager.AxisHorizontal {
		return m.renderHorizontalGrid(height)
	}
	return m.renderVerticalGrid(height)
}

func (m Model) blankGridArea(height int) string {
	blank := m.renderCache.BlankLine
	if blank == "" {
		blank = m.styles.ViewportStyle.Render(strings.Repeat(" ", max(0, m.width)))
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	return strings.Join(lines, "\n")
}

// renderVerticalGrid paints the viewport rows [offset, offset+height)
// of the month canvas. Pages are rendered once and sliced per row.
func (m Model) renderVerticalGrid(height int) string {
	g := m.layout.Geometry()
	offset := m.scroller.Offset()

	lines := make([]string, 0, height)
	pageIdx := -1
	var pageLines []string
	for row := offset; row < offset+height; row++ {
		page := row / g.PageLength
		if page != pageIdx {
			pageIdx = page
			section := m.window.SectionForPage(page, m.scroller.CurrentPage())
			pageLines = m.renderPage(section, g.PageLength)
		}
		lines = append(lines, pageLines[row-page*g.PageLength])
	}
	return strings.Join(lines, "\n")
}

// renderHorizontalGrid splices the two pages that can straddle the
// viewport during a horizontal page animation.
func (m Model) renderHorizontalGrid(height int) string {
	g := m.layout.Geometry()
	offset := m.scroller.Offset()
	width := g.PageLength

	page := offset / width
	k := offset - page*width

	left := m.renderPage(m.window.SectionForPage(page, m.scroller.CurrentPage()), height)
	if k == 0 {
		return strings.Join(left, "\n")
	}
	right := m.renderPage(m.window.SectionForPage(page+1, m.scroller.CurrentPage()), height)

	lines := make([]string, height)
	for i := 0; i < height; i++ {
		lines[i] = ansi.Cut(left[i], k, width) + ansi.Cut(right[i], 0, k)
	}
	return strings.Join(lines, "\n")
}

// renderPage renders one month page as exactly length full-width lines:
// the month banner, six weeks of cells, blank fill below.
func (m Model) renderPage(section *picker.MonthSection, length int) []string {
	lines := make([]string, 0, length)
	if section != nil {
		lines = append(lines, m.renderBanner(section.Month))
		rows := m.layout.RowsFor(section.CellCount())
		rowH := m.layout.RowHeightFor(section.CellCount())
		for row := 0; row < rows; row++ {
			lines = append(lines, m.renderRow(section, row, rowH)...)
		}
	}
	for len(lines) < length {
		lines = append(lines, m.renderCache.BlankLine)
	}
	return lines[:length]
}

func (m Model) renderBanner(month time.Time) string {
	return m.renderCache.LeftPad +
		m.styleCache.Banner.Render(month.Format("January 2006")) +
		m.renderCache.RightPad
}

// renderRow renders one week row as rowH lines, pulling cell buffers
// from the pool and releasing them once their lines are spliced in.
func (m Model) renderRow(section *picker.MonthSection, row, rowH int) []string {
	g := m.layout.Geometry()

	buffers := make([]*cellBuffer, pager.DaysPerWeek)
	for col := 0; col < pager.DaysPerWeek; col++ {
		cell, ok := section.CellAt(row*pager.DaysPerWeek + col)
		if !ok {
			continue
		}
		buf := m.cellPool.acquire(cell.Kind)
		cursor := dateutil.SameDay(cell.Date, m.cursor)
		buf.configure(cell, &m.styleCache, g.ColWidth, rowH, cursor)
		buffers[col] = buf
	}

	lines := make([]string, rowH)
	for l := 0; l < rowH; l++ {
		var b strings.Builder
		b.WriteString(m.renderCache.LeftPad)
		for _, buf := range buffers {
			if buf == nil || l >= len(buf.lines) {
				b.WriteString(m.renderCache.EmptyCell)
				continue
			}
			b.WriteString(buf.lines[l])
		}
		b.WriteString(m.renderCache.RightPad)
		lines[l] = b.String()
	}

	for _, buf := range buffers {
		if buf != nil {
			m.cellPool.release(buf)
		}
	}
	return lines
}

// weekdayLine renders the fixed weekday header, with today's column
// called out.
func (m *Model) weekdayLine() string {
	g := m.layout.Geometry()
	first := m.controller.FirstWeekday()
	todayCol := dateutil.WeekdayIndex(time.Now(), first)
	rightPad := g.Bounds.Width - g.LeftPad - g.ColWidth*pager.DaysPerWeek

	var b strings.Builder
	b.WriteString(m.styles.ViewportStyle.Render(strings.Repeat(" ", max(0, g.LeftPad))))
	for col := 0; col < pager.DaysPerWeek; col++ {
		style := m.styleCache.Weekday
		if col == todayCol {
			style = m.styleCache.WeekdayToday
		}
		b.WriteString(style.Render(dateutil.WeekdayShort(first, col)))
	}
	b.WriteString(m.styles.ViewportStyle.Render(strings.Repeat(" ", max(0, rightPad))))
	return b.String()
}

// wheelPanel renders the month/year wheel centered in the grid area.
func (m Model) wheelPanel(height int) string {
	if m.wheel == nil {
		return m.blankGridArea(height)
	}
	half := wheelVisibleRows / 2
	months := make([]string, 0, wheelVisibleRows)
	years := make([]string, 0, wheelVisibleRows)
	for i := -half; i <= half; i++ {
		months = append(months, monthRowLabel(m.wheel, m.wheel.MonthRow()+i))
		years = append(years, yearRowLabel(m.wheel, m.wheel.YearRow()+i))
	}

	state := view.WheelState{
		Title: "Jump to month",
		Columns: []view.WheelColumn{
			{Title: "Month", Rows: months, Current: half},
			{Title: "Year", Rows: years, Current: half},
		},
		Focused: m.wheelCol,
		Footer:  "j/k turn  h/l column  enter close",
	}
	panel := view.RenderWheel(state, m.wheelStyles())
	return view.PlaceBox(m.width, height, lipgloss.Center, lipgloss.Center, panel, m.styles.colorBg)
}

// timePanel renders the hour/minute wheel centered in the grid area.
func (m Model) timePanel(height int) string {
	if m.timeWheel == nil {
		return m.blankGridArea(height)
	}
	half := wheelVisibleRows / 2
	hours := make([]string, 0, wheelVisibleRows)
	minutes := make([]string, 0, wheelVisibleRows)
	for i := -half; i <= half; i++ {
		hours = append(hours, clockRowLabel(m.timeWheel.HourRow()+i, m.timeWheel.HourRowCount(), 1))
		minutes = append(minutes, clockRowLabel(m.timeWheel.MinuteRow()+i, m.timeWheel.MinuteRowCount(), m.timeWheel.Interval()))
	}

	state := view.WheelState{
		Title: m.timeWheel.Value().Format("Mon Jan 2 15:04"),
		Columns: []view.WheelColumn{
			{Title: "Hour", Rows: hours, Current: half},
			{Title: "Min", Rows: minutes, Current: half},
		},
		Focused: m.timeCol,
		Footer:  "j/k turn  h/l column  enter accept",
	}
	panel := view.RenderWheel(state, m.wheelStyles())
	return view.PlaceBox(m.width, height, lipgloss.Center, lipgloss.Center, panel, m.styles.colorBg)
}

func (m Model) wheelStyles() view.WheelStyles {
	return view.WheelStyles{
		Panel:        m.styles.WheelPanelStyle,
		Title:        m.styles.WheelTitleStyle,
		Row:          m.styles.WheelRowStyle,
		Muted:        m.styles.WheelMutedStyle,
		Current:      m.styles.WheelCurrentStyle,
		CurrentFocus: m.styles.WheelCurrentFocusStyle,
	}
}

// monthRowLabel decodes a month column row into its month name, or blank
// past the column's edges.
func monthRowLabel(w *picker.Wheel, row int) string {
	if row < 0 || row >= w.MonthRowCount() {
		return ""
	}
	return time.Month(row%12 + 1).String()
}

func yearRowLabel(w *picker.Wheel, row int) string {
	if row < 0 || row >= w.YearRowCount() {
		return ""
	}
	return strconv.Itoa(w.YearForRow(row))
}

func clockRowLabel(row, count, step int) string {
	if row < 0 || row >= count {
		return ""
	}
	return fmt.Sprintf("%02d", row*step)
}
