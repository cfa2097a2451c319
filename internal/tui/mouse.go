package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/almanaque/internal/pager"
	"github.com/javiermolinar/almanaque/internal/tui/commands"
)

// wheelScrollRows is how many canvas rows one wheel notch scrolls on
// the vertical axis.
const wheelScrollRows = 3

// handleMouseMsg handles mouse input. Only the calendar grid reacts to
// the mouse; wheels, prompt and help are keyboard-only.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeGrid {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.scrollNotch(-1)
		case tea.MouseButtonWheelDown:
			return m.scrollNotch(1)
		case tea.MouseButtonLeft:
			return m.pressAt(msg.X, msg.Y)
		}

	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			return m.releaseAt(msg.X, msg.Y)
		}
	}
	return m, nil
}

// scrollNotch advances the calendar one wheel notch. Vertical layouts
// scroll by rows, horizontal layouts flip whole pages.
func (m Model) scrollNotch(dir int) (tea.Model, tea.Cmd) {
	if !m.scroller.Ready() || m.window == nil {
		return m, nil
	}

	if m.layout.Axis() == pager.AxisHorizontal {
		target := clampInt(m.scroller.PreferredPage()+dir, 0, m.scroller.PageCount()-1)
		if target == m.scroller.PreferredPage() {
			return m, nil
		}
		cmds := []tea.Cmd{
			m.applyReload(m.scroller.SetCurrentPage(target, true)),
			m.handleControllerEvents(m.controller.VisibleDateFromScroll(m.window.MonthFor(target))),
		}
		if m.scroller.Animating() {
			cmds = append(cmds, commands.ScrollTick())
		}
		LogScroll(m.scroller.Offset(), target, "mouse wheel")
		return m, tea.Batch(cmds...)
	}

	reload := m.scroller.ScrollBy(dir * wheelScrollRows)
	cmds := []tea.Cmd{
		m.applyReload(reload),
		m.handleControllerEvents(m.controller.VisibleDateFromScroll(m.window.MonthFor(m.scroller.CurrentPage()))),
	}
	LogScroll(m.scroller.Offset(), m.scroller.CurrentPage(), "mouse wheel")
	return m, tea.Batch(cmds...)
}

// pressAt marks the day under the pointer as pressed so the grid can
// highlight it until release.
func (m Model) pressAt(x, y int) (tea.Model, tea.Cmd) {
	date, ok := m.dateAt(x, y)
	if !ok {
		return m, nil
	}
	if m.controller.Press(date) && m.window != nil {
		m.window.Rebuild(m.controller, m.scroller.CurrentPage())
	}
	return m, nil
}

// releaseAt clears the pressed highlight and, when the pointer is still
// on a day cell, taps it.
func (m Model) releaseAt(x, y int) (tea.Model, tea.Cmd) {
	m.controller.Release()

	var cmd tea.Cmd
	if date, ok := m.dateAt(x, y); ok {
		m.cursor = date
		LogCursorMove(date, "mouse tap")
		cmd = m.handleControllerEvents(m.controller.Tap(date))
	}
	if m.window != nil && m.scroller.Ready() {
		m.window.Rebuild(m.controller, m.scroller.CurrentPage())
	}
	return m, cmd
}

// dateAt hit-tests screen coordinates against the visible grid and
// returns the day under them.
func (m *Model) dateAt(x, y int) (time.Time, bool) {
	if m.window == nil || !m.scroller.Ready() {
		return time.Time{}, false
	}
	pt := pager.Point{X: x, Y: y - chromeTop}
	page, index, ok := m.layout.CellAt(pt, m.scroller.Offset(), m.cellCountFor)
	if !ok {
		return time.Time{}, false
	}
	section := m.window.SectionForPage(page, m.scroller.CurrentPage())
	if section == nil {
		return time.Time{}, false
	}
	return section.DateAt(index)
}

// cellCountFor reports how many day cells the given page holds, for
// hit-testing pages of uneven length.
func (m *Model) cellCountFor(page int) int {
	section := m.window.SectionForPage(page, m.scroller.CurrentPage())
	if section == nil {
		return 0
	}
	return section.CellCount()
}
