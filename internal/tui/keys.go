package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/almanaque/internal/dateutil"
	"github.com/javiermolinar/almanaque/internal/pager"
	"github.com/javiermolinar/almanaque/internal/picker"
	"github.com/javiermolinar/almanaque/internal/tui/commands"
	"github.com/javiermolinar/almanaque/internal/tui/input"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeWheel:
		return m.handleWheelKeys(msg)
	case ModeTime:
		return m.handleTimeKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleGridKeys(msg)
	}
}

// handleGridKeys handles keys in the calendar grid.
func (m Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "enter":
		m.accepted = true
		LogSelection(m.SelectionString(), "accept")
		return m, tea.Quit

	// Navigation
	case "h", "left":
		return m.moveCursor(-1)
	case "l", "right":
		return m.moveCursor(1)
	case "j", "down":
		return m.moveCursor(7)
	case "k", "up":
		return m.moveCursor(-7)

	case "H", "shift+left", "pgup":
		return m.shiftMonth(-1)
	case "L", "shift+right", "pgdown":
		return m.shiftMonth(1)

	case " ":
		return m.tapCursor()

	case "w":
		return m.toggleWheel()

	case "t":
		return m.toggleTimeMode()

	case "g":
		LogModeChange(m.mode, ModePrompt, "goto prompt")
		m.mode = ModePrompt
		m.prompt.Focus()
		return m, textinput.Blink

	case "y":
		return m.yankSelection()

	case "r":
		return m.reload()

	case "?":
		LogModeChange(m.mode, ModeHelp, "help")
		m.mode = ModeHelp
		return m, nil
	}
	return m, nil
}

// moveCursor moves the cursor by the given number of days, clamped to
// the available range, scrolling as needed to keep it on screen.
func (m Model) moveCursor(days int) (tea.Model, tea.Cmd) {
	next := dateutil.ClampToRange(dateutil.AddDays(m.cursor, days), m.controller.AvailableRange())
	if dateutil.SameDay(next, m.cursor) {
		return m, nil
	}
	monthChanged := !dateutil.SameMonth(next, m.cursor)
	m.cursor = next
	LogCursorMove(next, "cursor move")

	var cmds []tea.Cmd
	if monthChanged {
		cmds = append(cmds, m.handleControllerEvents(m.controller.SetVisibleDate(next)))
	}
	if m.layout.Axis() == pager.AxisHorizontal {
		if monthChanged {
			cmds = append(cmds, m.applyReload(m.scroller.SetCurrentPage(m.pageFor(next), true)))
			if m.scroller.Animating() {
				cmds = append(cmds, commands.ScrollTick())
			}
		}
		return m, tea.Batch(cmds...)
	}
	cmds = append(cmds, m.ensureCursorVisible())
	return m, tea.Batch(cmds...)
}

// shiftMonth jumps the cursor a whole month, keeping the day of month
// where the target month allows it.
func (m Model) shiftMonth(delta int) (tea.Model, tea.Cmd) {
	next := dateutil.ClampToRange(dateutil.AddMonths(m.cursor, delta), m.controller.AvailableRange())
	if dateutil.SameDay(next, m.cursor) {
		return m, nil
	}
	m.cursor = next
	LogCursorMove(next, "month shift")

	cmds := []tea.Cmd{
		m.handleControllerEvents(m.controller.SetVisibleDate(next)),
		m.applyReload(m.scroller.SetCurrentPage(m.pageFor(next), true)),
	}
	if m.scroller.Animating() {
		cmds = append(cmds, commands.ScrollTick())
	}
	return m, tea.Batch(cmds...)
}

// ensureCursorVisible scrolls the smallest distance that brings the
// cursor's cell fully into the viewport. Used on the vertical axis
// where the cursor can walk off either edge of the visible canvas.
func (m *Model) ensureCursorVisible() tea.Cmd {
	if !m.scroller.Ready() || m.window == nil {
		return nil
	}
	page := m.pageFor(m.cursor)
	section := m.window.SectionForPage(page, m.scroller.CurrentPage())
	if section == nil {
		// Cursor left the materialized window entirely; snap.
		return m.applyReload(m.scroller.SetCurrentPage(page, false))
	}
	idx := section.IndexOf(m.cursor)
	if idx < 0 {
		return nil
	}
	frame := m.layout.CellFrame(idx, section.CellCount())
	top := m.layout.PageOffset(page) + frame.Y
	bottom := top + frame.H
	viewTop := m.scroller.Offset()
	viewBottom := viewTop + m.layout.Geometry().Bounds.Height

	delta := 0
	switch {
	case top < viewTop:
		delta = top - viewTop
	case bottom > viewBottom:
		delta = bottom - viewBottom
	}
	if delta == 0 {
		return nil
	}
	return m.applyReload(m.scroller.ScrollBy(delta))
}

// tapCursor taps the cursor's date, either toggling selection or
// reporting why nothing happened.
func (m Model) tapCursor() (tea.Model, tea.Cmd) {
	events := m.controller.Tap(m.cursor)
	if len(events) == 0 && !m.controller.Selectable(m.cursor) {
		return m, m.setStatus("Unavailable: " + m.cursor.Format("Jan 2"))
	}
	return m, m.handleControllerEvents(events)
}

// toggleWheel opens or closes the month/year wheel.
func (m Model) toggleWheel() (tea.Model, tea.Cmd) {
	if m.mode == ModeWheel {
		return m.closeWheel()
	}
	if m.wheel == nil {
		m.wheel = picker.NewWheel(m.controller.AvailableRange(), m.wheelSeed())
	} else {
		m.wheel.Reproject(m.controller.VisibleDate())
	}
	m.wheelCol = 0
	LogModeChange(m.mode, ModeWheel, "wheel open")
	m.mode = ModeWheel
	m.fading = fadeFrames
	return m, commands.FadeTick()
}

func (m Model) closeWheel() (tea.Model, tea.Cmd) {
	LogModeChange(m.mode, ModeGrid, "wheel close")
	m.wheel = nil
	m.mode = ModeGrid
	m.fading = fadeFrames
	m.alignCursorToVisible()
	return m, commands.FadeTick()
}

// wheelSeed picks the date the wheel opens on.
func (m *Model) wheelSeed() time.Time {
	if sel := m.controller.Selected(); sel != nil {
		return sel.Start
	}
	return m.controller.VisibleDate()
}

// alignCursorToVisible moves the cursor into the visible month,
// keeping the day of month where possible.
func (m *Model) alignCursorToVisible() {
	visible := m.controller.VisibleDate()
	if dateutil.SameMonth(m.cursor, visible) {
		return
	}
	day := m.cursor.Day()
	if dim := dateutil.DaysInMonth(visible); day > dim {
		day = dim
	}
	next := time.Date(visible.Year(), visible.Month(), day, 0, 0, 0, 0, m.cursor.Location())
	m.cursor = dateutil.ClampToRange(next, m.controller.AvailableRange())
}

// handleWheelKeys handles keys while the month/year wheel is open.
func (m Model) handleWheelKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc", "enter", "w":
		return m.closeWheel()

	case "h", "left", "l", "right", "tab":
		m.wheelCol = 1 - m.wheelCol
		return m, nil

	case "j", "down":
		return m.turnWheel(1)
	case "k", "up":
		return m.turnWheel(-1)
	}
	return m, nil
}

// turnWheel advances the focused wheel column and commits the decoded
// month to the calendar behind it.
func (m Model) turnWheel(delta int) (tea.Model, tea.Cmd) {
	if m.wheel == nil {
		return m, nil
	}
	var (
		date    time.Time
		snapped bool
	)
	if m.wheelCol == 0 {
		date, snapped = m.wheel.SetMonthRow(m.wheel.MonthRow() + delta)
	} else {
		date, snapped = m.wheel.SetYearRow(m.wheel.YearRow() + delta)
	}
	cmds := []tea.Cmd{
		m.handleControllerEvents(m.controller.SetVisibleDate(date)),
		m.applyReload(m.scroller.SetCurrentPage(m.pageFor(date), false)),
	}
	if snapped {
		cmds = append(cmds, m.setStatus("Clamped to "+date.Format("January 2006")))
	}
	return m, tea.Batch(cmds...)
}

// toggleTimeMode switches between the date grid and the time wheel.
func (m Model) toggleTimeMode() (tea.Model, tea.Cmd) {
	if m.mode == ModeTime {
		return m.closeTimeMode()
	}
	m.timeWheel = picker.NewTimeWheel(m.timeSeed(), m.config.Picker.MinuteInterval)
	m.timeCol = 0
	LogModeChange(m.mode, ModeTime, "time open")
	m.mode = ModeTime
	m.fading = fadeFrames
	return m, commands.FadeTick()
}

func (m Model) closeTimeMode() (tea.Model, tea.Cmd) {
	cmd := m.commitTimeValue()
	value := m.timeWheel.Value()
	m.timeWheel = nil
	LogModeChange(m.mode, ModeGrid, "time close")
	m.mode = ModeGrid
	m.fading = fadeFrames
	m.cursor = dateutil.ClampToRange(dateutil.StartOfDay(value), m.controller.AvailableRange())

	cmds := []tea.Cmd{
		cmd,
		m.handleControllerEvents(m.controller.SetVisibleDate(value)),
		m.applyReload(m.scroller.SetCurrentPage(m.pageFor(value), false)),
		commands.FadeTick(),
	}
	return m, tea.Batch(cmds...)
}

// commitTimeValue writes the wheel's timestamp back into the selection,
// keeping the end of an existing range intact.
func (m *Model) commitTimeValue() tea.Cmd {
	value := m.timeWheel.Value()
	r := dateutil.Range{Start: value, End: value}
	if sel := m.controller.Selected(); sel != nil && !sel.IsSingle() {
		r = dateutil.Range{Start: value, End: sel.End}
	}
	return m.handleControllerEvents(m.controller.SetSelectedRange(&r))
}

// handleTimeKeys handles keys while the time wheel is open.
func (m Model) handleTimeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		cmd := m.commitTimeValue()
		m.accepted = true
		LogSelection(m.SelectionString(), "accept")
		return m, tea.Batch(cmd, tea.Quit)

	case "t", "esc":
		return m.closeTimeMode()

	case "h", "left", "l", "right", "tab":
		m.timeCol = 1 - m.timeCol
		return m, nil

	case "j", "down":
		return m.turnTimeWheel(1)
	case "k", "up":
		return m.turnTimeWheel(-1)
	}
	return m, nil
}

func (m Model) turnTimeWheel(delta int) (tea.Model, tea.Cmd) {
	if m.timeWheel == nil {
		return m, nil
	}
	if m.timeCol == 0 {
		m.timeWheel.SetHourRow(m.timeWheel.HourRow() + delta)
	} else {
		m.timeWheel.SetMinuteRow(m.timeWheel.MinuteRow() + delta)
	}
	return m, nil
}

// yankSelection copies the current selection to the system clipboard.
func (m Model) yankSelection() (tea.Model, tea.Cmd) {
	s := m.SelectionString()
	if s == "" {
		return m, m.setStatus("Nothing selected")
	}
	if err := clipboard.WriteAll(s); err != nil {
		return m, m.setStatus(fmt.Sprintf("Copy failed: %v", err))
	}
	return m, m.setStatus("Yanked " + s)
}

// reload refreshes the month window and the event index from the store.
func (m Model) reload() (tea.Model, tea.Cmd) {
	if m.window != nil && m.scroller.Ready() {
		m.window.Rebuild(m.controller, m.scroller.CurrentPage())
	}
	months := m.windowMonths()
	if len(months) == 0 {
		visible := m.controller.VisibleDate()
		months = []time.Time{dateutil.AddMonths(visible, -1), visible, dateutil.AddMonths(visible, 1)}
	}
	return m, commands.LoadIndex(m.repo, months)
}

// handlePromptKeys handles keys while the goto prompt is focused.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeGrid
		m.prompt.Blur()
		m.prompt.SetValue("")
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.mode = ModeGrid
		m.prompt.Blur()
		m.prompt.SetValue("")
		return m.submitPrompt(value)

	case "tab":
		if completion, ok := input.Autocomplete(m.prompt.Value(), gotoPhrases); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) submitPrompt(value string) (tea.Model, tea.Cmd) {
	value = strings.TrimSpace(value)
	if value == "" {
		return m, nil
	}
	return m, tea.Batch(
		m.setStatus("Resolving "+value+"..."),
		commands.ResolveDate(m.config, value, time.Now()),
	)
}

// handleHelpKeys handles keys while the help overlay is shown.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q", "enter":
		m.mode = ModeGrid
		return m, nil
	}
	return m, nil
}
