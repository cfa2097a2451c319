package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/almanaque/internal/dateutil"
	"github.com/javiermolinar/almanaque/internal/pager"
	"github.com/javiermolinar/almanaque/internal/picker"
	"github.com/javiermolinar/almanaque/internal/summary"
	"github.com/javiermolinar/almanaque/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		reload := m.scroller.SetBounds(m.gridBounds())
		return m, m.applyReload(reload)

	case commands.IndexLoadedMsg:
		m.delegate.SetIndex(msg.Index)
		m.events = msg.Events
		if m.window != nil {
			m.window.Rebuild(m.controller, m.scroller.CurrentPage())
		}
		m.refreshSummary()
		return m, nil

	case commands.DateResolvedMsg:
		date := dateutil.ClampToRange(dateutil.StartOfDay(msg.Date), m.controller.AvailableRange())
		m.cursor = date
		cmds = append(cmds, m.handleControllerEvents(m.controller.SetVisibleDate(date)))
		cmds = append(cmds, m.applyReload(m.scroller.SetCurrentPage(m.pageFor(date), true)))
		if m.scroller.Animating() {
			cmds = append(cmds, commands.ScrollTick())
		}
		cmds = append(cmds, m.setStatus("Jumped to "+date.Format("Jan 2, 2006")))
		LogCursorMove(date, "goto "+msg.Source)
		return m, tea.Batch(cmds...)

	case commands.ScrollTickMsg:
		reload, done := m.scroller.Step()
		cmd := m.applyReload(reload)
		if !done {
			return m, tea.Batch(cmd, commands.ScrollTick())
		}
		LogScroll(m.scroller.Offset(), m.scroller.CurrentPage(), "animation done")
		return m, cmd

	case commands.FadeTickMsg:
		if m.fading > 0 {
			m.fading--
		}
		if m.fading > 0 {
			return m, commands.FadeTick()
		}
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		LogError("command", msg.Err)
		return m, tea.Tick(5*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Handle prompt input when in prompt mode (cursor blink and the like;
	// key messages go through handleKeyMsg)
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// applyReload reacts to a scroller reload hint: realign or rebuild the
// month window and kick an index load for months not covered yet.
func (m *Model) applyReload(reload pager.Reload) tea.Cmd {
	if !m.layout.Ready() {
		return nil
	}
	switch reload {
	case pager.ReloadFull:
		m.rebuildWindow()
		m.refreshViewCaches()
		return m.loadVisibleMonths()
	case pager.ReloadData:
		if m.window == nil {
			m.rebuildWindow()
		} else {
			m.window.Realign(m.controller, m.scroller.CurrentPage())
		}
		return m.loadVisibleMonths()
	}
	return nil
}

// rebuildWindow sizes the month window to the layout's section count and
// refreshes every section.
func (m *Model) rebuildWindow() {
	g := m.layout.Geometry()
	if m.window == nil || m.window.Len() != g.Sections() {
		m.window = picker.NewMonthWindow(m.anchor, g.Before, g.After)
	}
	m.window.Rebuild(m.controller, m.scroller.CurrentPage())
}

// refreshViewCaches recomputes the width-dependent render caches. The
// cell pool is dropped with them since its buffers carry the old width.
func (m *Model) refreshViewCaches() {
	g := m.layout.Geometry()
	m.styleCache = NewStyleCache(m.styles, g.ColWidth)
	m.renderCache = m.buildRenderCache()
	m.cellPool = newCellPool()
}

// loadVisibleMonths loads the index for the window's months unless the
// current index already covers all of them.
func (m *Model) loadVisibleMonths() tea.Cmd {
	months := m.windowMonths()
	if len(months) == 0 {
		return nil
	}
	ix := m.delegate.Index()
	covered := true
	for _, month := range months {
		if !ix.Covers(month) {
			covered = false
			break
		}
	}
	if covered {
		return nil
	}
	return commands.LoadIndex(m.repo, months)
}

func (m Model) windowMonths() []time.Time {
	if m.window == nil {
		return nil
	}
	months := make([]time.Time, 0, m.window.Len())
	for slot := 0; slot < m.window.Len(); slot++ {
		if s := m.window.Section(slot); s != nil {
			months = append(months, s.Month)
		}
	}
	return months
}

// refreshSummary recomputes the footer summary for the visible month.
func (m *Model) refreshSummary() {
	m.monthSummary = summary.SummarizeMonth(m.controller.VisibleDate(), m.events, m.controller.Selected())
}

// handleControllerEvents reacts to controller state changes: selection
// changes invalidate the window's cells, range taps surface a notice.
func (m *Model) handleControllerEvents(events []picker.Event) tea.Cmd {
	var cmd tea.Cmd
	for _, ev := range events {
		switch ev.Kind {
		case picker.EventSelectionChanged:
			if m.window != nil {
				m.window.Rebuild(m.controller, m.scroller.CurrentPage())
			}
			m.refreshSummary()
			LogSelection(m.SelectionString(), "selection changed")
		case picker.EventRangeTapped:
			cmd = m.setStatus("Busy " + formatDayRange(ev.Range))
		case picker.EventVisibleDateChanged:
			m.refreshSummary()
		}
	}
	return cmd
}

// setStatus shows a transient status message with the standard expiry.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(3 * time.Second)
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

func (m Model) gridHeight() int {
	return m.height - chromeTop - footerRows
}

func (m Model) gridBounds() pager.Size {
	return pager.Size{Width: m.width, Height: max(0, m.gridHeight())}
}

// formatDayRange formats a day range for status messages.
func formatDayRange(r dateutil.Range) string {
	if r.IsSingle() {
		return r.Start.Format("Jan 2")
	}
	return r.Start.Format("Jan 2") + " to " + r.End.Format("Jan 2")
}
