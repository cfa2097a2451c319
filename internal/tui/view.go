package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/almanaque/internal/tui/view"
)

// View renders the full frame: title, weekday header, grid area, footer,
// and the help overlay when open.
func (m Model) View() string {
	state := m.viewState()
	return view.Render(state)
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()

	showHelp := m.mode == ModeHelp
	help := ""
	if showHelp {
		help = m.renderHelpContent()
		m.overlay.SetActive(true)
		m.overlay.SetBackground(m.styles.OverlayBgColor)
	} else {
		m.overlay.SetActive(false)
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		OverlayContent:   help,
		ShowOverlay:      showHelp,
		Overlay:          &m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	if m.width <= 0 || m.gridHeight() <= 0 {
		return "Terminal too small"
	}

	header := view.RenderHeader(view.HeaderState{
		Width:      m.width,
		MonthLabel: m.headerLabel(),
		Selection:  m.SelectionString(),
		Month:      m.styles.TitleStyle,
		Info:       m.styles.TitleSelectionStyle,
		Bg:         m.styles.colorBg,
	})

	weekdays := m.renderCache.WeekdayLine
	if weekdays == "" {
		weekdays = m.weekdayLine()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		weekdays,
		m.renderGridArea(),
		m.renderFooter(),
	)
	return view.PadLinesWithBackground(content, m.width, m.height, m.styles.colorBg)
}

// headerLabel is the title line's left side: the visible month, or the
// wheel's clock value in time mode.
func (m Model) headerLabel() string {
	if m.mode == ModeTime && m.timeWheel != nil {
		return m.timeWheel.Value().Format("Monday, January 2 2006")
	}
	return m.controller.VisibleDate().Format("January 2006")
}

func (m Model) renderFooter() string {
	state := view.FooterState{
		InnerW:      m.width,
		FooterH:     footerRows,
		SummaryLine: m.renderSummaryLine(),
		StatusLine:  m.renderStatusLine(),
		HelpLine:    m.renderHelpHint(),
		Bg:          m.styles.colorBg,
	}
	if m.mode == ModePrompt {
		state.PromptBox = m.renderPromptBox()
	}
	return view.RenderFooter(state)
}

func (m Model) renderSummaryLine() string {
	s := m.monthSummary
	if s == nil {
		return m.styles.SummaryStyle.Render(" ")
	}

	line := fmt.Sprintf(" %d events", s.EventCount)
	if s.EventCount == 1 {
		line = " 1 event"
	}
	if s.BusiestCount > 1 {
		line += fmt.Sprintf("  ·  busiest %s (%d)", s.BusiestDay.Format("Jan 2"), s.BusiestCount)
	}
	if s.SelectedDays > 1 {
		line += fmt.Sprintf("  ·  %d days selected", s.SelectedDays)
	}
	return m.styles.SummaryStyle.Render(line)
}

func (m Model) renderStatusLine() string {
	if m.statusMsg == "" {
		return m.styles.SummaryStyle.Render(" ")
	}
	return m.styles.StatusStyle.Render(" " + m.statusMsg)
}

func (m Model) renderHelpHint() string {
	hint := " space select  enter accept  w wheel  t time  g goto  ? help  q quit"
	if m.mode == ModePrompt {
		hint = " " + promptHint
	}
	return m.styles.HelpStyle.Render(hint)
}

func (m Model) renderPromptBox() string {
	box := m.styles.PromptFocusedStyle.Width(max(0, m.width-2)).Render(m.prompt.View())
	return box
}

// renderHelpContent builds the help overlay body.
func (m Model) renderHelpContent() string {
	entries := []view.HelpEntry{
		{Keys: "h/j/k/l, arrows", Desc: "move the day cursor"},
		{Keys: "H/L, pgup/pgdn", Desc: "previous / next month"},
		{Keys: "space", Desc: "select the day under the cursor"},
		{Keys: "enter", Desc: "accept and print the selection"},
		{Keys: ""},
		{Keys: "w", Desc: "month/year wheel"},
		{Keys: "t", Desc: "time wheel"},
		{Keys: "g", Desc: "go to date"},
		{Keys: "y", Desc: "copy selection to clipboard"},
		{Keys: "r", Desc: "reload event data"},
		{Keys: ""},
		{Keys: "q, esc", Desc: "cancel without printing"},
	}
	return view.RenderHelp("Almanaque keys", entries, view.HelpStyles{
		Title: m.styles.OverlayTitleStyle,
		Key:   m.styles.HelpKeyStyle.Background(m.styles.OverlayBgColor),
		Body:  m.styles.OverlayBodyStyle,
		Muted: m.styles.OverlayMutedStyle,
	})
}
