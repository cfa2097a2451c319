// Package tui provides the terminal user interface for almanaque.
package tui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/almanaque/internal/config"
	"github.com/javiermolinar/almanaque/internal/dateutil"
	"github.com/javiermolinar/almanaque/internal/event"
	"github.com/javiermolinar/almanaque/internal/pager"
	"github.com/javiermolinar/almanaque/internal/picker"
	"github.com/javiermolinar/almanaque/internal/summary"
	"github.com/javiermolinar/almanaque/internal/tui/commands"
	"github.com/javiermolinar/almanaque/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeGrid   Mode = iota
	ModeWheel       // Month/year wheel over the grid
	ModeTime        // Hour/minute wheel replacing the grid
	ModePrompt      // Goto date prompt
	ModeHelp        // Key reference overlay
)

const (
	chromeTop  = 2 // title line + weekday header
	footerRows = 4
	fadeFrames = 2
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   event.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Picker state
	controller *picker.Controller
	delegate   *event.StoreDelegate
	anchor     time.Time // first month of the available range
	cursor     time.Time // day under the keyboard cursor
	mode       Mode
	accepted   bool // enter pressed; the selection is the result
	fading     int  // cross-fade frames left after a mode switch

	// Scrolling
	layout   *pager.Layout
	scroller *pager.Scroller
	window   *picker.MonthWindow

	// Wheels, built lazily and torn down on close
	wheel     *picker.Wheel
	timeWheel *picker.TimeWheel
	wheelCol  int // 0 = month column, 1 = year column
	timeCol   int // 0 = hour column, 1 = minute column

	// Components
	prompt  textinput.Model
	overlay OverlayModel

	// Terminal dimensions
	width  int
	height int

	// Cached render data
	styleCache  StyleCache
	renderCache RenderCache
	cellPool    *cellPool

	// Data
	events       []*event.Event
	monthSummary *summary.MonthSummary

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithInitialDate opens the picker on the month containing d.
func WithInitialDate(d time.Time) ModelOption {
	return func(m *Model) {
		d = dateutil.ClampToRange(dateutil.StartOfDay(d), m.controller.AvailableRange())
		m.cursor = d
		m.controller.SetVisibleDate(d)
		m.scroller.SetCurrentPage(m.pageFor(d), false)
	}
}

// WithSelection preselects a range before the first render.
func WithSelection(r dateutil.Range) ModelOption {
	return func(m *Model) {
		m.controller.SetSelectedRange(&r)
		if sel := m.controller.Selected(); sel != nil {
			m.cursor = dateutil.StartOfDay(sel.Start)
			m.controller.SetVisibleDate(sel.Start)
			m.scroller.SetCurrentPage(m.pageFor(sel.Start), false)
		}
	}
}

// New creates a new TUI model.
func New(repo event.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}

	// Create styles from theme
	styles := NewStyles(t)

	prompt := textinput.New()
	prompt.Placeholder = "today, 2026-03-05, next-friday, +2w ..."
	prompt.CharLimit = 64
	prompt.PlaceholderStyle = styles.PromptHintStyle
	prompt.TextStyle = styles.PromptTextStyle
	prompt.PromptStyle = styles.PromptTextStyle
	prompt.Cursor.Style = styles.PromptCursorStyle
	prompt.Cursor.TextStyle = styles.PromptTextStyle

	delegate := event.NewStoreDelegate()
	available := cfg.AvailableRange()

	controller := picker.New(
		picker.WithDelegate(delegate),
		picker.WithBehavior(behaviorFromConfig(cfg)),
		picker.WithClampPolicy(clampFromConfig(cfg)),
		picker.WithAvailableRange(available.Start, available.End),
		picker.WithFirstWeekday(cfg.FirstWeekday()),
		picker.WithHighlightToday(cfg.Picker.HighlightToday),
	)

	axis := pager.AxisVertical
	if cfg.Picker.Axis == "horizontal" {
		axis = pager.AxisHorizontal
	}
	layout := pager.NewLayout(axis, pager.Insets{Top: 1})
	scroller := pager.NewScroller(layout)

	anchor := dateutil.StartOfMonth(available.Start)
	lastMonth := dateutil.StartOfMonth(available.End)
	scroller.SetPageCount(dateutil.MonthsBetween(anchor, lastMonth) + 1)

	cursor := dateutil.ClampToRange(dateutil.StartOfDay(time.Now()), available)
	if cfg.Picker.AutoSelectToday && controller.Selectable(cursor) {
		controller.Tap(cursor)
	}
	controller.SetVisibleDate(cursor)

	m := &Model{
		repo:       repo,
		config:     cfg,
		theme:      t,
		styles:     styles,
		controller: controller,
		delegate:   delegate,
		anchor:     anchor,
		cursor:     cursor,
		mode:       ModeGrid,
		prompt:     prompt,
		overlay:    NewOverlayModel(),
		layout:     layout,
		scroller:   scroller,
		styleCache: NewStyleCache(styles, defaultColWidth),
		cellPool:   newCellPool(),
	}
	m.scroller.SetCurrentPage(m.pageFor(cursor), false)

	if cfg.Picker.Mode == "time" {
		m.timeWheel = picker.NewTimeWheel(m.timeSeed(), cfg.Picker.MinuteInterval)
		m.mode = ModeTime
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Init initializes the model. The first index load covers the months
// around the opening date; resizes extend it to the window.
func (m Model) Init() tea.Cmd {
	visible := m.controller.VisibleDate()
	months := []time.Time{
		dateutil.AddMonths(visible, -1),
		visible,
		dateutil.AddMonths(visible, 1),
	}
	return commands.LoadIndex(m.repo, months)
}

// Accepted reports whether the picker quit through an accept, as opposed
// to a cancel.
func (m Model) Accepted() bool {
	return m.accepted
}

// Selection returns the current selection, nil when nothing is selected.
func (m Model) Selection() *dateutil.Range {
	return m.controller.Selected()
}

// SelectionString formats the picked value the way the CLI prints it:
// a single day, a day pair, or a timestamp in time mode.
func (m Model) SelectionString() string {
	if m.mode == ModeTime && m.timeWheel != nil {
		return m.timeWheel.Value().Format("2006-01-02T15:04")
	}
	sel := m.controller.Selected()
	if sel == nil {
		return ""
	}
	if sel.IsSingle() {
		return sel.Start.Format("2006-01-02")
	}
	return sel.Start.Format("2006-01-02") + " " + sel.End.Format("2006-01-02")
}

// SetDateRange replaces the selection and scrolls to its start month,
// tweening when animated is set and snapping otherwise. The selection is
// re-clamped to the available range; the returned command carries the
// follow-up work (scroll ticks, data reloads) and must be fed back into
// the program loop.
func (m *Model) SetDateRange(r dateutil.Range, animated bool) tea.Cmd {
	m.controller.SetSelectedRange(&r)
	sel := m.controller.Selected()
	if sel == nil {
		return nil
	}
	m.cursor = dateutil.StartOfDay(sel.Start)
	cmds := []tea.Cmd{
		m.handleControllerEvents(m.controller.SetVisibleDate(sel.Start)),
		m.applyReload(m.scroller.SetCurrentPage(m.pageFor(sel.Start), animated)),
	}
	if m.scroller.Animating() {
		cmds = append(cmds, commands.ScrollTick())
	}
	return tea.Batch(cmds...)
}

// SetDate collapses the selection to a single day.
func (m *Model) SetDate(d time.Time, animated bool) tea.Cmd {
	return m.SetDateRange(dateutil.NewRange(d, d), animated)
}

// ReloadAllDates re-pulls annotation and range data for every
// materialized month without touching the selection.
func (m *Model) ReloadAllDates() tea.Cmd {
	_, cmd := m.reload()
	return cmd
}

// pageFor maps a date to its month page in the anchor-based page space.
func (m Model) pageFor(d time.Time) int {
	return dateutil.MonthsBetween(m.anchor, dateutil.StartOfMonth(d))
}

// timeSeed picks the initial time wheel value: the selection's clock when
// one exists, otherwise now. The wheel snaps it to the minute interval.
func (m Model) timeSeed() time.Time {
	if sel := m.controller.Selected(); sel != nil {
		return sel.Start
	}
	return time.Now()
}

func behaviorFromConfig(cfg *config.Config) picker.Behavior {
	if cfg.Picker.Selection == "range" {
		return picker.BehaviorRange
	}
	return picker.BehaviorSingle
}

func clampFromConfig(cfg *config.Config) picker.ClampPolicy {
	if cfg.Picker.ClampPolicy == "until_first_disabled" {
		return picker.ClampUntilFirstDisabled
	}
	return picker.ClampToBounds
}

// Run starts the TUI and returns the final model so the caller can print
// the accepted selection. The interface renders on stderr; stdout stays
// clean for the picked value.
func Run(repo event.Repository, cfg *config.Config, opts ...ModelOption) (*Model, error) {
	if err := InitDebugLogger(os.Getenv("ALMANAQUE_DEBUG") != ""); err != nil {
		return nil, err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg, opts...)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
	)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	if final, ok := finalModel.(Model); ok {
		return &final, nil
	}
	return model, nil
}
