// Package tui provides the terminal user interface for almanaque.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/almanaque/internal/tui/theme"
)

// Default day column width - recalculated from the terminal size.
const defaultColWidth = 8

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToday       lipgloss.Color
	colorSelected    lipgloss.Color
	colorUnavailable lipgloss.Color
	colorEvent       lipgloss.Color
	colorWarning     lipgloss.Color

	colorTextOnAccent   lipgloss.Color
	colorTextOnSelected lipgloss.Color
	colorTextOnToday    lipgloss.Color
	colorTextOnWarning  lipgloss.Color

	// Derived darker colors for day backgrounds
	colorSelectedBg    lipgloss.Color
	colorRangeBg       lipgloss.Color
	colorPressedBg     lipgloss.Color
	colorUnavailableBg lipgloss.Color
	colorEventBg       lipgloss.Color

	// Title style
	TitleStyle          lipgloss.Style
	TitleSelectionStyle lipgloss.Style

	// Month banner
	BannerStyle lipgloss.Style

	// Weekday header
	WeekdayStyle      lipgloss.Style
	WeekdayTodayStyle lipgloss.Style

	// Day cell styles
	DayStyle         lipgloss.Style
	TodayStyle       lipgloss.Style
	UnavailableStyle lipgloss.Style
	SelectedStyle    lipgloss.Style
	RangeStyle       lipgloss.Style
	PressedStyle     lipgloss.Style

	// Empty cell
	EmptyCellStyle lipgloss.Style

	// Cursor style
	CursorStyle lipgloss.Style

	// Footer summary line
	SummaryStyle lipgloss.Style

	// Prompt box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptTextStyle    lipgloss.Style
	PromptCursorStyle  lipgloss.Style
	PromptHintStyle    lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle    lipgloss.Style
	HelpKeyStyle lipgloss.Style

	// Wheel panel styles
	WheelPanelStyle        lipgloss.Style
	WheelTitleStyle        lipgloss.Style
	WheelRowStyle          lipgloss.Style
	WheelMutedStyle        lipgloss.Style
	WheelCurrentStyle      lipgloss.Style
	WheelCurrentFocusStyle lipgloss.Style
	WheelBgColor           lipgloss.Color

	// Overlay styles
	OverlayStyle          lipgloss.Style
	OverlayBgColor        lipgloss.Color
	OverlayBackdropColor  lipgloss.Color
	OverlayTitleStyle     lipgloss.Style
	OverlayBodyStyle      lipgloss.Style
	OverlayMutedStyle     lipgloss.Style
	OverlayHighlightStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style

	// Viewport background
	ViewportStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	// Convert theme colors to lipgloss colors
	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorToday = palette.Today
	s.colorSelected = palette.Selected
	s.colorUnavailable = palette.Unavailable
	s.colorEvent = palette.Event
	s.colorWarning = palette.Warning

	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnSelected = palette.TextOnSelected
	s.colorTextOnToday = palette.TextOnToday
	s.colorTextOnWarning = palette.TextOnWarning

	// Derived day backgrounds
	s.colorSelectedBg = palette.SelectedBg
	s.colorRangeBg = palette.RangeBg
	s.colorPressedBg = palette.PressedBg
	s.colorUnavailableBg = palette.UnavailableBg
	s.colorEventBg = palette.EventBg

	// Build styles from colors

	// Title style
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.TitleSelectionStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Month banner across the top of each page
	s.BannerStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBgHighlight)

	// Weekday header
	s.WeekdayStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Width(defaultColWidth)

	s.WeekdayTodayStyle = s.WeekdayStyle.
		Foreground(s.colorAccent)

	// Day cell styles
	s.DayStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg)

	// Today: accent number, no fill so the selection still reads
	s.TodayStyle = s.DayStyle.
		Foreground(s.colorToday).
		Bold(true)

	// Unavailable days stay visible but clearly out of reach
	s.UnavailableStyle = s.DayStyle.
		Foreground(s.colorFgMuted).
		Background(s.colorUnavailableBg)

	s.SelectedStyle = s.DayStyle.
		Background(s.colorSelectedBg).
		Foreground(s.colorFg).
		Bold(true)

	// Interior of a multi-day selection: washed shade of the endpoints
	s.RangeStyle = s.DayStyle.
		Background(s.colorRangeBg).
		Foreground(s.colorFg)

	// Pressed interactive range highlight
	s.PressedStyle = s.DayStyle.
		Background(s.colorPressedBg).
		Foreground(s.colorFg).
		Bold(true)

	// Empty cell
	s.EmptyCellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Cursor style - wins over the day kind style
	s.CursorStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Align(lipgloss.Center).
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	// Footer summary line
	s.SummaryStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Prompt box
	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	s.PromptTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection)

	s.PromptCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBgSelection)

	s.PromptHintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgSelection)

	// Status message
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	// Help text
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	// Wheel panel
	overlay := palette.Overlay
	s.WheelBgColor = overlay.Bg

	s.WheelPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(overlay.Border).
		BorderBackground(s.colorBg).
		Background(overlay.Bg).
		Padding(1, 2)

	s.WheelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(overlay.Text).
		Background(overlay.Bg).
		Align(lipgloss.Center)

	s.WheelRowStyle = lipgloss.NewStyle().
		Foreground(overlay.Text).
		Background(overlay.Bg)

	s.WheelMutedStyle = lipgloss.NewStyle().
		Foreground(overlay.Muted).
		Background(overlay.Bg)

	s.WheelCurrentStyle = lipgloss.NewStyle().
		Foreground(overlay.Text).
		Background(overlay.Highlight).
		Bold(true)

	s.WheelCurrentFocusStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent).
		Bold(true)

	// Help overlay
	s.OverlayBgColor = overlay.Bg
	s.OverlayBackdropColor = overlay.Backdrop

	s.OverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(overlay.Border).
		Background(overlay.Bg).
		Padding(1, 1)

	s.OverlayTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(overlay.Text).
		Background(overlay.Bg)

	s.OverlayBodyStyle = lipgloss.NewStyle().
		Foreground(overlay.Text).
		Background(overlay.Bg)

	s.OverlayMutedStyle = lipgloss.NewStyle().
		Foreground(overlay.Muted).
		Background(overlay.Bg)

	s.OverlayHighlightStyle = lipgloss.NewStyle().
		Foreground(overlay.Highlight).
		Background(overlay.Bg).
		Bold(true)

	// App container - full bleed so mouse coordinates map straight to cells
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	// Viewport background - fill the terminal with the base background.
	s.ViewportStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	return s
}

// DayStyleWidth returns the day style with the specified width.
func (s *Styles) DayStyleWidth(width int) lipgloss.Style {
	return s.DayStyle.Width(width)
}

// TodayStyleWidth returns the today style with the specified width.
func (s *Styles) TodayStyleWidth(width int) lipgloss.Style {
	return s.TodayStyle.Width(width)
}

// UnavailableStyleWidth returns the unavailable style with the specified width.
func (s *Styles) UnavailableStyleWidth(width int) lipgloss.Style {
	return s.UnavailableStyle.Width(width)
}

// SelectedStyleWidth returns the selected style with the specified width.
func (s *Styles) SelectedStyleWidth(width int) lipgloss.Style {
	return s.SelectedStyle.Width(width)
}

// RangeStyleWidth returns the range interior style with the specified width.
func (s *Styles) RangeStyleWidth(width int) lipgloss.Style {
	return s.RangeStyle.Width(width)
}

// PressedStyleWidth returns the pressed style with the specified width.
func (s *Styles) PressedStyleWidth(width int) lipgloss.Style {
	return s.PressedStyle.Width(width)
}

// CursorStyleWidth returns the cursor style with the specified width.
func (s *Styles) CursorStyleWidth(width int) lipgloss.Style {
	return s.CursorStyle.Width(width)
}

// EmptyCellStyleWidth returns the empty cell style with the specified width.
func (s *Styles) EmptyCellStyleWidth(width int) lipgloss.Style {
	return s.EmptyCellStyle.Width(width)
}

// WeekdayStyleWidth returns the weekday header style with the specified width.
func (s *Styles) WeekdayStyleWidth(width int) lipgloss.Style {
	return s.WeekdayStyle.Width(width)
}

// WeekdayTodayStyleWidth returns the today header style with the specified width.
func (s *Styles) WeekdayTodayStyleWidth(width int) lipgloss.Style {
	return s.WeekdayTodayStyle.Width(width)
}

// BannerStyleWidth returns the month banner style with the specified width.
func (s *Styles) BannerStyleWidth(width int) lipgloss.Style {
	return s.BannerStyle.Width(width)
}
