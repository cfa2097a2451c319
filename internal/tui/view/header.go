package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderState holds the pieces of the title line: the visible month on the
// left, the committed selection on the right.
type HeaderState struct {
	Width      int
	MonthLabel string
	Selection  string
	Month      lipgloss.Style
	Info       lipgloss.Style
	Bg         lipgloss.Color
}

// RenderHeader renders the single title line above the weekday header.
func RenderHeader(state HeaderState) string {
	left := state.Month.Render(" " + state.MonthLabel)
	right := ""
	if state.Selection != "" {
		right = state.Info.Render(state.Selection + " ")
	}

	gap := state.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	fill := lipgloss.NewStyle().Background(state.Bg).Render(strings.Repeat(" ", gap))
	return PadLinesWithBackground(left+fill+right, state.Width, 1, state.Bg)
}
