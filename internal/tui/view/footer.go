package view

import "github.com/charmbracelet/lipgloss"

// FooterState holds the pre-rendered footer lines. PromptBox, when set,
// replaces the summary and status lines with the goto prompt.
type FooterState struct {
	InnerW      int
	FooterH     int
	SummaryLine string
	StatusLine  string
	HelpLine    string
	PromptBox   string
	Bg          lipgloss.Color
}

// RenderFooter renders the footer region: summary, status and key hint,
// or the prompt box over the key hint while the prompt is focused.
func RenderFooter(state FooterState) string {
	if state.FooterH <= 0 {
		return ""
	}

	var s string
	if state.PromptBox != "" {
		s = state.PromptBox + "\n" + state.HelpLine
	} else {
		s = state.SummaryLine + "\n" + state.StatusLine + "\n" + state.HelpLine
	}

	return PlaceBox(state.InnerW, state.FooterH, lipgloss.Left, lipgloss.Bottom, s, state.Bg)
}
