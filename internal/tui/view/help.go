package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpEntry is one key binding line in the help panel.
type HelpEntry struct {
	Keys string
	Desc string
}

// HelpStyles carries the styles the help panel renders with.
type HelpStyles struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
}

// RenderHelp renders the help overlay content: a title and aligned
// key/description rows. The overlay box around it is the caller's job.
func RenderHelp(title string, entries []HelpEntry, styles HelpStyles) string {
	keyWidth := 0
	for _, e := range entries {
		if w := lipgloss.Width(e.Keys); w > keyWidth {
			keyWidth = w
		}
	}

	lines := make([]string, 0, len(entries)+2)
	lines = append(lines, styles.Title.Render(title), "")
	for _, e := range entries {
		if e.Keys == "" {
			lines = append(lines, "")
			continue
		}
		pad := strings.Repeat(" ", keyWidth-lipgloss.Width(e.Keys))
		lines = append(lines, styles.Key.Render(e.Keys)+pad+styles.Body.Render("  "+e.Desc))
	}
	return strings.Join(lines, "\n")
}
