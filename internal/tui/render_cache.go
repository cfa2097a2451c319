// Package tui provides the terminal user interface for almanaque.
package tui

import "strings"

// RenderCache stores pre-rendered ANSI strings for hot view paths.
type RenderCache struct {
	EmptyCell   string
	BlankLine   string
	LeftPad     string
	RightPad    string
	WeekdayLine string
}

// buildRenderCache pre-renders the strings the grid repeats every frame.
func (m *Model) buildRenderCache() RenderCache {
	g := m.layout.Geometry()
	rightPad := g.Bounds.Width - g.LeftPad - g.ColWidth*7

	return RenderCache{
		EmptyCell:   m.styleCache.EmptyCell.Render(""),
		BlankLine:   m.styles.ViewportStyle.Render(strings.Repeat(" ", max(0, g.Bounds.Width))),
		LeftPad:     m.styles.ViewportStyle.Render(strings.Repeat(" ", max(0, g.LeftPad))),
		RightPad:    m.styles.ViewportStyle.Render(strings.Repeat(" ", max(0, rightPad))),
		WeekdayLine: m.weekdayLine(),
	}
}
