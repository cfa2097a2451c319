package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayMinWidth  = 24
	overlayMinHeight = 7
	overlayPadX      = 2
	overlayPadY      = 1
)

// OverlayModel renders an opaque box centered over the base view. The box
// sizes itself to its content and is spliced into the base line by line,
// so the grid behind keeps its own styling.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{
		active:  false,
		bgColor: lipgloss.Color(""),
	}
}

// SetActive shows or hides the overlay.
func (o *OverlayModel) SetActive(on bool) {
	o.active = on
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the overlay background color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws the overlay on top of base content.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active {
		return base
	}
	if width <= 0 || height <= 0 {
		return base
	}

	contentLines := o.contentLines(content)
	contentW, contentH := o.contentSize(contentLines)
	if contentW == 0 || contentH == 0 {
		return base
	}

	boxW := clampInt(contentW+2*overlayPadX, overlayMinWidth, width)
	boxH := clampInt(contentH+2*overlayPadY, overlayMinHeight, height)

	top := (height - boxH) / 2
	left := (width - boxW) / 2

	baseLines := o.normalizeBase(base, width, height)
	overlayLines := o.boxLines(contentLines, boxW, boxH)

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			lines = append(lines, baseLines[row])
			continue
		}

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		lines = append(lines, leftSlice+overlayLines[row-top]+rightSlice)
	}

	return strings.Join(lines, "\n")
}

// boxLines fills the box with the overlay background and centers the
// content inside it.
func (o OverlayModel) boxLines(content []string, boxW, boxH int) []string {
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
	blank := bgSeq + strings.Repeat(" ", boxW) + ansi.ResetStyle

	contentW, contentH := o.contentSize(content)
	if contentW > boxW {
		contentW = boxW
	}
	top := (boxH - contentH) / 2
	if top < 0 {
		top = 0
	}
	left := (boxW - contentW) / 2
	if left < 0 {
		left = 0
	}

	lines := make([]string, boxH)
	for i := range lines {
		ci := i - top
		if ci < 0 || ci >= len(content) {
			lines[i] = blank
			continue
		}

		line := content[ci]
		lineWidth := lipgloss.Width(line)
		if lineWidth > contentW {
			line = ansi.Cut(line, 0, contentW)
			lineWidth = contentW
		}
		if lineWidth < contentW {
			line += strings.Repeat(" ", contentW-lineWidth)
		}
		line = o.applyBackgroundResets(line, bgSeq)

		rightPad := boxW - left - contentW
		if rightPad < 0 {
			rightPad = 0
		}
		lines[i] = bgSeq + strings.Repeat(" ", left) + line + bgSeq + strings.Repeat(" ", rightPad) + ansi.ResetStyle
	}

	return lines
}

func (o OverlayModel) contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (o OverlayModel) contentSize(lines []string) (int, int) {
	if len(lines) == 0 {
		return 0, 0
	}
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

// applyBackgroundResets reinforces the overlay background after any reset
// sequence the content carries, so styled content cannot punch holes in
// the box.
func (o OverlayModel) applyBackgroundResets(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

func (o OverlayModel) normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}

// clampInt clamps v into [lo, hi], hi winning when the interval is empty.
func clampInt(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
