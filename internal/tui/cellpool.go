package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/almanaque/internal/picker"
)

// cellBuffer holds the rendered lines of one day cell. Buffers are
// recycled per cell kind so a layout pass reconfigures released buffers
// instead of allocating new ones.
type cellBuffer struct {
	kind  picker.CellKind
	lines []string
}

func (b *cellBuffer) reset() {
	b.lines = b.lines[:0]
}

// configure renders the cell into the buffer: day number on the first
// line, annotation beside it, background fill below. Must be called on a
// reset buffer.
func (b *cellBuffer) configure(cell picker.Cell, sc *StyleCache, width, height int, cursor bool) {
	style := sc.styleFor(cell, cursor)
	if !cursor && !cell.Highlight && cell.Background != "" {
		style = style.Background(lipgloss.Color(cell.Background))
		if cell.Foreground != "" {
			style = style.Foreground(lipgloss.Color(cell.Foreground))
		}
	}

	b.lines = append(b.lines, style.Render(cellLabel(cell)))
	for l := 1; l < height; l++ {
		b.lines = append(b.lines, style.Render(""))
	}
}

// cellLabel formats the day number plus the annotation so annotated and
// plain days line up.
func cellLabel(cell picker.Cell) string {
	if cell.Kind == picker.CellEmpty {
		return ""
	}
	num := strconv.Itoa(cell.Day)
	if len(num) < 2 {
		num = " " + num
	}
	ann := cell.Annotation
	if ann == "" {
		ann = " "
	}
	return num + ann
}

// cellPool recycles cell buffers between layout passes, keyed by cell
// kind so same-kind cells reuse buffers of matching shape.
type cellPool struct {
	free map[picker.CellKind][]*cellBuffer
}

func newCellPool() *cellPool {
	return &cellPool{free: make(map[picker.CellKind][]*cellBuffer)}
}

// acquire returns a reset buffer for the kind, reusing a released one
// when available.
func (p *cellPool) acquire(kind picker.CellKind) *cellBuffer {
	stack := p.free[kind]
	if n := len(stack); n > 0 {
		b := stack[n-1]
		p.free[kind] = stack[:n-1]
		b.reset()
		return b
	}
	return &cellBuffer{kind: kind}
}

// release returns a buffer to the pool once its lines have been copied
// into the frame.
func (p *cellPool) release(b *cellBuffer) {
	p.free[b.kind] = append(p.free[b.kind], b)
}
