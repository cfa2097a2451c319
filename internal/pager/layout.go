// Package pager implements the month paging engine: an unbounded timeline
// of month pages mapped onto a small constant window of recycled sections,
// cell geometry for the two layout strategies, and the scroll container
// that keeps offset and current page reconciled.
package pager

// Axis selects the layout strategy.
type Axis int

const (
	// AxisHorizontal pages month by month; the viewport snaps to one page.
	AxisHorizontal Axis = iota
	// AxisVertical scrolls continuously through stacked month pages.
	AxisVertical
)

// String returns the config name of the axis.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

const (
	// DaysPerWeek is the number of columns in the day grid.
	DaysPerWeek = 7
	// OptimalRows is the fixed row count used by the vertical strategy.
	OptimalRows = 6
)

// Size is a viewport size in character cells.
type Size struct {
	Width  int
	Height int
}

// Point is a position in viewport coordinates.
type Point struct {
	X int
	Y int
}

// Rect is a cell-aligned rectangle in viewport coordinates.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether p falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Insets reserves chrome rows and columns around a page's day grid
// (month title, weekday header).
type Insets struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// Geometry is the cached result of one layout pass. It stays valid until
// the viewport bounds SIZE changes; scroll offset changes never touch it.
type Geometry struct {
	Bounds     Size
	ContentW   int // width available to day columns
	ContentH   int // height available to day rows
	ColWidth   int // floored column width
	LeftPad    int // centered leftover width, applied left of column 0
	RowHeight  int // vertical strategy row height (OptimalRows rows)
	PageLength int // page extent along the scroll axis
	Before     int // preload pages before the current one
	After      int // preload pages after the current one
}

// Sections returns the constant number of materialized sections.
func (g Geometry) Sections() int {
	return g.Before + g.After + 1
}

// Layout owns the geometry cache for one grid. All queries read the cache;
// only SetBounds recomputes it.
type Layout struct {
	axis   Axis
	insets Insets
	geo    Geometry
	valid  bool
}

// NewLayout creates a layout for the given axis and chrome insets.
func NewLayout(axis Axis, insets Insets) *Layout {
	return &Layout{axis: axis, insets: insets}
}

// Axis returns the layout strategy.
func (l *Layout) Axis() Axis {
	return l.axis
}

// Ready reports whether a usable geometry has been computed. A viewport
// narrower than one column per weekday has no drawable grid.
func (l *Layout) Ready() bool {
	return l.valid && l.geo.PageLength > 0 && l.geo.ColWidth > 0
}

// Geometry returns the cached layout pass.
func (l *Layout) Geometry() Geometry {
	return l.geo
}

// SetBounds installs a new viewport size and relayouts if the size
// actually changed. Returns true when geometry was recomputed.
func (l *Layout) SetBounds(bounds Size) bool {
	if l.valid && bounds == l.geo.Bounds {
		return false
	}
	l.geo = l.compute(bounds)
	l.valid = bounds.Width > 0 && bounds.Height > 0
	return true
}

func (l *Layout) compute(bounds Size) Geometry {
	g := Geometry{Bounds: bounds}

	g.ContentW = bounds.Width - l.insets.Left - l.insets.Right
	g.ContentH = bounds.Height - l.insets.Top - l.insets.Bottom
	if g.ContentW < 0 {
		g.ContentW = 0
	}
	if g.ContentH < 0 {
		g.ContentH = 0
	}

	// Column width is floored so cells never drift; the leftover is
	// handed back as symmetric padding around the grid.
	g.ColWidth = g.ContentW / DaysPerWeek
	leftover := g.ContentW - g.ColWidth*DaysPerWeek
	g.LeftPad = l.insets.Left + leftover/2

	g.RowHeight = g.ContentH / OptimalRows
	if g.RowHeight < 1 {
		g.RowHeight = 1
	}

	switch l.axis {
	case AxisVertical:
		g.PageLength = l.insets.Top + l.insets.Bottom + OptimalRows*g.RowHeight
		g.Before = 1
		g.After = ceilDiv(bounds.Height, g.PageLength)
	default:
		g.PageLength = bounds.Width
		g.Before = 1
		g.After = 1
	}
	if g.PageLength < 1 {
		g.PageLength = 1
	}
	return g
}

// CurrentPage derives the logical page from a scroll offset. Mid-page
// rounding makes the current page the one occupying the majority of the
// viewport.
func (l *Layout) CurrentPage(offset int) int {
	return floorDiv(offset+l.geo.PageLength/2, l.geo.PageLength)
}

// PageOffset returns the canvas offset at which a page starts.
func (l *Layout) PageOffset(page int) int {
	return page * l.geo.PageLength
}

// SectionForPage maps a logical page to its materialized section slot for
// the given current page.
func (l *Layout) SectionForPage(page, current int) int {
	return page - current + l.geo.Before
}

// PageForSection is the inverse of SectionForPage.
func (l *Layout) PageForSection(section, current int) int {
	return section + current - l.geo.Before
}

// RowsFor returns the row count a section needs for its cell count under
// the horizontal strategy. The vertical strategy always uses OptimalRows.
func (l *Layout) RowsFor(cellCount int) int {
	if l.axis == AxisVertical {
		return OptimalRows
	}
	rows := ceilDiv(cellCount, DaysPerWeek)
	if rows < 1 {
		rows = 1
	}
	return rows
}

// RowHeightFor returns the row height for a section with the given cell
// count. Horizontal sections divide the content height by their own row
// count; vertical sections use the cached fixed-row height.
func (l *Layout) RowHeightFor(cellCount int) int {
	if l.axis == AxisVertical {
		return l.geo.RowHeight
	}
	h := l.geo.ContentH / l.RowsFor(cellCount)
	if h < 1 {
		h = 1
	}
	return h
}

// CellFrame returns the frame of a cell inside its page, in coordinates
// relative to the page origin.
func (l *Layout) CellFrame(index, cellCount int) Rect {
	row := index / DaysPerWeek
	col := index % DaysPerWeek
	rowH := l.RowHeightFor(cellCount)
	return Rect{
		X: l.geo.LeftPad + col*l.geo.ColWidth,
		Y: l.insets.Top + row*rowH,
		W: l.geo.ColWidth,
		H: rowH,
	}
}

// CellAt inverts CellFrame for mouse hit-testing: it maps a viewport point
// and scroll offset to the page and cell index under the pointer.
// cellCount reports the number of cells on a page.
func (l *Layout) CellAt(p Point, offset int, cellCount func(page int) int) (page, index int, ok bool) {
	if !l.Ready() {
		return 0, 0, false
	}

	var along, across int
	if l.axis == AxisVertical {
		along, across = p.Y+offset, p.X
	} else {
		along, across = p.X+offset, p.Y
	}

	page = floorDiv(along, l.geo.PageLength)
	inPage := along - page*l.geo.PageLength

	count := cellCount(page)
	if count <= 0 {
		return 0, 0, false
	}
	rowH := l.RowHeightFor(count)

	var row, col int
	if l.axis == AxisVertical {
		row = (inPage - l.insets.Top) / rowH
		col = (across - l.geo.LeftPad) / l.geo.ColWidth
		if inPage < l.insets.Top || across < l.geo.LeftPad {
			return 0, 0, false
		}
	} else {
		col = (inPage - l.geo.LeftPad) / l.geo.ColWidth
		row = (across - l.insets.Top) / rowH
		if inPage < l.geo.LeftPad || across < l.insets.Top {
			return 0, 0, false
		}
	}

	if col < 0 || col >= DaysPerWeek || row < 0 {
		return 0, 0, false
	}
	index = row*DaysPerWeek + col
	if index >= count {
		return 0, 0, false
	}
	return page, index, true
}

// floorDiv divides rounding toward negative infinity, so negative offsets
// map to negative pages instead of truncating toward zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
