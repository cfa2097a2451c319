package pager

import "testing"

func verticalLayout(t *testing.T, w, h int) *Layout {
	t.Helper()
	l := NewLayout(AxisVertical, Insets{})
	if !l.SetBounds(Size{Width: w, Height: h}) {
		t.Fatalf("SetBounds(%d, %d) reported no change on fresh layout", w, h)
	}
	return l
}

func TestLayoutSetBounds(t *testing.T) {
	l := NewLayout(AxisVertical, Insets{})

	if l.Ready() {
		t.Fatal("layout ready before bounds were set")
	}
	if !l.SetBounds(Size{Width: 28, Height: 12}) {
		t.Fatal("first SetBounds reported no change")
	}
	if !l.Ready() {
		t.Fatal("layout not ready after bounds were set")
	}
	if l.SetBounds(Size{Width: 28, Height: 12}) {
		t.Fatal("SetBounds with the same size reported a change")
	}
	if !l.SetBounds(Size{Width: 35, Height: 12}) {
		t.Fatal("SetBounds with a new width reported no change")
	}
}

func TestLayoutNarrowViewport(t *testing.T) {
	l := NewLayout(AxisVertical, Insets{Top: 1})
	l.SetBounds(Size{Width: 3, Height: 20})

	// Fewer than seven columns of width leaves no drawable grid.
	if l.Ready() {
		t.Fatal("layout with zero-width columns must not report ready")
	}
	if _, _, ok := l.CellAt(Point{X: 1, Y: 5}, 0, func(int) int { return 42 }); ok {
		t.Error("hit-testing an unusable layout should report no cell")
	}
}

func TestLayoutColumns(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		insets   Insets
		colWidth int
		leftPad  int
	}{
		{name: "exact multiple", width: 28, colWidth: 4, leftPad: 0},
		{name: "leftover centered", width: 30, colWidth: 4, leftPad: 1},
		{name: "odd leftover floors", width: 33, colWidth: 4, leftPad: 2},
		{name: "insets reduce content", width: 32, insets: Insets{Left: 2, Right: 2}, colWidth: 4, leftPad: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(AxisVertical, tt.insets)
			l.SetBounds(Size{Width: tt.width, Height: 12})
			g := l.Geometry()
			if g.ColWidth != tt.colWidth {
				t.Errorf("ColWidth = %d, want %d", g.ColWidth, tt.colWidth)
			}
			if g.LeftPad != tt.leftPad {
				t.Errorf("LeftPad = %d, want %d", g.LeftPad, tt.leftPad)
			}
		})
	}
}

func TestLayoutVerticalPageLength(t *testing.T) {
	l := NewLayout(AxisVertical, Insets{Top: 1, Bottom: 1})
	l.SetBounds(Size{Width: 28, Height: 14})

	g := l.Geometry()
	if g.RowHeight != 2 {
		t.Fatalf("RowHeight = %d, want 2", g.RowHeight)
	}
	// One page holds the insets plus six optimal rows.
	if g.PageLength != 1+1+6*2 {
		t.Errorf("PageLength = %d, want 14", g.PageLength)
	}
	if g.Before != 1 {
		t.Errorf("Before = %d, want 1", g.Before)
	}
	// Viewport of 14 cells over 14-cell pages needs one page after.
	if g.After != 1 {
		t.Errorf("After = %d, want 1", g.After)
	}
}

func TestLayoutVerticalPreloadCoversViewport(t *testing.T) {
	// A short page length against a tall viewport needs more pages after.
	l := NewLayout(AxisVertical, Insets{})
	l.SetBounds(Size{Width: 28, Height: 20})

	g := l.Geometry()
	if g.PageLength != 18 {
		t.Fatalf("PageLength = %d, want 18", g.PageLength)
	}
	if g.After != 2 {
		t.Errorf("After = %d, want 2", g.After)
	}
	if got := g.Sections(); got != g.Before+g.After+1 {
		t.Errorf("Sections() = %d, want %d", got, g.Before+g.After+1)
	}
}

func TestLayoutHorizontal(t *testing.T) {
	l := NewLayout(AxisHorizontal, Insets{})
	l.SetBounds(Size{Width: 28, Height: 12})

	g := l.Geometry()
	if g.PageLength != 28 {
		t.Errorf("PageLength = %d, want viewport width 28", g.PageLength)
	}
	if g.Before != 1 || g.After != 1 {
		t.Errorf("preload = (%d, %d), want (1, 1)", g.Before, g.After)
	}
	if got := g.Sections(); got != 3 {
		t.Errorf("Sections() = %d, want 3", got)
	}
}

func TestLayoutCurrentPage(t *testing.T) {
	l := verticalLayout(t, 28, 12)
	pageLen := l.Geometry().PageLength

	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{name: "origin", offset: 0, want: 0},
		{name: "just under half", offset: pageLen/2 - 1, want: 0},
		{name: "at half", offset: pageLen / 2, want: 1},
		{name: "full page", offset: pageLen, want: 1},
		{name: "negative stays floored", offset: -pageLen / 2, want: 0},
		{name: "negative past half", offset: -pageLen/2 - 1, want: -1},
		{name: "full negative page", offset: -pageLen, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.CurrentPage(tt.offset); got != tt.want {
				t.Errorf("CurrentPage(%d) = %d, want %d", tt.offset, got, tt.want)
			}
		})
	}
}

func TestLayoutSectionPageRoundTrip(t *testing.T) {
	l := verticalLayout(t, 28, 24)

	for _, offset := range []int{0, 17, 54, 180, -31} {
		cur := l.CurrentPage(offset)
		for section := 0; section < l.Geometry().Sections(); section++ {
			page := l.PageForSection(section, cur)
			if got := l.SectionForPage(page, cur); got != section {
				t.Errorf("offset %d: SectionForPage(PageForSection(%d)) = %d", offset, section, got)
			}
		}
		if got := l.SectionForPage(cur, cur); got != l.Geometry().Before {
			t.Errorf("offset %d: current page maps to section %d, want %d", offset, got, l.Geometry().Before)
		}
	}
}

func TestLayoutRowsFor(t *testing.T) {
	vertical := verticalLayout(t, 28, 12)
	if got := vertical.RowsFor(31); got != OptimalRows {
		t.Errorf("vertical RowsFor(31) = %d, want %d", got, OptimalRows)
	}

	horizontal := NewLayout(AxisHorizontal, Insets{})
	horizontal.SetBounds(Size{Width: 28, Height: 12})

	tests := []struct {
		cells int
		want  int
	}{
		{cells: 28, want: 4},
		{cells: 29, want: 5},
		{cells: 35, want: 5},
		{cells: 42, want: 6},
		{cells: 0, want: 1},
	}
	for _, tt := range tests {
		if got := horizontal.RowsFor(tt.cells); got != tt.want {
			t.Errorf("horizontal RowsFor(%d) = %d, want %d", tt.cells, got, tt.want)
		}
	}
}

func TestLayoutCellFrame(t *testing.T) {
	l := verticalLayout(t, 28, 12)
	g := l.Geometry()

	first := l.CellFrame(0, 30)
	if first.X != g.LeftPad || first.Y != 0 {
		t.Errorf("cell 0 at (%d, %d), want (%d, 0)", first.X, first.Y, g.LeftPad)
	}
	if first.W != g.ColWidth || first.H != g.RowHeight {
		t.Errorf("cell 0 size (%d, %d), want (%d, %d)", first.W, first.H, g.ColWidth, g.RowHeight)
	}

	// Cell 7 starts the second row.
	second := l.CellFrame(7, 30)
	if second.X != first.X || second.Y != first.Y+g.RowHeight {
		t.Errorf("cell 7 at (%d, %d), want (%d, %d)", second.X, second.Y, first.X, first.Y+g.RowHeight)
	}
}

func TestLayoutCellAt(t *testing.T) {
	l := verticalLayout(t, 28, 24)
	g := l.Geometry()
	cells := func(int) int { return 30 }

	frame := l.CellFrame(9, 30)
	p := Point{X: frame.X + 1, Y: frame.Y + g.PageLength} // page 1, cell 9

	page, index, ok := l.CellAt(p, 0, cells)
	if !ok {
		t.Fatal("CellAt missed a cell inside the grid")
	}
	if page != 1 || index != 9 {
		t.Errorf("CellAt = (page %d, cell %d), want (1, 9)", page, index)
	}

	// Row four holds cells 28 and 29 of a 30-cell page; row five is empty.
	if _, index, ok := l.CellAt(Point{X: g.ColWidth, Y: 4 * g.RowHeight}, 0, cells); !ok || index != 29 {
		t.Errorf("CellAt in last populated row = (%d, %v), want (29, true)", index, ok)
	}
	if _, _, ok := l.CellAt(Point{X: g.ColWidth, Y: 5 * g.RowHeight}, 0, cells); ok {
		t.Error("CellAt hit a cell past the page's cell count")
	}
}
