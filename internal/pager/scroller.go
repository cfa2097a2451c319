package pager

// Reload tells the caller what the last scroll event invalidated.
type Reload int

const (
	// ReloadNone means sections and positions are still valid.
	ReloadNone Reload = iota
	// ReloadData means the section-to-page mapping moved: each section
	// must re-pull its month's data, positions are unchanged.
	ReloadData
	// ReloadFull means positions changed too: relayout and reload.
	ReloadFull
)

// Scroller reconciles the scroll offset with the logical current page.
// It tracks the preferred page (last explicitly requested) separately from
// the current page (derived from the live offset), restores the offset
// across bounds and content size changes, and reports what each event
// invalidated. Everything is deferred until the container is ready.
type Scroller struct {
	layout    *Layout
	offset    int
	preferred int
	pageCount int

	// materialized is the page the section window was last built around.
	materialized int

	// animating offset tween toward target; superseded by any new
	// page-set or user scroll.
	animating bool
	target    int
}

// NewScroller wraps a layout in a scroll container.
func NewScroller(layout *Layout) *Scroller {
	return &Scroller{layout: layout}
}

// Ready reports whether the container has nonzero bounds, a positive page
// length and content to show.
func (s *Scroller) Ready() bool {
	return s.layout.Ready() && s.pageCount > 0
}

// Offset returns the live scroll offset.
func (s *Scroller) Offset() int {
	return s.offset
}

// CurrentPage returns the page derived from the live offset.
func (s *Scroller) CurrentPage() int {
	return s.layout.CurrentPage(s.offset)
}

// PreferredPage returns the last explicitly requested page.
func (s *Scroller) PreferredPage() int {
	return s.preferred
}

// Animating reports whether an offset tween is in flight.
func (s *Scroller) Animating() bool {
	return s.animating
}

// PageCount returns the content size in pages.
func (s *Scroller) PageCount() int {
	return s.pageCount
}

// SetBounds installs a new viewport size. A size change restores the
// offset to the preferred page without animation and forces a full reload,
// since section positions moved with the geometry.
func (s *Scroller) SetBounds(bounds Size) Reload {
	if !s.layout.SetBounds(bounds) {
		return ReloadNone
	}
	return s.restore()
}

// SetPageCount installs a new content size (page count). A change restores
// the offset to the preferred page and forces a full reload.
func (s *Scroller) SetPageCount(n int) Reload {
	if n < 0 {
		n = 0
	}
	if n == s.pageCount {
		return ReloadNone
	}
	s.pageCount = n
	if s.preferred >= n && n > 0 {
		s.preferred = n - 1
	}
	if s.preferred < 0 {
		s.preferred = 0
	}
	return s.restore()
}

// restore snaps the offset back to the preferred page and reports a full
// reload. Deferred until ready.
func (s *Scroller) restore() Reload {
	if !s.Ready() {
		return ReloadNone
	}
	s.animating = false
	s.offset = s.clampOffset(s.layout.PageOffset(s.preferred))
	s.materialized = s.CurrentPage()
	return ReloadFull
}

// ScrollBy applies a user scroll delta. It cancels any tween, clamps the
// offset into the content, and reports a data reload when the derived
// page changed (the preferred page follows the user).
func (s *Scroller) ScrollBy(delta int) Reload {
	if !s.Ready() {
		return ReloadNone
	}
	s.animating = false
	return s.moveTo(s.offset+delta, true)
}

// SetCurrentPage requests a page programmatically. The preferred page
// updates immediately, independent of the live derived page; the offset
// either jumps or tweens there. A new call supersedes an in-flight tween.
func (s *Scroller) SetCurrentPage(page int, animated bool) Reload {
	if s.pageCount > 0 {
		if page < 0 {
			page = 0
		}
		if page >= s.pageCount {
			page = s.pageCount - 1
		}
	}
	s.preferred = page
	if !s.Ready() {
		// Deferred: restore() applies the preferred page once the
		// container becomes ready.
		return ReloadNone
	}

	target := s.clampOffset(s.layout.PageOffset(page))
	if animated && target != s.offset {
		s.animating = true
		s.target = target
		return ReloadNone
	}
	s.animating = false
	return s.moveTo(target, false)
}

// Step advances an in-flight tween by one frame. done reports whether the
// tween finished.
func (s *Scroller) Step() (Reload, bool) {
	if !s.animating {
		return ReloadNone, true
	}
	remaining := s.target - s.offset
	if remaining == 0 {
		s.animating = false
		return ReloadNone, true
	}

	step := remaining / 3
	if step == 0 {
		if remaining > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	reload := s.moveTo(s.offset+step, false)
	if s.offset == s.target {
		s.animating = false
		return reload, true
	}
	return reload, false
}

// moveTo installs a new offset and reports whether the page window moved.
// followUser makes the preferred page track the derived page, which is the
// user-scroll policy; programmatic moves keep their own preferred page.
func (s *Scroller) moveTo(offset int, followUser bool) Reload {
	s.offset = s.clampOffset(offset)
	cur := s.CurrentPage()
	if cur == s.materialized {
		return ReloadNone
	}
	s.materialized = cur
	if followUser {
		s.preferred = cur
	}
	return ReloadData
}

// clampOffset confines an offset to the scrollable content.
func (s *Scroller) clampOffset(offset int) int {
	g := s.layout.Geometry()
	viewport := g.Bounds.Height
	if s.layout.Axis() == AxisHorizontal {
		viewport = g.Bounds.Width
	}
	max := s.pageCount*g.PageLength - viewport
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
