package picker

import (
	"time"

	"github.com/javiermolinar/almanaque/internal/dateutil"
)

// MonthSection is the payload of one materialized page: a month's day
// cells plus the leading pad that aligns day 1 with its weekday column.
type MonthSection struct {
	Month   time.Time // start of the month
	Page    int
	Leading int // empty cells before day 1
	Days    int
	Cells   []Cell
}

// NewMonthSection builds a section for the month containing date, deriving
// every day cell from the controller.
func NewMonthSection(c *Controller, date time.Time, page int) *MonthSection {
	month := dateutil.StartOfMonth(date)
	s := &MonthSection{
		Month:   month,
		Page:    page,
		Leading: dateutil.WeekdayIndex(month, c.FirstWeekday()),
		Days:    dateutil.DaysInMonth(month),
	}
	s.Cells = make([]Cell, s.Days)
	for i := range s.Cells {
		s.Cells[i] = c.CellFor(dateutil.AddDays(month, i))
	}
	return s
}

// CellCount returns the number of grid slots the section occupies,
// including the leading pad.
func (s *MonthSection) CellCount() int {
	return s.Leading + s.Days
}

// DateAt maps a grid slot index to its date. ok is false for pad slots
// and out-of-range indexes.
func (s *MonthSection) DateAt(index int) (time.Time, bool) {
	if index < s.Leading || index >= s.CellCount() {
		return time.Time{}, false
	}
	return dateutil.AddDays(s.Month, index-s.Leading), true
}

// IndexOf maps a date to its grid slot index, or -1 if the date is not in
// this month.
func (s *MonthSection) IndexOf(date time.Time) int {
	if !dateutil.SameMonth(date, s.Month) {
		return -1
	}
	return s.Leading + date.Day() - 1
}

// CellAt returns the cell for a grid slot. ok is false for pad slots.
func (s *MonthSection) CellAt(index int) (Cell, bool) {
	if index < s.Leading || index >= s.CellCount() {
		return Cell{}, false
	}
	return s.Cells[index-s.Leading], true
}

// MonthWindow is the sliding window of materialized month sections around
// the current page. The window size is constant; scrolling recycles the
// sections that stay visible and rebuilds only the ones that entered.
type MonthWindow struct {
	anchor   time.Time // month shown on page 0
	before   int
	sections []*MonthSection
}

// NewMonthWindow creates an empty window of before+after+1 sections
// anchored so that page 0 shows the month containing anchor.
func NewMonthWindow(anchor time.Time, before, after int) *MonthWindow {
	return &MonthWindow{
		anchor:   dateutil.StartOfMonth(anchor),
		before:   before,
		sections: make([]*MonthSection, before+after+1),
	}
}

// Anchor returns the month shown on page 0.
func (w *MonthWindow) Anchor() time.Time { return w.anchor }

// MonthFor maps a page index to its month.
func (w *MonthWindow) MonthFor(page int) time.Time {
	return dateutil.AddMonths(w.anchor, page)
}

// PageFor maps a month to its page index.
func (w *MonthWindow) PageFor(month time.Time) int {
	return dateutil.MonthsBetween(w.anchor, dateutil.StartOfMonth(month))
}

// Len returns the constant section count.
func (w *MonthWindow) Len() int { return len(w.sections) }

// Section returns the section in the given slot, nil before the first
// load.
func (w *MonthWindow) Section(slot int) *MonthSection {
	if slot < 0 || slot >= len(w.sections) {
		return nil
	}
	return w.sections[slot]
}

// SectionForPage returns the materialized section for a page, nil when the
// page is outside the window.
func (w *MonthWindow) SectionForPage(page, current int) *MonthSection {
	return w.Section(page - current + w.before)
}

// Realign slides the window so its center slot holds the current page.
// Sections whose page survives the move are recycled into their new slot;
// the rest are rebuilt from the controller.
func (w *MonthWindow) Realign(c *Controller, current int) {
	fresh := make([]*MonthSection, len(w.sections))
	for slot := range fresh {
		page := current - w.before + slot
		for _, s := range w.sections {
			if s != nil && s.Page == page {
				fresh[slot] = s
				break
			}
		}
		if fresh[slot] == nil {
			fresh[slot] = NewMonthSection(c, w.MonthFor(page), page)
		}
	}
	w.sections = fresh
}

// Rebuild refreshes every section in place, dropping recycled cell data.
// Used after bounds changes and selection/availability updates, when cell
// view models are stale even for pages that did not move.
func (w *MonthWindow) Rebuild(c *Controller, current int) {
	for slot := range w.sections {
		page := current - w.before + slot
		w.sections[slot] = NewMonthSection(c, w.MonthFor(page), page)
	}
}
