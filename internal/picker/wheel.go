package picker

import (
	"time"

	"github.com/javiermolinar/almanaque/internal/dateutil"
)

// MonthRows is the fixed row count of the wheel's month column: ten years
// of months, so user scrolling never visibly reaches an edge. Must stay a
// multiple of 12; decoding relies on row%12.
const MonthRows = 120

// Wheel is the month/year picker: a tall cyclic month column next to a
// year column bounded by the available range. Rows decode to the first of
// a month; out-of-range combinations snap back to the nearest valid month.
type Wheel struct {
	available dateutil.Range
	monthRow  int
	yearRow   int
}

// NewWheel creates a wheel over the available range, positioned on the
// month containing selected. The month column starts at its midpoint so
// both scroll directions have headroom.
func NewWheel(available dateutil.Range, selected time.Time) *Wheel {
	w := &Wheel{available: available, monthRow: MonthRows / 2}
	w.Reproject(selected)
	return w
}

// MonthRowCount returns the fixed month column height.
func (w *Wheel) MonthRowCount() int { return MonthRows }

// YearRowCount returns the year column height: one row per year of the
// available range.
func (w *Wheel) YearRowCount() int {
	return dateutil.YearsBetween(dateutil.StartOfYear(w.available.Start),
		dateutil.StartOfYear(w.available.End)) + 1
}

// MonthRow returns the current month row.
func (w *Wheel) MonthRow() int { return w.monthRow }

// YearRow returns the current year row.
func (w *Wheel) YearRow() int { return w.yearRow }

// YearForRow decodes a year row; row 0 is the first available year.
func (w *Wheel) YearForRow(row int) int {
	return w.available.Start.Year() + row
}

// Date decodes the current rows into the first of the selected month.
func (w *Wheel) Date() time.Time {
	return w.decode(w.monthRow, w.yearRow)
}

func (w *Wheel) decode(monthRow, yearRow int) time.Time {
	month := time.Month(mod(monthRow, 12) + 1)
	return time.Date(w.YearForRow(yearRow), month, 1, 0, 0, 0, 0, w.available.Start.Location())
}

// SetMonthRow moves the month column. The decoded month commits when it
// lies inside the available range; otherwise the wheel snaps back to the
// nearest in-range month. snapped reports a snap, so the caller can
// re-scroll the column.
func (w *Wheel) SetMonthRow(row int) (date time.Time, snapped bool) {
	return w.commit(row, w.yearRow)
}

// SetYearRow moves the year column, with the same snap-back rule.
func (w *Wheel) SetYearRow(row int) (date time.Time, snapped bool) {
	return w.commit(w.monthRow, row)
}

func (w *Wheel) commit(monthRow, yearRow int) (time.Time, bool) {
	if yearRow < 0 {
		yearRow = 0
	}
	if last := w.YearRowCount() - 1; yearRow > last {
		yearRow = last
	}
	if monthRow < 0 {
		monthRow = 0
	}
	if monthRow >= MonthRows {
		monthRow = MonthRows - 1
	}

	candidate := w.decode(monthRow, yearRow)
	clamped := dateutil.StartOfMonth(dateutil.ClampToMonths(candidate, w.available))
	if dateutil.SameMonth(candidate, clamped) {
		w.monthRow = monthRow
		w.yearRow = yearRow
		return candidate, false
	}
	w.project(clamped, monthRow)
	return clamped, true
}

// Reproject re-scrolls both columns to the month containing date, without
// committing a new value. Used when the selection or the available range
// changes from outside the wheel.
func (w *Wheel) Reproject(date time.Time) {
	month := dateutil.StartOfMonth(dateutil.ClampToMonths(date, w.available))
	w.project(month, w.monthRow)
}

// SetAvailableRange rebounds the year column and reprojects the current
// value into it.
func (w *Wheel) SetAvailableRange(available dateutil.Range) {
	current := w.Date()
	w.available = available
	w.Reproject(current)
}

// project positions the rows on month, keeping the month column as close
// to nearRow as the cycle allows.
func (w *Wheel) project(month time.Time, nearRow int) {
	base := nearRow - mod(nearRow, 12)
	if base < 0 {
		base = 0
	}
	if base > MonthRows-12 {
		base = MonthRows - 12
	}
	w.monthRow = base + int(month.Month()) - 1
	w.yearRow = month.Year() - w.available.Start.Year()
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
