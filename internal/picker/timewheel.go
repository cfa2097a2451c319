package picker

import (
	"time"

	"github.com/javiermolinar/almanaque/internal/dateutil"
)

// TimeWheel is the time-mode fallback: an hour column and a minute column
// stepped by a configurable interval. Row changes re-combine the held
// day with the new clock, so the date part never drifts.
type TimeWheel struct {
	value    time.Time
	interval int // minutes per row, divisor of 60
}

// NewTimeWheel creates a time wheel holding value. Intervals that do not
// divide 60 fall back to 1 minute.
func NewTimeWheel(value time.Time, interval int) *TimeWheel {
	if interval <= 0 || 60%interval != 0 {
		interval = 1
	}
	return &TimeWheel{value: value, interval: interval}
}

// Value returns the held timestamp.
func (t *TimeWheel) Value() time.Time { return t.value }

// Interval returns the minute step.
func (t *TimeWheel) Interval() int { return t.interval }

// HourRowCount returns the hour column height.
func (t *TimeWheel) HourRowCount() int { return 24 }

// MinuteRowCount returns the minute column height.
func (t *TimeWheel) MinuteRowCount() int { return 60 / t.interval }

// HourRow returns the row for the held hour.
func (t *TimeWheel) HourRow() int { return t.value.Hour() }

// MinuteRow returns the row for the held minute, rounded down to the
// interval grid.
func (t *TimeWheel) MinuteRow() int { return t.value.Minute() / t.interval }

// SetHourRow moves the hour column. changed reports whether the clock
// actually moved.
func (t *TimeWheel) SetHourRow(row int) (time.Time, bool) {
	row = clampRow(row, t.HourRowCount())
	return t.combine(row, t.value.Minute())
}

// SetMinuteRow moves the minute column.
func (t *TimeWheel) SetMinuteRow(row int) (time.Time, bool) {
	row = clampRow(row, t.MinuteRowCount())
	return t.combine(t.value.Hour(), row*t.interval)
}

// SetValue replaces the held timestamp from outside (selection changed in
// date mode); the columns reproject to it.
func (t *TimeWheel) SetValue(v time.Time) { t.value = v }

func (t *TimeWheel) combine(hour, minute int) (time.Time, bool) {
	clock := time.Date(t.value.Year(), t.value.Month(), t.value.Day(),
		hour, minute, 0, 0, t.value.Location())
	next := dateutil.CombineDateAndTime(t.value, clock)
	if next.Equal(t.value) {
		return t.value, false
	}
	t.value = next
	return next, true
}

func clampRow(row, count int) int {
	if row < 0 {
		return 0
	}
	if row >= count {
		return count - 1
	}
	return row
}
