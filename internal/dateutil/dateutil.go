// Package dateutil provides the calendar arithmetic the picker is built on:
// granularity boundaries, signed month/year distances, clamped addition,
// day ranges and range re-projection. All functions are pure and normalize
// bad input instead of returning errors.
package dateutil

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Validation errors (used by the parsing helpers, never by the arithmetic).
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// Bounds used when no explicit available range is configured.
var (
	DistantPast   = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	DistantFuture = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// StartOfDay returns t with the time set to midnight. Idempotent.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight on the first day of t's month. Idempotent.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfYear returns midnight on January 1st of t's year. Idempotent.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in t's month (28-31).
func DaysInMonth(t time.Time) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// MonthsBetween returns the signed number of month boundaries crossed
// going from a to b. MonthsBetween(a, a) is 0; the first day of the next
// month is exactly 1 away regardless of day-of-month.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// YearsBetween returns the signed number of year boundaries crossed going
// from a to b.
func YearsBetween(a, b time.Time) int {
	return b.Year() - a.Year()
}

// AddDays returns t shifted by n calendar days, keeping the time of day.
func AddDays(t time.Time, n int) time.Time {
	return bounded(t, t.AddDate(0, 0, n))
}

// AddMonths returns t shifted by n months. A day-of-month that does not
// exist in the target month clamps to that month's last day, so one month
// after January 31st lands on the last day of February, never in March.
func AddMonths(t time.Time, n int) time.Time {
	first := StartOfMonth(t).AddDate(0, n, 0)
	day := t.Day()
	if max := DaysInMonth(first); day > max {
		day = max
	}
	out := time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	return bounded(t, out)
}

// AddYears returns t shifted by n years, clamping February 29th to the
// 28th on non-leap targets.
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, n*12)
}

// bounded guards against arithmetic leaving the representable window;
// out-of-window results fall back to the unchanged input.
func bounded(in, out time.Time) time.Time {
	if out.Year() < DistantPast.Year() || out.Year() > DistantFuture.Year() {
		return in
	}
	return out
}

// WeekdayIndex returns t's 0-based column in a week that starts on first.
func WeekdayIndex(t time.Time, first time.Weekday) int {
	return (int(t.Weekday()) - int(first) + 7) % 7
}

// WeekdayShort returns the two-letter label for the given grid column when
// the week starts on first.
func WeekdayShort(first time.Weekday, col int) string {
	d := time.Weekday((int(first) + col) % 7)
	return d.String()[:2]
}

// CombineDateAndTime builds a timestamp from day's calendar fields and
// clock's time-of-day fields, in day's location. Selecting a new day keeps
// the clock of the previous selection this way.
func CombineDateAndTime(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(),
		day.Location())
}

// dayUTC pins t's calendar day to UTC midnight. Day-granularity
// comparisons go through it so operands from different locations (stored
// dates vs the local clock) compare by calendar day, not by instant.
func dayUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// monthOrdinal counts months since year zero, for location-independent
// month comparisons.
func monthOrdinal(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// AfterDay reports whether a's calendar day is strictly after b's.
func AfterDay(a, b time.Time) bool {
	return dayUTC(a).After(dayUTC(b))
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Range is a closed date interval. Bounds carry full timestamps; all
// interval semantics are at day granularity.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange builds a range, swapping inverted bounds.
func NewRange(start, end time.Time) Range {
	if end.Before(start) {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// SingleDay builds a range whose bounds are both t.
func SingleDay(t time.Time) Range {
	return Range{Start: t, End: t}
}

// Contains reports whether t's day lies within the range.
func (r Range) Contains(t time.Time) bool {
	d := dayUTC(t)
	return !d.Before(dayUTC(r.Start)) && !d.After(dayUTC(r.End))
}

// IsSingle reports whether both bounds fall on the same day.
func (r Range) IsSingle() bool {
	return SameDay(r.Start, r.End)
}

// Days returns the inclusive day count spanned by the range.
func (r Range) Days() int {
	return int(dayUTC(r.End).Sub(dayUTC(r.Start)).Hours()/24) + 1
}

// SameDays reports whether two ranges cover the same calendar days,
// ignoring time of day. Used to suppress redundant change notifications.
func (r Range) SameDays(o Range) bool {
	return SameDay(r.Start, o.Start) && SameDay(r.End, o.End)
}

// ClampToRange confines t to r at day granularity, keeping t's time of
// day when it moves to a bound. Idempotent.
func ClampToRange(t time.Time, r Range) time.Time {
	if dayUTC(t).Before(dayUTC(r.Start)) {
		return CombineDateAndTime(r.Start, t)
	}
	if dayUTC(t).After(dayUTC(r.End)) {
		return CombineDateAndTime(r.End, t)
	}
	return t
}

// ClampRange confines both of sel's bounds to avail at day granularity.
func ClampRange(sel, avail Range) Range {
	return Range{
		Start: ClampToRange(sel.Start, avail),
		End:   ClampToRange(sel.End, avail),
	}
}

// ClampToMonths confines t to r at month granularity: any day inside a
// month that overlaps r is left alone, otherwise t snaps to the nearest
// bound.
func ClampToMonths(t time.Time, r Range) time.Time {
	if monthOrdinal(t) < monthOrdinal(r.Start) {
		return r.Start
	}
	if monthOrdinal(t) > monthOrdinal(r.End) {
		return r.End
	}
	return t
}

// ProjectRangeIntoMonth re-projects r's day-of-month values into the given
// month, keeping the month span between the bounds. A day-of-month beyond
// the target month's length clamps to its last day. Returns ok=false when
// clamping collapses a positive-length range, since the result would no
// longer be forward-ordered.
func ProjectRangeIntoMonth(r Range, month time.Time) (Range, bool) {
	span := MonthsBetween(StartOfMonth(r.Start), StartOfMonth(r.End))
	startMonth := StartOfMonth(month)
	endMonth := AddMonths(startMonth, span)

	out := Range{
		Start: projectDay(r.Start, startMonth),
		End:   projectDay(r.End, endMonth),
	}

	if dayUTC(out.End).Before(dayUTC(out.Start)) {
		return Range{}, false
	}
	if !r.IsSingle() && out.IsSingle() {
		return Range{}, false
	}
	return out, true
}

// projectDay moves t's day-of-month and clock into the given month,
// clamping the day to the month's length.
func projectDay(t, month time.Time) time.Time {
	day := t.Day()
	if max := DaysInMonth(month); day > max {
		day = max
	}
	return time.Date(month.Year(), month.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return StartOfDay(time.Now()), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// NewDateRange parses a start and end date with validation. startDate can
// be empty (defaults to today); endDate can be empty (defaults to
// startDate). Returns an error if endDate is before startDate.
func NewDateRange(startDate, endDate string) (*Range, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	var end time.Time
	if endDate == "" {
		end = start
	} else {
		end, err = ParseDate(endDate)
		if err != nil {
			return nil, err
		}
	}

	if end.Before(start) {
		return nil, ErrEndDateBeforeStart
	}

	return &Range{Start: start, End: end}, nil
}

// ParseRelativeDate parses a date phrase relative to a reference date:
//   - Empty string or "today": the reference date
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//   - Keywords: "tomorrow", "yesterday"
//   - Weekday names: "monday" through "sunday" (next occurrence)
//   - Prefixed: "next-monday", "last-friday", "next-week", "last-week"
//   - Offsets: "+3d", "-2w", "+1m", "-1y"
//
// All inputs are case-insensitive. Past dates are allowed; a calendar
// navigates backwards as well as forwards.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := StartOfDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return AddDays(today, 1), nil
	case "yesterday":
		return AddDays(today, -1), nil
	case "next-week":
		return AddDays(today, 7), nil
	case "last-week":
		return AddDays(today, -7), nil
	}

	if strings.HasPrefix(input, "next-") {
		if target, ok := weekdayMap[strings.TrimPrefix(input, "next-")]; ok {
			return nextWeekday(today, target), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}
	if strings.HasPrefix(input, "last-") {
		if target, ok := weekdayMap[strings.TrimPrefix(input, "last-")]; ok {
			return lastWeekday(today, target), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}

	if target, ok := weekdayMap[input]; ok {
		return nextWeekday(today, target), nil
	}

	if t, ok := parseOffset(input, today); ok {
		return t, nil
	}

	result, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}

// parseOffset handles "+Nd", "-Nw", "+Nm", "-Ny" style phrases.
func parseOffset(input string, today time.Time) (time.Time, bool) {
	if len(input) < 3 || (input[0] != '+' && input[0] != '-') {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(input[:len(input)-1])
	if err != nil {
		return time.Time{}, false
	}
	switch input[len(input)-1] {
	case 'd':
		return AddDays(today, n), true
	case 'w':
		return AddDays(today, n*7), true
	case 'm':
		return AddMonths(today, n), true
	case 'y':
		return AddYears(today, n), true
	}
	return time.Time{}, false
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := int(target) - int(today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return AddDays(today, daysUntil)
}

// lastWeekday returns the most recent occurrence of the given weekday
// before today.
func lastWeekday(today time.Time, target time.Weekday) time.Time {
	daysSince := int(today.Weekday()) - int(target)
	if daysSince <= 0 {
		daysSince += 7
	}
	return AddDays(today, -daysSince)
}
