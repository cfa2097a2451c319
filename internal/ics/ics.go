// Package ics imports iCalendar feeds as picker events. Parsing is done
// with arran4/golang-ical; recurring events expand through
// teambition/rrule-go between horizon bounds.
package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/javiermolinar/almanaque/internal/dateutil"
	"github.com/javiermolinar/almanaque/internal/event"
)

var (
	errMissingStart = errors.New("missing DTSTART")
	errEmptyTime    = errors.New("empty time value")
)

// maxOccurrences caps how many instances a single RRULE may expand to.
const maxOccurrences = 1000

// Parse reads an iCalendar stream and returns the events it contains,
// tagged with the given calendar name. Recurring events are expanded
// between the horizon bounds, honoring EXDATE; non-recurring events import
// regardless of the horizon. The second return value counts events skipped
// because they could not be parsed.
func Parse(r io.Reader, calendar string, horizon dateutil.Range) ([]*event.Event, int, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing calendar: %w", err)
	}
	if calendar == "" {
		calendar = event.DefaultCalendar
	}
	if horizon.Start.IsZero() || horizon.End.IsZero() {
		horizon = defaultHorizon(time.Now())
	}

	var (
		events  []*event.Event
		skipped int
	)
	for _, ve := range cal.Events() {
		expanded, err := fromVEvent(ve, calendar, horizon)
		if err != nil {
			skipped++
			continue
		}
		events = append(events, expanded...)
	}
	return events, skipped, nil
}

// defaultHorizon bounds recurrence expansion when the caller does not: one
// year back, two ahead.
func defaultHorizon(now time.Time) dateutil.Range {
	return dateutil.NewRange(dateutil.AddYears(now, -1), dateutil.AddYears(now, 2))
}

// fromVEvent converts one VEVENT into events, expanding its recurrence
// rule when it has one.
func fromVEvent(ve *ical.VEvent, calendar string, horizon dateutil.Range) ([]*event.Event, error) {
	startProp := ve.GetProperty(ical.ComponentPropertyDtStart)
	if startProp == nil {
		return nil, errMissingStart
	}
	start, err := ve.GetStartAt()
	if err != nil {
		if start, err = parseTime(startProp.Value, time.Local); err != nil {
			return nil, fmt.Errorf("parsing DTSTART: %w", err)
		}
	}
	end, err := ve.GetEndAt()
	if err != nil {
		end = start
		if p := ve.GetProperty(ical.ComponentPropertyDtEnd); p != nil {
			if t, perr := parseTime(p.Value, start.Location()); perr == nil {
				end = t
			}
		}
	}

	title := propValue(ve, ical.ComponentPropertySummary)
	if title == "" {
		title = "(untitled)"
	}
	uid := propValue(ve, ical.ComponentPropertyUniqueId)

	// Only a deliberately opaque all-day event blocks its days; timed
	// meetings keep the day selectable.
	busy := isAllDay(startProp) && strings.EqualFold(propValue(ve, "TRANSP"), "OPAQUE")

	color := propValue(ve, "COLOR")
	if !strings.HasPrefix(color, "#") {
		color = ""
	}

	raw := propValue(ve, ical.ComponentPropertyRrule)
	if raw == "" {
		e, err := newEvent(title, uid, calendar, color, busy, start, endDay(start, end))
		if err != nil {
			return nil, err
		}
		return []*event.Event{e}, nil
	}

	rule, err := rrule.StrToRRule(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing RRULE: %w", err)
	}
	rule.DTStart(start)

	var set rrule.Set
	set.RRule(rule)
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			ex, perr := parseTime(part, start.Location())
			if perr != nil {
				continue
			}
			set.ExDate(ex.In(start.Location()))
		}
	}

	span := end.Sub(start)
	from := dateutil.StartOfDay(horizon.Start)
	until := dateutil.AddDays(dateutil.StartOfDay(horizon.End), 1).Add(-time.Second)

	occurrences := set.Between(from, until, true)
	if len(occurrences) > maxOccurrences {
		occurrences = occurrences[:maxOccurrences]
	}

	out := make([]*event.Event, 0, len(occurrences))
	for _, occ := range occurrences {
		e, err := newEvent(title, uid, calendar, color, busy, occ, endDay(occ, occ.Add(span)))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// newEvent funnels an occurrence through event.New so every import obeys
// the same validation as locally created events.
func newEvent(title, uid, calendar, color string, busy bool, first, last time.Time) (*event.Event, error) {
	e, err := event.New(title, calendar, first.Format("2006-01-02"), last.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	e.UID = uid
	e.Color = color
	e.Busy = busy
	return e, nil
}

// endDay returns the inclusive last day covered by an event ending at end.
// DTEND is exclusive in iCalendar: all-day events end at midnight after
// their last day, and a timed event ending exactly at midnight belongs to
// the day before.
func endDay(start, end time.Time) time.Time {
	if !end.After(start) {
		return dateutil.StartOfDay(start)
	}
	day := dateutil.StartOfDay(end)
	if end.Equal(day) {
		day = dateutil.AddDays(day, -1)
	}
	if dateutil.AfterDay(dateutil.StartOfDay(start), day) {
		return dateutil.StartOfDay(start)
	}
	return day
}

func propValue(ve *ical.VEvent, name ical.ComponentProperty) string {
	if p := ve.GetProperty(name); p != nil {
		return strings.TrimSpace(p.Value)
	}
	return ""
}

// isAllDay reports whether DTSTART carries a date-only value.
func isAllDay(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

// parseTime parses the basic ICS date and date-time value forms used by
// EXDATE and as a fallback for DTSTART/DTEND. Date-only and floating
// date-time values resolve in loc; the Z form is absolute.
func parseTime(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return time.Time{}, errEmptyTime
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, loc)
	default:
		return time.ParseInLocation("20060102", v, loc)
	}
}
