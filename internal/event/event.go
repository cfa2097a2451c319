// Package event defines the calendar annotations behind the picker: day
// and multi-day events, the storage interface, and the in-memory index
// the picker delegate answers from.
package event

import (
	"errors"
	"time"

	"github.com/javiermolinar/almanaque/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle = errors.New("title cannot be empty")
)

// Domain errors.
var (
	ErrEventNotFound = errors.New("event not found")
)

// DefaultCalendar is the calendar name for locally created events.
const DefaultCalendar = "default"

// Event is a calendar entry spanning one or more whole days. Busy events
// block their days from being selected in the picker; the rest only
// decorate them.
type Event struct {
	ID        int64
	Calendar  string // source calendar, DefaultCalendar for local events
	UID       string // ICS UID, empty for local events
	Title     string
	StartDate time.Time
	EndDate   time.Time // last day, inclusive; same as StartDate for one-day events
	Color     string    // render color override, empty keeps the theme
	Busy      bool
	CreatedAt time.Time
}

// New creates a one-or-more-day event with validation. endDate may be
// empty for a single-day event; inverted dates are rejected by
// dateutil.NewDateRange.
func New(title, calendar, startDate, endDate string) (*Event, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if calendar == "" {
		calendar = DefaultCalendar
	}
	if endDate == "" {
		endDate = startDate
	}

	r, err := dateutil.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &Event{
		Calendar:  calendar,
		Title:     title,
		StartDate: r.Start,
		EndDate:   r.End,
		CreatedAt: time.Now(),
	}, nil
}

// Range returns the event's day range.
func (e *Event) Range() dateutil.Range {
	return dateutil.Range{Start: e.StartDate, End: e.EndDate}
}

// Days returns the inclusive day count the event spans.
func (e *Event) Days() int {
	return e.Range().Days()
}

// IsMultiDay returns true if the event spans more than one day.
func (e *Event) IsMultiDay() bool {
	return !dateutil.SameDay(e.StartDate, e.EndDate)
}

// On returns true if the event covers the given day.
func (e *Event) On(date time.Time) bool {
	return e.Range().Contains(date)
}
