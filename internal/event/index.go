package event

import (
	"time"

	"github.com/javiermolinar/almanaque/internal/dateutil"
)

const dayKey = "2006-01-02"

// Index is an immutable snapshot of the events covering a set of months,
// grouped by day. The TUI rebuilds it off the update loop whenever the
// materialized month window moves; the delegate answers every query from
// it without touching storage.
type Index struct {
	byDay  map[string][]*Event
	months map[string]bool // "2006-01" keys of the covered months
}

// NewIndex builds an index of the given events over the months they were
// loaded for. Multi-day events are expanded onto each day they cover,
// bounded by the covered months so an open-ended span cannot blow up the
// map.
func NewIndex(events []*Event, months []time.Time) *Index {
	ix := &Index{
		byDay:  make(map[string][]*Event),
		months: make(map[string]bool, len(months)),
	}
	if len(months) == 0 {
		return ix
	}

	lo, hi := months[0], months[0]
	for _, m := range months {
		ix.months[m.Format("2006-01")] = true
		if m.Before(lo) {
			lo = m
		}
		if m.After(hi) {
			hi = m
		}
	}
	span := dateutil.Range{
		Start: dateutil.StartOfMonth(lo),
		End:   dateutil.AddDays(dateutil.AddMonths(dateutil.StartOfMonth(hi), 1), -1),
	}

	for _, e := range events {
		r := dateutil.ClampRange(e.Range(), span)
		if !e.Range().Contains(r.Start) {
			// The event lies entirely outside the covered months.
			continue
		}
		for d := dateutil.StartOfDay(r.Start); !dateutil.AfterDay(d, r.End); d = dateutil.AddDays(d, 1) {
			key := d.Format(dayKey)
			ix.byDay[key] = append(ix.byDay[key], e)
		}
	}
	return ix
}

// EventsOn returns the events covering a day, nil when there are none.
func (ix *Index) EventsOn(date time.Time) []*Event {
	return ix.byDay[date.Format(dayKey)]
}

// Covers reports whether the index was built for the month containing
// date.
func (ix *Index) Covers(date time.Time) bool {
	return ix.months[date.Format("2006-01")]
}

// Len returns the number of days that have at least one event.
func (ix *Index) Len() int {
	return len(ix.byDay)
}
