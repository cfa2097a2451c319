package event

import (
	"sync"
	"time"

	"github.com/javiermolinar/almanaque/internal/dateutil"
)

// StoreDelegate answers the picker's per-day queries from an event index:
// busy days are vetoed, multi-day events become contained ranges, and
// events decorate their days with a marker and color. It satisfies
// picker.Delegate.
//
// The index is swapped atomically by the TUI's load command while queries
// run on the update goroutine, hence the lock.
type StoreDelegate struct {
	mu    sync.RWMutex
	index *Index
}

// NewStoreDelegate creates a delegate with an empty index.
func NewStoreDelegate() *StoreDelegate {
	return &StoreDelegate{index: NewIndex(nil, nil)}
}

// SetIndex installs a freshly built index.
func (d *StoreDelegate) SetIndex(ix *Index) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if ix == nil {
		ix = NewIndex(nil, nil)
	}
	d.index = ix
}

// Index returns the current snapshot.
func (d *StoreDelegate) Index() *Index {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index
}

// IsDateSelectable vetoes days covered by a busy event.
func (d *StoreDelegate) IsDateSelectable(date time.Time) bool {
	for _, e := range d.Index().EventsOn(date) {
		if e.Busy {
			return false
		}
	}
	return true
}

// ContainedRange returns the range of the first multi-day event covering
// the day. Combined with busy vetoes this makes busy multi-day events
// interactive: tapping them reports the whole range.
func (d *StoreDelegate) ContainedRange(date time.Time) (dateutil.Range, bool) {
	for _, e := range d.Index().EventsOn(date) {
		if e.IsMultiDay() {
			return e.Range(), true
		}
	}
	return dateutil.Range{}, false
}

// Annotation marks days with events: a dot for one, the count up to nine,
// then a plus.
func (d *StoreDelegate) Annotation(date time.Time) string {
	n := len(d.Index().EventsOn(date))
	switch {
	case n == 0:
		return ""
	case n == 1:
		return "•"
	case n > 9:
		return "+"
	default:
		return string(rune('0' + n))
	}
}

// Colors returns the first color-carrying event's color as the cell
// background.
func (d *StoreDelegate) Colors(date time.Time) (string, string) {
	for _, e := range d.Index().EventsOn(date) {
		if e.Color != "" {
			return e.Color, ""
		}
	}
	return "", ""
}

// EventsOn exposes the indexed events for a day, for the footer and the
// events CLI views.
func (d *StoreDelegate) EventsOn(date time.Time) []*Event {
	return d.Index().EventsOn(date)
}
