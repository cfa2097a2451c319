// Package picker implements the calendar selection state machine: the grid
// controller that owns visible month, selection and availability, the
// recycled month-section window it feeds, and the month/year and time
// wheels. It renders nothing; the tui package turns its view models into
// cells on screen.
package picker

import (
	"time"

	"github.com/javiermolinar/almanaque/internal/dateutil"
)

// Delegate customizes selection rules and per-day decoration. All methods
// are called synchronously while building view models or handling a tap,
// so implementations must answer from in-memory state.
type Delegate interface {
	// IsDateSelectable reports whether a day may become part of the
	// selection. Days outside the controller's available range are
	// rejected before this is consulted.
	IsDateSelectable(date time.Time) bool

	// ContainedRange returns the multi-day range the date belongs to, if
	// any. A range whose days are not selectable is interactive: tapping
	// any of its days reports the whole range instead of changing the
	// selection.
	ContainedRange(date time.Time) (dateutil.Range, bool)

	// Annotation returns a short marker rendered inside the day cell,
	// or "" for none.
	Annotation(date time.Time) string

	// Colors returns background and foreground overrides for a day.
	// Empty strings keep the theme's defaults.
	Colors(date time.Time) (background, foreground string)
}

// NopDelegate allows every date and decorates nothing. Embed it to
// implement only the methods a host cares about.
type NopDelegate struct{}

func (NopDelegate) IsDateSelectable(time.Time) bool { return true }

func (NopDelegate) ContainedRange(time.Time) (dateutil.Range, bool) { return dateutil.Range{}, false }

func (NopDelegate) Annotation(time.Time) string { return "" }

func (NopDelegate) Colors(time.Time) (string, string) { return "", "" }
