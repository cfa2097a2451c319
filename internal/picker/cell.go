package picker

import "time"

// CellKind classifies a day cell for rendering. Exactly one kind applies;
// precedence is selection over unavailability over today over available.
type CellKind int

const (
	// CellEmpty pads the grid before the month's first day.
	CellEmpty CellKind = iota
	// CellAvailable is a plain selectable day.
	CellAvailable
	// CellCurrent is today, when highlighting is enabled.
	CellCurrent
	// CellUnavailable is outside the available range or vetoed.
	CellUnavailable
	// CellRange is the interior of a multi-day selection.
	CellRange
	// CellSelected is a selection endpoint.
	CellSelected
)

// Cell is the view model for one day in the grid. It is a pure function
// of controller state and delegate answers; rendering reads it without
// touching either.
type Cell struct {
	Date time.Time
	Day  int
	Kind CellKind

	// SelStart and SelEnd mark which endpoint a CellSelected cell is.
	// Both are set for a single-day selection.
	SelStart bool
	SelEnd   bool

	// Annotation is the delegate's marker for this day, if any.
	Annotation string

	// Background and Foreground override the theme when non-empty.
	Background string
	Foreground string

	// Highlight marks the cell as part of a pressed interactive range.
	Highlight bool
}
