package picker

import (
	"time"

	"github.com/javiermolinar/almanaque/internal/dateutil"
)

// Behavior selects how taps build the selection.
type Behavior int

const (
	// BehaviorSingle keeps the selection a single day.
	BehaviorSingle Behavior = iota
	// BehaviorRange extends a single selected day into a range when a
	// later day is tapped.
	BehaviorRange
)

// ClampPolicy selects how a selection is confined after it is built.
type ClampPolicy int

const (
	// ClampToBounds clamps both endpoints into the available range.
	ClampToBounds ClampPolicy = iota
	// ClampUntilFirstDisabled additionally truncates the range at the
	// first day the delegate vetoes.
	ClampUntilFirstDisabled
)

// EventKind tags a controller event.
type EventKind int

const (
	// EventSelectionChanged fires when the selection's day bounds moved.
	// Changes to the time of day alone are not reported.
	EventSelectionChanged EventKind = iota
	// EventRangeTapped fires when a tap lands on an interactive range
	// instead of changing the selection.
	EventRangeTapped
	// EventVisibleDateChanged fires when the visible month moved.
	EventVisibleDateChanged
)

// Event is a state change the host should react to. Mutating controller
// methods return the events they produced, in order.
type Event struct {
	Kind EventKind
	// Range carries the new selection for EventSelectionChanged and the
	// tapped contained range for EventRangeTapped.
	Range dateutil.Range
	// VisibleDate carries the new month for EventVisibleDateChanged.
	VisibleDate time.Time
}

// Controller is the calendar grid's state machine: visible month,
// selection, availability and enablement, plus the per-day view-model
// derivation. It holds no rendering state.
type Controller struct {
	visible   time.Time // start of the visible month
	selected  *dateutil.Range
	available dateutil.Range
	behavior  Behavior
	clamp     ClampPolicy
	enabled   bool

	delegate       Delegate
	firstWeekday   time.Weekday
	highlightToday bool
	now            func() time.Time

	// pressed is the interactive range under an active mouse press.
	pressed *dateutil.Range
}

// Option configures a Controller.
type Option func(*Controller)

// WithDelegate installs the selection/decoration delegate.
func WithDelegate(d Delegate) Option {
	return func(c *Controller) { c.delegate = d }
}

// WithBehavior selects single or range selection.
func WithBehavior(b Behavior) Option {
	return func(c *Controller) { c.behavior = b }
}

// WithClampPolicy selects how selections are confined.
func WithClampPolicy(p ClampPolicy) Option {
	return func(c *Controller) { c.clamp = p }
}

// WithAvailableRange bounds the selectable days. Inverted bounds fall back
// to unbounded.
func WithAvailableRange(min, max time.Time) Option {
	return func(c *Controller) { c.available = normalizeAvailable(min, max) }
}

// WithVisibleDate sets the initial visible month.
func WithVisibleDate(d time.Time) Option {
	return func(c *Controller) { c.visible = dateutil.StartOfMonth(d) }
}

// WithFirstWeekday sets the weekday shown in the grid's first column.
func WithFirstWeekday(d time.Weekday) Option {
	return func(c *Controller) { c.firstWeekday = d }
}

// WithHighlightToday toggles the today marker.
func WithHighlightToday(on bool) Option {
	return func(c *Controller) { c.highlightToday = on }
}

// WithNow fixes the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New creates a controller. Without options it is enabled, single-select,
// unbounded, Sunday-first and shows the current month.
func New(opts ...Option) *Controller {
	c := &Controller{
		available:      dateutil.Range{Start: dateutil.DistantPast, End: dateutil.DistantFuture},
		enabled:        true,
		highlightToday: true,
		firstWeekday:   time.Sunday,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.visible.IsZero() {
		c.visible = dateutil.StartOfMonth(c.now())
	}
	c.visible = dateutil.StartOfMonth(dateutil.ClampToMonths(c.visible, c.available))
	return c
}

// normalizeAvailable widens inverted bounds to the unbounded range instead
// of failing.
func normalizeAvailable(min, max time.Time) dateutil.Range {
	if min.IsZero() {
		min = dateutil.DistantPast
	}
	if max.IsZero() {
		max = dateutil.DistantFuture
	}
	if dateutil.StartOfDay(max).Before(dateutil.StartOfDay(min)) {
		return dateutil.Range{Start: dateutil.DistantPast, End: dateutil.DistantFuture}
	}
	return dateutil.Range{Start: min, End: max}
}

// VisibleDate returns the start of the visible month.
func (c *Controller) VisibleDate() time.Time { return c.visible }

// Selected returns the current selection, nil when nothing is selected.
func (c *Controller) Selected() *dateutil.Range { return c.selected }

// AvailableRange returns the normalized available range.
func (c *Controller) AvailableRange() dateutil.Range { return c.available }

// Behavior returns the selection behavior.
func (c *Controller) Behavior() Behavior { return c.behavior }

// FirstWeekday returns the weekday of the grid's first column.
func (c *Controller) FirstWeekday() time.Weekday { return c.firstWeekday }

// Enabled reports whether the control accepts interaction.
func (c *Controller) Enabled() bool { return c.enabled }

// SetEnabled toggles interaction. Disabled controllers ignore taps and
// presses but still produce view models.
func (c *Controller) SetEnabled(on bool) {
	c.enabled = on
	if !on {
		c.pressed = nil
	}
}

// Selectable reports whether a day can join the selection: inside the
// available range and not vetoed by the delegate.
func (c *Controller) Selectable(date time.Time) bool {
	if !c.available.Contains(date) {
		return false
	}
	if c.delegate != nil && !c.delegate.IsDateSelectable(date) {
		return false
	}
	return true
}

// Tap runs the day-tap selection algorithm and returns the events it
// produced. Taps on interactive ranges report the range; taps on
// non-selectable days are ignored; otherwise the selection collapses to
// the tapped day or, in range mode, extends a single selected day forward.
func (c *Controller) Tap(date time.Time) []Event {
	if !c.enabled {
		return nil
	}

	// Carry the time of day of the existing selection (or the current
	// wall clock) onto the tapped day, so the selection never holds a
	// zeroed clock.
	clock := c.now()
	if c.selected != nil {
		clock = c.selected.Start
	}
	tapped := dateutil.CombineDateAndTime(date, clock)

	if r, ok := c.interactiveRange(tapped); ok {
		return []Event{{Kind: EventRangeTapped, Range: r}}
	}
	if !c.Selectable(tapped) {
		return nil
	}

	var next dateutil.Range
	if c.behavior == BehaviorRange && c.selected != nil && c.selected.IsSingle() &&
		dateutil.AfterDay(tapped, c.selected.End) {
		next = dateutil.Range{Start: c.selected.Start, End: tapped}
	} else {
		next = dateutil.SingleDay(tapped)
	}

	return c.commitSelection(c.confine(next))
}

// interactiveRange resolves the contained range a tap should report
// instead of selecting: the date belongs to a delegate range and the
// delegate vetoes the date itself.
func (c *Controller) interactiveRange(date time.Time) (dateutil.Range, bool) {
	if c.delegate == nil {
		return dateutil.Range{}, false
	}
	r, ok := c.delegate.ContainedRange(date)
	if !ok || c.delegate.IsDateSelectable(date) {
		return dateutil.Range{}, false
	}
	return r, true
}

// confine clamps a candidate selection to the available range and applies
// the clamp policy.
func (c *Controller) confine(r dateutil.Range) dateutil.Range {
	r = dateutil.ClampRange(r, c.available)
	if c.clamp == ClampUntilFirstDisabled {
		r = c.truncateAtDisabled(r)
	}
	return r
}

// truncateAtDisabled walks forward from the range start and cuts the range
// off before the first day the delegate vetoes. A vetoed start collapses a
// multi-day range to its end date; a single vetoed day is kept as-is.
func (c *Controller) truncateAtDisabled(r dateutil.Range) dateutil.Range {
	if c.delegate == nil {
		return r
	}
	if !c.delegate.IsDateSelectable(r.Start) {
		if r.IsSingle() {
			return r
		}
		return dateutil.SingleDay(r.End)
	}
	for d := dateutil.AddDays(dateutil.StartOfDay(r.Start), 1); !dateutil.AfterDay(d, r.End); d = dateutil.AddDays(d, 1) {
		if !c.delegate.IsDateSelectable(d) {
			return dateutil.Range{
				Start: r.Start,
				End:   dateutil.CombineDateAndTime(dateutil.AddDays(d, -1), r.End),
			}
		}
	}
	return r
}

// commitSelection stores the selection and reports a change only when the
// day bounds moved; time-of-day adjustments stay silent.
func (c *Controller) commitSelection(next dateutil.Range) []Event {
	prev := c.selected
	c.selected = &next
	if prev != nil && prev.SameDays(next) {
		return nil
	}
	return []Event{{Kind: EventSelectionChanged, Range: next}}
}

// SetSelectedRange replaces the selection, re-clamping it like a tap
// would. A nil range clears the selection.
func (c *Controller) SetSelectedRange(r *dateutil.Range) []Event {
	if r == nil {
		if c.selected == nil {
			return nil
		}
		c.selected = nil
		return []Event{{Kind: EventSelectionChanged}}
	}
	next := dateutil.NewRange(r.Start, r.End)
	if c.behavior == BehaviorSingle {
		next = dateutil.SingleDay(next.Start)
	}
	return c.commitSelection(c.confine(next))
}

// SetBehavior switches the selection behavior. Narrowing to single
// collapses a multi-day selection to its start.
func (c *Controller) SetBehavior(b Behavior) []Event {
	c.behavior = b
	if b == BehaviorSingle && c.selected != nil && !c.selected.IsSingle() {
		return c.commitSelection(c.confine(dateutil.SingleDay(c.selected.Start)))
	}
	return nil
}

// SetClampPolicy switches the clamp policy for subsequent selections.
func (c *Controller) SetClampPolicy(p ClampPolicy) { c.clamp = p }

// SetVisibleDate moves the visible month, clamped to the available range
// at month granularity.
func (c *Controller) SetVisibleDate(d time.Time) []Event {
	m := dateutil.StartOfMonth(dateutil.ClampToMonths(d, c.available))
	if dateutil.SameMonth(m, c.visible) {
		return nil
	}
	c.visible = m
	return []Event{{Kind: EventVisibleDateChanged, VisibleDate: m}}
}

// VisibleDateFromScroll re-derives the visible month after a user-driven
// scroll. Months outside the available range are ignored, so overscroll
// never moves the stored month. Programmatic scrolls must not call this;
// they set the visible date directly.
func (c *Controller) VisibleDateFromScroll(month time.Time) []Event {
	m := dateutil.StartOfMonth(month)
	if dateutil.SameMonth(m, c.visible) {
		return nil
	}
	if !dateutil.SameMonth(dateutil.ClampToMonths(m, c.available), m) {
		return nil
	}
	c.visible = m
	return []Event{{Kind: EventVisibleDateChanged, VisibleDate: m}}
}

// SetAvailableRange replaces the available range; inverted bounds fall
// back to unbounded. The visible month and selection are re-clamped into
// the new range.
func (c *Controller) SetAvailableRange(min, max time.Time) []Event {
	c.available = normalizeAvailable(min, max)

	var events []Event
	events = append(events, c.SetVisibleDate(c.visible)...)
	if c.selected != nil {
		events = append(events, c.commitSelection(c.confine(*c.selected))...)
	}
	return events
}

// Press marks the interactive range containing date as highlighted while
// a mouse button is down. It reports whether a highlight is active.
func (c *Controller) Press(date time.Time) bool {
	if !c.enabled {
		return false
	}
	if r, ok := c.interactiveRange(date); ok {
		c.pressed = &r
		return true
	}
	c.pressed = nil
	return false
}

// Release clears the pressed highlight.
func (c *Controller) Release() { c.pressed = nil }

// CellFor derives the view model for a day. Pure: no controller state
// changes, delegate consulted for veto and decoration only.
func (c *Controller) CellFor(date time.Time) Cell {
	cell := Cell{Date: date, Day: date.Day()}
	if c.delegate != nil {
		cell.Annotation = c.delegate.Annotation(date)
		cell.Background, cell.Foreground = c.delegate.Colors(date)
	}
	if c.pressed != nil && c.pressed.Contains(date) {
		cell.Highlight = true
	}

	switch {
	case c.selected != nil && c.selected.Contains(date):
		cell.SelStart = dateutil.SameDay(date, c.selected.Start)
		cell.SelEnd = dateutil.SameDay(date, c.selected.End)
		if cell.SelStart || cell.SelEnd {
			cell.Kind = CellSelected
		} else {
			cell.Kind = CellRange
		}
	case !c.Selectable(date):
		cell.Kind = CellUnavailable
	case c.highlightToday && dateutil.SameDay(date, c.now()):
		cell.Kind = CellCurrent
	default:
		cell.Kind = CellAvailable
	}
	return cell
}
