package ui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/almanaque/internal/event"
)

// PrintOpts configures event printing behavior.
type PrintOpts struct {
	Verbose      bool // show calendar and UID columns
	MaxDescWidth int  // maximum title width (0 = auto)
}

// CalcMaxTitleWidth calculates the title column width from the options
// and the terminal size.
func (o PrintOpts) CalcMaxTitleWidth(defaultWidth int) int {
	if o.MaxDescWidth > 0 {
		return o.MaxDescWidth
	}
	if !o.Verbose {
		return defaultWidth
	}
	tw := termWidth()
	// Base: "  #NNN  YYYY-MM-DD..YYYY-MM-DD  ! " = ~36 chars
	available := tw - 36
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// PrintEventRow prints a single event row with consistent formatting.
func PrintEventRow(e *event.Event, opts PrintOpts, maxTitleWidth int) {
	span := e.StartDate.Format("2006-01-02")
	if e.IsMultiDay() {
		span += ".." + e.EndDate.Format("2006-01-02")
	} else {
		span += strings.Repeat(" ", 12)
	}

	busy := "  "
	if e.Busy {
		busy = formatBusy("! ")
	}

	title := e.Title
	if len(title) > maxTitleWidth {
		title = title[:maxTitleWidth-3] + "..."
	}

	if opts.Verbose {
		fmt.Printf("  #%-4d %s  %s%-*s  %s\n",
			e.ID, span, busy, maxTitleWidth, formatEvent(title),
			formatMuted(e.Calendar))
	} else {
		fmt.Printf("  #%-4d %s  %s%s\n", e.ID, span, busy, formatEvent(title))
	}
}

// PrintEventGroup prints a day header followed by its events.
func PrintEventGroup(day string, events []*event.Event, opts PrintOpts, maxTitleWidth int) {
	fmt.Printf("%s\n", formatHeader("=== "+day+" ==="))
	for _, e := range events {
		PrintEventRow(e, opts, maxTitleWidth)
	}
}
