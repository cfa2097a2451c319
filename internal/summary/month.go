// Package summary provides shared month summary utilities.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/javiermolinar/almanaque/internal/dateutil"
	"github.com/javiermolinar/almanaque/internal/event"
)

// MonthSummary holds aggregated month data for the footer and CLI output.
type MonthSummary struct {
	Month        time.Time // first day of the summarized month
	EventCount   int       // events touching the month
	BusiestDay   time.Time // day covered by the most events, zero when the month is empty
	BusiestCount int
	SelectedDays int // selection span in days, 0 without a selection
}

// SummarizeMonth aggregates the events that touch the month containing
// month. The selection may be nil.
func SummarizeMonth(month time.Time, events []*event.Event, selection *dateutil.Range) *MonthSummary {
	first := dateutil.StartOfMonth(month)
	last := dateutil.AddDays(dateutil.AddMonths(first, 1), -1)

	s := &MonthSummary{Month: first}
	if selection != nil {
		s.SelectedDays = selection.Days()
	}

	var inMonth []*event.Event
	for _, e := range events {
		if dateutil.AfterDay(e.StartDate, last) || dateutil.AfterDay(first, e.EndDate) {
			continue
		}
		inMonth = append(inMonth, e)
	}
	s.EventCount = len(inMonth)

	for d := first; !dateutil.AfterDay(d, last); d = dateutil.AddDays(d, 1) {
		n := 0
		for _, e := range inMonth {
			if e.On(d) {
				n++
			}
		}
		if n > s.BusiestCount {
			s.BusiestCount = n
			s.BusiestDay = d
		}
	}

	return s
}

// BuildMonthSummary loads the month's events from the repository and
// summarizes them.
func BuildMonthSummary(ctx context.Context, repo event.Repository, month time.Time, selection *dateutil.Range) (*MonthSummary, error) {
	first := dateutil.StartOfMonth(month)
	last := dateutil.AddDays(dateutil.AddMonths(first, 1), -1)

	events, err := repo.ListEventsBetween(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}

	return SummarizeMonth(first, events, selection), nil
}
