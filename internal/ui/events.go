package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/almanaque/internal/dateutil"
	"github.com/javiermolinar/almanaque/internal/event"
	"github.com/javiermolinar/almanaque/internal/summary"
)

func (a *App) eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage calendar events",
		Long: `List, add and remove the events that annotate the picker grid.

Events marked busy block their days from being selected.`,
	}
	cmd.AddCommand(a.eventsListCmd())
	cmd.AddCommand(a.eventsAddCmd())
	cmd.AddCommand(a.eventsRemoveCmd())
	return cmd
}

func (a *App) eventsListCmd() *cobra.Command {
	var (
		month   string
		all     bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in a month",
		Long: `List the events of a month, grouped by start date.

Without --month the current month is shown; --all lists every stored
event regardless of date.`,
		Example: `  almanaque events list
  almanaque events list --month=2026-03
  almanaque events list --all -v`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := context.Background()

			var (
				events []*event.Event
				first  time.Time
				err    error
			)
			if all {
				events, err = a.repo.ListAllEvents(ctx)
			} else {
				first, err = parseMonth(month)
				if err != nil {
					return err
				}
				last := dateutil.AddDays(dateutil.AddMonths(first, 1), -1)
				events, err = a.repo.ListEventsBetween(ctx, first, last)
			}
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No events found.")
				return nil
			}

			printEventsGrouped(events, PrintOpts{Verbose: verbose})

			if !all {
				sum, serr := summary.BuildMonthSummary(ctx, a.repo, first, nil)
				if serr == nil && sum.BusiestCount > 1 {
					fmt.Println(formatMuted(fmt.Sprintf("Busiest: %s with %d events",
						sum.BusiestDay.Format("Jan 2"), sum.BusiestCount)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to list (YYYY-MM, defaults to current)")
	cmd.Flags().BoolVar(&all, "all", false, "List every stored event")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show calendar names")

	return cmd
}

func (a *App) eventsAddCmd() *cobra.Command {
	var (
		end   string
		busy  bool
		color string
	)

	cmd := &cobra.Command{
		Use:   "add <title> <date>",
		Short: "Add an event",
		Example: `  almanaque events add "Team offsite" 2026-04-10
  almanaque events add "Vacation" 2026-07-06 --end=2026-07-17 --busy`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			e, err := event.New(args[0], event.DefaultCalendar, args[1], end)
			if err != nil {
				return err
			}
			e.Busy = busy
			e.Color = color

			if err := a.repo.CreateEvent(context.Background(), e); err != nil {
				return fmt.Errorf("creating event: %w", err)
			}

			fmt.Printf("Added %s #%d (%s)\n",
				formatEvent(e.Title), e.ID, formatMuted(spanLabel(e)))
			return nil
		},
	}

	cmd.Flags().StringVar(&end, "end", "", "Last day of a multi-day event (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&busy, "busy", false, "Block the event's days from selection")
	cmd.Flags().StringVar(&color, "color", "", "Render color override (#rrggbb)")

	return cmd
}

func (a *App) eventsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Remove an event",
		Example: `  almanaque events rm 12`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid event id %q", args[0])
			}

			if err := a.repo.DeleteEvent(context.Background(), id); err != nil {
				return fmt.Errorf("removing event: %w", err)
			}

			fmt.Printf("Removed event #%d\n", id)
			return nil
		},
	}
}

// parseMonth parses "YYYY-MM", defaulting to the current month.
func parseMonth(s string) (time.Time, error) {
	if s == "" {
		return dateutil.StartOfMonth(time.Now()), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return t, nil
}

func printEventsGrouped(events []*event.Event, opts PrintOpts) {
	width := opts.CalcMaxTitleWidth(40)

	var day string
	var group []*event.Event
	flush := func() {
		if len(group) > 0 {
			PrintEventGroup(day, group, opts, width)
			fmt.Println()
		}
	}

	for _, e := range events {
		d := e.StartDate.Format("2006-01-02")
		if d != day {
			flush()
			day = d
			group = group[:0]
		}
		group = append(group, e)
	}
	flush()

	fmt.Println(formatStats(fmt.Sprintf("%d events", len(events))))
}

func spanLabel(e *event.Event) string {
	if e.IsMultiDay() {
		return fmt.Sprintf("%s to %s, %d days",
			e.StartDate.Format("Jan 2"), e.EndDate.Format("Jan 2, 2006"), e.Days())
	}
	return e.StartDate.Format("Jan 2, 2006")
}
