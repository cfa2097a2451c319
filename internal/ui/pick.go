package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/almanaque/internal/dateutil"
	"github.com/javiermolinar/almanaque/internal/tui"
)

func (a *App) pickCmd() *cobra.Command {
	var (
		mode      string
		axis      string
		rangeSel  bool
		minDate   string
		maxDate   string
		openAt    string
		preselect string
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the date picker",
		Long: `Open the interactive date picker and print the accepted selection.

A single day prints as one ISO date, a range as two dates separated by a
space. Cancelling exits with code 1 and prints nothing. The picker
renders on stderr, so stdout stays clean for the picked value.`,
		Example: `  almanaque pick
  almanaque pick --range --min=2026-01-01 --max=2026-12-31
  almanaque pick --at=2026-06-01 --axis=horizontal
  date=$(almanaque pick) && echo "picked $date"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := *a.config
			if mode != "" {
				cfg.Picker.Mode = mode
			}
			if axis != "" {
				cfg.Picker.Axis = axis
			}
			if rangeSel {
				cfg.Picker.Selection = "range"
			}
			if minDate != "" {
				cfg.Picker.MinDate = minDate
			}
			if maxDate != "" {
				cfg.Picker.MaxDate = maxDate
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var opts []tui.ModelOption
			if openAt != "" {
				at, err := dateutil.ParseDate(openAt)
				if err != nil {
					return fmt.Errorf("parsing --at: %w", err)
				}
				opts = append(opts, tui.WithInitialDate(at))
			}
			if preselect != "" {
				r, err := parseSelection(preselect)
				if err != nil {
					return fmt.Errorf("parsing --selected: %w", err)
				}
				opts = append(opts, tui.WithSelection(r))
			}

			// The picker works without a store; events just stay blank.
			_ = a.ensureRepo()

			model, err := tui.Run(a.repo, &cfg, opts...)
			if err != nil {
				return fmt.Errorf("running picker: %w", err)
			}
			if !model.Accepted() {
				return ErrCancelled
			}
			if s := model.SelectionString(); s != "" {
				fmt.Println(s)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Picker mode: date or time")
	cmd.Flags().StringVar(&axis, "axis", "", "Scroll axis: vertical or horizontal")
	cmd.Flags().BoolVar(&rangeSel, "range", false, "Enable range selection")
	cmd.Flags().StringVar(&minDate, "min", "", "Earliest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&maxDate, "max", "", "Latest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&openAt, "at", "", "Open on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&preselect, "selected", "", "Preselect a date or date range (YYYY-MM-DD[..YYYY-MM-DD])")

	return cmd
}

// parseSelection parses "2026-01-05" or "2026-01-05..2026-01-12".
func parseSelection(s string) (dateutil.Range, error) {
	start, end, _ := strings.Cut(s, "..")
	r, err := dateutil.NewDateRange(start, end)
	if err != nil {
		return dateutil.Range{}, err
	}
	return *r, nil
}
