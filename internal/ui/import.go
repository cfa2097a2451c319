package ui

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/almanaque/internal/ics"
)

// fetchTimeout bounds an ICS download.
const fetchTimeout = 30 * time.Second

func (a *App) importCmd() *cobra.Command {
	var (
		calendar string
		replace  bool
	)

	cmd := &cobra.Command{
		Use:   "import <file.ics|url>",
		Short: "Import events from an ICS calendar",
		Long: `Import events from an ICS file or URL into the local store.

Recurring events expand into concrete occurrences inside the configured
import horizon. With --replace, previously imported events of the same
calendar are removed first, so re-importing a feed does not duplicate
it.`,
		Example: `  almanaque import holidays.ics
  almanaque import https://example.org/team.ics --calendar=team --replace`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			source := args[0]
			if calendar == "" {
				calendar = calendarName(source)
			}

			r, closer, err := openSource(source)
			if err != nil {
				return err
			}
			defer closer()

			horizon := a.config.ImportHorizon(time.Now())
			events, skipped, err := ics.Parse(r, calendar, horizon)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", source, err)
			}

			ctx := context.Background()
			if replace {
				removed, err := a.repo.DeleteCalendar(ctx, calendar)
				if err != nil {
					return fmt.Errorf("clearing calendar %q: %w", calendar, err)
				}
				if removed > 0 {
					fmt.Printf("Removed %d previously imported events\n", removed)
				}
			}

			if err := a.repo.CreateEvents(ctx, events); err != nil {
				return fmt.Errorf("storing events: %w", err)
			}

			fmt.Printf("Imported %s into calendar %s\n",
				formatStats(fmt.Sprintf("%d events", len(events))),
				formatEvent(calendar))
			if skipped > 0 {
				fmt.Println(formatMuted(fmt.Sprintf("Skipped %d unparseable entries", skipped)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&calendar, "calendar", "", "Calendar name to tag events with (defaults to the file name)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Remove the calendar's previous events first")

	return cmd
}

// openSource opens a local file or fetches a URL.
func openSource(source string) (io.Reader, func(), error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := &http.Client{Timeout: fetchTimeout}
		resp, err := client.Get(source)
		if err != nil {
			return nil, nil, fmt.Errorf("fetching %s: %w", source, err)
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, nil, fmt.Errorf("fetching %s: %s", source, resp.Status)
		}
		return resp.Body, func() { _ = resp.Body.Close() }, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", source, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// calendarName derives a calendar name from the import source.
func calendarName(source string) string {
	base := filepath.Base(source)
	if i := strings.LastIndex(base, "?"); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSuffix(base, ".ics")
	if base == "" || base == "." || base == "/" {
		return "imported"
	}
	return base
}
