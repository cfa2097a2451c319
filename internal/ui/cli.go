// Package ui implements the almanaque command line interface.
package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/almanaque/internal/config"
	"github.com/javiermolinar/almanaque/internal/event"
	"github.com/javiermolinar/almanaque/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// ErrCancelled is returned when the picker quits without accepting a
// selection. The main function maps it to exit code 1 without printing.
var ErrCancelled = errors.New("selection cancelled")

// App holds the CLI application state.
type App struct {
	repo    event.Repository
	config  *config.Config
	root    *cobra.Command
	noColor bool
}

// NewApp creates a new CLI application. repo may be nil; commands that
// need the store open it lazily from the configured path.
func NewApp(repo event.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	pick := a.pickCmd()
	a.root = &cobra.Command{
		Use:   "almanaque",
		Short: "A terminal date picker",
		Long: `Almanaque is an interactive calendar for the terminal.

Running it without a subcommand opens the date picker; the accepted
selection is printed to stdout so it can feed shell scripts. Events
stored locally or imported from ICS calendars annotate the grid.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: pick.RunE,
	}
	a.root.Flags().AddFlagSet(pick.Flags())
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(pick)
	a.root.AddCommand(a.eventsCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.themesCmd())
	a.root.AddCommand(a.versionCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("almanaque %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the event store on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := tui.OpenRepository(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	a.repo = repo
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the event store if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
