package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/almanaque/internal/tui/theme"
)

func (a *App) themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available UI themes",
		Long: `List the built-in color themes.

Set the active theme with 'almanaque config edit' or the
ALMANAQUE_UI_THEME environment variable.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, name := range theme.Available() {
				t, err := theme.Load(name)
				if err != nil {
					return fmt.Errorf("loading theme %q: %w", name, err)
				}
				marker := "  "
				if name == a.config.UI.Theme {
					marker = formatStats("* ")
				}
				fmt.Printf("%s%-8s %s\n", marker, formatEvent(name),
					formatMuted(fmt.Sprintf("bg %s  fg %s  accent %s", t.Bg, t.Fg, t.Accent)))
			}
			return nil
		},
	}
}
