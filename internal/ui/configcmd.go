package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/almanaque/internal/config"
	"github.com/javiermolinar/almanaque/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Manage the almanaque configuration file.

Without a subcommand the current configuration is shown. Values come
from the config file, overridden by ALMANAQUE_* environment variables.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigShow(a.config)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigShow(a.config)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a config file with default values",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInit()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(config.DefaultConfigPath())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "edit",
		Short: "Edit configuration interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigEdit()
		},
	})
	return cmd
}

func runConfigShow(cfg *config.Config) error {
	fmt.Printf("Config file: %s\n\n", config.DefaultConfigPath())
	printConfig(cfg)
	return nil
}

func runConfigInit() error {
	configPath := config.DefaultConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	cfg := config.Default()
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("Created %s\n", configPath)
	return nil
}

func runConfigEdit() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	printConfig(cfg)
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	cfg.Picker.FirstWeekday = promptValue(reader, "First weekday", cfg.Picker.FirstWeekday)
	cfg.Picker.Selection = promptValue(reader, "Selection (single/range)", cfg.Picker.Selection)
	cfg.Picker.Axis = promptValue(reader, "Scroll axis (vertical/horizontal)", cfg.Picker.Axis)
	cfg.Picker.ClampPolicy = promptValue(reader, "Clamp policy (bounds/until_first_disabled)", cfg.Picker.ClampPolicy)
	cfg.Picker.MinDate = promptValue(reader, "Earliest selectable date (empty for unbounded)", cfg.Picker.MinDate)
	cfg.Picker.MaxDate = promptValue(reader, "Latest selectable date (empty for unbounded)", cfg.Picker.MaxDate)
	cfg.LLM.Provider = promptValue(reader, "LLM provider", cfg.LLM.Provider)
	cfg.LLM.Model = promptValue(reader, "LLM model", cfg.LLM.Model)
	cfg.LLM.BaseURL = promptValue(reader, "LLM base URL (Ollama/LM Studio)", cfg.LLM.BaseURL)
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[picker]")
	fmt.Printf("  first_weekday         = %s\n", cfg.Picker.FirstWeekday)
	fmt.Printf("  mode                  = %s\n", cfg.Picker.Mode)
	fmt.Printf("  axis                  = %s\n", cfg.Picker.Axis)
	fmt.Printf("  selection             = %s\n", cfg.Picker.Selection)
	fmt.Printf("  clamp_policy          = %s\n", cfg.Picker.ClampPolicy)
	fmt.Printf("  highlight_today       = %t\n", cfg.Picker.HighlightToday)
	fmt.Printf("  auto_select_today     = %t\n", cfg.Picker.AutoSelectToday)
	fmt.Printf("  minute_interval       = %d\n", cfg.Picker.MinuteInterval)
	if cfg.Picker.MinDate != "" || cfg.Picker.MaxDate != "" {
		fmt.Printf("  min_date              = %s\n", cfg.Picker.MinDate)
		fmt.Printf("  max_date              = %s\n", cfg.Picker.MaxDate)
	}
	fmt.Println("\n[import]")
	fmt.Printf("  horizon_past_months   = %d\n", cfg.Import.HorizonPastMonths)
	fmt.Printf("  horizon_future_months = %d\n", cfg.Import.HorizonFutureMonths)
	fmt.Println("\n[llm]")
	fmt.Printf("  enabled               = %t\n", cfg.LLM.Enabled)
	fmt.Printf("  provider              = %s\n", cfg.LLM.Provider)
	fmt.Printf("  model                 = %s\n", cfg.LLM.Model)
	fmt.Printf("  base_url              = %s\n", cfg.LLM.BaseURL)
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path               = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme                 = %s\n", cfg.UI.Theme)
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
