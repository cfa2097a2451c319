// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/almanaque/internal/dateutil"
)

// Config holds the application configuration.
type Config struct {
	Picker  PickerConfig  `toml:"picker"`
	Import  ImportConfig  `toml:"import"`
	LLM     LLMConfig     `toml:"llm"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// PickerConfig holds the date picker behavior settings.
type PickerConfig struct {
	FirstWeekday    string `toml:"first_weekday"`     // e.g., "sunday", "monday"
	Mode            string `toml:"mode"`              // "date" or "time"
	Axis            string `toml:"axis"`              // "vertical" or "horizontal"
	Selection       string `toml:"selection"`         // "single" or "range"
	ClampPolicy     string `toml:"clamp_policy"`      // "bounds" or "until_first_disabled"
	HighlightToday  bool   `toml:"highlight_today"`   // mark the current day in the grid
	AutoSelectToday bool   `toml:"auto_select_today"` // select today at startup when nothing is selected
	MinuteInterval  int    `toml:"minute_interval"`   // minute wheel step, must divide 60
	MinDate         string `toml:"min_date"`          // YYYY-MM-DD, empty for unbounded
	MaxDate         string `toml:"max_date"`          // YYYY-MM-DD, empty for unbounded
}

// ImportConfig bounds ICS recurrence expansion.
type ImportConfig struct {
	HorizonPastMonths   int `toml:"horizon_past_months"`
	HorizonFutureMonths int `toml:"horizon_future_months"`
}

// LLMConfig holds LLM provider settings for the goto prompt fallback.
type LLMConfig struct {
	Enabled  bool   `toml:"enabled"`  // off by default; API keys come from the environment
	Provider string `toml:"provider"` // "openai", "copilot", "ollama", "lmstudio"
	Model    string `toml:"model"`    // e.g., "gpt-4o-mini"
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:11434"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte", "nord"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Picker: PickerConfig{
			FirstWeekday:    "sunday",
			Mode:            "date",
			Axis:            "vertical",
			Selection:       "single",
			ClampPolicy:     "bounds",
			HighlightToday:  true,
			AutoSelectToday: false,
			MinuteInterval:  1,
		},
		Import: ImportConfig{
			HorizonPastMonths:   12,
			HorizonFutureMonths: 24,
		},
		LLM: LLMConfig{
			Enabled:  false,
			Provider: "openai",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "almanaque.db"
	}
	return filepath.Join(home, ".local", "share", "almanaque", "almanaque.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "almanaque", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	// Picker overrides
	envString("ALMANAQUE_FIRST_WEEKDAY", &cfg.Picker.FirstWeekday)
	envString("ALMANAQUE_MODE", &cfg.Picker.Mode)
	envString("ALMANAQUE_AXIS", &cfg.Picker.Axis)
	envString("ALMANAQUE_SELECTION", &cfg.Picker.Selection)
	envString("ALMANAQUE_CLAMP_POLICY", &cfg.Picker.ClampPolicy)
	envBool("ALMANAQUE_HIGHLIGHT_TODAY", &cfg.Picker.HighlightToday)
	envBool("ALMANAQUE_AUTO_SELECT_TODAY", &cfg.Picker.AutoSelectToday)
	envInt("ALMANAQUE_MINUTE_INTERVAL", &cfg.Picker.MinuteInterval)
	envString("ALMANAQUE_MIN_DATE", &cfg.Picker.MinDate)
	envString("ALMANAQUE_MAX_DATE", &cfg.Picker.MaxDate)

	// LLM overrides
	envBool("ALMANAQUE_LLM_ENABLED", &cfg.LLM.Enabled)
	envString("ALMANAQUE_LLM_PROVIDER", &cfg.LLM.Provider)
	envString("ALMANAQUE_LLM_MODEL", &cfg.LLM.Model)
	envString("ALMANAQUE_LLM_BASE_URL", &cfg.LLM.BaseURL)

	// Storage overrides
	envString("ALMANAQUE_DB_PATH", &cfg.Storage.DBPath)

	// UI overrides
	envString("ALMANAQUE_UI_THEME", &cfg.UI.Theme)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

var (
	validModes      = map[string]bool{"date": true, "time": true}
	validAxes       = map[string]bool{"vertical": true, "horizontal": true}
	validSelections = map[string]bool{"single": true, "range": true}
	validClamps     = map[string]bool{"bounds": true, "until_first_disabled": true}
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Validate normalizes the configuration in place. Invalid enum values
// fall back to their defaults, inverted date bounds clear to unbounded,
// and out-of-range numbers snap back, so a bad config file degrades
// instead of aborting startup. Only malformed dates are reported as
// errors: silently dropping one would shift the pickable range.
func (c *Config) Validate() error {
	def := Default()

	if _, ok := weekdayNames[strings.ToLower(c.Picker.FirstWeekday)]; !ok {
		c.Picker.FirstWeekday = def.Picker.FirstWeekday
	}
	if !validModes[strings.ToLower(c.Picker.Mode)] {
		c.Picker.Mode = def.Picker.Mode
	}
	if !validAxes[strings.ToLower(c.Picker.Axis)] {
		c.Picker.Axis = def.Picker.Axis
	}
	if !validSelections[strings.ToLower(c.Picker.Selection)] {
		c.Picker.Selection = def.Picker.Selection
	}
	if !validClamps[strings.ToLower(c.Picker.ClampPolicy)] {
		c.Picker.ClampPolicy = def.Picker.ClampPolicy
	}
	if c.Picker.MinuteInterval <= 0 || 60%c.Picker.MinuteInterval != 0 {
		c.Picker.MinuteInterval = def.Picker.MinuteInterval
	}

	var minDate, maxDate time.Time
	if c.Picker.MinDate != "" {
		t, err := dateutil.ParseDate(c.Picker.MinDate)
		if err != nil {
			return fmt.Errorf("min_date: %w", err)
		}
		minDate = t
	}
	if c.Picker.MaxDate != "" {
		t, err := dateutil.ParseDate(c.Picker.MaxDate)
		if err != nil {
			return fmt.Errorf("max_date: %w", err)
		}
		maxDate = t
	}
	if !minDate.IsZero() && !maxDate.IsZero() && maxDate.Before(minDate) {
		c.Picker.MinDate = ""
		c.Picker.MaxDate = ""
	}

	if c.Import.HorizonPastMonths < 0 {
		c.Import.HorizonPastMonths = def.Import.HorizonPastMonths
	}
	if c.Import.HorizonFutureMonths <= 0 {
		c.Import.HorizonFutureMonths = def.Import.HorizonFutureMonths
	}

	if c.Storage.DBPath == "" {
		c.Storage.DBPath = defaultDBPath()
	}
	return nil
}

// FirstWeekday returns the configured first day of the week for the grid.
func (c *Config) FirstWeekday() time.Weekday {
	if d, ok := weekdayNames[strings.ToLower(c.Picker.FirstWeekday)]; ok {
		return d
	}
	return time.Sunday
}

// AvailableRange returns the configured selectable bounds, unbounded on
// the sides left empty.
func (c *Config) AvailableRange() dateutil.Range {
	r := dateutil.Range{Start: dateutil.DistantPast, End: dateutil.DistantFuture}
	if t, err := dateutil.ParseDate(c.Picker.MinDate); c.Picker.MinDate != "" && err == nil {
		r.Start = t
	}
	if t, err := dateutil.ParseDate(c.Picker.MaxDate); c.Picker.MaxDate != "" && err == nil {
		r.End = t
	}
	return r
}

// ImportHorizon returns the window around now that bounds ICS recurrence
// expansion.
func (c *Config) ImportHorizon(now time.Time) dateutil.Range {
	day := dateutil.StartOfDay(now)
	return dateutil.NewRange(
		dateutil.AddMonths(day, -c.Import.HorizonPastMonths),
		dateutil.AddMonths(day, c.Import.HorizonFutureMonths),
	)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
