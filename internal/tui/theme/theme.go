// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Month banners, subtle highlight
	BgSelection string `toml:"bg_selection"` // Cursor cell
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Out-of-range days, muted chrome
	Accent      string `toml:"accent"`       // Title, borders, wheel highlight
	Today       string `toml:"today"`        // Current day marker
	Selected    string `toml:"selected"`     // Selection bounds
	Unavailable string `toml:"unavailable"`  // Vetoed days
	Event       string `toml:"event"`        // Event annotations
	Warning     string `toml:"warning"`      // Status line errors

	// Overlay palette (can override base theme values)
	BaseBg        string `toml:"base_bg"`
	OverlayBorder string `toml:"overlay_border"`
	TextPrimary   string `toml:"text_primary"`
	TextMuted     string `toml:"text_muted"`
	Highlight     string `toml:"highlight"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		// Fallback to mocha
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// OverlayPalette provides the overlay-specific colors derived from the theme.
type OverlayPalette struct {
	BaseBg        string
	OverlayBorder string
	TextPrimary   string
	TextMuted     string
	Highlight     string
}

// Overlay returns the overlay palette, falling back to base theme colors when needed.
func (t *Theme) Overlay() OverlayPalette {
	return OverlayPalette{
		BaseBg:        coalesce(t.BaseBg, t.BgHighlight, t.Bg),
		OverlayBorder: coalesce(t.OverlayBorder, t.Accent),
		TextPrimary:   coalesce(t.TextPrimary, t.Fg),
		TextMuted:     coalesce(t.TextMuted, t.FgMuted),
		Highlight:     coalesce(t.Highlight, t.BgSelection, t.Accent),
	}
}

func (t *Theme) applyDefaults() {
	if t.Today == "" {
		t.Today = t.Accent
	}
	if t.Selected == "" {
		t.Selected = t.Accent
	}
	if t.Unavailable == "" {
		t.Unavailable = coalesce(t.Warning, t.FgMuted)
	}
	if t.Event == "" {
		t.Event = t.Accent
	}
	if t.BaseBg == "" {
		t.BaseBg = coalesce(t.BgHighlight, t.Bg)
	}
	if t.OverlayBorder == "" {
		t.OverlayBorder = t.Accent
	}
	if t.TextPrimary == "" {
		t.TextPrimary = t.Fg
	}
	if t.TextMuted == "" {
		t.TextMuted = t.FgMuted
	}
	if t.Highlight == "" {
		t.Highlight = coalesce(t.BgSelection, t.Accent)
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "latte", "nord"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
