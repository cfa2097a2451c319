// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/almanaque/internal/config"
	"github.com/javiermolinar/almanaque/internal/dateutil"
	"github.com/javiermolinar/almanaque/internal/event"
	"github.com/javiermolinar/almanaque/internal/llm"
)

const (
	// resolveTimeout bounds a single LLM date resolution.
	resolveTimeout = 10 * time.Second

	scrollFrame = time.Second / 30
	fadeFrame   = 50 * time.Millisecond
)

// IndexLoadedMsg is sent when the day index has been rebuilt from the store.
type IndexLoadedMsg struct {
	Index  *event.Index
	Events []*event.Event
	Months []time.Time
}

// DateResolvedMsg is sent when a goto phrase has been resolved to a date.
type DateResolvedMsg struct {
	Date   time.Time
	Source string
}

// ErrMsg is sent when a command fails.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent to display a transient status message.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent when a status message should be cleared.
type ClearStatusMsg struct{}

// ScrollTickMsg drives one frame of a scroll animation.
type ScrollTickMsg struct{}

// FadeTickMsg drives one frame of the mode cross-fade.
type FadeTickMsg struct{}

// ScrollTick schedules the next scroll animation frame.
func ScrollTick() tea.Cmd {
	return tea.Tick(scrollFrame, func(time.Time) tea.Msg {
		return ScrollTickMsg{}
	})
}

// FadeTick schedules the next cross-fade frame.
func FadeTick() tea.Cmd {
	return tea.Tick(fadeFrame, func(time.Time) tea.Msg {
		return FadeTickMsg{}
	})
}

// LoadIndex returns a command that loads every event overlapping the given
// months and rebuilds the day index from them. A nil repository yields an
// empty index so the picker works without a store.
func LoadIndex(repo event.Repository, months []time.Time) tea.Cmd {
	return func() tea.Msg {
		if repo == nil || len(months) == 0 {
			return IndexLoadedMsg{Index: event.NewIndex(nil, months), Months: months}
		}
		lo, hi := monthSpan(months)
		ctx := context.Background()
		events, err := repo.ListEventsBetween(ctx, lo, hi)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading events: %w", err)}
		}
		return IndexLoadedMsg{
			Index:  event.NewIndex(events, months),
			Events: events,
			Months: months,
		}
	}
}

// ResolveDate returns a command that resolves a date phrase, trying the
// literal and relative parsers before falling back to the LLM resolver.
func ResolveDate(cfg *config.Config, phrase string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			return StatusMsgCmd{Msg: "Nothing to resolve"}
		}
		if d, err := dateutil.ParseDate(phrase); err == nil {
			return DateResolvedMsg{Date: d, Source: "date"}
		}
		if d, err := dateutil.ParseRelativeDate(phrase, now); err == nil {
			return DateResolvedMsg{Date: d, Source: "relative"}
		}
		if cfg == nil || !cfg.LLM.Enabled {
			return ErrMsg{Err: fmt.Errorf("cannot parse %q as a date", phrase)}
		}
		client, err := llm.NewClient(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.BaseURL)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("creating resolver client: %w", err)}
		}
		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		defer cancel()
		date, err := llm.NewResolver(client).ResolveDate(ctx, phrase, now)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("resolving %q: %w", phrase, err)}
		}
		return DateResolvedMsg{Date: date, Source: "llm"}
	}
}

func monthSpan(months []time.Time) (time.Time, time.Time) {
	lo, hi := months[0], months[0]
	for _, m := range months[1:] {
		if m.Before(lo) {
			lo = m
		}
		if m.After(hi) {
			hi = m
		}
	}
	last := dateutil.AddDays(dateutil.AddMonths(dateutil.StartOfMonth(hi), 1), -1)
	return dateutil.StartOfMonth(lo), last
}
