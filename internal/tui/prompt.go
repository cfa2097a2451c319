package tui

import (
	"github.com/javiermolinar/almanaque/internal/tui/input"
)

// gotoPhrases are the relative phrases the goto prompt suggests and
// tab-completes. Anything else typed still goes through the resolver,
// which falls back to the language model when one is configured.
var gotoPhrases = []input.Phrase{
	{Text: "today", Description: "Jump to today"},
	{Text: "tomorrow", Description: "Jump to tomorrow"},
	{Text: "yesterday", Description: "Jump to yesterday"},
	{Text: "next-week", Description: "Same weekday next week"},
	{Text: "last-week", Description: "Same weekday last week"},
	{Text: "next-monday", Description: "The coming Monday"},
	{Text: "next-friday", Description: "The coming Friday"},
	{Text: "last-monday", Description: "The previous Monday"},
	{Text: "last-friday", Description: "The previous Friday"},
}

// promptHint is the one-line key reference under the focused prompt.
const promptHint = "enter jump  tab complete  esc cancel"
