package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/almanaque/internal/dateutil"
)

// ErrEmptyPhrase is returned when there is nothing to resolve.
var ErrEmptyPhrase = errors.New("date phrase cannot be empty")

const resolveSystemPrompt = `You are a date resolution assistant. Convert the user's phrase into a single calendar date.

Context:
- Today: %s (%s)
- Tomorrow: %s

Rules:
1. "today" ALWAYS means %s, even if it is a weekend
2. "tomorrow" ALWAYS means the next calendar day
3. A weekday name ("monday", "next monday") means its next occurrence after today
4. "in X days/weeks/months" means today plus that offset
5. A month or holiday name without a year means its next occurrence
6. An explicit "YYYY-MM-DD" means that exact date

Respond ONLY with valid JSON (no markdown, no explanation):
{"date": "YYYY-MM-DD"}`

// dateResponse is the JSON shape the model must answer with.
type dateResponse struct {
	Date string `json:"date"`
}

// Resolver turns natural-language date phrases into concrete dates by
// asking a chat model.
type Resolver struct {
	client Client
}

// NewResolver creates a resolver backed by the given client.
func NewResolver(client Client) *Resolver {
	return &Resolver{client: client}
}

// ResolveDate asks the model to turn phrase into a date, interpreting
// relative wording against now. The result is a day at midnight UTC, like
// dateutil.ParseDate returns.
func (r *Resolver) ResolveDate(ctx context.Context, phrase string, now time.Time) (time.Time, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return time.Time{}, ErrEmptyPhrase
	}

	today := now.Format("2006-01-02")
	messages := []Message{
		{
			Role: "system",
			Content: fmt.Sprintf(resolveSystemPrompt,
				today,
				now.Format("Monday"),
				dateutil.AddDays(now, 1).Format("2006-01-02"),
				today,
			),
		},
		{Role: "user", Content: phrase},
	}

	var resp dateResponse
	if err := r.client.ChatJSON(ctx, messages, &resp); err != nil {
		return time.Time{}, fmt.Errorf("resolving date phrase: %w", err)
	}

	date, err := dateutil.ParseDate(strings.TrimSpace(resp.Date))
	if err != nil {
		return time.Time{}, fmt.Errorf("model answered %q: %w", resp.Date, err)
	}
	return date, nil
}
