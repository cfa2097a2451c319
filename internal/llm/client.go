// Package llm resolves natural-language date phrases through a chat model.
// It is the fallback behind the goto prompt when the built-in date parsing
// does not understand the input.
package llm

import (
	"context"
	"strings"
)

// DefaultModel is the model used when the configuration names none.
const DefaultModel = "gpt-4o-mini"

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client defines the interface for LLM providers.
type Client interface {
	// Chat sends messages to the LLM and returns the response.
	Chat(ctx context.Context, messages []Message) (string, error)

	// ChatJSON sends messages and parses the response as JSON into the provided type.
	ChatJSON(ctx context.Context, messages []Message, result any) error
}

// extractJSON attempts to extract JSON from a string that may contain markdown formatting.
func extractJSON(s string) string {
	// Try to find ```json ... ``` block
	if body, ok := fencedBlock(s, "```json"); ok {
		return body
	}

	// Try to find ``` ... ``` block (plain code block)
	if body, ok := fencedBlock(s, "```"); ok {
		return body
	}

	// Try to find raw JSON (starts with { or [)
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			// Find matching closing bracket
			depth := 0
			for j := i; j < len(s); j++ {
				switch s[j] {
				case '{', '[':
					depth++
				case '}', ']':
					depth--
					if depth == 0 {
						return s[i : j+1]
					}
				}
			}
		}
	}

	return s
}

// fencedBlock returns the contents of the first code fence opened by marker.
func fencedBlock(s, marker string) (string, bool) {
	idx := strings.Index(s, marker)
	if idx == -1 {
		return "", false
	}
	body := s[idx+len(marker):]
	end := strings.Index(body, "```")
	if end == -1 {
		return "", false
	}
	return strings.Trim(body[:end], "\r\n"), true
}
