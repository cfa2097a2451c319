package input

import "strings"

// Phrase describes a goto prompt suggestion entry.
type Phrase struct {
	Text        string
	Description string
}

// MatchingPhrases returns phrases that match the current input prefix.
// Empty input suggests nothing so the prompt opens quiet.
func MatchingPhrases(input string, phrases []Phrase) []Phrase {
	prefix := strings.ToLower(strings.TrimSpace(input))
	if prefix == "" {
		return nil
	}

	matches := make([]Phrase, 0, len(phrases))
	for _, p := range phrases {
		if strings.HasPrefix(strings.ToLower(p.Text), prefix) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Autocomplete returns the first matching phrase and whether it exists.
func Autocomplete(input string, phrases []Phrase) (string, bool) {
	matches := MatchingPhrases(input, phrases)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Text, true
}
