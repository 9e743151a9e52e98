// Package query classifies raw user input into a resolution mode.
package query

import (
	"strings"
	"unicode"
)

// Mode is how a request will be resolved.
type Mode string

const (
	// ModeSymbolic treats the input as a ticker symbol and fans out to
	// the per-symbol endpoints.
	ModeSymbolic Mode = "SYMBOLIC"
	// ModeNaturalLanguage routes the input through the advisor providers.
	ModeNaturalLanguage Mode = "NATURAL_LANGUAGE"
)

// IntentKeywords are the question/trading words that force natural-language
// handling even for single-token input ("buy", on its own, is not a ticker
// lookup). Matching is case-insensitive and whole-token.
var IntentKeywords = []string{
	"can", "should", "is", "how", "what",
	"buy", "sell", "invest", "worth", "good", "bad",
}

// Classify maps input to a resolution mode: natural language when the
// input contains whitespace or an intent keyword, symbolic otherwise.
// It is a pure function; callers may re-derive the mode from cached
// input at any time. Empty input must be rejected before calling.
func Classify(input string) Mode {
	if strings.IndexFunc(input, unicode.IsSpace) >= 0 {
		return ModeNaturalLanguage
	}
	if containsIntentKeyword(input) {
		return ModeNaturalLanguage
	}
	return ModeSymbolic
}

func containsIntentKeyword(input string) bool {
	for _, token := range tokenize(input) {
		for _, keyword := range IntentKeywords {
			if token == keyword {
				return true
			}
		}
	}
	return false
}

// tokenize splits on word boundaries so keywords embedded in tickers
// ("ISRG") do not trigger a false match.
func tokenize(input string) []string {
	return strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
