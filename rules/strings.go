package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/dmitrymomot/formkit"
)

// MinLen fails when the value is shorter than min characters. Lengths count
// runes, not bytes, so multibyte input measures the way users see it.
func MinLen(min int) formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must be at least %d characters long", min),
			Key:    "validation.min_length",
			Values: map[string]any{"min": min},
		},
	}
}

// MaxLen fails when the value is longer than max characters.
func MaxLen(max int) formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must be at most %d characters long", max),
			Key:    "validation.max_length",
			Values: map[string]any{"max": max},
		},
	}
}

// Size fails when the value is not exactly the given number of characters.
func Size(exact int) formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			return utf8.RuneCountInString(value) == exact
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must be exactly %d characters long", exact),
			Key:    "validation.exact_length",
			Values: map[string]any{"exact": exact},
		},
	}
}
