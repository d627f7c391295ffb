package rules

import (
	"fmt"

	"github.com/dmitrymomot/formkit"
)

// MinItems fails when the sequence has fewer than min elements.
func MinItems[T any](min int) formkit.Rule[[]T] {
	return formkit.Rule[[]T]{
		Check: func(value []T, _ formkit.Context) bool {
			return len(value) >= min
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must have at least %d items", min),
			Key:    "validation.min_items",
			Values: map[string]any{"min": min},
		},
	}
}

// MaxItems fails when the sequence has more than max elements.
func MaxItems[T any](max int) formkit.Rule[[]T] {
	return formkit.Rule[[]T]{
		Check: func(value []T, _ formkit.Context) bool {
			return len(value) <= max
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must have at most %d items", max),
			Key:    "validation.max_items",
			Values: map[string]any{"max": max},
		},
	}
}

// ExactItems fails when the sequence does not have exactly the given number
// of elements.
func ExactItems[T any](exact int) formkit.Rule[[]T] {
	return formkit.Rule[[]T]{
		Check: func(value []T, _ formkit.Context) bool {
			return len(value) == exact
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must have exactly %d items", exact),
			Key:    "validation.exact_items",
			Values: map[string]any{"exact": exact},
		},
	}
}
