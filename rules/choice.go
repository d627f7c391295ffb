package rules

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/formkit"
)

// InList fails on values outside the allowed set.
func InList[T comparable](allowed ...T) formkit.Rule[T] {
	return formkit.Rule[T]{
		Check: func(value T, _ formkit.Context) bool {
			return slices.Contains(allowed, value)
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must be one of: %v", allowed),
			Key:    "validation.in_list",
			Values: map[string]any{"allowed": allowed},
		},
	}
}

// NotInList fails on values inside the forbidden set.
func NotInList[T comparable](forbidden ...T) formkit.Rule[T] {
	return formkit.Rule[T]{
		Check: func(value T, _ formkit.Context) bool {
			return !slices.Contains(forbidden, value)
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must not be one of: %v", forbidden),
			Key:    "validation.not_in_list",
			Values: map[string]any{"forbidden": forbidden},
		},
	}
}
