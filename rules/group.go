package rules

import (
	"fmt"

	"github.com/dmitrymomot/formkit"
)

// MinSelected fails when fewer than min options are selected. A negative
// count panics at construction.
func MinSelected[T any](min int) formkit.Rule[[]T] {
	if min < 0 {
		panic("rules: MinSelected requires a non-negative count")
	}
	return formkit.Rule[[]T]{
		Check: func(selected []T, _ formkit.Context) bool {
			return len(selected) >= min
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must select at least %d options", min),
			Key:    "validation.min_selected",
			Values: map[string]any{"min": min},
		},
	}
}

// MaxSelected fails when more than max options are selected. A negative
// count panics at construction.
func MaxSelected[T any](max int) formkit.Rule[[]T] {
	if max < 0 {
		panic("rules: MaxSelected requires a non-negative count")
	}
	return formkit.Rule[[]T]{
		Check: func(selected []T, _ formkit.Context) bool {
			return len(selected) <= max
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must select at most %d options", max),
			Key:    "validation.max_selected",
			Values: map[string]any{"max": max},
		},
	}
}

// RangeSelected fails when the selected count falls outside [min, max].
// Bounds out of order or negative panic at construction.
func RangeSelected[T any](min, max int) formkit.Rule[[]T] {
	if min < 0 || max < min {
		panic(fmt.Sprintf("rules: RangeSelected requires 0 <= min <= max, got [%d, %d]", min, max))
	}
	return formkit.Rule[[]T]{
		Check: func(selected []T, _ formkit.Context) bool {
			return len(selected) >= min && len(selected) <= max
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must select between %d and %d options", min, max),
			Key:    "validation.range_selected",
			Values: map[string]any{"min": min, "max": max},
		},
	}
}
