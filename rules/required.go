package rules

import (
	"strings"

	"github.com/dmitrymomot/formkit"
)

// Required fails on values that are empty after trimming whitespace.
// Boolean consent fields are not "empty" when false; use IsTrue for those.
func Required() formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			return strings.TrimSpace(value) != ""
		},
		Error: formkit.Message{
			Text: "field is required",
			Key:  "validation.required",
		},
	}
}

// RequiredSlice fails on empty sequences.
func RequiredSlice[T any]() formkit.Rule[[]T] {
	return formkit.Rule[[]T]{
		Check: func(value []T, _ formkit.Context) bool {
			return len(value) > 0
		},
		Error: formkit.Message{
			Text: "field is required",
			Key:  "validation.required",
		},
	}
}

// RequiredPtr fails on nil pointers.
func RequiredPtr[T any]() formkit.Rule[*T] {
	return formkit.Rule[*T]{
		Check: func(value *T, _ formkit.Context) bool {
			return value != nil
		},
		Error: formkit.Message{
			Text: "field is required",
			Key:  "validation.required",
		},
	}
}
