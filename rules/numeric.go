package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit"
)

// Numeric is the constraint shared by numeric bound rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min fails when the value is below min.
func Min[T Numeric](min T) formkit.Rule[T] {
	return formkit.Rule[T]{
		Check: func(value T, _ formkit.Context) bool {
			return value >= min
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must be at least %v", min),
			Key:    "validation.min",
			Values: map[string]any{"min": min},
		},
	}
}

// Max fails when the value is above max.
func Max[T Numeric](max T) formkit.Rule[T] {
	return formkit.Rule[T]{
		Check: func(value T, _ formkit.Context) bool {
			return value <= max
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must be at most %v", max),
			Key:    "validation.max",
			Values: map[string]any{"max": max},
		},
	}
}

// Integer fails on strings that do not parse as base-10 integers.
func Integer() formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			_, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
			return err == nil
		},
		Error: formkit.Message{
			Text: "must be an integer",
			Key:  "validation.integer",
		},
	}
}

// Number fails on strings that do not parse as numbers, integer or decimal.
func Number() formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			return err == nil
		},
		Error: formkit.Message{
			Text: "must be a number",
			Key:  "validation.number",
		},
	}
}
