package rules

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit"
)

// Same fails unless the value equals the current value of the named field.
// Comparison is type-sensitive: a reference to a field of another type, or
// to a field absent from the context, fails. The reference is declared so
// form registration verifies the name exists.
func Same[T comparable](other string) formkit.Rule[T] {
	return formkit.Rule[T]{
		Check: func(value T, ctx formkit.Context) bool {
			f, err := formkit.FieldOf[T](ctx, other)
			if err != nil {
				return false
			}
			return f.Value() == value
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must match %s", other),
			Key:    "validation.same",
			Values: map[string]any{"other": other},
		},
		Refs: []string{other},
	}
}

// RequiredIf makes the field required while the named field holds expected.
// A reference to a missing or differently typed field means the condition
// does not hold, so the rule passes; form registration rules the missing
// case out up front by checking the declared reference.
func RequiredIf[T comparable](other string, expected T) formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, ctx formkit.Context) bool {
			f, err := formkit.FieldOf[T](ctx, other)
			if err != nil || f.Value() != expected {
				return true
			}
			return strings.TrimSpace(value) != ""
		},
		Error: formkit.Message{
			Text:   "field is required",
			Key:    "validation.required_if",
			Values: map[string]any{"other": other},
		},
		Refs: []string{other},
	}
}

// RequiredWhen makes the field required while cond holds. cond receives the
// current values of the declared fields in declaration order, resolved
// through State.Any; a field missing from the context resolves to nil.
func RequiredWhen(cond func(values []any) bool, fields ...string) formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, ctx formkit.Context) bool {
			values := make([]any, len(fields))
			for i, name := range fields {
				if s, ok := ctx.Field(name); ok {
					values[i] = s.Any()
				}
			}
			if !cond(values) {
				return true
			}
			return strings.TrimSpace(value) != ""
		},
		Error: formkit.Message{
			Text: "field is required",
			Key:  "validation.required_when",
		},
		Refs: fields,
	}
}
