package rules

import "github.com/dmitrymomot/formkit"

// IsTrue fails unless the value is true. Use it for consent checkboxes,
// where an unchecked box is a failure rather than an empty value.
func IsTrue() formkit.Rule[bool] {
	return formkit.Rule[bool]{
		Check: func(value bool, _ formkit.Context) bool {
			return value
		},
		Error: formkit.Message{
			Text: "must be accepted",
			Key:  "validation.accepted",
		},
	}
}

// IsFalse fails unless the value is false.
func IsFalse() formkit.Rule[bool] {
	return formkit.Rule[bool]{
		Check: func(value bool, _ formkit.Context) bool {
			return !value
		},
		Error: formkit.Message{
			Text: "must not be accepted",
			Key:  "validation.not_accepted",
		},
	}
}
