package rules

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit"
)

// UUID fails on values that are not standard UUIDs. Length and hyphen
// positions are checked first so obviously malformed input skips the parser.
func UUID() formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			if len(value) != 36 {
				return false
			}

			if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}

			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: formkit.Message{
			Text: "must be a valid UUID",
			Key:  "validation.uuid",
		},
	}
}
