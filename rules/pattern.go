package rules

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/formkit"
)

// Regex fails on values that do not fully match pattern; partial matches are
// not enough. description names the expected shape in the failure message.
// A malformed pattern panics here, at construction, never during input
// validation.
func Regex(pattern, description string) formkit.Rule[string] {
	re := regexp.MustCompile("^(?:" + pattern + ")$")
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			return re.MatchString(value)
		},
		Error: formkit.Message{
			Text:   fmt.Sprintf("must match %s pattern", description),
			Key:    "validation.regex_pattern",
			Values: map[string]any{"pattern": description},
		},
	}
}
