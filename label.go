package formkit

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeriveLabel converts a field name in camelCase, snake_case, or kebab-case
// into a human-facing label: "firstName" becomes "First Name" and
// "email_address" becomes "Email Address". Use it when declaring fields
// whose labels follow mechanically from their names.
func DeriveLabel(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder
	var prev rune
	for i, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.':
			b.WriteRune(' ')
		case i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(prev) && prev != ' ':
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		prev = r
	}

	title := cases.Title(language.English)
	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = title.String(w)
	}
	return strings.Join(words, " ")
}
