package rules

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formkit"
)

var alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Email fails on values that are not syntactically valid e-mail addresses.
// Beyond RFC parsing it requires a dotted domain, matching what web signup
// forms expect.
func Email() formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 {
				return false
			}

			localPart := parts[0]
			domain := parts[1]

			if localPart == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for _, part := range strings.Split(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: formkit.Message{
			Text: "must be a valid email address",
			Key:  "validation.email",
		},
	}
}

// URL fails on values that are not absolute URLs with a scheme and host.
func URL() formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}

			return u.Scheme != "" && u.Host != ""
		},
		Error: formkit.Message{
			Text: "must be a valid URL",
			Key:  "validation.url",
		},
	}
}

// Alphanumeric fails on values containing anything besides ASCII letters and
// digits.
func Alphanumeric() formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, _ formkit.Context) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return alphanumericRegex.MatchString(value)
		},
		Error: formkit.Message{
			Text: "must contain only letters and numbers",
			Key:  "validation.alphanumeric",
		},
	}
}
