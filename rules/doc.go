// Package rules is the built-in rule catalog for formkit fields.
//
// Every constructor binds its configuration and returns a formkit.Rule ready
// to join a field's rule chain. Rules carry translation-friendly error
// metadata (default text, a validation.* key, and substitution values), so
// the same chain drives both English defaults and translated UIs.
//
// Constructors are grouped by domain: string length and content, required
// variants, formats (email, URL, UUID), numeric bounds and parsing, choice
// membership, dates, booleans, cross-field constraints, and option-group
// selection counts.
//
// Invalid configuration is reported at construction: a malformed Regex
// pattern, a date layout without reference time elements, or an impossible
// selection range panics immediately instead of failing quietly on every
// input later.
//
// # Usage
//
//	password := formkit.NewField("Password", "",
//	    rules.Required(),
//	    rules.MinLen(8),
//	)
//	confirm := formkit.NewField("Confirm password", "",
//	    rules.Same[string]("password"),
//	)
package rules
