// Package formkit models form state as immutable snapshots with declarative,
// type-safe validation.
//
// A form is a registry of named field snapshots. Each snapshot (Field for
// single values, Group for option sets) bundles the current value, a label,
// the outcome of the last validation pass, a touched flag, and a rule chain
// fixed at construction. Snapshots are plain values: changing a field means
// deriving a new snapshot with WithValue and installing it on the Form, so
// UI layers can diff old against new state and readers are never surprised
// mid-render.
//
// # Architecture
//
// Three layers build on each other:
//
//   - Rule[T]  – a pure constraint: a Check function over (value, Context)
//     plus translation-friendly error metadata. Validate runs a chain
//     fail-fast, so a field holds at most one message.
//   - Field[T] / Group[T] – immutable snapshots implementing the State
//     interface; every mutation is a copy-on-write derivation.
//   - Form / Context – the Form owns the canonical registry and publishes
//     immutable Context snapshots; cross-field rules read sibling fields
//     through the Context, never through the Form.
//
// Validation of the whole form (ValidateAll) captures one Context before the
// pass and validates every field against that same capture, which makes the
// outcome deterministic and independent of field order even for mutually
// referencing fields.
//
// Rule constructors live in the rules subpackage; expression-gated rules in
// exprrule; message translation in i18n; posted-value binding in bind.
//
// # Usage
//
//	form, err := formkit.New(
//	    formkit.Named("email", formkit.NewField("Email", "", rules.Required(), rules.Email())),
//	    formkit.Named("password", formkit.NewField("Password", "", rules.Required(), rules.MinLen(8))),
//	    formkit.Named("confirm", formkit.NewField("Confirm password", "", rules.Same[string]("password"))),
//	)
//	if err != nil {
//	    // a duplicate name or a rule referencing an unknown field
//	}
//
//	_ = formkit.SetValue(form, "email", "user@example.com")
//	form.ValidateAll()
//	if form.IsValid() {
//	    // submit
//	}
//
// # Error Handling
//
// Wiring problems (duplicate names, rules referencing unknown fields,
// type-mismatched lookups) surface as sentinel errors from registration and
// lookup calls; use errors.Is to detect them. Validation outcomes are not
// errors: they are Message values carried by snapshots, each with default
// text, a translation key, and substitution values.
//
// # Concurrency
//
// All snapshot types are immutable values and safe to read from any
// goroutine. The Form itself is a single mutable cell and must be driven
// from one goroutine at a time.
package formkit
