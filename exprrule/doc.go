// Package exprrule gates validation rules on expression conditions evaluated
// against the form snapshot.
//
// Conditions are written in expr-lang syntax and compile at construction, so
// a malformed expression fails the declaring code path immediately instead
// of surfacing on user input. Within an expression every form field is
// addressable by name, and the fields map covers names that are not valid
// identifiers.
//
// # Usage
//
//	shipping := exprrule.MustCompile(`country == "US"`, "country")
//
//	state := formkit.NewField("State", "",
//	    exprrule.Require(shipping),
//	    exprrule.When(shipping, rules.InList("AL", "AK", "AZ" /* ... */)),
//	)
//
// The declared references ("country" above) let form registration verify the
// expression's inputs exist before any validation runs.
package exprrule
