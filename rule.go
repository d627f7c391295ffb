package formkit

// Rule is a single validation constraint for a field value of type T.
//
// Check reports whether a value satisfies the constraint and Error is the
// message recorded when it does not. Rules that can fail for more than one
// reason set Explain to pick the message for a particular failing value;
// Error remains the rule's identity for snapshot comparison. Refs lists the
// names of other fields the rule reads through the Context, so that form
// registration can verify they exist before any validation runs.
//
// Rules must be pure: no I/O, no mutation, and no state beyond what their
// constructor captured. The same value and context always produce the same
// outcome.
type Rule[T any] struct {
	Check   func(value T, ctx Context) bool
	Error   Message
	Explain func(value T, ctx Context) Message
	Refs    []string
}

// eval runs the rule against value and returns the failure message, nil when
// the value passes.
func (r Rule[T]) eval(value T, ctx Context) *Message {
	if r.Check == nil || r.Check(value, ctx) {
		return nil
	}
	if r.Explain != nil {
		m := r.Explain(value, ctx)
		return &m
	}
	m := r.Error
	return &m
}

// Validate evaluates rules in declaration order and returns the first
// failure, or nil when every rule passes. Evaluation stops at the first
// failing rule; later rules never run against an already failed value, so a
// field holds at most one message at a time.
func Validate[T any](value T, ctx Context, rules []Rule[T]) *Message {
	for _, r := range rules {
		if m := r.eval(value, ctx); m != nil {
			return m
		}
	}
	return nil
}

// Custom adapts a bare validation function into a Rule. fn returns nil when
// the value passes or the failure message otherwise. key identifies the rule
// for snapshot comparison and translation lookups; refs declares any fields
// fn reads through the context.
func Custom[T any](key string, fn func(value T, ctx Context) *Message, refs ...string) Rule[T] {
	fallback := Message{Text: "is invalid", Key: key}
	return Rule[T]{
		Check: func(value T, ctx Context) bool {
			return fn(value, ctx) == nil
		},
		Error: fallback,
		Explain: func(value T, ctx Context) Message {
			m := fn(value, ctx)
			if m == nil {
				return fallback
			}
			out := *m
			if out.Key == "" {
				out.Key = key
			}
			return out
		},
		Refs: refs,
	}
}

// sameRules reports whether two rule chains have the same identity sequence.
// A rule's identity is its Error message; the check functions themselves are
// not comparable.
func sameRules[T any](a, b []Rule[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Error.Equal(b[i].Error) {
			return false
		}
	}
	return true
}

// ruleRefs collects the declared references of a rule chain, deduplicated in
// declaration order.
func ruleRefs[T any](rules []Rule[T]) []string {
	var refs []string
	seen := make(map[string]bool)
	for _, r := range rules {
		for _, ref := range r.Refs {
			if !seen[ref] {
				refs = append(refs, ref)
				seen[ref] = true
			}
		}
	}
	return refs
}
