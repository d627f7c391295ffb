package formkit

import "reflect"

// Field is an immutable snapshot of a single-value form field: the current
// value, the label shown to the user, the outcome of the last validation
// pass, whether the user has interacted with the field, and the rule chain
// fixed at construction.
//
// All With* methods are copy-on-write derivations. The receiver is never
// modified and keeps describing the previous state for anyone still holding
// it; the caller installs the returned snapshot into the owning Form to make
// the change visible to other fields.
type Field[T any] struct {
	value     T
	label     string
	err       *Message
	touched   bool
	rules     []Rule[T]
	normalize func(T) T
}

// NewField returns the initial snapshot of a field. The rule chain is fixed
// for the lifetime of the field identity. The snapshot carries no message
// until its first validation pass; forms run one at construction.
func NewField[T any](label string, value T, rules ...Rule[T]) Field[T] {
	return Field[T]{
		value: value,
		label: label,
		rules: rules,
	}
}

// Value returns the current value.
func (f Field[T]) Value() T { return f.value }

// Label returns the human-facing label.
func (f Field[T]) Label() string { return f.label }

// Err returns the message recorded by the last validation pass, nil while
// the value passes.
func (f Field[T]) Err() *Message { return f.err }

// Touched reports whether the user has interacted with the field.
func (f Field[T]) Touched() bool { return f.touched }

// Valid reports whether the snapshot holds no message.
func (f Field[T]) Valid() bool { return f.err == nil }

// Any returns the current value untyped.
func (f Field[T]) Any() any { return f.value }

// Refs returns the names of other fields the rule chain reads, deduplicated
// in declaration order.
func (f Field[T]) Refs() []string { return ruleRefs(f.rules) }

// WithValue returns a derived snapshot holding value. The normalizer runs
// first when one is set, touched becomes true, and the message is recomputed
// by running the rule chain against ctx.
func (f Field[T]) WithValue(value T, ctx Context) Field[T] {
	if f.normalize != nil {
		value = f.normalize(value)
	}
	next := f
	next.value = value
	next.touched = true
	next.err = Validate(value, ctx, f.rules)
	return next
}

// WithTouched returns a derived snapshot with the touched flag set. No
// validation runs; the message carries over unchanged.
func (f Field[T]) WithTouched(touched bool) Field[T] {
	next := f
	next.touched = touched
	return next
}

// WithError returns a derived snapshot carrying an externally produced
// message, such as a uniqueness failure detected against a database. Passing
// nil clears the message.
func (f Field[T]) WithError(m *Message) Field[T] {
	next := f
	next.err = m
	return next
}

// WithNormalizer returns a derived snapshot whose future WithValue calls
// pass input through fn before validation. Set it at declaration time,
// before the field joins a form.
func (f Field[T]) WithNormalizer(fn func(T) T) Field[T] {
	next := f
	next.normalize = fn
	return next
}

// Validate runs the rule chain against ctx and returns the first failure
// without deriving a new snapshot.
func (f Field[T]) Validate(ctx Context) *Message {
	return Validate(f.value, ctx, f.rules)
}

// Touch implements State.
func (f Field[T]) Touch(touched bool) State {
	return f.WithTouched(touched)
}

// Revalidate implements State: the derived snapshot's message reflects the
// current value validated against ctx. Value and touched carry over.
func (f Field[T]) Revalidate(ctx Context) State {
	next := f
	next.err = Validate(f.value, ctx, f.rules)
	return next
}

// Equal reports whether two snapshots are indistinguishable: equal values,
// labels, touched flags, messages, and rule identity sequences. Normalizers
// are configuration rather than state and do not participate.
func (f Field[T]) Equal(other Field[T]) bool {
	return equalValues(f.value, other.value) &&
		f.label == other.label &&
		f.touched == other.touched &&
		equalMessagePtr(f.err, other.err) &&
		sameRules(f.rules, other.rules)
}

// equalValues compares two values of an arbitrary field type. Types with an
// Equal method (time.Time among them) are compared semantically; everything
// else falls back to deep equality.
func equalValues[T any](a, b T) bool {
	if av, ok := any(a).(interface{ Equal(T) bool }); ok {
		return av.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
