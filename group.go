package formkit

import (
	"fmt"
	"slices"
)

// Option is one selectable entry of a Group: a fixed payload value, the
// label shown next to the control, and the selection flag. Selection state
// lives on the option itself; the owning group holds no separate flags.
type Option[T any] struct {
	value    T
	label    string
	selected bool
}

// Opt returns an unselected option carrying value.
func Opt[T any](value T, label string) Option[T] {
	return Option[T]{value: value, label: label}
}

// OptSelected returns a pre-selected option carrying value.
func OptSelected[T any](value T, label string) Option[T] {
	return Option[T]{value: value, label: label, selected: true}
}

// Value returns the option payload.
func (o Option[T]) Value() T { return o.value }

// Label returns the option label.
func (o Option[T]) Label() string { return o.label }

// Selected reports whether the option is currently selected.
func (o Option[T]) Selected() bool { return o.selected }

// WithSelected returns a derived option with the selection flag set.
func (o Option[T]) WithSelected(selected bool) Option[T] {
	next := o
	next.selected = selected
	return next
}

// Group is an immutable snapshot of a multi-option field such as a checkbox
// set or a radio list. Its effective value is the ordered sequence of
// selected payloads, and that sequence is what the rule chain validates.
//
// Like Field, every derivation is copy-on-write: the receiver keeps
// describing the previous state.
type Group[T any] struct {
	options []Option[T]
	label   string
	err     *Message
	touched bool
	rules   []Rule[[]T]
}

// NewGroup returns the initial snapshot of an option group. The rule chain
// is fixed for the lifetime of the group identity.
func NewGroup[T any](label string, options []Option[T], rules ...Rule[[]T]) Group[T] {
	return Group[T]{
		options: slices.Clone(options),
		label:   label,
		rules:   rules,
	}
}

// Options returns a copy of the option sequence.
func (g Group[T]) Options() []Option[T] {
	return slices.Clone(g.options)
}

// SelectedValues returns the payloads of the selected options in option
// order. The slice is freshly allocated.
func (g Group[T]) SelectedValues() []T {
	var out []T
	for _, o := range g.options {
		if o.selected {
			out = append(out, o.value)
		}
	}
	return out
}

// Label returns the human-facing group label.
func (g Group[T]) Label() string { return g.label }

// Err returns the message recorded by the last validation pass, nil while
// the selection passes.
func (g Group[T]) Err() *Message { return g.err }

// Touched reports whether the user has interacted with the group.
func (g Group[T]) Touched() bool { return g.touched }

// Valid reports whether the snapshot holds no message.
func (g Group[T]) Valid() bool { return g.err == nil }

// Any returns the selected payloads untyped.
func (g Group[T]) Any() any { return g.SelectedValues() }

// Refs returns the names of other fields the rule chain reads.
func (g Group[T]) Refs() []string { return ruleRefs(g.rules) }

// Toggle returns a derived snapshot with option i flipped, as a checkbox
// click does: the group becomes touched and the selection is revalidated
// against ctx. It fails with ErrIndexOutOfRange when i does not address an
// option.
func (g Group[T]) Toggle(i int, ctx Context) (Group[T], error) {
	if i < 0 || i >= len(g.options) {
		return g, fmt.Errorf("%w: %d of %d options", ErrIndexOutOfRange, i, len(g.options))
	}
	next := g
	next.options = slices.Clone(g.options)
	next.options[i] = next.options[i].WithSelected(!next.options[i].selected)
	next.touched = true
	next.err = Validate(next.SelectedValues(), ctx, g.rules)
	return next, nil
}

// Select returns a derived group snapshot where exactly the options whose
// payload equals value are selected, as a radio click does: the group
// becomes touched and the selection is revalidated against ctx. A value
// matching no option clears the selection.
func Select[T comparable](g Group[T], value T, ctx Context) Group[T] {
	next := g
	next.options = slices.Clone(g.options)
	for i, o := range next.options {
		next.options[i] = o.WithSelected(o.value == value)
	}
	next.touched = true
	next.err = Validate(next.SelectedValues(), ctx, g.rules)
	return next
}

// WithOptions returns a derived snapshot with the option sequence replaced
// wholesale, revalidated against ctx. Replacing options is structural rather
// than user interaction, so the touched flag carries over unchanged.
func (g Group[T]) WithOptions(options []Option[T], ctx Context) Group[T] {
	next := g
	next.options = slices.Clone(options)
	next.err = Validate(next.SelectedValues(), ctx, g.rules)
	return next
}

// WithTouched returns a derived snapshot with the touched flag set. No
// validation runs.
func (g Group[T]) WithTouched(touched bool) Group[T] {
	next := g
	next.touched = touched
	return next
}

// WithError returns a derived snapshot carrying an externally produced
// message. Passing nil clears the message.
func (g Group[T]) WithError(m *Message) Group[T] {
	next := g
	next.err = m
	return next
}

// Validate runs the rule chain against the current selection and ctx without
// deriving a new snapshot.
func (g Group[T]) Validate(ctx Context) *Message {
	return Validate(g.SelectedValues(), ctx, g.rules)
}

// Touch implements State.
func (g Group[T]) Touch(touched bool) State {
	return g.WithTouched(touched)
}

// Revalidate implements State: the derived snapshot's message reflects the
// current selection validated against ctx.
func (g Group[T]) Revalidate(ctx Context) State {
	next := g
	next.err = Validate(g.SelectedValues(), ctx, g.rules)
	return next
}

// Equal reports whether two snapshots are indistinguishable: same option
// sequence (payload, label, and selection), label, touched flag, message,
// and rule identity sequence.
func (g Group[T]) Equal(other Group[T]) bool {
	if len(g.options) != len(other.options) {
		return false
	}
	for i := range g.options {
		if !equalValues(g.options[i].value, other.options[i].value) ||
			g.options[i].label != other.options[i].label ||
			g.options[i].selected != other.options[i].selected {
			return false
		}
	}
	return g.label == other.label &&
		g.touched == other.touched &&
		equalMessagePtr(g.err, other.err) &&
		sameRules(g.rules, other.rules)
}
