package formkit

import (
	"fmt"
	"maps"
	"slices"
)

// Context is an immutable snapshot of a form's fields at a single instant.
// Cross-field rules read other fields through it; because the snapshot never
// changes, every rule evaluated during one validation pass sees the same
// data regardless of what the pass has already rewritten.
//
// The zero value is a valid empty context, useful for validating standalone
// fields outside a form.
type Context struct {
	fields map[string]State
	order  []string
}

// Field returns the snapshot registered under name.
func (c Context) Field(name string) (State, bool) {
	s, ok := c.fields[name]
	return s, ok
}

// Has reports whether name is registered.
func (c Context) Has(name string) bool {
	_, ok := c.fields[name]
	return ok
}

// Names returns the registered field names in declaration order.
func (c Context) Names() []string {
	return slices.Clone(c.order)
}

// Len returns the number of registered fields.
func (c Context) Len() int {
	return len(c.fields)
}

// Errors returns the current failure text per failing field. The map is
// freshly allocated and safe for the caller to modify.
func (c Context) Errors() map[string]string {
	out := make(map[string]string)
	for name, s := range c.fields {
		if m := s.Err(); m != nil {
			out[name] = m.Text
		}
	}
	return out
}

// with returns a copy of the context with name bound to s. A name not yet
// registered is appended to the declaration order.
func (c Context) with(name string, s State) Context {
	next := Context{
		fields: make(map[string]State, len(c.fields)+1),
		order:  c.order,
	}
	maps.Copy(next.fields, c.fields)
	if _, exists := c.fields[name]; !exists {
		next.order = append(slices.Clone(c.order), name)
	}
	next.fields[name] = s
	return next
}

// FieldOf returns the typed single-value field registered under name. It
// fails with ErrFieldNotFound for unregistered names and ErrTypeMismatch
// when the registered snapshot is not a Field[T].
func FieldOf[T any](ctx Context, name string) (Field[T], error) {
	s, ok := ctx.fields[name]
	if !ok {
		return Field[T]{}, fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	f, ok := s.(Field[T])
	if !ok {
		return Field[T]{}, fmt.Errorf("%w: %s holds %T", ErrTypeMismatch, name, s)
	}
	return f, nil
}

// GroupOf returns the typed option group registered under name. It fails
// with ErrFieldNotFound for unregistered names and ErrTypeMismatch when the
// registered snapshot is not a Group[T].
func GroupOf[T any](ctx Context, name string) (Group[T], error) {
	s, ok := ctx.fields[name]
	if !ok {
		return Group[T]{}, fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	g, ok := s.(Group[T])
	if !ok {
		return Group[T]{}, fmt.Errorf("%w: %s holds %T", ErrTypeMismatch, name, s)
	}
	return g, nil
}
