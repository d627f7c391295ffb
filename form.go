package formkit

import "fmt"

// FormField pairs a field name with its initial snapshot for batch form
// construction.
type FormField struct {
	Name  string
	State State
}

// Named declares one field of a form for New.
func Named(name string, s State) FormField {
	return FormField{Name: name, State: s}
}

// Form owns the canonical name-to-snapshot registry. Reads go through
// immutable Context snapshots; every write swaps the registry for a derived
// snapshot, so a Context handed out earlier never changes underneath its
// holder.
//
// A Form must be driven from a single goroutine. The snapshots it returns
// are plain values and may be read from anywhere.
type Form struct {
	ctx Context
}

// New builds a form from the declared fields. It fails with
// ErrDuplicateField when two fields share a name, and with
// ErrUnknownFieldRef when any rule references a name outside the declared
// set; because the whole set is known up front, mutually referencing fields
// are valid here. Once the wiring checks pass, every field is validated
// against the initial snapshot so messages reflect initial values from the
// start.
func New(fields ...FormField) (*Form, error) {
	ctx := Context{}
	for _, fd := range fields {
		if ctx.Has(fd.Name) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, fd.Name)
		}
		ctx = ctx.with(fd.Name, fd.State)
	}
	for _, name := range ctx.order {
		for _, ref := range ctx.fields[name].Refs() {
			if !ctx.Has(ref) {
				return nil, fmt.Errorf("%w: %s references %s", ErrUnknownFieldRef, name, ref)
			}
		}
	}
	f := &Form{ctx: ctx}
	f.ValidateAll()
	return f, nil
}

// Register adds a field after construction. The new field's rule references
// must resolve against the already registered names or itself; declare
// mutually referencing fields together through New. The field is validated
// against the post-registration snapshot.
func (f *Form) Register(name string, s State) error {
	if f.ctx.Has(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateField, name)
	}
	for _, ref := range s.Refs() {
		if ref != name && !f.ctx.Has(ref) {
			return fmt.Errorf("%w: %s references %s", ErrUnknownFieldRef, name, ref)
		}
	}
	next := f.ctx.with(name, s)
	f.ctx = next.with(name, s.Revalidate(next))
	return nil
}

// Update installs a derived snapshot under an already registered name.
// Readers holding a previously obtained Context are unaffected. The
// snapshot's rule references are re-checked so a swapped-in custom kind
// cannot smuggle in a dangling reference.
func (f *Form) Update(name string, s State) error {
	if !f.ctx.Has(name) {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	for _, ref := range s.Refs() {
		if !f.ctx.Has(ref) {
			return fmt.Errorf("%w: %s references %s", ErrUnknownFieldRef, name, ref)
		}
	}
	f.ctx = f.ctx.with(name, s)
	return nil
}

// Touch marks a field as interacted with (or not) without validating it.
func (f *Form) Touch(name string, touched bool) error {
	s, ok := f.ctx.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	f.ctx = f.ctx.with(name, s.Touch(touched))
	return nil
}

// Context returns the current immutable snapshot.
func (f *Form) Context() Context {
	return f.ctx
}

// ValidateAll revalidates every field against a snapshot captured once
// before the pass. Fields rewritten by the pass are not visible to rules
// evaluated later in the same pass, which keeps the outcome independent of
// field order even when fields reference each other. The rebuilt snapshot
// is installed and returned.
func (f *Form) ValidateAll() Context {
	pre := f.ctx
	next := pre
	for _, name := range pre.order {
		next = next.with(name, pre.fields[name].Revalidate(pre))
	}
	f.ctx = next
	return next
}

// IsValid reports whether no field currently holds a message. It inspects
// the current snapshot without revalidating; run ValidateAll first when the
// snapshot may predate cross-field edits.
func (f *Form) IsValid() bool {
	for _, s := range f.ctx.fields {
		if s.Err() != nil {
			return false
		}
	}
	return true
}

// Names returns the registered field names in declaration order.
func (f *Form) Names() []string {
	return f.ctx.Names()
}

// SetValue derives a new snapshot of the named field holding value and
// installs it. The derivation validates against the snapshot current at the
// time of the call; fields depending on this one refresh on their own next
// derivation or on ValidateAll.
func SetValue[T any](f *Form, name string, value T) error {
	fld, err := FieldOf[T](f.ctx, name)
	if err != nil {
		return err
	}
	return f.Update(name, fld.WithValue(value, f.ctx))
}

// SetError attaches an externally produced message to the named field, nil
// to clear it.
func SetError[T any](f *Form, name string, m *Message) error {
	fld, err := FieldOf[T](f.ctx, name)
	if err != nil {
		return err
	}
	return f.Update(name, fld.WithError(m))
}

// ToggleOption flips one option of the named group, as a checkbox click
// does.
func ToggleOption[T any](f *Form, name string, i int) error {
	g, err := GroupOf[T](f.ctx, name)
	if err != nil {
		return err
	}
	next, err := g.Toggle(i, f.ctx)
	if err != nil {
		return err
	}
	return f.Update(name, next)
}

// SelectOption selects exactly the options carrying value on the named
// group, as a radio click does.
func SelectOption[T comparable](f *Form, name string, value T) error {
	g, err := GroupOf[T](f.ctx, name)
	if err != nil {
		return err
	}
	return f.Update(name, Select(g, value, f.ctx))
}
