package bind

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit"
)

// Binder is the escape hatch for custom field kinds: a State implementing
// it converts its own posted values into a derived snapshot. ctx is the
// form snapshot current at bind time, for validation during derivation.
type Binder interface {
	BindFormValue(values []string, ctx formkit.Context) (formkit.State, error)
}

// Bind populates a form from posted values, as parsed from an
// application/x-www-form-urlencoded or multipart body. Fields are bound in
// declaration order; names absent from values keep their current snapshot,
// and posted names not registered on the form are ignored, so a form binds
// safely from a request carrying unrelated parameters.
//
// Each bound field derives through WithValue, so normalizers and the rule
// chain run and the snapshot comes out touched — it carries user input.
// Fields bound earlier in the pass are visible to the cross-field rules of
// later ones; run ValidateAll afterwards for order-independent results.
//
// It fails with ErrBindValue when a value does not convert to the field's
// value type, and with ErrUnsupportedKind for field kinds without a
// built-in conversion that do not implement Binder.
func Bind(f *formkit.Form, values map[string][]string) error {
	for _, name := range f.Names() {
		vs, ok := values[name]
		if !ok || len(vs) == 0 {
			continue
		}
		ctx := f.Context()
		s, _ := ctx.Field(name)

		next, err := bindState(s, vs, ctx)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrBindValue, name, err)
		}
		if next == nil {
			return fmt.Errorf("%w: %s holds %T", ErrUnsupportedKind, name, s)
		}
		if err := f.Update(name, next); err != nil {
			return err
		}
	}
	return nil
}

// bindState converts posted values for one field kind. A nil State with a
// nil error means the kind is not supported.
func bindState(s formkit.State, vs []string, ctx formkit.Context) (formkit.State, error) {
	switch fld := s.(type) {
	case formkit.Field[string]:
		return fld.WithValue(vs[0], ctx), nil

	case formkit.Field[int]:
		n, err := strconv.Atoi(strings.TrimSpace(vs[0]))
		if err != nil {
			return nil, err
		}
		return fld.WithValue(n, ctx), nil

	case formkit.Field[int64]:
		n, err := strconv.ParseInt(strings.TrimSpace(vs[0]), 10, 64)
		if err != nil {
			return nil, err
		}
		return fld.WithValue(n, ctx), nil

	case formkit.Field[float64]:
		n, err := strconv.ParseFloat(strings.TrimSpace(vs[0]), 64)
		if err != nil {
			return nil, err
		}
		return fld.WithValue(n, ctx), nil

	case formkit.Field[bool]:
		b, err := parseBool(vs[0])
		if err != nil {
			return nil, err
		}
		return fld.WithValue(b, ctx), nil

	case formkit.Group[string]:
		options := fld.Options()
		for i, o := range options {
			options[i] = o.WithSelected(slices.Contains(vs, o.Value()))
		}
		return fld.WithOptions(options, ctx).WithTouched(true), nil

	default:
		if b, ok := s.(Binder); ok {
			return b.BindFormValue(vs, ctx)
		}
		return nil, nil
	}
}

// parseBool accepts the values HTML form controls actually post: checkboxes
// send "on", hand-written forms send yes/no or 1/0. An unchecked checkbox
// posts nothing at all, which Bind treats as "leave the field alone".
func parseBool(value string) (bool, error) {
	if b, err := strconv.ParseBool(value); err == nil {
		return b, nil
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q", value)
	}
}
