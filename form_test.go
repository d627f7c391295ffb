package formkit_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
)

// ruleSameAs is a local cross-field equality rule for form tests.
func ruleSameAs(other string) formkit.Rule[string] {
	return formkit.Rule[string]{
		Check: func(value string, ctx formkit.Context) bool {
			f, err := formkit.FieldOf[string](ctx, other)
			if err != nil {
				return false
			}
			return f.Value() == value
		},
		Error: formkit.Message{Text: "must match " + other, Key: "validation.same"},
		Refs:  []string{other},
	}
}

func TestFormNew(t *testing.T) {
	t.Run("builds and validates the initial snapshot", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "", ruleNonEmpty())),
			formkit.Named("nick", formkit.NewField("Nick", "ok")),
		)
		require.NoError(t, err)

		assert.False(t, form.IsValid(), "empty required field fails immediately")
		s, ok := form.Context().Field("name")
		require.True(t, ok)
		require.NotNil(t, s.Err())
		assert.False(t, s.Touched(), "initial validation is not interaction")
	})

	t.Run("duplicate name fails", func(t *testing.T) {
		_, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "")),
			formkit.Named("name", formkit.NewField("Name again", "")),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, formkit.ErrDuplicateField)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("rule referencing an unknown field fails", func(t *testing.T) {
		_, err := formkit.New(
			formkit.Named("confirm", formkit.NewField("Confirm", "", ruleSameAs("password"))),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, formkit.ErrUnknownFieldRef)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("mutually referencing fields construct", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("a", formkit.NewField("A", "x", ruleSameAs("b"))),
			formkit.Named("b", formkit.NewField("B", "x", ruleSameAs("a"))),
		)
		require.NoError(t, err)
		assert.True(t, form.IsValid())
	})

	t.Run("declaration order is kept", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("c", formkit.NewField("C", "")),
			formkit.Named("a", formkit.NewField("A", "")),
			formkit.Named("b", formkit.NewField("B", "")),
		)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff([]string{"c", "a", "b"}, form.Names()))
	})
}

func TestFormRegister(t *testing.T) {
	t.Run("adds a field and validates it", func(t *testing.T) {
		form, err := formkit.New()
		require.NoError(t, err)

		require.NoError(t, form.Register("name", formkit.NewField("Name", "", ruleNonEmpty())))
		s, ok := form.Context().Field("name")
		require.True(t, ok)
		assert.NotNil(t, s.Err())
	})

	t.Run("duplicate name fails", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "")),
		)
		require.NoError(t, err)

		err = form.Register("name", formkit.NewField("Name again", ""))
		assert.ErrorIs(t, err, formkit.ErrDuplicateField)
	})

	t.Run("reference to an absent field fails immediately", func(t *testing.T) {
		form, err := formkit.New()
		require.NoError(t, err)

		err = form.Register("confirm", formkit.NewField("Confirm", "", ruleSameAs("password")))
		require.Error(t, err)
		assert.ErrorIs(t, err, formkit.ErrUnknownFieldRef)
		assert.False(t, form.Context().Has("confirm"), "failed registration leaves no trace")
	})

	t.Run("reference to an already registered field resolves", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("password", formkit.NewField("Password", "secret")),
		)
		require.NoError(t, err)

		require.NoError(t, form.Register("confirm", formkit.NewField("Confirm", "secret", ruleSameAs("password"))))
		assert.True(t, form.IsValid())
	})
}

func TestFormUpdate(t *testing.T) {
	t.Run("installs a derived snapshot", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "before")),
		)
		require.NoError(t, err)

		fld, err := formkit.FieldOf[string](form.Context(), "name")
		require.NoError(t, err)
		require.NoError(t, form.Update("name", fld.WithValue("after", form.Context())))

		s, _ := form.Context().Field("name")
		assert.Equal(t, "after", s.Any())
	})

	t.Run("unregistered name fails", func(t *testing.T) {
		form, err := formkit.New()
		require.NoError(t, err)

		err = form.Update("ghost", formkit.NewField("Ghost", ""))
		assert.ErrorIs(t, err, formkit.ErrFieldNotFound)
	})

	t.Run("snapshot with a dangling reference fails", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "")),
		)
		require.NoError(t, err)

		err = form.Update("name", formkit.NewField("Name", "", ruleSameAs("missing")))
		assert.ErrorIs(t, err, formkit.ErrUnknownFieldRef)
	})
}

func TestFormTouch(t *testing.T) {
	t.Run("marks without validating", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "ok")),
		)
		require.NoError(t, err)

		require.NoError(t, form.Touch("name", true))
		s, _ := form.Context().Field("name")
		assert.True(t, s.Touched())

		require.NoError(t, form.Touch("name", false))
		s, _ = form.Context().Field("name")
		assert.False(t, s.Touched())
	})

	t.Run("unregistered name fails", func(t *testing.T) {
		form, err := formkit.New()
		require.NoError(t, err)
		assert.ErrorIs(t, form.Touch("ghost", true), formkit.ErrFieldNotFound)
	})
}

func TestFormValidateAll(t *testing.T) {
	t.Run("revalidates every field", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "", ruleNonEmpty())),
		)
		require.NoError(t, err)

		// Clear the error out of band, then check the pass restores it.
		require.NoError(t, formkit.SetError[string](form, "name", nil))
		assert.True(t, form.IsValid())

		ctx := form.ValidateAll()
		assert.False(t, form.IsValid())
		s, _ := ctx.Field("name")
		assert.NotNil(t, s.Err())
	})

	t.Run("cross-field rules see one fixed pre-pass snapshot", func(t *testing.T) {
		// a and b must match each other. Change a only: during the pass b's
		// rule must compare against a's value from before the pass started
		// regardless of whether a was rewritten first.
		build := func(names [2]string) *formkit.Form {
			form, err := formkit.New(
				formkit.Named(names[0], formkit.NewField("A", "x", ruleSameAs(names[1]))),
				formkit.Named(names[1], formkit.NewField("B", "x", ruleSameAs(names[0]))),
			)
			require.NoError(t, err)
			return form
		}

		for _, order := range [][2]string{{"a", "b"}, {"b", "a"}} {
			form := build(order)
			require.NoError(t, formkit.SetValue(form, order[0], "changed"))
			form.ValidateAll()

			first, _ := form.Context().Field(order[0])
			second, _ := form.Context().Field(order[1])
			assert.NotNil(t, first.Err(), "registration order %v", order)
			assert.NotNil(t, second.Err(), "registration order %v", order)
		}
	})

	t.Run("returned context matches the installed one", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "ok", ruleNonEmpty())),
		)
		require.NoError(t, err)

		ctx := form.ValidateAll()
		s1, _ := ctx.Field("name")
		s2, _ := form.Context().Field("name")
		assert.Equal(t, s1.Any(), s2.Any())
		assert.Equal(t, s1.Err(), s2.Err())
	})
}

func TestFormIsValid(t *testing.T) {
	t.Run("true without errors", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "ok", ruleNonEmpty())),
		)
		require.NoError(t, err)
		assert.True(t, form.IsValid())
	})

	t.Run("group errors count too", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("toppings", formkit.NewGroup("Toppings",
				[]formkit.Option[string]{formkit.Opt("a", "A")},
				ruleMinSelected(1),
			)),
		)
		require.NoError(t, err)
		assert.False(t, form.IsValid())
	})
}

func TestSetValue(t *testing.T) {
	t.Run("derives, validates, installs", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "", ruleNonEmpty())),
		)
		require.NoError(t, err)

		require.NoError(t, formkit.SetValue(form, "name", "Alice"))
		fld, err := formkit.FieldOf[string](form.Context(), "name")
		require.NoError(t, err)
		assert.Equal(t, "Alice", fld.Value())
		assert.True(t, fld.Touched())
		assert.Nil(t, fld.Err())
	})

	t.Run("wrong type fails", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "")),
		)
		require.NoError(t, err)
		assert.ErrorIs(t, formkit.SetValue(form, "name", 42), formkit.ErrTypeMismatch)
	})
}

func TestSetError(t *testing.T) {
	t.Run("attaches a server-side failure", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("email", formkit.NewField("Email", "taken@example.com")),
		)
		require.NoError(t, err)

		m := &formkit.Message{Text: "already registered", Key: "validation.unique"}
		require.NoError(t, formkit.SetError[string](form, "email", m))
		assert.False(t, form.IsValid())
	})
}

func TestToggleOption(t *testing.T) {
	t.Run("flips one option in place on the form", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("toppings", formkit.NewGroup("Toppings", []formkit.Option[string]{
				formkit.Opt("a", "A"),
				formkit.Opt("b", "B"),
			})),
		)
		require.NoError(t, err)

		require.NoError(t, formkit.ToggleOption[string](form, "toppings", 1))
		g, err := formkit.GroupOf[string](form.Context(), "toppings")
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, g.SelectedValues())
	})

	t.Run("bad index fails", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("toppings", formkit.NewGroup("Toppings", []formkit.Option[string]{formkit.Opt("a", "A")})),
		)
		require.NoError(t, err)
		assert.ErrorIs(t, formkit.ToggleOption[string](form, "toppings", 5), formkit.ErrIndexOutOfRange)
	})
}

func TestSelectOption(t *testing.T) {
	t.Run("radio semantics through the form", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("size", formkit.NewGroup("Size", []formkit.Option[string]{
				formkit.OptSelected("s", "Small"),
				formkit.Opt("m", "Medium"),
			})),
		)
		require.NoError(t, err)

		require.NoError(t, formkit.SelectOption(form, "size", "m"))
		g, err := formkit.GroupOf[string](form.Context(), "size")
		require.NoError(t, err)
		assert.Equal(t, []string{"m"}, g.SelectedValues())
	})
}
