package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/i18n"
	"github.com/dmitrymomot/formkit/rules"
)

func germanCatalog() map[string]any {
	return map[string]any{
		"validation": map[string]any{
			"required":   "Pflichtfeld",
			"min_length": "mindestens %{min} Zeichen",
			"same":       "muss mit %{other} übereinstimmen",
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("empty translator is valid", func(t *testing.T) {
		tr, err := i18n.New()
		require.NoError(t, err)
		assert.Empty(t, tr.SupportedLanguages())
	})

	t.Run("loads in-memory catalogs", func(t *testing.T) {
		tr, err := i18n.New(
			i18n.WithCatalog("de", germanCatalog()),
			i18n.WithCatalog("fr", map[string]any{"validation": map[string]any{"required": "champ requis"}}),
		)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff([]string{"de", "fr"}, tr.SupportedLanguages()))
	})

	t.Run("invalid catalog language fails", func(t *testing.T) {
		_, err := i18n.New(i18n.WithCatalog("not a language", germanCatalog()))
		assert.ErrorIs(t, err, i18n.ErrInvalidLanguage)
	})

	t.Run("empty catalog fails", func(t *testing.T) {
		_, err := i18n.New(i18n.WithCatalog("de", map[string]any{}))
		assert.ErrorIs(t, err, i18n.ErrNoCatalog)
	})

	t.Run("invalid default language fails", func(t *testing.T) {
		_, err := i18n.New(i18n.WithDefaultLanguage("???"))
		assert.ErrorIs(t, err, i18n.ErrInvalidLanguage)
	})
}

func TestTranslate(t *testing.T) {
	tr, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithCatalog("en", map[string]any{
			"validation": map[string]any{"min_length": "at least %{min} characters"},
		}),
		i18n.WithCatalog("de", germanCatalog()),
	)
	require.NoError(t, err)

	minLen := formkit.Message{
		Text:   "must be at least 8 characters long",
		Key:    "validation.min_length",
		Values: map[string]any{"min": 8},
	}

	t.Run("renders the catalog template with substitutions", func(t *testing.T) {
		assert.Equal(t, "mindestens 8 Zeichen", tr.Translate("de", minLen))
	})

	t.Run("regional tag resolves to the base catalog", func(t *testing.T) {
		assert.Equal(t, "mindestens 8 Zeichen", tr.Translate("de-AT", minLen))
	})

	t.Run("unknown language falls back to the default catalog", func(t *testing.T) {
		assert.Equal(t, "at least 8 characters", tr.Translate("xx", minLen))
	})

	t.Run("missing key falls back to the message text", func(t *testing.T) {
		m := formkit.Message{Text: "must be a valid email address", Key: "validation.email"}
		assert.Equal(t, "must be a valid email address", tr.Translate("de", m))
	})

	t.Run("message without key renders its text", func(t *testing.T) {
		m := formkit.Message{Text: "server said no"}
		assert.Equal(t, "server said no", tr.Translate("de", m))
	})

	t.Run("unbound placeholder stays visible", func(t *testing.T) {
		m := formkit.Message{Key: "validation.same", Text: "must match", Values: map[string]any{"unrelated": 1}}
		assert.Equal(t, "muss mit %{other} übereinstimmen", tr.Translate("de", m))
	})
}

func TestTranslateContext(t *testing.T) {
	tr, err := i18n.New(i18n.WithCatalog("de", germanCatalog()))
	require.NoError(t, err)

	t.Run("renders every failing field", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "", rules.Required())),
			formkit.Named("bio", formkit.NewField("Bio", "long enough")),
		)
		require.NoError(t, err)

		out := tr.TranslateContext("de", form.Context())
		assert.Empty(t, cmp.Diff(map[string]string{"name": "Pflichtfeld"}, out))
	})

	t.Run("clean snapshot yields an empty map", func(t *testing.T) {
		form, err := formkit.New(
			formkit.Named("name", formkit.NewField("Name", "ok", rules.Required())),
		)
		require.NoError(t, err)
		assert.Empty(t, tr.TranslateContext("de", form.Context()))
	})
}

func TestWithFS(t *testing.T) {
	t.Run("loads yaml and json catalogs by filename", func(t *testing.T) {
		fsys := fstest.MapFS{
			"locales/de.yml":  {Data: []byte("validation:\n  required: Pflichtfeld\n")},
			"locales/fr.json": {Data: []byte(`{"validation": {"required": "champ requis"}}`)},
		}

		tr, err := i18n.New(i18n.WithFS(fsys, "locales"))
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff([]string{"de", "fr"}, tr.SupportedLanguages()))

		m := formkit.Message{Text: "field is required", Key: "validation.required"}
		assert.Equal(t, "champ requis", tr.Translate("fr", m))
	})

	t.Run("unsupported file fails", func(t *testing.T) {
		fsys := fstest.MapFS{
			"locales/de.txt": {Data: []byte("nope")},
		}
		_, err := i18n.New(i18n.WithFS(fsys, "locales"))
		assert.ErrorIs(t, err, i18n.ErrUnsupportedFormat)
	})

	t.Run("unparsable file fails", func(t *testing.T) {
		fsys := fstest.MapFS{
			"locales/de.json": {Data: []byte("{broken")},
		}
		_, err := i18n.New(i18n.WithFS(fsys, "locales"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("missing directory fails", func(t *testing.T) {
		_, err := i18n.New(i18n.WithFS(fstest.MapFS{}, "locales"))
		assert.ErrorIs(t, err, i18n.ErrFailedToAccessSource)
	})

	t.Run("dot files and directories are skipped", func(t *testing.T) {
		fsys := fstest.MapFS{
			"locales/.keep":         {Data: []byte("")},
			"locales/sub/de.yml":    {Data: []byte("x: y\n")},
			"locales/de.yaml":       {Data: []byte("validation:\n  required: Pflichtfeld\n")},
			"locales/sub/notes.txt": {Data: []byte("")},
		}
		tr, err := i18n.New(i18n.WithFS(fsys, "locales"))
		require.NoError(t, err)
		assert.Equal(t, []string{"de"}, tr.SupportedLanguages())
	})
}

func TestHasTranslation(t *testing.T) {
	tr, err := i18n.New(i18n.WithCatalog("de", germanCatalog()))
	require.NoError(t, err)

	assert.True(t, tr.HasTranslation("de", "validation.required"))
	assert.False(t, tr.HasTranslation("de", "validation.email"))
	assert.False(t, tr.HasTranslation("en", "validation.required"))
}
