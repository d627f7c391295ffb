package i18n

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit"
)

// DefaultLanguage is used when no default language option is provided.
const DefaultLanguage = "en"

// Translator renders validation messages in the languages it holds catalogs
// for. Catalogs are flat key-to-template maps built once at construction;
// lookups afterwards are read-only, so a Translator may be shared freely
// across goroutines.
type Translator struct {
	catalogs    map[string]map[string]string
	defaultLang string
	logger      *slog.Logger
	matcher     language.Matcher
	codes       []string
}

// New creates a Translator from the given options. It fails when a catalog
// carries an invalid language code or a catalog source cannot be loaded.
// A Translator without catalogs is valid: every message renders as its
// default text.
func New(opts ...Option) (*Translator, error) {
	t := &Translator{
		catalogs:    make(map[string]map[string]string),
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	if err := t.buildMatcher(); err != nil {
		return nil, err
	}

	t.logger.Info("translation catalogs loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// buildMatcher prepares the language matching table. The default language is
// the first tag, so unknown requests resolve to it.
func (t *Translator) buildMatcher() error {
	def, err := language.Parse(t.defaultLang)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLanguage, t.defaultLang)
	}

	codes := []string{t.defaultLang}
	tags := []language.Tag{def}
	for _, code := range t.SupportedLanguages() {
		if code == t.defaultLang {
			continue
		}
		tag, err := language.Parse(code)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, code)
		}
		codes = append(codes, code)
		tags = append(tags, tag)
	}

	t.codes = codes
	t.matcher = language.NewMatcher(tags)
	return nil
}

// SupportedLanguages returns the catalog language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.catalogs))
	for lang := range t.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	catalog, ok := t.catalogs[t.resolve(lang)]
	if !ok {
		return false
	}
	_, ok = catalog[key]
	return ok
}

// resolve maps a requested language to the closest catalog language: an
// exact or close match first ("en-US" finds an "en" catalog), the default
// language otherwise.
func (t *Translator) resolve(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return t.defaultLang
	}
	return t.codes[idx]
}

// Translate renders a validation message for the requested language: the
// catalog template under the message's key with %{name} placeholders
// substituted from the message's values. A message without a key, or a key
// absent from the resolved catalog, renders as the message's default text.
func (t *Translator) Translate(lang string, m formkit.Message) string {
	if m.Key == "" {
		return m.Text
	}
	catalog, ok := t.catalogs[t.resolve(lang)]
	if !ok {
		return m.Text
	}
	tmpl, ok := catalog[m.Key]
	if !ok {
		t.logger.Warn("translation not found", "lang", lang, "key", m.Key)
		return m.Text
	}
	return substitute(tmpl, m.Values)
}

// TranslateContext renders every failure message in the snapshot, keyed by
// field name. The map is freshly allocated; an entirely valid snapshot
// yields an empty map.
func (t *Translator) TranslateContext(lang string, ctx formkit.Context) map[string]string {
	out := make(map[string]string)
	for _, name := range ctx.Names() {
		s, ok := ctx.Field(name)
		if !ok {
			continue
		}
		if m := s.Err(); m != nil {
			out[name] = t.Translate(lang, *m)
		}
	}
	return out
}

// addCatalog merges a nested translation map into the catalog for lang,
// flattening nested maps into dot-notation keys.
func (t *Translator) addCatalog(lang string, translations map[string]any) error {
	if _, err := language.Parse(lang); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLanguage, lang)
	}
	if len(translations) == 0 {
		return fmt.Errorf("%w: %s", ErrNoCatalog, lang)
	}
	catalog := t.catalogs[lang]
	if catalog == nil {
		catalog = make(map[string]string)
		t.catalogs[lang] = catalog
	}
	flatten("", translations, catalog)
	return nil
}

// flatten walks a nested translation map depth-first, writing leaf values
// under dot-joined keys.
func flatten(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, dst)
		case string:
			dst[key] = val
		default:
			dst[key] = fmt.Sprint(val)
		}
	}
}

// paramRegex finds named parameters in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders with the corresponding values.
// Placeholders without a value stay in place, so a template typo remains
// visible instead of silently vanishing.
func substitute(tmpl string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := values[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
