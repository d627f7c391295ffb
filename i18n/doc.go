// Package i18n renders formkit validation messages in other languages.
//
// Every built-in rule carries a stable translation key (such as
// "validation.min_length") and the substitution values its configuration
// binds. A Translator holds per-language catalogs mapping those keys to
// templates with %{name} placeholders and picks the catalog closest to the
// requested language; a message whose key no catalog covers falls back to
// its default English text, so translation is always best-effort and never
// fails a render.
//
// # Usage
//
//	translator, err := i18n.New(
//	    i18n.WithDefaultLanguage("en"),
//	    i18n.WithCatalog("de", map[string]any{
//	        "validation": map[string]any{
//	            "required":   "Pflichtfeld",
//	            "min_length": "mindestens %{min} Zeichen",
//	        },
//	    }),
//	)
//	if err != nil {
//	    // invalid language code or empty catalog
//	}
//
//	if m := field.Err(); m != nil {
//	    show(translator.Translate("de-AT", *m)) // resolves to the "de" catalog
//	}
//
// Catalogs also load from files via WithFS: every <lang>.yml, <lang>.yaml,
// or <lang>.json directly under the given root becomes one language's
// catalog. Nested document structure turns into dot-notation keys.
//
// # Error Handling
//
// Construction fails with sentinel errors (ErrInvalidLanguage, ErrNoCatalog,
// ErrUnsupportedFormat, ErrFailedToParseFile, ...) joined with the causing
// error where one exists. Translate itself never fails; missing keys are
// logged through the optional logger and fall back to the message text.
package i18n
