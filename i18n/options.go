package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
)

// Option configures a Translator during construction.
type Option func(*Translator) error

// WithDefaultLanguage sets the language unknown or unmatched requests
// resolve to. Default is "en".
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) error {
		if lang == "" {
			return fmt.Errorf("%w: empty", ErrInvalidLanguage)
		}
		t.defaultLang = lang
		return nil
	}
}

// WithCatalog adds an in-memory translation catalog for lang. Nested maps
// become dot-notation keys; repeated calls for the same language merge, with
// later entries winning on key collision.
func WithCatalog(lang string, translations map[string]any) Option {
	return func(t *Translator) error {
		return t.addCatalog(lang, translations)
	}
}

// WithFS loads catalogs from a filesystem directory. Every file directly
// under root named <lang>.yml, <lang>.yaml, or <lang>.json becomes the
// catalog for that language. Dot-files and subdirectories are skipped; any
// other file fails loading with ErrUnsupportedFormat.
func WithFS(fsys fs.FS, root string) Option {
	return func(t *Translator) error {
		entries, err := fs.ReadDir(fsys, root)
		if err != nil {
			return errors.Join(ErrFailedToAccessSource, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || strings.HasPrefix(name, ".") {
				continue
			}
			parser := NewParserForFile(name)
			if parser == nil {
				return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
			}
			content, err := fs.ReadFile(fsys, path.Join(root, name))
			if err != nil {
				return errors.Join(ErrFailedToReadFile, err)
			}
			translations, err := parser.Parse(content)
			if err != nil {
				return errors.Join(ErrFailedToParseFile, err)
			}
			lang := strings.TrimSuffix(name, "."+getFileExtension(name))
			if err := t.addCatalog(lang, translations); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithLogger provides a logger for missing-translation diagnostics. If not
// specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) error {
		if logger != nil {
			t.logger = logger
		}
		return nil
	}
}
