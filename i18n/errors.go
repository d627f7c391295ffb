package i18n

import "errors"

var (
	// YAML operations
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")

	// JSON operations
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")

	// Catalog operations
	ErrNoCatalog            = errors.New("catalog has no translations")
	ErrInvalidLanguage      = errors.New("invalid language code")
	ErrUnsupportedFormat    = errors.New("unsupported translation file format")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrFailedToAccessSource = errors.New("failed to access translation source")
)
