package i18n

import "strings"

// Parser turns the raw content of one translation catalog file into a nested
// key-to-value map. Nested maps express dot-notation keys: the YAML document
//
//	validation:
//	  required: "Pflichtfeld"
//
// yields the flattened key "validation.required" once loaded.
type Parser interface {
	// Parse processes the content of a single-language catalog file.
	Parse(content []byte) (map[string]any, error)

	// SupportsFileExtension checks if the parser supports a given file
	// extension. The extension may or may not include a leading dot (both
	// "json" and ".json" are valid).
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, nil when no
// parser supports the format.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(getFileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// getFileExtension extracts the extension from a filename.
func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
