package bind

import "errors"

// Common binding errors
var (
	// ErrBindValue indicates a posted value could not be converted to the
	// field's value type.
	ErrBindValue = errors.New("invalid value for field")

	// ErrUnsupportedKind indicates the registered field kind has no built-in
	// conversion and does not implement Binder.
	ErrUnsupportedKind = errors.New("unsupported field kind")
)
