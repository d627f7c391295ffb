package formkit

import "errors"

// Configuration and lookup errors reported by form operations. All of them
// surface at registration or lookup time, never in the middle of a
// validation pass.
var (
	// ErrDuplicateField indicates the field name is already registered on the form.
	ErrDuplicateField = errors.New("field name already registered")

	// ErrFieldNotFound indicates the requested field name is not registered.
	ErrFieldNotFound = errors.New("field not found")

	// ErrUnknownFieldRef indicates a rule references a field name absent from the form.
	ErrUnknownFieldRef = errors.New("rule references unknown field")

	// ErrTypeMismatch indicates the registered field kind differs from the requested one.
	ErrTypeMismatch = errors.New("field type mismatch")

	// ErrIndexOutOfRange indicates an option index outside the group's option sequence.
	ErrIndexOutOfRange = errors.New("option index out of range")
)
