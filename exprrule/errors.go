package exprrule

import "errors"

var (
	// ErrEmptyCondition indicates an empty condition expression.
	ErrEmptyCondition = errors.New("condition expression must not be empty")

	// ErrInvalidCondition indicates the condition expression failed to compile.
	ErrInvalidCondition = errors.New("invalid condition expression")
)
