package shapes

import "errors"

// Error kinds returned by constructors and derived-property accessors.
// Callers match them with errors.Is; the returned errors carry context.
var (
	// ErrInvalidGeometry reports parameters that cannot describe a shape
	// (non-positive radius or step, reversed angle range, negative counts).
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrDivisionByZero reports a direction requested from a zero-length segment.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidInput reports malformed input data, such as a coordinate
	// matrix with the wrong shape or a non-finite coordinate.
	ErrInvalidInput = errors.New("invalid input")
)
