package fishtrace

import "errors"

// Failure categories reported by the solvers. Wrapped errors carry detail;
// match with errors.Is.
var (
	// ErrInvalidInput covers malformed input: fewer than two lines,
	// a (near) zero direction vector, or non-finite coordinates.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDegenerateConfiguration means the input was well-formed but the
	// closest point is not uniquely determined (e.g. all lines parallel).
	ErrDegenerateConfiguration = errors.New("degenerate line configuration")
)
