package cubesolver

import "errors"

// Sentinel errors for the cubesolver package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubesolver: invalid move notation")

	// Search errors
	ErrNoSolution     = errors.New("cubesolver: no solution within depth bound")
	ErrBudgetExceeded = errors.New("cubesolver: node budget exceeded")
)
