package phase

import (
	"errors"
	"fmt"
)

// Domain errors for the phase-portrait engine.
var (
	// ErrInvalidViewport indicates a viewport with xMin >= xMax or yMin >= yMax.
	ErrInvalidViewport = errors.New("phase: invalid viewport (min must be below max)")

	// ErrInvalidExpression indicates the expression evaluator rejected a user equation.
	ErrInvalidExpression = errors.New("phase: invalid equation")

	// ErrNonFinite indicates a field evaluation or integration step produced NaN or Inf.
	ErrNonFinite = errors.New("phase: non-finite value (NaN or Inf detected)")

	// ErrUnknownModel indicates a model name with no registry entry.
	ErrUnknownModel = errors.New("phase: unknown model")

	// ErrUnknownParam indicates a parameter name the model does not define.
	ErrUnknownParam = errors.New("phase: unknown parameter")
)

// FieldError wraps an error with the point at which evaluation failed.
type FieldError struct {
	X, Y    float64
	Wrapped error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v at (%.4g, %.4g)", e.Wrapped, e.X, e.Y)
}

func (e *FieldError) Unwrap() error {
	return e.Wrapped
}
