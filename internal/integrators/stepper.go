// Package integrators provides fixed-step ODE integration for planar
// vector fields.
package integrators

import "github.com/san-kum/phaseflow/internal/phase"

// Stepper advances one planar state by one fixed time step. Steppers are
// pure: the same inputs always produce the same output.
type Stepper interface {
	Step(f phase.VectorField, p phase.Params, x, y, dt float64) (xNew, yNew float64)
}

// New returns the stepper registered under name, defaulting to RK4.
func New(name string) Stepper {
	switch name {
	case "euler":
		return NewEuler()
	default:
		return NewRK4()
	}
}
