package integrators

import "github.com/san-kum/phaseflow/internal/phase"

// Euler is the explicit first-order scheme, kept for accuracy comparison
// against RK4.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f phase.VectorField, p phase.Params, x, y, dt float64) (float64, float64) {
	dx, dy := f.Eval(x, y, p)
	return x + dt*dx, y + dt*dy
}
