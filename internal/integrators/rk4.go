package integrators

import "github.com/san-kum/phaseflow/internal/phase"

// RK4 is the classic fourth-order Runge-Kutta scheme on a planar field.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(f phase.VectorField, p phase.Params, x, y, dt float64) (float64, float64) {
	k1x, k1y := f.Eval(x, y, p)
	k2x, k2y := f.Eval(x+dt*0.5*k1x, y+dt*0.5*k1y, p)
	k3x, k3y := f.Eval(x+dt*0.5*k2x, y+dt*0.5*k2y, p)
	k4x, k4y := f.Eval(x+dt*k3x, y+dt*k3y, p)

	dt6 := dt / 6.0
	return x + dt6*(k1x+2*k2x+2*k3x+k4x),
		y + dt6*(k1y+2*k2y+2*k3y+k4y)
}
