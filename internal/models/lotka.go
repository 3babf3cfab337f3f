package models

import (
	"fmt"

	"github.com/san-kum/phaseflow/internal/phase"
)

// LotkaVolterra implements the classic predator-prey system.
// State: [x, y] where x is prey and y is predator density.
// Equations:
//
//	dx/dt = αx - βxy
//	dy/dt = δxy - γy
type LotkaVolterra struct {
	Alpha, Beta, Delta, Gamma float64
}

func NewLotkaVolterra() *LotkaVolterra {
	return &LotkaVolterra{Alpha: 1.0, Beta: 1.0, Delta: 1.0, Gamma: 1.5}
}

func (l *LotkaVolterra) Eval(x, y float64, p phase.Params) (float64, float64) {
	a := p.Get("alpha", l.Alpha)
	b := p.Get("beta", l.Beta)
	d := p.Get("delta", l.Delta)
	g := p.Get("gamma", l.Gamma)

	return a*x - b*x*y, d*x*y - g*y
}

func (l *LotkaVolterra) IsValid() bool { return true }
func (l *LotkaVolterra) Err() string   { return "" }

// Equilibria returns the extinction point and the coexistence point
// (γ/δ, α/β).
func (l *LotkaVolterra) Equilibria(p phase.Params) []phase.Vec2 {
	a := p.Get("alpha", l.Alpha)
	b := p.Get("beta", l.Beta)
	d := p.Get("delta", l.Delta)
	g := p.Get("gamma", l.Gamma)

	eq := []phase.Vec2{{X: 0, Y: 0}}
	if b != 0 && d != 0 {
		eq = append(eq, phase.Vec2{X: g / d, Y: a / b})
	}
	return eq
}

func (l *LotkaVolterra) Jacobian(x, y float64, p phase.Params) (fx, fy, gx, gy float64) {
	a := p.Get("alpha", l.Alpha)
	b := p.Get("beta", l.Beta)
	d := p.Get("delta", l.Delta)
	g := p.Get("gamma", l.Gamma)

	return a - b*y, -b * x, d * y, d*x - g
}

// Nullclines are axis-parallel lines: prey growth vanishes on x=0 and
// y=α/β, predator growth on y=0 and x=γ/δ.
func (l *LotkaVolterra) Nullclines(p phase.Params, vp phase.Viewport, n int) []phase.Curve {
	a := p.Get("alpha", l.Alpha)
	b := p.Get("beta", l.Beta)
	d := p.Get("delta", l.Delta)
	g := p.Get("gamma", l.Gamma)

	curves := []phase.Curve{
		verticalLine(0, vp),
		horizontalLine(0, vp),
	}
	if b != 0 {
		curves = append(curves, horizontalLine(a/b, vp))
	}
	if d != 0 {
		curves = append(curves, verticalLine(g/d, vp))
	}
	return curves
}

func (l *LotkaVolterra) DefaultViewport() phase.Viewport {
	return phase.Viewport{XMin: 0, XMax: 4, YMin: 0, YMax: 4}
}

func (l *LotkaVolterra) GetParams() phase.Params {
	return phase.Params{"alpha": l.Alpha, "beta": l.Beta, "delta": l.Delta, "gamma": l.Gamma}
}

func (l *LotkaVolterra) SetParam(name string, v float64) error {
	switch name {
	case "alpha":
		l.Alpha = v
	case "beta":
		l.Beta = v
	case "delta":
		l.Delta = v
	case "gamma":
		l.Gamma = v
	default:
		return fmt.Errorf("%w: %q", phase.ErrUnknownParam, name)
	}
	return nil
}
