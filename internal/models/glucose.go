package models

import (
	"fmt"
	"math"

	"github.com/san-kum/phaseflow/internal/phase"
)

// GlucoseInsulin implements a minimal model of glucose-insulin regulation.
// State: [G, I] where G is plasma glucose and I is insulin concentration.
// Equations:
//
//	dG/dt = p - uG - sGI
//	dI/dt = qG - dI
//
// p is hepatic glucose production, u the insulin-independent clearance
// rate, s the insulin sensitivity, q the glucose-stimulated secretion
// rate and d the insulin degradation rate.
type GlucoseInsulin struct {
	P, U, S, Q, D float64
}

func NewGlucoseInsulin() *GlucoseInsulin {
	return &GlucoseInsulin{P: 2.0, U: 0.2, S: 0.5, Q: 0.5, D: 0.8}
}

func (g *GlucoseInsulin) Eval(gl, in float64, p phase.Params) (float64, float64) {
	prod := p.Get("p", g.P)
	u := p.Get("u", g.U)
	s := p.Get("s", g.S)
	q := p.Get("q", g.Q)
	d := p.Get("d", g.D)

	return prod - u*gl - s*gl*in, q*gl - d*in
}

func (g *GlucoseInsulin) IsValid() bool { return true }
func (g *GlucoseInsulin) Err() string   { return "" }

// Equilibria solves the steady state in closed form. Substituting
// I = qG/d into dG/dt = 0 gives (sq/d)G² + uG - p = 0, solved by the
// quadratic formula; a negative discriminant or a vanishing quadratic
// coefficient leaves the linear branch G = p/u.
func (g *GlucoseInsulin) Equilibria(p phase.Params) []phase.Vec2 {
	prod := p.Get("p", g.P)
	u := p.Get("u", g.U)
	s := p.Get("s", g.S)
	q := p.Get("q", g.Q)
	d := p.Get("d", g.D)

	if d == 0 {
		return nil
	}
	a := s * q / d
	if a == 0 {
		if u == 0 {
			return nil
		}
		gl := prod / u
		return []phase.Vec2{{X: gl, Y: q * gl / d}}
	}

	disc := u*u + 4*a*prod
	if disc < 0 {
		return nil
	}
	gl := (-u + math.Sqrt(disc)) / (2 * a)
	return []phase.Vec2{{X: gl, Y: q * gl / d}}
}

func (g *GlucoseInsulin) Jacobian(gl, in float64, p phase.Params) (fx, fy, gx, gy float64) {
	u := p.Get("u", g.U)
	s := p.Get("s", g.S)
	q := p.Get("q", g.Q)
	d := p.Get("d", g.D)

	return -u - s*in, -s * gl, q, -d
}

// Nullclines: dG/dt = 0 on I = (p - uG)/(sG); dI/dt = 0 on I = qG/d.
func (g *GlucoseInsulin) Nullclines(p phase.Params, vp phase.Viewport, n int) []phase.Curve {
	prod := p.Get("p", g.P)
	u := p.Get("u", g.U)
	s := p.Get("s", g.S)
	q := p.Get("q", g.Q)
	d := p.Get("d", g.D)

	var curves []phase.Curve
	if n < 2 {
		return curves
	}

	gNull := phase.Curve{}
	iNull := phase.Curve{}
	for i := 0; i < n; i++ {
		gl := vp.XMin + vp.Width()*float64(i)/float64(n-1)
		if s != 0 && gl > 0 {
			in := (prod - u*gl) / (s * gl)
			if !math.IsInf(in, 0) && in >= vp.YMin && in <= vp.YMax {
				gNull.Points = append(gNull.Points, phase.Vec2{X: gl, Y: in})
			}
		}
		if d != 0 {
			in := q * gl / d
			if in >= vp.YMin && in <= vp.YMax {
				iNull.Points = append(iNull.Points, phase.Vec2{X: gl, Y: in})
			}
		}
	}
	if len(gNull.Points) > 1 {
		curves = append(curves, gNull)
	}
	if len(iNull.Points) > 1 {
		curves = append(curves, iNull)
	}
	return curves
}

func (g *GlucoseInsulin) DefaultViewport() phase.Viewport {
	return phase.Viewport{XMin: 0, XMax: 6, YMin: 0, YMax: 4}
}

func (g *GlucoseInsulin) GetParams() phase.Params {
	return phase.Params{"p": g.P, "u": g.U, "s": g.S, "q": g.Q, "d": g.D}
}

func (g *GlucoseInsulin) SetParam(name string, v float64) error {
	switch name {
	case "p":
		g.P = v
	case "u":
		g.U = v
	case "s":
		g.S = v
	case "q":
		g.Q = v
	case "d":
		g.D = v
	default:
		return fmt.Errorf("%w: %q", phase.ErrUnknownParam, name)
	}
	return nil
}
