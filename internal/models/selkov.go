package models

import (
	"fmt"
	"math"

	"github.com/san-kum/phaseflow/internal/phase"
)

// Selkov implements the Higgins-Sel'kov glycolytic oscillator.
// State: [F, A] where F is fructose-6-phosphate and A is ADP.
// Equations:
//
//	dF/dt = v - cFA²
//	dA/dt = cFA² - kA
type Selkov struct {
	V, C, K float64
}

func NewSelkov() *Selkov {
	return &Selkov{V: 1.0, C: 1.0, K: 1.0}
}

func (s *Selkov) Eval(f, a float64, p phase.Params) (float64, float64) {
	v := p.Get("v", s.V)
	c := p.Get("c", s.C)
	k := p.Get("k", s.K)

	r := c * f * a * a
	return v - r, r - k*a
}

func (s *Selkov) IsValid() bool { return true }
func (s *Selkov) Err() string   { return "" }

// Equilibria returns the unique steady state A* = v/k, F* = k²/(cv).
func (s *Selkov) Equilibria(p phase.Params) []phase.Vec2 {
	v := p.Get("v", s.V)
	c := p.Get("c", s.C)
	k := p.Get("k", s.K)

	if k == 0 || c == 0 || v == 0 {
		return nil
	}
	return []phase.Vec2{{X: k * k / (c * v), Y: v / k}}
}

func (s *Selkov) Jacobian(f, a float64, p phase.Params) (fx, fy, gx, gy float64) {
	c := p.Get("c", s.C)
	k := p.Get("k", s.K)

	return -c * a * a, -2 * c * f * a, c * a * a, 2*c*f*a - k
}

// Nullclines: dF/dt = 0 on F = v/(cA²); dA/dt = 0 on A = 0 and F = k/(cA).
// Both hyperbola-like branches are sampled over the viewport's A range.
func (s *Selkov) Nullclines(p phase.Params, vp phase.Viewport, n int) []phase.Curve {
	v := p.Get("v", s.V)
	c := p.Get("c", s.C)
	k := p.Get("k", s.K)

	curves := []phase.Curve{horizontalLine(0, vp)}
	if c == 0 || n < 2 {
		return curves
	}

	fNull := phase.Curve{}
	aNull := phase.Curve{}
	for i := 0; i < n; i++ {
		a := vp.YMin + vp.Height()*float64(i)/float64(n-1)
		if a <= 0 {
			continue
		}
		if f := v / (c * a * a); !math.IsInf(f, 0) && f >= vp.XMin && f <= vp.XMax {
			fNull.Points = append(fNull.Points, phase.Vec2{X: f, Y: a})
		}
		if f := k / (c * a); !math.IsInf(f, 0) && f >= vp.XMin && f <= vp.XMax {
			aNull.Points = append(aNull.Points, phase.Vec2{X: f, Y: a})
		}
	}
	if len(fNull.Points) > 1 {
		curves = append(curves, fNull)
	}
	if len(aNull.Points) > 1 {
		curves = append(curves, aNull)
	}
	return curves
}

func (s *Selkov) DefaultViewport() phase.Viewport {
	return phase.Viewport{XMin: 0, XMax: 3, YMin: 0, YMax: 3}
}

func (s *Selkov) GetParams() phase.Params {
	return phase.Params{"v": s.V, "c": s.C, "k": s.K}
}

func (s *Selkov) SetParam(name string, v float64) error {
	switch name {
	case "v":
		s.V = v
	case "c":
		s.C = v
	case "k":
		s.K = v
	default:
		return fmt.Errorf("%w: %q", phase.ErrUnknownParam, name)
	}
	return nil
}
