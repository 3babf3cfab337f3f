package phase

import "math"

// Vec2 is a point or derivative vector in the plane.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Norm() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Norm() }

func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// IsFinite reports whether both coordinates are ordinary numbers.
func IsFinite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

// Params is a named set of real-valued model constants. Setters hand the
// engine a fresh snapshot; a frame in progress never observes a partial
// update.
type Params map[string]float64

func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Get returns the named constant, or fallback when absent.
func (p Params) Get(name string, fallback float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return fallback
}

// VectorField is a planar system dX/dt = f(X). Fixed analytic models are
// always valid; the expression-backed calculator reports validation
// failures through IsValid and Err and evaluates a safe fallback field
// until the equations are fixed.
type VectorField interface {
	Eval(x, y float64, p Params) (dx, dy float64)
	IsValid() bool
	Err() string
}

// Configurable is implemented by models whose constants can be adjusted
// at runtime.
type Configurable interface {
	GetParams() Params
	SetParam(name string, value float64) error
}

// Viewport is the data-space rectangle currently displayed.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (v Viewport) Valid() bool     { return v.XMin < v.XMax && v.YMin < v.YMax }
func (v Viewport) Width() float64  { return v.XMax - v.XMin }
func (v Viewport) Height() float64 { return v.YMax - v.YMin }

func (v Viewport) Contains(x, y float64) bool {
	return x >= v.XMin && x <= v.XMax && y >= v.YMin && y <= v.YMax
}

// Extend grows the rectangle by frac of its span on every side. The field
// particle grid covers the extended viewport so trajectories entering from
// outside the visible area leave no seam at the edges.
func (v Viewport) Extend(frac float64) Viewport {
	dx := v.Width() * frac
	dy := v.Height() * frac
	return Viewport{
		XMin: v.XMin - dx,
		XMax: v.XMax + dx,
		YMin: v.YMin - dy,
		YMax: v.YMax + dy,
	}
}
