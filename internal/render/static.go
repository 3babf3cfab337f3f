package render

import (
	"math"

	"github.com/san-kum/phaseflow/internal/analysis"
	"github.com/san-kum/phaseflow/internal/phase"
	"github.com/san-kum/phaseflow/internal/plot"
)

// Toggles select which static elements are drawn.
type Toggles struct {
	Grid       bool
	Field      bool
	Nullclines bool
}

// Arrow lattice and marker geometry, constant in pixel space so zoom
// changes direction density but never symbol size.
const (
	arrowCols      = 16
	arrowRows      = 12
	arrowLen       = 11.0
	arrowHeadLen   = 4.5
	arrowHeadAngle = 0.45
	eqRadius       = 5.0
	eqRingRadius   = 7.5
	nullclineWidth = 1.5
	curveSamples   = 160
)

// DrawStatic repaints the whole background layer: grid, direction field,
// nullclines, equilibrium markers. The output is a pure function of its
// arguments; callers invoke it only when the viewport, the parameters or
// the toggles change.
func DrawStatic(s Surface, tr plot.Transform, f phase.VectorField, p phase.Params,
	eq []analysis.Equilibrium, tog Toggles, style Style) {

	s.Clear(style.Background)

	if tog.Grid {
		drawGrid(s, tr, style)
	}
	if tog.Field {
		drawArrows(s, tr, f, p, style)
	}
	if tog.Nullclines {
		drawNullclines(s, tr, f, p, style)
	}
	drawEquilibria(s, tr, eq, style)
}

// drawGrid places lines at a round data-space spacing close to an eighth
// of the viewport span.
func drawGrid(s Surface, tr plot.Transform, style Style) {
	vp := tr.Viewport()
	w, h := tr.Size()

	stepX := niceStep(vp.Width() / 8)
	for x := math.Ceil(vp.XMin/stepX) * stepX; x <= vp.XMax; x += stepX {
		px, _ := tr.DataToPixel(x, vp.YMin)
		s.Line(px, 0, px, h, 1, style.Grid)
	}

	stepY := niceStep(vp.Height() / 8)
	for y := math.Ceil(vp.YMin/stepY) * stepY; y <= vp.YMax; y += stepY {
		_, py := tr.DataToPixel(vp.XMin, y)
		s.Line(0, py, w, py, 1, style.Grid)
	}
}

// niceStep rounds a raw spacing to the nearest 1, 2 or 5 times a power of
// ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm < 1.5:
		return mag
	case norm < 3.5:
		return 2 * mag
	case norm < 7.5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// drawArrows samples the field on a fixed lattice. All arrows share the
// same pixel length; only direction is informative.
func drawArrows(s Surface, tr plot.Transform, f phase.VectorField, p phase.Params, style Style) {
	vp := tr.Viewport()

	for i := 0; i < arrowCols; i++ {
		for j := 0; j < arrowRows; j++ {
			x := vp.XMin + vp.Width()*(float64(i)+0.5)/arrowCols
			y := vp.YMin + vp.Height()*(float64(j)+0.5)/arrowRows

			dx, dy := f.Eval(x, y, p)
			if !phase.IsFinite(dx, dy) {
				continue
			}
			mag := math.Hypot(dx, dy)
			if mag < 1e-12 {
				continue
			}

			// Direction in pixel space; pixel y points down.
			ux, uy := dx/mag, -dy/mag
			cx, cy := tr.DataToPixel(x, y)

			x0, y0 := cx-ux*arrowLen/2, cy-uy*arrowLen/2
			x1, y1 := cx+ux*arrowLen/2, cy+uy*arrowLen/2
			s.Line(x0, y0, x1, y1, 1, style.Arrow)

			ang := math.Atan2(uy, ux)
			for _, da := range [2]float64{arrowHeadAngle, -arrowHeadAngle} {
				hx := x1 - arrowHeadLen*math.Cos(ang+da)
				hy := y1 - arrowHeadLen*math.Sin(ang+da)
				s.Line(x1, y1, hx, hy, 1, style.Arrow)
			}
		}
	}
}

func drawNullclines(s Surface, tr plot.Transform, f phase.VectorField, p phase.Params, style Style) {
	np, ok := f.(phase.NullclineProvider)
	if !ok {
		return
	}

	for _, curve := range np.Nullclines(p, tr.Viewport(), curveSamples) {
		for i := 1; i < len(curve.Points); i++ {
			a, b := curve.Points[i-1], curve.Points[i]
			x0, y0 := tr.DataToPixel(a.X, a.Y)
			x1, y1 := tr.DataToPixel(b.X, b.Y)
			s.Line(x0, y0, x1, y1, nullclineWidth, style.Nullcline)
		}
	}
}

// drawEquilibria marks each equilibrium with a filled disc inside a
// contrasting ring, sized independent of zoom.
func drawEquilibria(s Surface, tr plot.Transform, eq []analysis.Equilibrium, style Style) {
	vp := tr.Viewport()
	for _, e := range eq {
		if !vp.Contains(e.Point.X, e.Point.Y) {
			continue
		}
		px, py := tr.DataToPixel(e.Point.X, e.Point.Y)
		s.FillCircle(px, py, eqRadius, style.EqFill)
		s.StrokeCircle(px, py, eqRingRadius, style.EqRing)
	}
}
