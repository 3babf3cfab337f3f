package export

import (
	"math"

	"github.com/san-kum/phaseflow/internal/analysis"
	"github.com/san-kum/phaseflow/internal/integrators"
	"github.com/san-kum/phaseflow/internal/phase"
	"github.com/san-kum/phaseflow/internal/plot"
	"github.com/san-kum/phaseflow/internal/render"
)

const (
	portraitGrid  = 8
	portraitSteps = 600
	portraitDt    = 0.02
)

// Portrait renders a static phase portrait: background layers plus a
// lattice of integrated trajectories colored by local speed.
func Portrait(f phase.VectorField, p phase.Params, vp phase.Viewport,
	w, h int, tog render.Toggles, style render.Style) *SVGSurface {

	s := NewSVGSurface(w, h)
	tr := plot.NewTransform(vp, w, h)

	eq := analysis.FindEquilibria(f, p, vp)
	render.DrawStatic(s, tr, f, p, eq, tog, style)

	stepper := integrators.New("rk4")
	for i := 0; i < portraitGrid; i++ {
		for j := 0; j < portraitGrid; j++ {
			x := vp.XMin + (float64(i)+0.5)/portraitGrid*vp.Width()
			y := vp.YMin + (float64(j)+0.5)/portraitGrid*vp.Height()
			drawTrajectory(s, tr, f, p, stepper, x, y, style)
		}
	}
	return s
}

func drawTrajectory(s *SVGSurface, tr plot.Transform, f phase.VectorField,
	p phase.Params, stepper integrators.Stepper, x, y float64, style render.Style) {

	px, py := tr.DataToPixel(x, y)
	for n := 0; n < portraitSteps; n++ {
		xn, yn := stepper.Step(f, p, x, y, portraitDt)
		if !phase.IsFinite(xn, yn) {
			return
		}
		qx, qy := tr.DataToPixel(xn, yn)
		if tr.InPlot(px, py) || tr.InPlot(qx, qy) {
			speed := math.Hypot(xn-x, yn-y) / portraitDt
			s.Line(px, py, qx, qy, 1, style.TrailColor(speed))
		}
		x, y = xn, yn
		px, py = qx, qy
	}
}
