package render

import (
	"github.com/san-kum/phaseflow/internal/particles"
	"github.com/san-kum/phaseflow/internal/plot"
)

const seedDotRadius = 2.5

// DrawDynamic paints one animation frame onto the foreground layer. The
// whole surface is first faded so existing trail pixels decay
// exponentially toward transparency; each particle then contributes one
// segment from its committed position to its pending one. Callers must
// invoke this between Advance and Commit, afterwards the two positions
// coincide and the segments degenerate to points.
func DrawDynamic(s Surface, tr plot.Transform, seeded, field []particles.Particle, style Style) {
	s.Fade(style.FadeAlpha)

	drawTrails(s, tr, field, style)
	drawTrails(s, tr, seeded, style)

	// Dot markers keep click trajectories legible against the field.
	for _, p := range seeded {
		px, py := tr.DataToPixel(p.X, p.Y)
		s.FillCircle(px, py, seedDotRadius, style.SeedDot)
	}
}

func drawTrails(s Surface, tr plot.Transform, pool []particles.Particle, style Style) {
	for _, p := range pool {
		x0, y0 := tr.DataToPixel(p.X, p.Y)
		x1, y1 := tr.DataToPixel(p.NextX, p.NextY)

		speed := p.Speed()
		s.Line(x0, y0, x1, y1, style.TrailWidth(speed), style.TrailColor(speed))
	}
}
