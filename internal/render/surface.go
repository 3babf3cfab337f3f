// Package render draws phase portraits onto an abstract 2D surface. The
// static layer holds slow-changing content (grid, field arrows,
// nullclines, equilibria) and is redrawn only when parameters or the
// viewport change; the dynamic layer is repainted every frame with a
// fading-trail technique.
package render

import "image/color"

// Surface is the drawing target shared by the raylib window, the braille
// TUI canvas and the SVG exporter.
//
// Fade is the trail primitive: it composites a full-surface rectangle of
// the given near-opaque alpha so that existing content decays toward
// transparency by that factor, rather than being erased outright. Pixel
// backends implement it with a keep-destination-where-alpha-allows
// blend; the braille canvas approximates it stochastically.
type Surface interface {
	Size() (w, h int)
	Clear(c color.Color)
	Line(x0, y0, x1, y1, width float64, c color.Color)
	FillCircle(x, y, r float64, c color.Color)
	StrokeCircle(x, y, r float64, c color.Color)
	Fade(alpha float64)
}
