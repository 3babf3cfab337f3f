// Package plot maps between the data-space viewport and the pixel
// rectangle of a rendering surface.
package plot

import "github.com/san-kum/phaseflow/internal/phase"

// Transform is an immutable snapshot of the linear mapping between a
// data-space viewport and a pixel rectangle. Pixel y grows downward while
// data y grows upward, so the vertical axis is inverted. A frame takes one
// Transform and uses it for every read; the engine rebuilds it whenever
// the viewport or the surface size changes.
type Transform struct {
	vp     phase.Viewport
	width  float64
	height float64
}

// NewTransform builds the mapping for a w-by-h pixel surface showing vp.
func NewTransform(vp phase.Viewport, w, h int) Transform {
	return Transform{vp: vp, width: float64(w), height: float64(h)}
}

func (t Transform) Viewport() phase.Viewport { return t.vp }
func (t Transform) Size() (w, h float64)     { return t.width, t.height }

// DataToPixel maps a data point into the pixel rectangle.
func (t Transform) DataToPixel(x, y float64) (px, py float64) {
	px = (x - t.vp.XMin) / t.vp.Width() * t.width
	py = (t.vp.YMax - y) / t.vp.Height() * t.height
	return px, py
}

// PixelToData is the exact inverse of DataToPixel.
func (t Transform) PixelToData(px, py float64) (x, y float64) {
	x = t.vp.XMin + px/t.width*t.vp.Width()
	y = t.vp.YMax - py/t.height*t.vp.Height()
	return x, y
}

// InPlot reports whether a pixel coordinate lies inside the plot rectangle.
func (t Transform) InPlot(px, py float64) bool {
	return px >= 0 && px <= t.width && py >= 0 && py <= t.height
}

// PixelsPerUnit returns the scale along each axis, used to size elements
// that must stay constant in data space.
func (t Transform) PixelsPerUnit() (sx, sy float64) {
	return t.width / t.vp.Width(), t.height / t.vp.Height()
}
