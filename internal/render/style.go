package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Style bundles the colors and tuning of both renderers. FadeAlpha is the
// opacity of the per-frame fade rectangle; values near 1 keep long
// trails, lower values shorten them.
type Style struct {
	Background color.NRGBA
	Grid       color.NRGBA
	Arrow      color.NRGBA
	Nullcline  color.NRGBA
	EqFill     color.NRGBA
	EqRing     color.NRGBA
	SeedDot    color.NRGBA

	// Trail segments blend from Slow to Fast in Lab space as particle
	// speed grows; SpeedScale is the data-space speed mapped to the Fast
	// end.
	Slow       colorful.Color
	Fast       colorful.Color
	SpeedScale float64

	FadeAlpha float64
}

// DefaultStyle matches the dark theme of the desktop tools.
func DefaultStyle() Style {
	return Style{
		Background: color.NRGBA{10, 10, 14, 255},
		Grid:       color.NRGBA{32, 32, 40, 255},
		Arrow:      color.NRGBA{90, 90, 110, 255},
		Nullcline:  color.NRGBA{70, 140, 90, 255},
		EqFill:     color.NRGBA{235, 235, 245, 255},
		EqRing:     color.NRGBA{120, 60, 200, 255},
		SeedDot:    color.NRGBA{255, 255, 255, 255},
		Slow:       colorful.Color{R: 0.18, G: 0.35, B: 0.80},
		Fast:       colorful.Color{R: 0.95, G: 0.55, B: 0.15},
		SpeedScale: 2.0,
		FadeAlpha:  0.88,
	}
}

// TrailColor interpolates the segment color continuously from the
// particle's instantaneous speed; there is no bucketing.
func (s Style) TrailColor(speed float64) color.NRGBA {
	t := speed / s.SpeedScale
	if t > 1 {
		t = 1
	}
	if t < 0 {
		t = 0
	}
	c := s.Slow.BlendLab(s.Fast, t).Clamped()
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}
}

// TrailWidth grows continuously with speed from 1 to 3 pixels.
func (s Style) TrailWidth(speed float64) float64 {
	t := speed / s.SpeedScale
	if t > 1 {
		t = 1
	}
	if t < 0 {
		t = 0
	}
	return 1 + 2*t
}
