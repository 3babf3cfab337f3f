package export

import (
	"fmt"
	"image/color"
	"os"
	"strings"
)

// SVGSurface records draw calls as SVG elements. It satisfies
// render.Surface so the same static and dynamic passes that feed the
// screen can feed a file.
type SVGSurface struct {
	w, h  int
	bg    string
	elems []string
}

func NewSVGSurface(w, h int) *SVGSurface {
	return &SVGSurface{w: w, h: h, bg: "#0a0a0a"}
}

func (s *SVGSurface) Size() (int, int) { return s.w, s.h }

func (s *SVGSurface) Clear(c color.Color) {
	s.bg = hexColor(c)
	s.elems = s.elems[:0]
}

func (s *SVGSurface) Line(x0, y0, x1, y1, width float64, c color.Color) {
	s.elems = append(s.elems, fmt.Sprintf(
		`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"%s/>`,
		x0, y0, x1, y1, hexColor(c), width, opacityAttr(c)))
}

func (s *SVGSurface) FillCircle(x, y, r float64, c color.Color) {
	s.elems = append(s.elems, fmt.Sprintf(
		`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"%s/>`,
		x, y, r, hexColor(c), opacityAttr(c)))
}

func (s *SVGSurface) StrokeCircle(x, y, r float64, c color.Color) {
	s.elems = append(s.elems, fmt.Sprintf(
		`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="1.5"%s/>`,
		x, y, r, hexColor(c), opacityAttr(c)))
}

// Fade is a no-op: an exported portrait is a single frame, so there is
// no previous frame to decay.
func (s *SVGSurface) Fade(alpha float64) {}

func (s *SVGSurface) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.w, s.h, s.w, s.h, s.bg))
	for _, e := range s.elems {
		sb.WriteString(e)
		sb.WriteString("\n")
	}
	sb.WriteString("</svg>")
	return sb.String()
}

func (s *SVGSurface) WriteFile(path string) error {
	return os.WriteFile(path, []byte(s.String()), 0644)
}

func hexColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "#000000"
	}
	// RGBA is alpha-premultiplied; undo it since opacity ships separately.
	r = r * 0xffff / a
	g = g * 0xffff / a
	b = b * 0xffff / a
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func opacityAttr(c color.Color) string {
	_, _, _, a := c.RGBA()
	if a >= 0xffff {
		return ""
	}
	return fmt.Sprintf(` opacity="%.2f"`, float64(a)/0xffff)
}
