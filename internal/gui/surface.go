package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// texSurface adapts a raylib render texture to the engine's Surface
// contract. Every method must be called between BeginTextureMode and
// EndTextureMode on the owning texture.
type texSurface struct {
	w, h int
}

func rlColor(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return rl.NewColor(0, 0, 0, 0)
	}
	// Un-premultiply back to straight alpha for raylib.
	return rl.NewColor(
		uint8((r*0xff+a/2)/a),
		uint8((g*0xff+a/2)/a),
		uint8((b*0xff+a/2)/a),
		uint8(a>>8),
	)
}

func (s texSurface) Size() (int, int) { return s.w, s.h }

func (s texSurface) Clear(c color.Color) {
	rl.ClearBackground(rlColor(c))
}

func (s texSurface) Line(x0, y0, x1, y1, width float64, c color.Color) {
	rl.DrawLineEx(
		rl.NewVector2(float32(x0), float32(y0)),
		rl.NewVector2(float32(x1), float32(y1)),
		float32(width), rlColor(c))
}

func (s texSurface) FillCircle(x, y, r float64, c color.Color) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), rlColor(c))
}

func (s texSurface) StrokeCircle(x, y, r float64, c color.Color) {
	rl.DrawCircleLines(int32(x), int32(y), float32(r), rlColor(c))
}

// OpenGL blend factors for the trail decay: dst' = dst * srcAlpha keeps
// existing content scaled by the fade factor, so trails thin toward
// transparency and the static layer shows through.
const (
	glZero     = 0
	glSrcAlpha = 0x0302
	glFuncAdd  = 0x8006
)

func (s texSurface) Fade(alpha float64) {
	rl.SetBlendFactors(glZero, glSrcAlpha, glFuncAdd)
	rl.BeginBlendMode(rl.BlendCustom)
	a := uint8(alpha*255 + 0.5)
	rl.DrawRectangle(0, 0, int32(s.w), int32(s.h), rl.NewColor(255, 255, 255, a))
	rl.EndBlendMode()
}
