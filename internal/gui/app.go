// Package gui hosts the phase-portrait engine in a raylib window. The
// background and foreground layers each live in their own render
// texture: the static one is repainted only when the engine marks it
// dirty, the dynamic one is faded and extended every frame.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/phaseflow/internal/engine"
	"github.com/san-kum/phaseflow/internal/viz"
)

const (
	windowW = 1280
	windowH = 720
	plotW   = 980
	plotH   = 720
	panelX  = plotW + 16
)

var (
	colBg      = rl.NewColor(10, 10, 14, 255)
	colText    = rl.NewColor(200, 200, 210, 255)
	colTextDim = rl.NewColor(110, 110, 125, 255)
	colError   = rl.NewColor(235, 80, 80, 255)
)

// App owns the window, the two layer textures and the engine for one
// tool.
type App struct {
	eng       *engine.Engine
	modelName string
	theme     viz.Theme

	static  rl.RenderTexture2D
	dynamic rl.RenderTexture2D
}

func NewApp(eng *engine.Engine, modelName, themeName string) *App {
	return &App{
		eng:       eng,
		modelName: modelName,
		theme:     viz.GetTheme(themeName),
	}
}

// Run opens the window and drives the frame loop until closed. Raylib's
// frame pacing is the only scheduler: one engine tick per display frame.
func (a *App) Run() {
	rl.InitWindow(windowW, windowH, "phaseflow - "+a.modelName)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	a.static = rl.LoadRenderTexture(plotW, plotH)
	a.dynamic = rl.LoadRenderTexture(plotW, plotH)
	defer rl.UnloadRenderTexture(a.static)
	defer rl.UnloadRenderTexture(a.dynamic)

	a.eng.SetSize(plotW, plotH)
	a.eng.SetStyle(a.theme.Style())

	surf := texSurface{w: plotW, h: plotH}

	for !rl.WindowShouldClose() {
		a.handleInput()

		if a.eng.StaticDirty() {
			rl.BeginTextureMode(a.static)
			a.eng.RedrawStatic(surf)
			rl.EndTextureMode()
		}

		rl.BeginTextureMode(a.dynamic)
		a.eng.Step(surf)
		rl.EndTextureMode()

		a.draw()
	}
}

func (a *App) handleInput() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		a.eng.OnPointerDown(float64(pos.X), float64(pos.Y))
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		if a.eng.Running() {
			a.eng.Pause()
		} else {
			a.eng.Start()
		}
	case rl.IsKeyPressed(rl.KeyR):
		a.eng.Reset()
		a.clearDynamic()
	case rl.IsKeyPressed(rl.KeyEqual):
		a.eng.SetSpeed(a.eng.Speed() * 1.25)
	case rl.IsKeyPressed(rl.KeyMinus):
		a.eng.SetSpeed(a.eng.Speed() / 1.25)
	case rl.IsKeyPressed(rl.KeyG):
		t := a.eng.Toggles()
		t.Grid = !t.Grid
		a.eng.SetToggles(t)
	case rl.IsKeyPressed(rl.KeyF):
		t := a.eng.Toggles()
		t.Field = !t.Field
		a.eng.SetToggles(t)
	case rl.IsKeyPressed(rl.KeyN):
		t := a.eng.Toggles()
		t.Nullclines = !t.Nullclines
		a.eng.SetToggles(t)
	}
}

func (a *App) clearDynamic() {
	rl.BeginTextureMode(a.dynamic)
	rl.ClearBackground(rl.NewColor(0, 0, 0, 0))
	rl.EndTextureMode()
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	// Render textures are stored bottom-up; the negative source height
	// flips them upright.
	src := rl.NewRectangle(0, 0, plotW, -plotH)
	rl.DrawTextureRec(a.static.Texture, src, rl.NewVector2(0, 0), rl.White)
	rl.DrawTextureRec(a.dynamic.Texture, src, rl.NewVector2(0, 0), rl.White)

	a.drawPanel()
	rl.EndDrawing()
}

func (a *App) drawPanel() {
	y := int32(24)
	line := func(s string, c rl.Color) {
		rl.DrawText(s, panelX, y, 18, c)
		y += 26
	}

	line(a.modelName, colText)
	switch {
	case a.eng.Running():
		line("running", colText)
	case a.eng.Active():
		line("seeded", colText)
	default:
		line("idle, click to seed", colTextDim)
	}
	line(fmt.Sprintf("speed %.2fx", a.eng.Speed()), colTextDim)
	line(fmt.Sprintf("seeded %d", len(a.eng.Manager().Seeded())), colTextDim)

	if !a.eng.IsValidSystem() {
		line("equation error:", colError)
		line(a.eng.ErrorMessage(), colError)
	}

	y += 12
	line("equilibria", colText)
	eq := a.eng.Equilibria()
	if len(eq) == 0 {
		line("(none)", colTextDim)
	}
	for _, e := range eq {
		if !a.eng.Viewport().Contains(e.Point.X, e.Point.Y) {
			continue
		}
		line(fmt.Sprintf("(%.2f, %.2f) %s", e.Point.X, e.Point.Y, e.Class), colTextDim)
	}

	y = windowH - 120
	rl.DrawText("click seed trajectory", panelX, y, 16, colTextDim)
	rl.DrawText("space run/pause   r reset", panelX, y+22, 16, colTextDim)
	rl.DrawText("g/f/n layers   +/- speed", panelX, y+44, 16, colTextDim)
}
