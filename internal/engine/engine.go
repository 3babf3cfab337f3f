// Package engine ties the integrator, particle pools and renderers into
// one animation state machine with an explicit lifecycle.
package engine

import (
	"fmt"

	"github.com/san-kum/phaseflow/internal/analysis"
	"github.com/san-kum/phaseflow/internal/integrators"
	"github.com/san-kum/phaseflow/internal/particles"
	"github.com/san-kum/phaseflow/internal/phase"
	"github.com/san-kum/phaseflow/internal/plot"
	"github.com/san-kum/phaseflow/internal/render"
)

// DefaultBaseStep is the integration step per frame at speed 1.
const DefaultBaseStep = 0.02

// Engine owns all mutable animation state for one tool instance: the two
// particle pools, the parameter snapshot, the running flag and the
// static-layer dirty bit. Hosts drive it from a single frame callback;
// nothing here is safe for concurrent use, and two tools must never share
// an instance.
type Engine struct {
	field phase.VectorField
	mgr   *particles.Manager

	params phase.Params
	vp     phase.Viewport
	tr     plot.Transform
	w, h   int

	style render.Style
	tog   render.Toggles

	baseStep float64
	speed    float64

	running     bool
	staticDirty bool

	equilibria []analysis.Equilibrium
	eqDirty    bool
}

// New builds an engine for a w-by-h pixel surface. The initial viewport
// comes from the model when it provides one.
func New(f phase.VectorField, w, h int) *Engine {
	vp := phase.Viewport{XMin: -2, XMax: 2, YMin: -2, YMax: 2}
	if vpp, ok := f.(phase.ViewportProvider); ok {
		vp = vpp.DefaultViewport()
	}

	params := phase.Params{}
	if c, ok := f.(phase.Configurable); ok {
		params = c.GetParams().Clone()
	}

	return &Engine{
		field:       f,
		mgr:         particles.NewManager(integrators.NewRK4()),
		params:      params,
		vp:          vp,
		tr:          plot.NewTransform(vp, w, h),
		w:           w,
		h:           h,
		style:       render.DefaultStyle(),
		tog:         render.Toggles{Grid: true, Field: true, Nullclines: true},
		baseStep:    DefaultBaseStep,
		speed:       1,
		staticDirty: true,
		eqDirty:     true,
	}
}

// Manager exposes the particle pools, mainly for tests and status panes.
func (e *Engine) Manager() *particles.Manager { return e.mgr }

// Transform returns the snapshot used by the current frame.
func (e *Engine) Transform() plot.Transform { return e.tr }

func (e *Engine) Viewport() phase.Viewport { return e.vp }
func (e *Engine) Params() phase.Params     { return e.params }
func (e *Engine) Speed() float64           { return e.speed }
func (e *Engine) Running() bool            { return e.running }
func (e *Engine) Toggles() render.Toggles  { return e.tog }
func (e *Engine) Style() render.Style      { return e.style }

// SetViewport replaces the data window and rebuilds the transform. Like
// every setter it marks the static layer dirty and never restarts the
// animation.
func (e *Engine) SetViewport(vp phase.Viewport) error {
	if !vp.Valid() {
		return fmt.Errorf("%w: [%g, %g] x [%g, %g]",
			phase.ErrInvalidViewport, vp.XMin, vp.XMax, vp.YMin, vp.YMax)
	}
	e.vp = vp
	e.tr = plot.NewTransform(vp, e.w, e.h)
	e.markDirty()
	return nil
}

// SetSize adapts to a resized surface, rebuilding the transform rather
// than patching it.
func (e *Engine) SetSize(w, h int) {
	e.w, e.h = w, h
	e.tr = plot.NewTransform(e.vp, w, h)
	e.markDirty()
}

// SetParams installs a fresh parameter snapshot. A frame in progress
// keeps the snapshot it started with.
func (e *Engine) SetParams(p phase.Params) {
	e.params = p.Clone()
	if c, ok := e.field.(phase.Configurable); ok {
		for k, v := range e.params {
			_ = c.SetParam(k, v)
		}
	}
	e.markDirty()
}

// SetParam adjusts one constant, keeping the rest of the snapshot.
func (e *Engine) SetParam(name string, v float64) {
	p := e.params.Clone()
	p[name] = v
	e.SetParams(p)
}

// SetSpeed scales the per-frame time step; zero freezes motion without
// stalling the loop.
func (e *Engine) SetSpeed(mult float64) {
	if mult < 0 {
		mult = 0
	}
	e.speed = mult
	e.staticDirty = true
}

func (e *Engine) SetToggles(t render.Toggles) {
	e.tog = t
	e.staticDirty = true
}

func (e *Engine) SetStyle(s render.Style) {
	e.style = s
	e.staticDirty = true
}

func (e *Engine) markDirty() {
	e.staticDirty = true
	e.eqDirty = true
}

// Start enters the running state and regenerates the field pool over the
// current viewport.
func (e *Engine) Start() {
	e.running = true
	e.mgr.Regenerate(e.vp)
}

// Pause freezes field particles. Seeded particles keep animating as long
// as any exist; Active reflects that.
func (e *Engine) Pause() {
	e.running = false
}

// Reset stops the loop before touching state, so no in-flight frame can
// revive a cleared pool, then drains both pools and schedules a static
// redraw.
func (e *Engine) Reset() {
	e.running = false
	e.mgr.Reset()
	e.staticDirty = true
}

// Active reports whether a host should keep scheduling frames: the field
// simulation is running, or click trajectories are still alive.
func (e *Engine) Active() bool {
	return e.running || len(e.mgr.Seeded()) > 0
}

// OnPointerDown seeds a trajectory at a pixel position. Clicks outside
// the plot rectangle or mapping outside the data viewport are silently
// ignored.
func (e *Engine) OnPointerDown(px, py float64) bool {
	if !e.tr.InPlot(px, py) {
		return false
	}
	x, y := e.tr.PixelToData(px, py)
	if !e.vp.Contains(x, y) {
		return false
	}
	return e.mgr.Seed(x, y)
}

// StaticDirty reports whether the background layer needs a repaint.
func (e *Engine) StaticDirty() bool { return e.staticDirty }

// RedrawStatic repaints the background layer and clears the dirty bit.
func (e *Engine) RedrawStatic(s render.Surface) {
	render.DrawStatic(s, e.tr, e.field, e.params, e.Equilibria(), e.tog, e.style)
	e.staticDirty = false
}

// Step runs one animation tick: advance all particles from a single
// consistent snapshot, paint the trails, then commit positions and the
// regeneration clock. A tick with nothing active is a no-op.
func (e *Engine) Step(dynamic render.Surface) {
	if !e.Active() {
		return
	}

	dt := e.baseStep * e.speed
	tr := e.tr
	params := e.params

	e.mgr.Advance(e.field, params, dt, e.running)
	if dynamic != nil {
		render.DrawDynamic(dynamic, tr, e.mgr.Seeded(), e.mgr.Field(), e.style)
	}
	e.mgr.Commit()

	if e.running {
		e.mgr.Cycle(dt, e.vp)
	}
}

// Equilibria returns the classified equilibria for the current
// parameters, recomputed after any parameter or viewport change.
func (e *Engine) Equilibria() []analysis.Equilibrium {
	if e.eqDirty {
		e.equilibria = analysis.FindEquilibria(e.field, e.params, e.vp)
		e.eqDirty = false
	}
	return e.equilibria
}

// IsValidSystem reports the evaluator's validity for the generic
// calculator; fixed models are always valid.
func (e *Engine) IsValidSystem() bool { return e.field.IsValid() }

// ErrorMessage surfaces the evaluator's error string unchanged.
func (e *Engine) ErrorMessage() string { return e.field.Err() }
