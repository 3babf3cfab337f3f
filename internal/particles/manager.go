// Package particles manages the two trajectory populations of a phase
// portrait: click-seeded particles and the auto-generated field grid.
package particles

import (
	"github.com/san-kum/phaseflow/internal/integrators"
	"github.com/san-kum/phaseflow/internal/phase"
)

// Particle carries a committed position and the position pending for the
// current frame. Every particle in a frame advances from state observed
// at the same instant: Advance fills Next from the committed values, the
// renderer draws the X,Y → NextX,NextY segments, and only then does
// Commit fold the pending position in. Collapsing the two phases into an
// in-place update would let later particles observe earlier ones
// mid-frame and would leave the renderer nothing to draw a segment from.
type Particle struct {
	X, Y         float64
	NextX, NextY float64
	Age          float64
	ID           int
}

// Speed is the instantaneous displacement magnitude of the pending step.
func (p Particle) Speed() float64 {
	return phase.Vec2{X: p.NextX - p.X, Y: p.NextY - p.Y}.Norm()
}

// Default pool tuning. The extension fraction and cycle length are
// empirical values carried over from the original tools.
const (
	DefaultMaxSeeded  = 100
	DefaultGridSize   = 14
	DefaultExtendFrac = 0.40
	DefaultCycleLen   = 30.0
)

// Manager owns both particle pools and their lifecycles. It is exercised
// strictly once per frame by the owning engine and is not safe for
// concurrent use.
type Manager struct {
	// Tuning, settable before the first Regenerate.
	MaxSeeded  int
	GridSize   int
	ExtendFrac float64
	CycleLen   float64

	stepper integrators.Stepper
	seeded  []Particle
	field   []Particle
	elapsed float64
	nextID  int
}

func NewManager(stepper integrators.Stepper) *Manager {
	return &Manager{
		MaxSeeded:  DefaultMaxSeeded,
		GridSize:   DefaultGridSize,
		ExtendFrac: DefaultExtendFrac,
		CycleLen:   DefaultCycleLen,
		stepper:    stepper,
		seeded:     make([]Particle, 0, DefaultMaxSeeded),
	}
}

// Seed adds one click particle at (x, y). Requests beyond MaxSeeded are
// silently dropped; the false return is informational only.
func (m *Manager) Seed(x, y float64) bool {
	if len(m.seeded) >= m.MaxSeeded {
		return false
	}
	m.nextID++
	m.seeded = append(m.seeded, Particle{X: x, Y: y, NextX: x, NextY: y, ID: m.nextID})
	return true
}

// Regenerate replaces the whole field pool with a fresh GridSize² lattice
// covering vp extended by ExtendFrac on every side, and restarts the
// cycle clock. Seeded particles are untouched.
func (m *Manager) Regenerate(vp phase.Viewport) {
	ext := vp.Extend(m.ExtendFrac)
	n := m.GridSize

	m.field = m.field[:0]
	if cap(m.field) < n*n {
		m.field = make([]Particle, 0, n*n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := ext.XMin + ext.Width()*(float64(i)+0.5)/float64(n)
			y := ext.YMin + ext.Height()*(float64(j)+0.5)/float64(n)
			m.nextID++
			m.field = append(m.field, Particle{X: x, Y: y, NextX: x, NextY: y, ID: m.nextID})
		}
	}
	m.elapsed = 0
}

// Advance computes every particle's pending position from its committed
// one. Seeded particles always move; field particles only while running.
// A step that produces NaN or Inf holds the particle in place instead of
// propagating the value.
func (m *Manager) Advance(f phase.VectorField, p phase.Params, dt float64, running bool) {
	advancePool(m.seeded, m.stepper, f, p, dt)
	if running {
		advancePool(m.field, m.stepper, f, p, dt)
	}
}

func advancePool(pool []Particle, s integrators.Stepper, f phase.VectorField, p phase.Params, dt float64) {
	for i := range pool {
		pt := &pool[i]
		nx, ny := s.Step(f, p, pt.X, pt.Y, dt)
		if !phase.IsFinite(nx, ny) {
			nx, ny = pt.X, pt.Y
		}
		pt.NextX, pt.NextY = nx, ny
		pt.Age += dt
	}
}

// Commit folds the pending positions in after the frame's trails have
// been drawn.
func (m *Manager) Commit() {
	for i := range m.seeded {
		m.seeded[i].X, m.seeded[i].Y = m.seeded[i].NextX, m.seeded[i].NextY
	}
	for i := range m.field {
		m.field[i].X, m.field[i].Y = m.field[i].NextX, m.field[i].NextY
	}
}

// Cycle advances the regeneration clock by dt simulated time units and
// regenerates the field pool when the cycle length is exceeded, keeping
// coverage fresh and bounding drift.
func (m *Manager) Cycle(dt float64, vp phase.Viewport) {
	m.elapsed += dt
	if m.elapsed >= m.CycleLen {
		m.Regenerate(vp)
	}
}

// Reset clears both pools and the cycle clock.
func (m *Manager) Reset() {
	m.seeded = m.seeded[:0]
	m.field = m.field[:0]
	m.elapsed = 0
}

// Seeded exposes the click pool for rendering. The slice is owned by the
// manager; callers must not retain it across frames.
func (m *Manager) Seeded() []Particle { return m.seeded }

// Field exposes the grid pool for rendering, under the same aliasing rule.
func (m *Manager) Field() []Particle { return m.field }

// Empty reports whether both pools are drained.
func (m *Manager) Empty() bool { return len(m.seeded) == 0 && len(m.field) == 0 }

// Elapsed returns simulated time since the last field regeneration.
func (m *Manager) Elapsed() float64 { return m.elapsed }
