package particles

import (
	"math"
	"testing"

	"github.com/san-kum/phaseflow/internal/integrators"
	"github.com/san-kum/phaseflow/internal/phase"
)

// drift is dx/dt = 0, dy/dt = 1.
type drift struct{}

func (drift) Eval(x, y float64, _ phase.Params) (float64, float64) { return 0, 1 }
func (drift) IsValid() bool                                        { return true }
func (drift) Err() string                                          { return "" }

// blowup returns NaN everywhere.
type blowup struct{}

func (blowup) Eval(x, y float64, _ phase.Params) (float64, float64) {
	return math.NaN(), math.NaN()
}
func (blowup) IsValid() bool { return true }
func (blowup) Err() string   { return "" }

func newTestManager() *Manager {
	return NewManager(integrators.NewRK4())
}

func TestSeedCap(t *testing.T) {
	m := newTestManager()
	for i := 0; i < 150; i++ {
		m.Seed(float64(i), 0)
	}
	if len(m.Seeded()) != DefaultMaxSeeded {
		t.Errorf("seeded pool should cap at %d, got %d", DefaultMaxSeeded, len(m.Seeded()))
	}
}

func TestSeedAndAdvance(t *testing.T) {
	m := newTestManager()
	m.Seed(1, 1)

	m.Advance(drift{}, nil, 0.1, false)

	p := m.Seeded()[0]
	if p.X != 1 || p.Y != 1 {
		t.Error("committed position must not move before Commit")
	}
	if p.NextX != 1 || math.Abs(p.NextY-1.1) > 1e-12 {
		t.Errorf("pending position should be (1, 1.1), got (%g, %g)", p.NextX, p.NextY)
	}

	m.Commit()
	p = m.Seeded()[0]
	if p.X != 1 || math.Abs(p.Y-1.1) > 1e-12 {
		t.Errorf("committed position should be (1, 1.1), got (%g, %g)", p.X, p.Y)
	}
}

func TestFieldOnlyMovesWhileRunning(t *testing.T) {
	m := newTestManager()
	vp := phase.Viewport{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	m.Regenerate(vp)
	before := append([]Particle(nil), m.Field()...)

	m.Advance(drift{}, nil, 0.1, false)
	m.Commit()
	for i, p := range m.Field() {
		if p.X != before[i].X || p.Y != before[i].Y {
			t.Fatal("field particles must not move while paused")
		}
	}

	m.Advance(drift{}, nil, 0.1, true)
	m.Commit()
	moved := false
	for i, p := range m.Field() {
		if p.Y != before[i].Y {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("field particles should move while running")
	}
}

func TestZeroDtConservation(t *testing.T) {
	m := newTestManager()
	m.Seed(0.25, -0.75)
	m.Regenerate(phase.Viewport{XMin: -1, XMax: 1, YMin: -1, YMax: 1})

	for i := 0; i < 50; i++ {
		m.Advance(drift{}, nil, 0, true)
		m.Commit()
	}

	if p := m.Seeded()[0]; p.X != 0.25 || p.Y != -0.75 {
		t.Errorf("zero dt should freeze positions, got (%g, %g)", p.X, p.Y)
	}
}

func TestNonFiniteStepHoldsParticle(t *testing.T) {
	m := newTestManager()
	m.Seed(2, 3)

	m.Advance(blowup{}, nil, 0.1, false)
	m.Commit()

	if p := m.Seeded()[0]; p.X != 2 || p.Y != 3 {
		t.Errorf("diverging step should hold the previous position, got (%g, %g)", p.X, p.Y)
	}
}

func TestRegenerateGrid(t *testing.T) {
	m := newTestManager()
	vp := phase.Viewport{XMin: 0, XMax: 10, YMin: 0, YMax: 10}
	m.Regenerate(vp)

	want := DefaultGridSize * DefaultGridSize
	if len(m.Field()) != want {
		t.Fatalf("field pool should hold %d particles, got %d", want, len(m.Field()))
	}

	// Grid covers the extended viewport, so corners spill past the
	// visible rectangle.
	ext := vp.Extend(DefaultExtendFrac)
	outside := 0
	for _, p := range m.Field() {
		if !ext.Contains(p.X, p.Y) {
			t.Fatalf("particle (%g, %g) outside extended viewport", p.X, p.Y)
		}
		if !vp.Contains(p.X, p.Y) {
			outside++
		}
	}
	if outside == 0 {
		t.Error("extension should place some particles beyond the visible viewport")
	}
}

func TestCycleRegeneratesWithoutTouchingSeeds(t *testing.T) {
	m := newTestManager()
	vp := phase.Viewport{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	m.Seed(0.5, 0.5)
	m.Regenerate(vp)

	// Drift the field away from the lattice, then roll the cycle over.
	for i := 0; i < 10; i++ {
		m.Advance(drift{}, nil, 1.0, true)
		m.Commit()
		m.Cycle(1.0, vp)
	}
	seedBefore := m.Seeded()[0]

	for i := 0; i < 25; i++ {
		m.Cycle(1.0, vp)
	}

	if len(m.Field()) != DefaultGridSize*DefaultGridSize {
		t.Errorf("regenerated pool size changed: %d", len(m.Field()))
	}
	if m.Elapsed() >= DefaultCycleLen {
		t.Error("cycle clock should restart on regeneration")
	}
	if got := m.Seeded()[0]; got != seedBefore {
		t.Error("cycle regeneration must not disturb seeded particles")
	}
}

func TestResetIdempotent(t *testing.T) {
	m := newTestManager()
	m.Seed(1, 1)
	m.Regenerate(phase.Viewport{XMin: 0, XMax: 1, YMin: 0, YMax: 1})

	m.Reset()
	if !m.Empty() || m.Elapsed() != 0 {
		t.Fatal("reset should drain both pools and zero the clock")
	}

	m.Reset()
	if !m.Empty() || m.Elapsed() != 0 {
		t.Fatal("a second reset must leave the same empty state")
	}
}

func TestParticleSpeed(t *testing.T) {
	p := Particle{X: 0, Y: 0, NextX: 3, NextY: 4}
	if p.Speed() != 5 {
		t.Errorf("expected speed 5, got %g", p.Speed())
	}
}
