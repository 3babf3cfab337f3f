package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/phaseflow/internal/phase"
)

func TestFindEquilibriaNumeric(t *testing.T) {
	// Saddle at origin, no closed-form provider.
	f := linearField{1, 0, 0, -1}
	vp := phase.Viewport{XMin: -2, XMax: 2, YMin: -2, YMax: 2}

	eq := FindEquilibria(f, nil, vp)
	if len(eq) != 1 {
		t.Fatalf("expected 1 equilibrium, got %d", len(eq))
	}
	if eq[0].Point.Norm() > 1e-6 {
		t.Errorf("root should be at origin, got (%g, %g)", eq[0].Point.X, eq[0].Point.Y)
	}
	if eq[0].Class != Saddle {
		t.Errorf("expected saddle, got %v", eq[0].Class)
	}
}

// pitchfork has three zeros on the x axis: dx/dt = x - x³, dy/dt = -y.
type pitchfork struct{}

func (pitchfork) Eval(x, y float64, _ phase.Params) (float64, float64) {
	return x - x*x*x, -y
}
func (pitchfork) IsValid() bool { return true }
func (pitchfork) Err() string   { return "" }

func TestFindEquilibriaMultipleRoots(t *testing.T) {
	vp := phase.Viewport{XMin: -2, XMax: 2, YMin: -2, YMax: 2}
	eq := FindEquilibria(pitchfork{}, nil, vp)

	if len(eq) != 3 {
		t.Fatalf("expected 3 equilibria, got %d", len(eq))
	}

	stable := 0
	for _, e := range eq {
		if math.Abs(e.Point.Y) > 1e-6 {
			t.Errorf("roots lie on the x axis, got y=%g", e.Point.Y)
		}
		if e.Class.Stable() {
			stable++
		}
	}
	// x = ±1 are stable nodes, x = 0 is a saddle.
	if stable != 2 {
		t.Errorf("expected 2 stable equilibria, got %d", stable)
	}
}

// closedForm reports a fixed equilibrium list without any search.
type closedForm struct{ linearField }

func (closedForm) Equilibria(_ phase.Params) []phase.Vec2 {
	return []phase.Vec2{{X: 3, Y: 4}}
}

func TestFindEquilibriaPrefersClosedForm(t *testing.T) {
	f := closedForm{linearField{-1, 0, 0, -1}}
	vp := phase.Viewport{XMin: -1, XMax: 1, YMin: -1, YMax: 1}

	eq := FindEquilibria(f, nil, vp)
	if len(eq) != 1 || eq[0].Point.X != 3 || eq[0].Point.Y != 4 {
		t.Fatalf("closed form should win over numeric search: %+v", eq)
	}
}
