package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/phaseflow/internal/phase"
)

// linearField is dx/dt = a·x + b·y, dy/dt = c·x + d·y.
type linearField struct {
	a, b, c, d float64
}

func (l linearField) Eval(x, y float64, _ phase.Params) (float64, float64) {
	return l.a*x + l.b*y, l.c*x + l.d*y
}
func (l linearField) IsValid() bool { return true }
func (l linearField) Err() string   { return "" }

func TestClassifyLinearSystems(t *testing.T) {
	tests := []struct {
		name  string
		field linearField
		want  Classification
	}{
		{"stable node", linearField{-1, 0, 0, -1}, StableNode},
		{"unstable node", linearField{1, 0, 0, 1}, UnstableNode},
		{"saddle", linearField{1, 0, 0, -1}, Saddle},
		{"stable spiral", linearField{-1, -1, 1, -1}, StableSpiral},
		{"unstable spiral", linearField{1, -1, 1, 1}, UnstableSpiral},
		{"center", linearField{0, -1, 1, 0}, Center},
		{"degenerate", linearField{1, 0, 0, 0}, Degenerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyAt(tt.field, nil, 0, 0)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyEpsilonGuards(t *testing.T) {
	// Determinant just inside the epsilon band is degenerate, not saddle.
	if got := Classify(-1, -Epsilon/2); got != Degenerate {
		t.Errorf("near-zero det should be degenerate, got %v", got)
	}
	// Just outside the band the sign decides.
	if got := Classify(-1, -Epsilon*2); got != Saddle {
		t.Errorf("negative det should be saddle, got %v", got)
	}
	// Spiral with trace inside the band is a center.
	if got := Classify(Epsilon/2, 1); got != Center {
		t.Errorf("near-zero trace spiral should be center, got %v", got)
	}
}

func TestClassificationString(t *testing.T) {
	if StableSpiral.String() != "stable spiral" {
		t.Errorf("unexpected label %q", StableSpiral.String())
	}
	if None.String() != "none" {
		t.Errorf("unexpected label %q", None.String())
	}
	if !StableNode.Stable() || Saddle.Stable() {
		t.Error("stability predicate wrong")
	}
}

func TestFiniteDifferenceJacobian(t *testing.T) {
	f := linearField{0.5, -2, 3, -0.25}
	fx, fy, gx, gy := Jacobian(f, nil, 0.7, -1.2)

	if math.Abs(fx-0.5) > 1e-5 || math.Abs(fy+2) > 1e-5 ||
		math.Abs(gx-3) > 1e-5 || math.Abs(gy+0.25) > 1e-5 {
		t.Errorf("finite differences off: %g %g %g %g", fx, fy, gx, gy)
	}
}
