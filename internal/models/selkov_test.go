package models

import (
	"math"
	"testing"
)

func TestSelkovEquilibrium(t *testing.T) {
	m := NewSelkov()
	p := m.GetParams()

	eq := m.Equilibria(p)
	if len(eq) != 1 {
		t.Fatalf("expected 1 equilibrium, got %d", len(eq))
	}
	if math.Abs(eq[0].X-1) > 1e-12 || math.Abs(eq[0].Y-1) > 1e-12 {
		t.Errorf("v=c=k=1 equilibrium should be (1,1), got (%g, %g)", eq[0].X, eq[0].Y)
	}

	df, da := m.Eval(eq[0].X, eq[0].Y, p)
	if math.Abs(df) > 1e-12 || math.Abs(da) > 1e-12 {
		t.Errorf("field should vanish at equilibrium: (%g, %g)", df, da)
	}
}

func TestSelkovEquilibriumScaled(t *testing.T) {
	m := NewSelkov()
	if err := m.SetParam("v", 2.0); err != nil {
		t.Fatal(err)
	}
	if err := m.SetParam("k", 0.5); err != nil {
		t.Fatal(err)
	}
	p := m.GetParams()

	eq := m.Equilibria(p)
	if len(eq) != 1 {
		t.Fatalf("expected 1 equilibrium, got %d", len(eq))
	}
	// A* = v/k, F* = k²/(cv)
	if math.Abs(eq[0].Y-4.0) > 1e-12 {
		t.Errorf("A* should be v/k = 4, got %g", eq[0].Y)
	}
	if math.Abs(eq[0].X-0.125) > 1e-12 {
		t.Errorf("F* should be k²/(cv) = 0.125, got %g", eq[0].X)
	}
}

func TestSelkovJacobianMatchesFiniteDifference(t *testing.T) {
	m := NewSelkov()
	p := m.GetParams()

	const h = 1e-6
	x, y := 0.7, 1.3

	fx, fy, gx, gy := m.Jacobian(x, y, p)

	f1, g1 := m.Eval(x+h, y, p)
	f0, g0 := m.Eval(x-h, y, p)
	if math.Abs((f1-f0)/(2*h)-fx) > 1e-5 || math.Abs((g1-g0)/(2*h)-gx) > 1e-5 {
		t.Error("d/dx column disagrees with finite difference")
	}

	f1, g1 = m.Eval(x, y+h, p)
	f0, g0 = m.Eval(x, y-h, p)
	if math.Abs((f1-f0)/(2*h)-fy) > 1e-5 || math.Abs((g1-g0)/(2*h)-gy) > 1e-5 {
		t.Error("d/dy column disagrees with finite difference")
	}
}

func TestSelkovUnknownParam(t *testing.T) {
	m := NewSelkov()
	if err := m.SetParam("bogus", 1); err == nil {
		t.Error("expected error for unknown parameter")
	}
}
