package models

import (
	"math"
	"testing"
)

func TestGlucoseEquilibriumSatisfiesField(t *testing.T) {
	m := NewGlucoseInsulin()
	p := m.GetParams()

	eq := m.Equilibria(p)
	if len(eq) != 1 {
		t.Fatalf("expected 1 equilibrium, got %d", len(eq))
	}
	if eq[0].X <= 0 || eq[0].Y <= 0 {
		t.Errorf("physiological equilibrium must be positive, got (%g, %g)", eq[0].X, eq[0].Y)
	}

	dg, di := m.Eval(eq[0].X, eq[0].Y, p)
	if math.Abs(dg) > 1e-9 || math.Abs(di) > 1e-9 {
		t.Errorf("field should vanish at equilibrium: (%g, %g)", dg, di)
	}
}

func TestGlucoseLinearBranch(t *testing.T) {
	m := NewGlucoseInsulin()
	// With no insulin sensitivity the steady state is G = p/u.
	if err := m.SetParam("s", 0); err != nil {
		t.Fatal(err)
	}
	p := m.GetParams()

	eq := m.Equilibria(p)
	if len(eq) != 1 {
		t.Fatalf("expected 1 equilibrium, got %d", len(eq))
	}
	want := m.P / m.U
	if math.Abs(eq[0].X-want) > 1e-12 {
		t.Errorf("expected G = p/u = %g, got %g", want, eq[0].X)
	}
}

func TestGlucoseNullclines(t *testing.T) {
	m := NewGlucoseInsulin()
	curves := m.Nullclines(m.GetParams(), m.DefaultViewport(), 128)
	if len(curves) != 2 {
		t.Fatalf("expected both nullclines inside the default viewport, got %d", len(curves))
	}
	for _, c := range curves {
		if len(c.Points) < 2 {
			t.Error("nullcline should have at least 2 sample points")
		}
	}
}
