package models

import (
	"math"
	"testing"
)

func TestCalculatorEvaluatesExpressions(t *testing.T) {
	c := NewCalculator()
	if err := c.SetEquations("y", "-x + 0.5 * y"); err != nil {
		t.Fatal(err)
	}
	if !c.IsValid() {
		t.Fatalf("unexpected invalid state: %s", c.Err())
	}

	dx, dy := c.Eval(2, 3, nil)
	if dx != 3 {
		t.Errorf("dx should be y=3, got %g", dx)
	}
	if math.Abs(dy-(-0.5)) > 1e-12 {
		t.Errorf("dy should be -x+0.5y = -0.5, got %g", dy)
	}
}

func TestCalculatorParamsVisibleToExpressions(t *testing.T) {
	c := NewCalculator()
	if err := c.SetEquations("a * x", "b * y"); err != nil {
		t.Fatal(err)
	}
	dx, dy := c.Eval(1, 1, map[string]float64{"a": 2, "b": -3})
	if dx != 2 || dy != -3 {
		t.Errorf("expected (2, -3), got (%g, %g)", dx, dy)
	}
}

func TestCalculatorParseFailureFallsBack(t *testing.T) {
	c := NewCalculator()
	err := c.SetEquations("x +* y", "x")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if c.IsValid() {
		t.Error("calculator should be invalid after parse failure")
	}
	if c.Err() == "" {
		t.Error("error string should surface the evaluator message")
	}
	if c.Err() != err.Error() {
		t.Error("error string must be surfaced unchanged")
	}

	// Fallback is the fixed circular field (-y, x): finite everywhere.
	dx, dy := c.Eval(2, 5, nil)
	if dx != -5 || dy != 2 {
		t.Errorf("expected fallback (-5, 2), got (%g, %g)", dx, dy)
	}
}

func TestCalculatorRuntimeFailureFallsBack(t *testing.T) {
	c := NewCalculator()
	// Parses fine but references an unbound variable at evaluation time.
	if err := c.SetEquations("z * x", "y"); err != nil {
		t.Fatal(err)
	}

	dx, dy := c.Eval(1, 1, nil)
	if dx != -1 || dy != 1 {
		t.Errorf("expected fallback (-1, 1), got (%g, %g)", dx, dy)
	}
	if c.IsValid() {
		t.Error("runtime evaluation failure should invalidate the system")
	}
}

func TestCalculatorRecovers(t *testing.T) {
	c := NewCalculator()
	_ = c.SetEquations("x +* y", "x")
	if err := c.SetEquations("-y", "x"); err != nil {
		t.Fatal(err)
	}
	if !c.IsValid() {
		t.Errorf("valid equations should clear the error, still have %q", c.Err())
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range Names() {
		f, err := New(name)
		if err != nil {
			t.Fatalf("model %q: %v", name, err)
		}
		if f == nil {
			t.Fatalf("model %q: nil field", name)
		}
	}
	if _, err := New("nonexistent"); err == nil {
		t.Error("expected error for unknown model")
	}
}
