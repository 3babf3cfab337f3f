package models

import (
	"github.com/Knetic/govaluate"

	"github.com/san-kum/phaseflow/internal/phase"
)

// Calculator is the generic phase-plane tool: the vector field is given by
// two user-entered algebraic expressions in x and y. Expression parsing
// and evaluation are delegated to govaluate; the engine only sees the
// VectorField contract. While the equations are invalid the field falls
// back to rigid rotation so the display keeps animating, and the
// evaluator's error text is surfaced verbatim.
type Calculator struct {
	dxSrc, dySrc string
	dxExpr       *govaluate.EvaluableExpression
	dyExpr       *govaluate.EvaluableExpression
	errMsg       string
	vars         map[string]interface{}
}

// NewCalculator starts from a simple rotation so the tool shows motion
// before the user types anything.
func NewCalculator() *Calculator {
	c := &Calculator{vars: make(map[string]interface{}, 8)}
	c.SetEquations("-y", "x")
	return c
}

// SetEquations replaces both expressions. On a parse failure the previous
// compiled expressions are discarded, IsValid turns false and Eval serves
// the fallback field until valid equations arrive.
func (c *Calculator) SetEquations(dx, dy string) error {
	c.dxSrc, c.dySrc = dx, dy
	c.dxExpr, c.dyExpr = nil, nil
	c.errMsg = ""

	dxExpr, err := govaluate.NewEvaluableExpression(dx)
	if err != nil {
		c.errMsg = err.Error()
		return err
	}
	dyExpr, err := govaluate.NewEvaluableExpression(dy)
	if err != nil {
		c.errMsg = err.Error()
		return err
	}
	c.dxExpr, c.dyExpr = dxExpr, dyExpr
	return nil
}

// Equations returns the current expression sources.
func (c *Calculator) Equations() (dx, dy string) { return c.dxSrc, c.dySrc }

func (c *Calculator) Eval(x, y float64, p phase.Params) (float64, float64) {
	if c.dxExpr == nil || c.dyExpr == nil {
		return fallbackField(x, y)
	}

	for k := range c.vars {
		delete(c.vars, k)
	}
	for k, v := range p {
		c.vars[k] = v
	}
	c.vars["x"] = x
	c.vars["y"] = y

	dxv, err := c.dxExpr.Evaluate(c.vars)
	if err != nil {
		c.errMsg = err.Error()
		return fallbackField(x, y)
	}
	dyv, err := c.dyExpr.Evaluate(c.vars)
	if err != nil {
		c.errMsg = err.Error()
		return fallbackField(x, y)
	}

	dx, okX := dxv.(float64)
	dy, okY := dyv.(float64)
	if !okX || !okY {
		c.errMsg = "equation does not evaluate to a number"
		return fallbackField(x, y)
	}
	return dx, dy
}

func (c *Calculator) IsValid() bool { return c.errMsg == "" }
func (c *Calculator) Err() string   { return c.errMsg }

func (c *Calculator) DefaultViewport() phase.Viewport {
	return phase.Viewport{XMin: -4, XMax: 4, YMin: -4, YMax: 4}
}

func (c *Calculator) GetParams() phase.Params { return phase.Params{} }

func (c *Calculator) SetParam(name string, v float64) error {
	// User-entered equations reference constants by name; nothing to store
	// on the model itself.
	return nil
}

// fallbackField is a fixed circular field, guaranteed finite everywhere.
func fallbackField(x, y float64) (float64, float64) {
	return -y, x
}
