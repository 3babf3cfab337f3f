// Package models implements the vector fields of the phase-portrait
// tools: the fixed mathematical-biology systems and the expression-backed
// generic calculator.
package models

import (
	"fmt"
	"sort"

	"github.com/san-kum/phaseflow/internal/phase"
)

var registry = map[string]func() phase.VectorField{
	"lotka":   func() phase.VectorField { return NewLotkaVolterra() },
	"selkov":  func() phase.VectorField { return NewSelkov() },
	"glucose": func() phase.VectorField { return NewGlucoseInsulin() },
	"calc":    func() phase.VectorField { return NewCalculator() },
}

// New constructs the model registered under name.
func New(name string) (phase.VectorField, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", phase.ErrUnknownModel, name)
	}
	return ctor(), nil
}

// Names lists the registered models in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func verticalLine(x float64, vp phase.Viewport) phase.Curve {
	return phase.Curve{Points: []phase.Vec2{{X: x, Y: vp.YMin}, {X: x, Y: vp.YMax}}}
}

func horizontalLine(y float64, vp phase.Viewport) phase.Curve {
	return phase.Curve{Points: []phase.Vec2{{X: vp.XMin, Y: y}, {X: vp.XMax, Y: y}}}
}
