package analysis

import (
	"math"

	"github.com/san-kum/phaseflow/internal/phase"
)

// Equilibrium is a zero of the vector field together with its local
// classification. Recomputed from the current parameters on demand, never
// persisted.
type Equilibrium struct {
	Point phase.Vec2
	Class Classification
}

const (
	// scanGrid is the lattice resolution of the numeric search.
	scanGrid = 24
	// newtonIters bounds the refinement of each candidate.
	newtonIters = 30
	newtonTol   = 1e-10
)

// FindEquilibria locates and classifies the zeros of f visible in vp.
// Models with closed-form equilibria are taken at their word; everything
// else goes through a lattice scan with Newton refinement.
func FindEquilibria(f phase.VectorField, p phase.Params, vp phase.Viewport) []Equilibrium {
	var points []phase.Vec2
	if ep, ok := f.(phase.EquilibriumProvider); ok {
		points = ep.Equilibria(p)
	} else {
		points = scanEquilibria(f, p, vp)
	}

	out := make([]Equilibrium, 0, len(points))
	for _, pt := range points {
		if !pt.IsFinite() {
			continue
		}
		out = append(out, Equilibrium{
			Point: pt,
			Class: ClassifyAt(f, p, pt.X, pt.Y),
		})
	}
	return out
}

// scanEquilibria samples f on a lattice over vp and refines each promising
// cell with damped Newton iteration, deduplicating converged roots.
func scanEquilibria(f phase.VectorField, p phase.Params, vp phase.Viewport) []phase.Vec2 {
	var roots []phase.Vec2
	sep := math.Max(vp.Width(), vp.Height()) * 1e-3

	for i := 0; i <= scanGrid; i++ {
		for j := 0; j <= scanGrid; j++ {
			x := vp.XMin + vp.Width()*float64(i)/scanGrid
			y := vp.YMin + vp.Height()*float64(j)/scanGrid

			root, ok := newton(f, p, x, y)
			if !ok || !vp.Extend(0.05).Contains(root.X, root.Y) {
				continue
			}

			dup := false
			for _, r := range roots {
				if r.Dist(root) < sep {
					dup = true
					break
				}
			}
			if !dup {
				roots = append(roots, root)
			}
		}
	}
	return roots
}

// newton runs a 2D Newton iteration on f from (x, y).
func newton(f phase.VectorField, p phase.Params, x, y float64) (phase.Vec2, bool) {
	for i := 0; i < newtonIters; i++ {
		u, v := f.Eval(x, y, p)
		if !phase.IsFinite(u, v) {
			return phase.Vec2{}, false
		}
		if math.Hypot(u, v) < newtonTol {
			return phase.Vec2{X: x, Y: y}, true
		}

		fx, fy, gx, gy := Jacobian(f, p, x, y)
		det := fx*gy - fy*gx
		if math.Abs(det) < 1e-14 {
			return phase.Vec2{}, false
		}

		// Solve J·d = -(u, v).
		dx := (-u*gy + v*fy) / det
		dy := (-v*fx + u*gx) / det
		x += dx
		y += dy
		if !phase.IsFinite(x, y) {
			return phase.Vec2{}, false
		}
	}
	return phase.Vec2{}, false
}
