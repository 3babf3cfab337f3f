package analysis

import (
	"math"

	"github.com/san-kum/phaseflow/internal/phase"
)

// Classification labels the local behaviour at an equilibrium.
type Classification int

const (
	None Classification = iota
	StableNode
	UnstableNode
	Saddle
	StableSpiral
	UnstableSpiral
	Center
	Degenerate
	NonHyperbolic
)

func (c Classification) String() string {
	switch c {
	case StableNode:
		return "stable node"
	case UnstableNode:
		return "unstable node"
	case Saddle:
		return "saddle"
	case StableSpiral:
		return "stable spiral"
	case UnstableSpiral:
		return "unstable spiral"
	case Center:
		return "center"
	case Degenerate:
		return "degenerate"
	case NonHyperbolic:
		return "non-hyperbolic"
	default:
		return "none"
	}
}

// Stable reports whether nearby trajectories converge to the equilibrium.
func (c Classification) Stable() bool {
	return c == StableNode || c == StableSpiral
}

// Epsilon guards the boundary branches of the classification. Biological
// interpretation flips between qualitatively different portraits at these
// boundaries, so the guard matters more than its exact magnitude.
const Epsilon = 1e-9

// Classify labels a 2x2 Jacobian by its trace and determinant. The
// discriminant tr² - 4·det separates nodes from spirals; det < 0 always
// means a saddle, and a determinant within Epsilon of zero is reported as
// degenerate rather than forced into one of the generic cases.
func Classify(tr, det float64) Classification {
	if math.Abs(det) < Epsilon {
		return Degenerate
	}
	if det < 0 {
		return Saddle
	}

	disc := tr*tr - 4*det
	if disc >= 0 {
		switch {
		case tr < -Epsilon:
			return StableNode
		case tr > Epsilon:
			return UnstableNode
		default:
			return NonHyperbolic
		}
	}
	if math.Abs(tr) < Epsilon {
		return Center
	}
	if tr < 0 {
		return StableSpiral
	}
	return UnstableSpiral
}

// jacobianStep is the finite-difference spacing used when a model has no
// analytic Jacobian.
const jacobianStep = 1e-6

// Jacobian returns the linearization of f at (x, y), preferring the
// model's closed form and falling back to central differences.
func Jacobian(f phase.VectorField, p phase.Params, x, y float64) (fx, fy, gx, gy float64) {
	if jp, ok := f.(phase.JacobianProvider); ok {
		return jp.Jacobian(x, y, p)
	}

	h := jacobianStep
	f1, g1 := f.Eval(x+h, y, p)
	f0, g0 := f.Eval(x-h, y, p)
	fx = (f1 - f0) / (2 * h)
	gx = (g1 - g0) / (2 * h)

	f1, g1 = f.Eval(x, y+h, p)
	f0, g0 = f.Eval(x, y-h, p)
	fy = (f1 - f0) / (2 * h)
	gy = (g1 - g0) / (2 * h)
	return fx, fy, gx, gy
}

// ClassifyAt linearizes f at (x, y) and classifies the equilibrium there.
func ClassifyAt(f phase.VectorField, p phase.Params, x, y float64) Classification {
	fx, fy, gx, gy := Jacobian(f, p, x, y)
	if !phase.IsFinite(fx, fy) || !phase.IsFinite(gx, gy) {
		return None
	}
	return Classify(fx+gy, fx*gy-fy*gx)
}
