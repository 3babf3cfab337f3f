package phase

// Curve is a sampled plane curve, drawn as a polyline.
type Curve struct {
	Points []Vec2
}

// EquilibriumProvider is implemented by models whose equilibria have a
// closed form. Models without one are handled by numeric search.
type EquilibriumProvider interface {
	Equilibria(p Params) []Vec2
}

// JacobianProvider is implemented by models with an analytic Jacobian
//
//	| fx fy |
//	| gx gy |
//
// evaluated at (x, y). Models without one fall back to finite differences.
type JacobianProvider interface {
	Jacobian(x, y float64, p Params) (fx, fy, gx, gy float64)
}

// NullclineProvider yields the model's nullcline curves clipped to vp,
// sampled with at most n points per curve.
type NullclineProvider interface {
	Nullclines(p Params, vp Viewport, n int) []Curve
}

// ViewportProvider reports the natural data window for a model.
type ViewportProvider interface {
	DefaultViewport() Viewport
}
