// Package phase provides core primitives for planar dynamical systems.
//
// The package defines the fundamental types shared by every phase-portrait
// tool:
//
//   - [Vec2]: a point or derivative in the plane
//   - [Params]: a named snapshot of model constants
//   - [VectorField]: interface for 2D systems (dX/dt = f(X))
//   - [Viewport]: the data-space rectangle on display
//
// # Example
//
//	f := models.NewSelkov()
//	dx, dy := f.Eval(1, 1, f.GetParams())
//
// # Thread Safety
//
// Params snapshots are value copies; a field evaluation never mutates
// shared state. Engine instances own all mutable animation state and are
// NOT safe for concurrent use.
package phase
