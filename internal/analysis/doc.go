// Package analysis provides local stability analysis for planar vector
// fields: equilibrium location, Jacobian-based classification, and period
// estimation for oscillatory trajectories.
package analysis
