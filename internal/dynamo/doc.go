// Package dynamo provides the core primitives of the colour repulsion simulation.
//
// The package defines the types every other package builds on:
//
//   - [Vec3]: a coordinate in RGB space
//   - [Point]: a colour with a home coordinate, velocity, mass and fixed flag
//   - [Scheme]: the fixed anchors and the movable points of one palette
//   - [ForceField]: computes per-point velocity deltas from a snapshot
//   - [Integrator]: advances one point by one tick
//   - [Simulator]: orchestrates ticks and hands frames to renderers
//   - [Loop]: drives a Simulator on a fixed period, gated by a run/pause flag
//
// # Example
//
//	field := physics.NewField()
//	integ := integrators.NewDamped()
//	sim := dynamo.New(field, integ, scheme)
//	sim.Tick(true)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. A [Loop] owns its Simulator and is
// the only goroutine that ticks it; only the run/pause flag may be flipped from
// other goroutines.
package dynamo
