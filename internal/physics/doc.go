// Package physics implements the repulsion field that pushes colours apart.
//
// Every movable point feels a contribution from every other movable point,
// from every anchor and from six wall points just outside the colour cube:
//
//	K · m₁m₂ · (Δ/d) / d²
//
// where Δ is the per-axis offset, d the weighted distance of [dynamo.Distance]
// and K is [Strength]. The force falls off with the cube of the distance.
//
// # Push and Pull
//
// A positive mass product pushes, a negative one pulls. Pushes are skipped
// when d <= [PushEpsilon]; pulls are never skipped.
//
//	field := physics.NewField()
//	deltas := field.Forces(scheme)
package physics
