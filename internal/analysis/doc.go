// Package analysis characterises how a palette moves over a run.
//
//   - [DominantPeriod]: strongest ringing period of a displacement series
//   - [Sensitivity]: growth rate of a small perturbation, negative when the
//     palette settles to the same place regardless of where it starts
//   - [TetherSweep]: sweep the tether fraction and record where a slot settles
//   - [NewPortrait]: displacement against step length for one slot
//
// # Settling
//
// A negative sensitivity means two nearby starts collapse together:
//
//	lambda, err := analysis.Sensitivity(ctx, field, integ, scheme, 0, 1e-3, 500)
//	if err == nil && lambda < 0 {
//	    // palette is stable
//	}
package analysis
