package analysis

import (
	"github.com/san-kum/colourpush/internal/dynamo"
)

// DefaultSettleTolerance is the per-tick movement below which a slot counts as still.
const DefaultSettleTolerance = 1e-3

// Displacements is the distance from home of one slot at every trace row.
func Displacements(r *dynamo.Result, slot int) []float64 {
	if r == nil || slot < 0 || slot >= len(r.Final.Movable) {
		return nil
	}
	home := r.Final.Movable[slot].Home
	out := make([]float64, len(r.Trace))
	for i, row := range r.Trace {
		out[i] = dynamo.Distance(row[slot], home)
	}
	return out
}

// Steps is the distance one slot moved between consecutive trace rows.
func Steps(r *dynamo.Result, slot int) []float64 {
	if r == nil || slot < 0 || slot >= len(r.Final.Movable) || len(r.Trace) < 2 {
		return nil
	}
	out := make([]float64, len(r.Trace)-1)
	for i := 1; i < len(r.Trace); i++ {
		out[i-1] = dynamo.Distance(r.Trace[i][slot], r.Trace[i-1][slot])
	}
	return out
}

// SettleTick returns the first tick after which every step stays below tol,
// or -1 if the slot was still moving at the end.
func SettleTick(steps []float64, tol float64) int {
	settled := -1
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i] >= tol {
			break
		}
		settled = i
	}
	return settled
}

// SlotReport summarises one slot of a run.
type SlotReport struct {
	Slot         int
	Home         dynamo.Vec3
	Final        dynamo.Vec3
	Displacement float64
	Period       float64
	Ringing      bool
	Settled      int
}

func Summarise(r *dynamo.Result, tol float64) []SlotReport {
	if r == nil {
		return nil
	}
	reports := make([]SlotReport, len(r.Final.Movable))
	for i, p := range r.Final.Movable {
		period, ok := DominantPeriod(Steps(r, i))
		reports[i] = SlotReport{
			Slot:         i,
			Home:         p.Home,
			Final:        p.Pos,
			Displacement: p.DistanceFromHome(),
			Period:       period,
			Ringing:      ok,
			Settled:      SettleTick(Steps(r, i), tol),
		}
	}
	return reports
}
