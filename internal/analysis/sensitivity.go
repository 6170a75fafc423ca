package analysis

import (
	"context"
	"math"

	"github.com/san-kum/colourpush/internal/dynamo"
)

// Sensitivity estimates how fast a perturbation of one slot's starting
// colour grows, in nats per tick. The perturbed copy is pulled back to the
// original separation after every tick and the log growth is averaged.
// Negative values mean nearby starts converge. Returns -Inf if the two copies
// merge exactly, which happens when both are clamped onto the same face.
func Sensitivity(
	ctx context.Context,
	field dynamo.ForceField,
	integ dynamo.Integrator,
	scheme dynamo.Scheme,
	slot int,
	perturbation float64,
	ticks int,
) (float64, error) {
	if err := scheme.Validate(); err != nil {
		return 0, err
	}
	if slot < 0 || slot >= len(scheme.Movable) {
		return 0, &dynamo.PointError{Group: "movable", Index: slot, Wrapped: dynamo.ErrInvalidPoint}
	}
	if ticks <= 0 || perturbation <= 0 {
		return 0, nil
	}

	base := scheme.Clone()
	pert := scheme.Clone()
	pert.Movable[slot].Pos.R += perturbation
	d0 := separation(base, pert)

	sumLog := 0.0
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		base = step(field, integ, base)
		pert = step(field, integ, pert)

		sep := separation(base, pert)
		if sep == 0 {
			return math.Inf(-1), nil
		}
		sumLog += math.Log(sep / d0)

		scale := d0 / sep
		for j := range pert.Movable {
			b, p := base.Movable[j], &pert.Movable[j]
			p.Pos = b.Pos.Add(p.Pos.Sub(b.Pos).Scale(scale))
			p.Vel = b.Vel.Add(p.Vel.Sub(b.Vel).Scale(scale))
		}
	}

	return sumLog / float64(ticks), nil
}

func separation(a, b dynamo.Scheme) float64 {
	sq := 0.0
	for i := range a.Movable {
		sq += a.Movable[i].Pos.Sub(b.Movable[i].Pos).WeightedSq()
		sq += a.Movable[i].Vel.Sub(b.Movable[i].Vel).WeightedSq()
	}
	return math.Sqrt(sq)
}

// step advances a detached copy of s by one tick.
func step(field dynamo.ForceField, integ dynamo.Integrator, s dynamo.Scheme) dynamo.Scheme {
	deltas := field.Forces(s)
	next := s.Clone()
	for i, p := range s.Movable {
		if p.Fixed {
			continue
		}
		next.Movable[i] = integ.Step(p, deltas[i])
	}
	return next
}
