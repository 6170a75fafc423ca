package physics

import (
	"math"

	"github.com/san-kum/colourpush/internal/dynamo"
)

const (
	// Strength is the global force constant K.
	Strength = 1000.0

	// PushEpsilon is the distance at or below which a push is skipped.
	PushEpsilon = 1.0

	// WallOffset places wall points this far outside each face of the cube.
	WallOffset = 8.0

	// WallMass makes walls push more gently than points do.
	WallMass = 0.5

	// HomeDeadZone is the distance from home beyond which the self-pull acts.
	HomeDeadZone = 32.0

	// HomeMass is the mass of the virtual point placed at home for the self-pull.
	HomeMass = -1.0
)

// PullEpsilon is below any distance, so pulls are never skipped.
var PullEpsilon = math.Inf(-1)

type Interaction int

const (
	Push Interaction = iota
	Pull
)

// InteractionOf classifies a mass product. Negative products pull.
func InteractionOf(massCoeff float64) Interaction {
	if massCoeff < 0 {
		return Pull
	}
	return Push
}

func (i Interaction) Epsilon() float64 {
	if i == Pull {
		return PullEpsilon
	}
	return PushEpsilon
}

func (i Interaction) String() string {
	if i == Pull {
		return "pull"
	}
	return "push"
}

// Contribution returns the velocity delta that other exerts on p, and whether
// the interaction was applied. Fixed points receive nothing. Coincident points
// pulling on each other are applied with a zero delta since the direction is
// undefined.
func Contribution(p, other dynamo.Point) (dynamo.Vec3, bool) {
	if p.Fixed {
		return dynamo.Vec3{}, false
	}

	massCoeff := p.Mass * other.Mass
	delta := p.Pos.Sub(other.Pos)
	sqD := delta.WeightedSq()
	d := math.Sqrt(sqD)

	if d <= InteractionOf(massCoeff).Epsilon() {
		return dynamo.Vec3{}, false
	}
	if sqD == 0 {
		return dynamo.Vec3{}, true
	}

	return delta.Scale(Strength * massCoeff / (d * sqD)), true
}

// Walls returns the six wall points bounding p. Each shares two of p's
// coordinates and sits outside the cube on the third axis.
func Walls(p dynamo.Point) [6]dynamo.Point {
	lo := dynamo.MinChannel - WallOffset
	hi := dynamo.MaxChannel + WallOffset
	at := func(v dynamo.Vec3) dynamo.Point {
		return dynamo.Point{Home: v, Pos: v, Fixed: true, Mass: WallMass}
	}
	pos := p.Pos
	return [6]dynamo.Point{
		at(dynamo.Vec3{R: lo, G: pos.G, B: pos.B}),
		at(dynamo.Vec3{R: hi, G: pos.G, B: pos.B}),
		at(dynamo.Vec3{R: pos.R, G: lo, B: pos.B}),
		at(dynamo.Vec3{R: pos.R, G: hi, B: pos.B}),
		at(dynamo.Vec3{R: pos.R, G: pos.G, B: lo}),
		at(dynamo.Vec3{R: pos.R, G: pos.G, B: hi}),
	}
}

// HomePull is the dead-zone tether: the same force law measured against a
// pulling point at p's home, applied only once p is farther than HomeDeadZone.
func HomePull(p dynamo.Point) (dynamo.Vec3, bool) {
	if p.Fixed || p.DistanceFromHome() <= HomeDeadZone {
		return dynamo.Vec3{}, false
	}
	home := dynamo.Point{Home: p.Home, Pos: p.Home, Fixed: true, Mass: HomeMass}
	return Contribution(p, home)
}

// Field accumulates contributions for every movable point of a scheme.
type Field struct {
	Walls    bool
	SelfPull bool
}

func NewField() *Field {
	return &Field{Walls: true}
}

// Forces returns one delta per movable point of s, all computed against s.
func (f *Field) Forces(s dynamo.Scheme) []dynamo.Vec3 {
	deltas := make([]dynamo.Vec3, len(s.Movable))

	for i, p := range s.Movable {
		if p.Fixed {
			continue
		}
		acc := dynamo.Vec3{}

		for j, q := range s.Movable {
			if i == j {
				continue
			}
			if c, ok := Contribution(p, q); ok {
				acc = acc.Add(c)
			}
		}

		for _, a := range s.Anchors {
			if c, ok := Contribution(p, a); ok {
				acc = acc.Add(c)
			}
		}

		if f.Walls {
			for _, w := range Walls(p) {
				if c, ok := Contribution(p, w); ok {
					acc = acc.Add(c)
				}
			}
		}

		if f.SelfPull {
			if c, ok := HomePull(p); ok {
				acc = acc.Add(c)
			}
		}

		deltas[i] = acc
	}

	return deltas
}
