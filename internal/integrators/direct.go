package integrators

import "github.com/san-kum/colourpush/internal/dynamo"

// Direct applies each tick's delta straight to the position. It keeps no
// velocity and has no tether; pair it with the field's self-pull to bring
// points home.
type Direct struct{}

func NewDirect() *Direct {
	return &Direct{}
}

func (d *Direct) Step(p dynamo.Point, delta dynamo.Vec3) dynamo.Point {
	if p.Fixed {
		return p
	}
	p.Vel = dynamo.Vec3{}
	p.Pos = p.Pos.Add(delta).Clamp()
	return p
}
