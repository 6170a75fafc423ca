package integrators

import "github.com/san-kum/colourpush/internal/dynamo"

const (
	// DefaultFriction is the fraction of velocity kept each tick.
	DefaultFriction = 0.9

	// DefaultTether is the fraction of the home colour blended into every step.
	DefaultTether = 0.03
)

// Damped keeps velocity across ticks, decays it by Friction and blends the
// result toward home by Tether, which acts as a soft spring.
type Damped struct {
	Friction float64
	Tether   float64
}

func NewDamped() *Damped {
	return &Damped{Friction: DefaultFriction, Tether: DefaultTether}
}

func (d *Damped) Step(p dynamo.Point, delta dynamo.Vec3) dynamo.Point {
	if p.Fixed {
		return p
	}
	p.Vel = p.Vel.Add(delta).Scale(d.Friction)
	p.Pos = p.Home.Lerp(p.Pos.Add(p.Vel), d.Tether).Clamp()
	return p
}
