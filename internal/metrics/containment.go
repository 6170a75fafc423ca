package metrics

import "github.com/san-kum/colourpush/internal/dynamo"

// Containment is the fraction of ticks in which no movable colour sat on a
// face of the cube. 1 means the walls never let a colour reach the clamp.
type Containment struct {
	name    string
	touches int
	samples int
}

func NewContainment() *Containment {
	return &Containment{name: "containment"}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(f dynamo.Frame) {
	c.samples++
	for _, s := range f.Slots {
		if onFace(s.Colour) {
			c.touches++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.touches)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.touches = 0
	c.samples = 0
}

func onFace(v dynamo.Vec3) bool {
	for _, ch := range [3]float64{v.R, v.G, v.B} {
		if ch <= dynamo.MinChannel || ch >= dynamo.MaxChannel {
			return true
		}
	}
	return false
}

// Defaults returns a fresh set of every metric.
func Defaults() []dynamo.Metric {
	return []dynamo.Metric{
		NewDisplacement(),
		NewMaxDisplacement(),
		NewSpread(),
		NewSpeed(),
		NewContainment(),
	}
}
