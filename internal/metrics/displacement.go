package metrics

import (
	"math"

	"github.com/san-kum/colourpush/internal/dynamo"
)

// Displacement averages, over all observed ticks, the mean distance of the
// movable colours from their homes.
type Displacement struct {
	name    string
	total   float64
	last    float64
	samples int
}

func NewDisplacement() *Displacement {
	return &Displacement{name: "displacement"}
}

func (d *Displacement) Name() string { return d.name }

func (d *Displacement) Observe(f dynamo.Frame) {
	if len(f.Slots) == 0 {
		return
	}
	sum := 0.0
	for _, s := range f.Slots {
		sum += dynamo.Distance(s.Colour, s.Home)
	}
	d.last = sum / float64(len(f.Slots))
	d.total += d.last
	d.samples++
}

func (d *Displacement) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.total / float64(d.samples)
}

// Last is the mean displacement of the most recent frame.
func (d *Displacement) Last() float64 { return d.last }

func (d *Displacement) Reset() {
	d.total = 0
	d.last = 0
	d.samples = 0
}

// MaxDisplacement is the farthest any single colour strayed from home.
type MaxDisplacement struct {
	name string
	max  float64
}

func NewMaxDisplacement() *MaxDisplacement {
	return &MaxDisplacement{name: "max_displacement"}
}

func (m *MaxDisplacement) Name() string { return m.name }

func (m *MaxDisplacement) Observe(f dynamo.Frame) {
	for _, s := range f.Slots {
		m.max = math.Max(m.max, dynamo.Distance(s.Colour, s.Home))
	}
}

func (m *MaxDisplacement) Value() float64 { return m.max }
func (m *MaxDisplacement) Reset()         { m.max = 0 }
