package metrics

import (
	"math"

	"github.com/san-kum/colourpush/internal/dynamo"
)

// Spread is the smallest pairwise distance between movable colours in the
// latest frame. Larger is a better separated palette.
type Spread struct {
	name  string
	value float64
}

func NewSpread() *Spread {
	return &Spread{name: "spread"}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(f dynamo.Frame) {
	if len(f.Slots) < 2 {
		s.value = 0
		return
	}
	closest := math.Inf(1)
	for i := 0; i < len(f.Slots); i++ {
		for j := i + 1; j < len(f.Slots); j++ {
			closest = math.Min(closest, dynamo.Distance(f.Slots[i].Colour, f.Slots[j].Colour))
		}
	}
	s.value = closest
}

func (s *Spread) Value() float64 { return s.value }
func (s *Spread) Reset()         { s.value = 0 }

// Speed is the mean velocity magnitude of the movable points in the latest frame.
type Speed struct {
	name  string
	value float64
}

func NewSpeed() *Speed {
	return &Speed{name: "speed"}
}

func (s *Speed) Name() string { return s.name }

func (s *Speed) Observe(f dynamo.Frame) {
	sum, n := 0.0, 0
	for _, p := range f.Points {
		if p.Fixed {
			continue
		}
		sum += p.Vel.Norm()
		n++
	}
	if n == 0 {
		s.value = 0
		return
	}
	s.value = sum / float64(n)
}

func (s *Speed) Value() float64 { return s.value }
func (s *Speed) Reset()         { s.value = 0 }
