package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/colourpush/internal/dynamo"
)

func frame(slots ...dynamo.Slot) dynamo.Frame {
	points := make([]dynamo.Point, len(slots))
	for i, s := range slots {
		points[i] = dynamo.Point{Home: s.Home, Pos: s.Colour, Mass: 1}
	}
	return dynamo.Frame{Slots: slots, Points: points}
}

func TestDisplacement(t *testing.T) {
	m := NewDisplacement()
	home := dynamo.Vec3{R: 100, G: 100, B: 100}

	m.Observe(frame(dynamo.Slot{Colour: home, Home: home}))
	if m.Value() != 0 {
		t.Errorf("expected zero displacement at home, got %f", m.Value())
	}

	moved := dynamo.Vec3{R: 100, G: 110, B: 100}
	m.Observe(frame(dynamo.Slot{Colour: moved, Home: home}))
	if math.Abs(m.Last()-20) > 1e-9 {
		t.Errorf("expected last displacement 20, got %f", m.Last())
	}
	if math.Abs(m.Value()-10) > 1e-9 {
		t.Errorf("expected mean displacement 10, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 || m.Last() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestMaxDisplacement(t *testing.T) {
	m := NewMaxDisplacement()
	home := dynamo.Vec3{}

	m.Observe(frame(dynamo.Slot{Colour: dynamo.Vec3{B: 10}, Home: home}))
	m.Observe(frame(dynamo.Slot{Colour: dynamo.Vec3{B: 1}, Home: home}))

	if want := dynamo.Distance(dynamo.Vec3{B: 10}, home); m.Value() != want {
		t.Errorf("expected %f, got %f", want, m.Value())
	}
}

func TestSpread(t *testing.T) {
	m := NewSpread()
	a := dynamo.Vec3{R: 10}
	b := dynamo.Vec3{R: 20}
	c := dynamo.Vec3{R: 200}

	m.Observe(frame(
		dynamo.Slot{Colour: a, Home: a},
		dynamo.Slot{Colour: b, Home: b},
		dynamo.Slot{Colour: c, Home: c},
	))
	if want := dynamo.Distance(a, b); math.Abs(m.Value()-want) > 1e-9 {
		t.Errorf("expected spread %f, got %f", want, m.Value())
	}

	m.Observe(frame(dynamo.Slot{Colour: a, Home: a}))
	if m.Value() != 0 {
		t.Errorf("single colour should have zero spread, got %f", m.Value())
	}
}

func TestSpeedIgnoresFixed(t *testing.T) {
	m := NewSpeed()
	f := dynamo.Frame{Points: []dynamo.Point{
		{Fixed: true, Vel: dynamo.Vec3{R: 100}},
		{Vel: dynamo.Vec3{R: 3, G: 4}},
		{Vel: dynamo.Vec3{}},
	}}
	m.Observe(f)
	if math.Abs(m.Value()-2.5) > 1e-9 {
		t.Errorf("expected mean speed 2.5, got %f", m.Value())
	}
}

func TestContainment(t *testing.T) {
	m := NewContainment()
	if m.Value() != 1 {
		t.Error("expected full containment before observing")
	}

	inside := dynamo.Vec3{R: 10, G: 10, B: 10}
	edge := dynamo.Vec3{R: 255, G: 10, B: 10}

	m.Observe(frame(dynamo.Slot{Colour: inside}))
	m.Observe(frame(dynamo.Slot{Colour: edge}))
	if m.Value() != 0.5 {
		t.Errorf("expected 0.5, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 1 {
		t.Error("expected full containment after reset")
	}
}

func TestDefaultsNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Defaults() {
		if seen[m.Name()] {
			t.Errorf("duplicate metric name %s", m.Name())
		}
		seen[m.Name()] = true
	}
}
