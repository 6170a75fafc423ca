package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected float64
	}{
		{"same", Vec3{10, 20, 30}, Vec3{10, 20, 30}, 0},
		{"red axis", Vec3{0, 0, 0}, Vec3{1, 0, 0}, math.Sqrt(3)},
		{"green axis", Vec3{0, 0, 0}, Vec3{0, 1, 0}, 2},
		{"blue axis", Vec3{0, 0, 0}, Vec3{0, 0, 1}, math.Sqrt(2)},
		{"black to white", Vec3{0, 0, 0}, Vec3{255, 255, 255}, 255 * 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Distance = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	points := []Point{
		NewPoint(128, 97, 84),
		NewPoint(134, 169, 103),
		NewPoint(196, 179, 126),
		NewAnchor(0, 0, 0),
		NewAnchor(255, 255, 255),
	}
	for _, a := range points {
		if d := a.DistanceTo(a); d != 0 {
			t.Errorf("DistanceTo(self) = %v for %+v", d, a.Pos)
		}
		for _, b := range points {
			ab, ba := a.DistanceTo(b), b.DistanceTo(a)
			if ab != ba {
				t.Errorf("asymmetric distance %v vs %v", ab, ba)
			}
			if ab < 0 {
				t.Errorf("negative distance %v", ab)
			}
		}
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		v        Vec3
		expected float64
	}{
		{Vec3{0, 0, 0}, 0},
		{Vec3{255, 255, 255}, 1},
		{Vec3{255, 0, 0}, 0.299},
		{Vec3{0, 255, 0}, 0.587},
		{Vec3{0, 0, 255}, 0.114},
	}
	for _, tt := range tests {
		if got := tt.v.Luminance(); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Luminance(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	got := Vec3{-5, 128, 300}.Clamp()
	if got != (Vec3{0, 128, 255}) {
		t.Errorf("Clamp = %v", got)
	}
	if !got.InBounds() {
		t.Error("clamped vector out of bounds")
	}
}

func TestHexRoundTrip(t *testing.T) {
	v, err := ParseHex("#806154")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	r, g, b := v.RGB8()
	if r != 128 || g != 97 || b != 84 {
		t.Errorf("RGB8 = %d,%d,%d", r, g, b)
	}
	if v.Hex() != "#806154" {
		t.Errorf("Hex = %s", v.Hex())
	}

	if _, err := ParseHex("not a colour"); err == nil {
		t.Error("expected error for bad hex")
	}
}

func TestNewSchemeFixesAnchors(t *testing.T) {
	anchor := NewPoint(0, 0, 0)
	anchor.Vel = Vec3{1, 1, 1}
	s := NewScheme([]Point{anchor}, []Point{NewPoint(1, 2, 3)})

	if !s.Anchors[0].Fixed {
		t.Error("anchor not fixed")
	}
	if s.Anchors[0].Vel != (Vec3{}) {
		t.Error("anchor kept velocity")
	}
	if len(s.All()) != 2 {
		t.Errorf("All() returned %d points", len(s.All()))
	}
}

func TestSchemeCloneIsIndependent(t *testing.T) {
	s := NewScheme(nil, []Point{NewPoint(1, 2, 3)})
	c := s.Clone()
	c.Movable[0].Pos.R = 99
	if s.Movable[0].Pos.R == 99 {
		t.Error("Clone shares storage")
	}
}

func TestSchemeValidate(t *testing.T) {
	bad := NewPoint(1, 2, 3)
	bad.Pos.G = math.NaN()

	tests := []struct {
		name   string
		scheme Scheme
		err    error
	}{
		{"ok", NewScheme(nil, []Point{NewPoint(1, 2, 3)}), nil},
		{"empty", NewScheme([]Point{NewAnchor(0, 0, 0)}, nil), ErrEmptyScheme},
		{"nan movable", NewScheme(nil, []Point{bad}), ErrInvalidPoint},
		{"nan anchor", NewScheme([]Point{bad}, []Point{NewPoint(1, 2, 3)}), ErrInvalidPoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scheme.Validate()
			if !errors.Is(err, tt.err) {
				t.Errorf("Validate() = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestPointError(t *testing.T) {
	err := &PointError{Group: "movable", Index: 2, Wrapped: ErrInvalidPoint}
	expected := "movable point 2: dynamo: invalid point (NaN or Inf detected)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}
