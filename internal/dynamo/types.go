package dynamo

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Bounds of every colour channel.
const (
	MinChannel = 0.0
	MaxChannel = 255.0
)

// Per-axis weights of the distance metric. Green counts most, blue least.
const (
	WeightR = 3.0
	WeightG = 4.0
	WeightB = 2.0
)

// Vec3 is a coordinate in RGB space, one float per channel on the 0-255 scale.
type Vec3 struct {
	R, G, B float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.R + o.R, v.G + o.G, v.B + o.B} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.R - o.R, v.G - o.G, v.B - o.B} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.R * s, v.G * s, v.B * s} }
func (v Vec3) Norm() float64        { return math.Sqrt(v.R*v.R + v.G*v.G + v.B*v.B) }

// WeightedSq returns 3R² + 4G² + 2B².
func (v Vec3) WeightedSq() float64 {
	return WeightR*v.R*v.R + WeightG*v.G*v.G + WeightB*v.B*v.B
}

// Lerp returns t·v + (1−t)·o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Scale(t).Add(o.Scale(1 - t))
}

func (v Vec3) Clamp() Vec3 {
	return Vec3{clampChannel(v.R), clampChannel(v.G), clampChannel(v.B)}
}

func (v Vec3) IsValid() bool {
	for _, c := range [3]float64{v.R, v.G, v.B} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// InBounds reports whether every channel lies in [0,255].
func (v Vec3) InBounds() bool {
	return v.R >= MinChannel && v.R <= MaxChannel &&
		v.G >= MinChannel && v.G <= MaxChannel &&
		v.B >= MinChannel && v.B <= MaxChannel
}

// Luminance is the Rec. 601 luma normalised to [0,1].
func (v Vec3) Luminance() float64 {
	return (0.299*v.R + 0.587*v.G + 0.114*v.B) / MaxChannel
}

// Colour converts the clamped coordinate to a colorful.Color.
func (v Vec3) Colour() colorful.Color {
	c := v.Clamp()
	return colorful.Color{R: c.R / MaxChannel, G: c.G / MaxChannel, B: c.B / MaxChannel}
}

func (v Vec3) Hex() string {
	return v.Colour().Hex()
}

// RGB8 rounds the clamped coordinate to bytes.
func (v Vec3) RGB8() (uint8, uint8, uint8) {
	return v.Colour().RGB255()
}

func FromColour(c colorful.Color) Vec3 {
	return Vec3{c.R * MaxChannel, c.G * MaxChannel, c.B * MaxChannel}
}

// ParseHex parses "#rrggbb".
func ParseHex(s string) (Vec3, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Vec3{}, err
	}
	return FromColour(c), nil
}

// Distance is the anisotropic metric sqrt(3·ΔR² + 4·ΔG² + 2·ΔB²).
func Distance(a, b Vec3) float64 {
	return math.Sqrt(a.Sub(b).WeightedSq())
}

func clampChannel(c float64) float64 {
	if c < MinChannel {
		return MinChannel
	}
	if c > MaxChannel {
		return MaxChannel
	}
	return c
}

// Point is one colour taking part in the simulation.
type Point struct {
	Home  Vec3
	Pos   Vec3
	Vel   Vec3
	Fixed bool
	Mass  float64
}

// NewPoint returns a movable point of unit mass resting at its home colour.
func NewPoint(r, g, b float64) Point {
	home := Vec3{r, g, b}
	return Point{Home: home, Pos: home, Mass: 1}
}

// NewAnchor returns a fixed point of unit mass.
func NewAnchor(r, g, b float64) Point {
	p := NewPoint(r, g, b)
	p.Fixed = true
	return p
}

func (p Point) DistanceTo(q Point) float64 { return Distance(p.Pos, q.Pos) }
func (p Point) DistanceFromHome() float64  { return Distance(p.Pos, p.Home) }
func (p Point) Luminance() float64         { return p.Pos.Luminance() }

func (p Point) IsValid() bool {
	return p.Home.IsValid() && p.Pos.IsValid() && p.Vel.IsValid() &&
		!math.IsNaN(p.Mass) && !math.IsInf(p.Mass, 0)
}

// Scheme is a palette: fixed anchors used only as force sources, and the movable
// points that are simulated. Movable order is the display slot order.
type Scheme struct {
	Anchors []Point
	Movable []Point
}

// NewScheme copies both groups and marks every anchor fixed.
func NewScheme(anchors, movable []Point) Scheme {
	s := Scheme{
		Anchors: make([]Point, len(anchors)),
		Movable: make([]Point, len(movable)),
	}
	copy(s.Anchors, anchors)
	copy(s.Movable, movable)
	for i := range s.Anchors {
		s.Anchors[i].Fixed = true
		s.Anchors[i].Vel = Vec3{}
	}
	return s
}

func (s Scheme) Clone() Scheme {
	c := Scheme{
		Anchors: make([]Point, len(s.Anchors)),
		Movable: make([]Point, len(s.Movable)),
	}
	copy(c.Anchors, s.Anchors)
	copy(c.Movable, s.Movable)
	return c
}

// All returns anchors followed by movable points.
func (s Scheme) All() []Point {
	all := make([]Point, 0, len(s.Anchors)+len(s.Movable))
	all = append(all, s.Anchors...)
	return append(all, s.Movable...)
}

func (s Scheme) Validate() error {
	if len(s.Movable) == 0 {
		return ErrEmptyScheme
	}
	for i, p := range s.Anchors {
		if !p.IsValid() {
			return &PointError{Group: "anchor", Index: i, Wrapped: ErrInvalidPoint}
		}
	}
	for i, p := range s.Movable {
		if !p.IsValid() {
			return &PointError{Group: "movable", Index: i, Wrapped: ErrInvalidPoint}
		}
	}
	return nil
}

// ForceField returns one velocity delta per movable point of s. Implementations
// must read only s and must not mutate it.
type ForceField interface {
	Forces(s Scheme) []Vec3
}

// Integrator advances a single point by one tick given its accumulated delta.
type Integrator interface {
	Step(p Point, delta Vec3) Point
}

type Renderer interface {
	Render(f Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f Frame)

func (fn RendererFunc) Render(f Frame) { fn(f) }

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Slot pairs a movable point's display index with its current and home colour.
type Slot struct {
	Index  int
	Colour Vec3
	Home   Vec3
}

// Frame is the read-only hand-off to renderers after a tick.
type Frame struct {
	Tick   int
	Slots  []Slot
	Points []Point
}

type Result struct {
	Ticks   int
	Trace   [][]Vec3
	Final   Scheme
	Metrics map[string]float64
}
