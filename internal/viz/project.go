package viz

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/colourpush/internal/dynamo"
)

// ProjectionExtent is the largest offset from the centre any colour projects to.
const ProjectionExtent = 100.0

type Shape int

const (
	Square Shape = iota
	Disc
)

// Marker is one point placed on the pseudo-3D view.
type Marker struct {
	Point  dynamo.Point
	X, Y   float64
	Size   float64
	Shape  Shape
	Fill   colorful.Color
	Border colorful.Color
}

func scaled(c float64) float64 {
	return (c/dynamo.MaxChannel - 0.5) * 100
}

// Project maps a colour onto the plane around (cx, cy). Red runs down-right,
// green up-right and blue straight up.
func Project(v dynamo.Vec3, cx, cy float64) (x, y float64) {
	sr, sg, sb := scaled(v.R), scaled(v.G), scaled(v.B)
	return cx + sr + sg, cy + 0.5*sr - 0.5*sg - sb
}

// Depth orders markers back to front.
func Depth(v dynamo.Vec3) float64 { return v.R - v.G }

func MarkerSize(v dynamo.Vec3) float64 {
	return 8 + 5*Depth(v)/dynamo.MaxChannel
}

// BorderColour is the grey at the inverse luminance of v.
func BorderColour(v dynamo.Vec3) colorful.Color {
	l := 1 - v.Luminance()
	return colorful.Color{R: l, G: l, B: l}.Clamped()
}

// Arrange projects every point and returns the markers in draw order.
func Arrange(points []dynamo.Point, cx, cy float64) []Marker {
	markers := make([]Marker, len(points))
	for i, p := range points {
		x, y := Project(p.Pos, cx, cy)
		shape := Square
		if p.Fixed {
			shape = Disc
		}
		markers[i] = Marker{
			Point:  p,
			X:      x,
			Y:      y,
			Size:   MarkerSize(p.Pos),
			Shape:  shape,
			Fill:   p.Pos.Colour(),
			Border: BorderColour(p.Pos),
		}
	}
	sort.SliceStable(markers, func(i, j int) bool {
		di, dj := Depth(markers[i].Point.Pos), Depth(markers[j].Point.Pos)
		if di != dj {
			return di < dj
		}
		return markers[i].Point.Luminance() < markers[j].Point.Luminance()
	})
	return markers
}

// CubeEdges returns the twelve edges of the colour cube.
func CubeEdges() [12][2]dynamo.Vec3 {
	const m = dynamo.MaxChannel
	v := [8]dynamo.Vec3{
		{R: 0, G: 0, B: 0}, {R: m, G: 0, B: 0}, {R: m, G: m, B: 0}, {R: 0, G: m, B: 0},
		{R: 0, G: 0, B: m}, {R: m, G: 0, B: m}, {R: m, G: m, B: m}, {R: 0, G: m, B: m},
	}
	idx := [12][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	var edges [12][2]dynamo.Vec3
	for i, e := range idx {
		edges[i] = [2]dynamo.Vec3{v[e[0]], v[e[1]]}
	}
	return edges
}
