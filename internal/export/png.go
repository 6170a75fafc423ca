package export

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/san-kum/colourpush/internal/dynamo"
	"github.com/san-kum/colourpush/internal/viz"
)

const (
	background = "#1e1e1e"
	wireColour = "#555555"
	margin     = 40.0
)

// projectionScale fits the projected cube plus margin into size pixels.
func projectionScale(size int) float64 {
	return float64(size) / (2*viz.ProjectionExtent + margin)
}

// ProjectionImage draws the cube wireframe and every point, back to front.
func ProjectionImage(points []dynamo.Point, size int) image.Image {
	dc := gg.NewContext(size, size)
	dc.SetHexColor(background)
	dc.Clear()

	scale := projectionScale(size)
	c := float64(size) / 2
	at := func(v dynamo.Vec3) (float64, float64) {
		x, y := viz.Project(v, 0, 0)
		return c + x*scale, c + y*scale
	}

	dc.SetHexColor(wireColour)
	dc.SetLineWidth(1)
	for _, e := range viz.CubeEdges() {
		x0, y0 := at(e[0])
		x1, y1 := at(e[1])
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()

	for _, mk := range viz.Arrange(points, 0, 0) {
		x, y := at(mk.Point.Pos)
		half := mk.Size * scale
		if mk.Shape == viz.Disc {
			dc.DrawCircle(x, y, half)
		} else {
			dc.DrawRectangle(x-half, y-half, 2*half, 2*half)
		}
		dc.SetColor(mk.Fill)
		dc.FillPreserve()
		dc.SetColor(mk.Border)
		dc.SetLineWidth(1.5)
		dc.Stroke()
	}
	return dc.Image()
}

func WriteProjectionPNG(w io.Writer, points []dynamo.Point, size int) error {
	return gg.NewContextForImage(ProjectionImage(points, size)).EncodePNG(w)
}

// SwatchImage draws one column per slot: current colour on top, home below.
func SwatchImage(slots []dynamo.Slot, cell int) image.Image {
	n := len(slots)
	if n == 0 {
		n = 1
	}
	dc := gg.NewContext(n*cell, 2*cell)
	dc.SetHexColor(background)
	dc.Clear()

	for i, s := range slots {
		x := float64(i * cell)
		dc.DrawRectangle(x, 0, float64(cell), float64(cell))
		dc.SetColor(s.Colour.Colour())
		dc.Fill()

		dc.DrawRectangle(x, float64(cell), float64(cell), float64(cell))
		dc.SetColor(s.Home.Colour())
		dc.Fill()
	}
	return dc.Image()
}

func WriteSwatchPNG(w io.Writer, slots []dynamo.Slot, cell int) error {
	return gg.NewContextForImage(SwatchImage(slots, cell)).EncodePNG(w)
}
