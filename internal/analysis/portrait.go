package analysis

import (
	"github.com/san-kum/colourpush/internal/dynamo"
)

// Portrait pairs a slot's distance from home with how far it moved that tick.
// A settling slot spirals into the bottom edge.
type Portrait struct {
	Slot   int
	Points []struct{ X, Y float64 }
}

func NewPortrait(r *dynamo.Result, slot int) *Portrait {
	disp := Displacements(r, slot)
	steps := Steps(r, slot)
	if len(steps) == 0 {
		return nil
	}

	p := &Portrait{
		Slot:   slot,
		Points: make([]struct{ X, Y float64 }, len(steps)),
	}
	for i, s := range steps {
		p.Points[i].X = disp[i+1]
		p.Points[i].Y = s
	}
	return p
}

func PortraitToASCII(p *Portrait, width, height int) string {
	if p == nil || len(p.Points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	canvas := blank(width, height)
	for _, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}
	return render(canvas)
}
