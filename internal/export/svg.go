package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/colourpush/internal/dynamo"
	"github.com/san-kum/colourpush/internal/viz"
)

func svgHeader(sb *strings.Builder, size int) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, size, size, size, size, background))
}

func svgCube(sb *strings.Builder, at func(dynamo.Vec3) (float64, float64)) {
	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="1" fill="none">
`, wireColour))
	for _, e := range viz.CubeEdges() {
		x0, y0 := at(e[0])
		x1, y1 := at(e[1])
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x0, y0, x1, y1))
	}
	sb.WriteString("</g>\n")
}

func svgMarker(sb *strings.Builder, mk viz.Marker, x, y, half float64) {
	fill, stroke := mk.Fill.Hex(), mk.Border.Hex()
	if mk.Shape == viz.Disc {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="1.5"/>
`, x, y, half, fill, stroke))
		return
	}
	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1.5"/>
`, x-half, y-half, 2*half, 2*half, fill, stroke))
}

func projector(size int) func(dynamo.Vec3) (float64, float64) {
	scale := projectionScale(size)
	c := float64(size) / 2
	return func(v dynamo.Vec3) (float64, float64) {
		x, y := viz.Project(v, 0, 0)
		return c + x*scale, c + y*scale
	}
}

// ProjectionToSVG renders the same picture as ProjectionImage as SVG.
func ProjectionToSVG(points []dynamo.Point, size int) string {
	at := projector(size)
	scale := projectionScale(size)

	var sb strings.Builder
	svgHeader(&sb, size)
	svgCube(&sb, at)
	for _, mk := range viz.Arrange(points, 0, 0) {
		x, y := at(mk.Point.Pos)
		svgMarker(&sb, mk, x, y, mk.Size*scale)
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// TraceToSVG draws the path each slot took through the projection, stroked
// in its home colour, with the anchors and final positions on top.
func TraceToSVG(r *dynamo.Result, size int) string {
	if r == nil || len(r.Trace) < 2 {
		return ""
	}
	at := projector(size)
	scale := projectionScale(size)

	var sb strings.Builder
	svgHeader(&sb, size)
	svgCube(&sb, at)

	for slot, p := range r.Final.Movable {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, p.Home.Hex()))
		for i, row := range r.Trace {
			x, y := at(row[slot])
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString(`"/>
`)
	}

	for _, mk := range viz.Arrange(r.Final.All(), 0, 0) {
		x, y := at(mk.Point.Pos)
		svgMarker(&sb, mk, x, y, mk.Size*scale)
	}
	sb.WriteString("</svg>")
	return sb.String()
}
