package analysis

import (
	"context"
	"math"
	"strings"

	"github.com/san-kum/colourpush/internal/dynamo"
	"github.com/san-kum/colourpush/internal/integrators"
)

// SweepPoint holds the distinct displacements one slot visited after the
// transient for a given tether value. A settled slot has a single value.
type SweepPoint struct {
	Param  float64
	Values []float64
}

// TetherSweep runs the damped integrator across steps tether values between
// lo and hi and records where the slot ends up.
func TetherSweep(
	ctx context.Context,
	field dynamo.ForceField,
	scheme dynamo.Scheme,
	slot int,
	lo, hi float64,
	steps int,
	transient, record int,
) ([]SweepPoint, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	if slot < 0 || slot >= len(scheme.Movable) {
		return nil, &dynamo.PointError{Group: "movable", Index: slot, Wrapped: dynamo.ErrInvalidPoint}
	}
	if steps <= 1 {
		steps = 2
	}
	stride := (hi - lo) / float64(steps-1)

	results := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		tether := lo + float64(i)*stride
		integ := &integrators.Damped{Friction: integrators.DefaultFriction, Tether: tether}

		s := scheme.Clone()
		for t := 0; t < transient; t++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			s = step(field, integ, s)
		}

		values := make([]float64, 0, 8)
		seen := make(map[int]bool)
		for t := 0; t < record; t++ {
			s = step(field, integ, s)
			v := s.Movable[slot].DistanceFromHome()
			key := int(math.Round(v * 100))
			if !seen[key] {
				seen[key] = true
				values = append(values, v)
			}
		}

		results = append(results, SweepPoint{Param: tether, Values: values})
	}
	return results, nil
}

// SweepToASCII plots tether on x against displacement on y.
func SweepToASCII(data []SweepPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minVal, maxVal := math.Inf(1), math.Inf(-1)
	for _, p := range data {
		for _, v := range p.Values {
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
	}
	if math.IsInf(minVal, 1) {
		return ""
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := blank(width, height)
	for i, p := range data {
		col := i * width / len(data)
		for _, v := range p.Values {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if row >= 0 && row < height {
				canvas[row][col] = '•'
			}
		}
	}
	return render(canvas)
}

func blank(width, height int) [][]rune {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}
	return canvas
}

func render(canvas [][]rune) string {
	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
