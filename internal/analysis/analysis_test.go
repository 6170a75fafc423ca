package analysis

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/colourpush/internal/dynamo"
	"github.com/san-kum/colourpush/internal/integrators"
	"github.com/san-kum/colourpush/internal/physics"
)

func singleScheme() dynamo.Scheme {
	return dynamo.NewScheme(
		[]dynamo.Point{dynamo.NewAnchor(0, 0, 0), dynamo.NewAnchor(255, 255, 255)},
		[]dynamo.Point{dynamo.NewPoint(128, 97, 84)},
	)
}

func runSingle(t *testing.T, ticks int) *dynamo.Result {
	t.Helper()
	sim := dynamo.New(physics.NewField(), integrators.NewDamped(), singleScheme())
	r, err := sim.Run(context.Background(), ticks)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return r
}

func TestFFTPadsToPowerOfTwo(t *testing.T) {
	out := FFT([]float64{1, 2, 3})
	if len(out) != 4 {
		t.Fatalf("expected 4 bins, got %d", len(out))
	}
	if math.Abs(real(out[0])-6) > 1e-9 {
		t.Errorf("expected DC 6, got %v", out[0])
	}
}

func TestDominantPeriod(t *testing.T) {
	series := make([]float64, 256)
	for i := range series {
		series[i] = 5 + math.Sin(2*math.Pi*float64(i)/16)
	}

	period, ok := DominantPeriod(series)
	if !ok {
		t.Fatal("expected a period")
	}
	if period != 16 {
		t.Errorf("expected period 16, got %f", period)
	}
}

func TestDominantPeriodFlat(t *testing.T) {
	tests := [][]float64{
		{1, 2},
		{3, 3, 3, 3, 3, 3, 3, 3},
	}
	for _, series := range tests {
		if _, ok := DominantPeriod(series); ok {
			t.Errorf("expected no period for %v", series)
		}
	}
}

func TestSettleTick(t *testing.T) {
	tests := []struct {
		steps []float64
		want  int
	}{
		{[]float64{5, 2, 0.5, 0.0001, 0.00001}, 3},
		{[]float64{0, 0, 0}, 0},
		{[]float64{0, 0, 1}, -1},
		{nil, -1},
	}
	for _, tt := range tests {
		if got := SettleTick(tt.steps, DefaultSettleTolerance); got != tt.want {
			t.Errorf("%v: expected %d, got %d", tt.steps, tt.want, got)
		}
	}
}

func TestSummarise(t *testing.T) {
	r := runSingle(t, 3000)
	reports := Summarise(r, DefaultSettleTolerance)
	if len(reports) != 1 {
		t.Fatalf("expected one report, got %d", len(reports))
	}
	rep := reports[0]
	if rep.Home != (dynamo.Vec3{R: 128, G: 97, B: 84}) {
		t.Errorf("unexpected home %+v", rep.Home)
	}
	if rep.Settled < 0 {
		t.Error("single point should settle")
	}
	if rep.Displacement > 16 {
		t.Errorf("settled too far from home: %f", rep.Displacement)
	}
}

func TestSeriesBounds(t *testing.T) {
	r := runSingle(t, 10)
	if Displacements(r, 1) != nil || Steps(r, -1) != nil || Displacements(nil, 0) != nil {
		t.Error("out of range slot should give nil")
	}
	if got := len(Displacements(r, 0)); got != 11 {
		t.Errorf("expected 11 displacements, got %d", got)
	}
	if got := len(Steps(r, 0)); got != 10 {
		t.Errorf("expected 10 steps, got %d", got)
	}
}

func TestSensitivityStable(t *testing.T) {
	lambda, err := Sensitivity(context.Background(), physics.NewField(), integrators.NewDamped(), singleScheme(), 0, 1e-3, 500)
	if err != nil {
		t.Fatalf("Sensitivity failed: %v", err)
	}
	if lambda >= 0 {
		t.Errorf("expected negative sensitivity, got %f", lambda)
	}
}

func TestSensitivityBadSlot(t *testing.T) {
	_, err := Sensitivity(context.Background(), physics.NewField(), integrators.NewDamped(), singleScheme(), 3, 1e-3, 10)
	if err == nil {
		t.Error("expected error for missing slot")
	}
}

func TestTetherSweep(t *testing.T) {
	points, err := TetherSweep(context.Background(), physics.NewField(), singleScheme(), 0, 0.01, 0.1, 5, 300, 50)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}
	if points[0].Param != 0.01 || math.Abs(points[4].Param-0.1) > 1e-12 {
		t.Errorf("unexpected range %f..%f", points[0].Param, points[4].Param)
	}
	for _, p := range points {
		if len(p.Values) == 0 {
			t.Errorf("tether %f recorded nothing", p.Param)
		}
	}

	plot := SweepToASCII(points, 20, 8)
	if strings.Count(plot, "\n") != 8 {
		t.Errorf("expected 8 rows, got %q", plot)
	}
}

func TestPortrait(t *testing.T) {
	r := runSingle(t, 100)
	p := NewPortrait(r, 0)
	if p == nil || len(p.Points) != 100 {
		t.Fatal("expected 100 portrait points")
	}
	if PortraitToASCII(p, 30, 10) == "" {
		t.Error("expected a plot")
	}
	if NewPortrait(r, 5) != nil {
		t.Error("expected nil for missing slot")
	}
}
