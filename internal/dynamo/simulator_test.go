package dynamo

import (
	"context"
	"errors"
	"testing"
)

type testField struct {
	delta     Vec3
	snapshots []Scheme
}

func (f *testField) Forces(s Scheme) []Vec3 {
	f.snapshots = append(f.snapshots, s.Clone())
	deltas := make([]Vec3, len(s.Movable))
	for i := range deltas {
		deltas[i] = f.delta
	}
	return deltas
}

type testIntegrator struct{}

func (testIntegrator) Step(p Point, delta Vec3) Point {
	p.Vel = delta
	p.Pos = p.Pos.Add(delta).Clamp()
	return p
}

type testMetric struct {
	count int
}

func (m *testMetric) Name() string    { return "test" }
func (m *testMetric) Observe(f Frame) { m.count++ }
func (m *testMetric) Value() float64  { return float64(m.count) }
func (m *testMetric) Reset()          { m.count = 0 }

func testScheme() Scheme {
	return NewScheme(
		[]Point{NewAnchor(0, 0, 0), NewAnchor(255, 255, 255)},
		[]Point{NewPoint(10, 20, 30), NewPoint(200, 100, 50)},
	)
}

func TestTickPaused(t *testing.T) {
	field := &testField{delta: Vec3{1, 1, 1}}
	sim := New(field, testIntegrator{}, testScheme())

	rendered := 0
	sim.AddRenderer(RendererFunc(func(Frame) { rendered++ }))

	before := sim.Scheme()
	for i := 0; i < 10; i++ {
		if sim.Tick(false) {
			t.Fatal("paused tick reported progress")
		}
	}

	after := sim.Scheme()
	for i := range before.Movable {
		if before.Movable[i] != after.Movable[i] {
			t.Errorf("point %d changed while paused", i)
		}
	}
	if rendered != 0 {
		t.Errorf("renderer called %d times while paused", rendered)
	}
	if len(field.snapshots) != 0 {
		t.Error("field evaluated while paused")
	}
	if sim.TickCount() != 0 {
		t.Errorf("tick count = %d", sim.TickCount())
	}
}

func TestTickRunning(t *testing.T) {
	field := &testField{delta: Vec3{1, -1, 2}}
	sim := New(field, testIntegrator{}, testScheme())

	var frames []Frame
	sim.AddRenderer(RendererFunc(func(f Frame) { frames = append(frames, f) }))

	if !sim.Tick(true) {
		t.Fatal("running tick reported no progress")
	}

	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	f := frames[0]
	if f.Tick != 1 {
		t.Errorf("frame tick = %d", f.Tick)
	}
	if len(f.Slots) != 2 || len(f.Points) != 4 {
		t.Fatalf("frame has %d slots, %d points", len(f.Slots), len(f.Points))
	}
	for i, slot := range f.Slots {
		if slot.Index != i {
			t.Errorf("slot %d has index %d", i, slot.Index)
		}
	}
	if f.Slots[0].Colour != (Vec3{11, 19, 32}) || f.Slots[0].Home != (Vec3{10, 20, 30}) {
		t.Errorf("slot 0 = %+v", f.Slots[0])
	}
	if f.Points[0].Pos != (Vec3{0, 0, 0}) || f.Points[1].Pos != (Vec3{255, 255, 255}) {
		t.Error("anchors moved or out of order")
	}
}

func TestTickUsesSnapshot(t *testing.T) {
	field := &testField{delta: Vec3{5, 5, 5}}
	sim := New(field, testIntegrator{}, testScheme())

	sim.Tick(true)
	sim.Tick(true)

	if len(field.snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(field.snapshots))
	}
	if field.snapshots[0].Movable[0].Pos != (Vec3{10, 20, 30}) {
		t.Errorf("first snapshot saw %+v", field.snapshots[0].Movable[0].Pos)
	}
	if field.snapshots[1].Movable[1].Pos != (Vec3{205, 105, 55}) {
		t.Errorf("second snapshot saw %+v", field.snapshots[1].Movable[1].Pos)
	}
}

func TestFixedMovableStays(t *testing.T) {
	s := testScheme()
	s.Movable[1].Fixed = true
	sim := New(&testField{delta: Vec3{3, 3, 3}}, testIntegrator{}, s)

	for i := 0; i < 5; i++ {
		sim.Tick(true)
	}
	if got := sim.Scheme().Movable[1].Pos; got != (Vec3{200, 100, 50}) {
		t.Errorf("fixed point moved to %+v", got)
	}
}

func TestSimulatorRun(t *testing.T) {
	sim := New(&testField{delta: Vec3{1, 0, 0}}, testIntegrator{}, testScheme())
	metric := &testMetric{}
	sim.AddMetric(metric)

	result, err := sim.Run(context.Background(), 10)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Ticks != 10 {
		t.Errorf("expected 10 ticks, got %d", result.Ticks)
	}
	if len(result.Trace) != 11 {
		t.Errorf("expected 11 trace entries, got %d", len(result.Trace))
	}
	if result.Trace[10][0].R != 20 {
		t.Errorf("final red = %f", result.Trace[10][0].R)
	}
	if result.Metrics["test"] != 10 {
		t.Errorf("metric observed %f ticks", result.Metrics["test"])
	}
	if result.Final.Movable[0].Pos != result.Trace[10][0] {
		t.Error("final scheme does not match trace")
	}
}

func TestSimulatorRunInvalid(t *testing.T) {
	sim := New(&testField{}, testIntegrator{}, testScheme())
	if _, err := sim.Run(context.Background(), -1); !errors.Is(err, ErrInvalidTicks) {
		t.Errorf("expected ErrInvalidTicks, got %v", err)
	}

	empty := New(&testField{}, testIntegrator{}, NewScheme(nil, nil))
	if _, err := empty.Run(context.Background(), 1); !errors.Is(err, ErrEmptyScheme) {
		t.Errorf("expected ErrEmptyScheme, got %v", err)
	}
}

func TestSimulatorRunCanceled(t *testing.T) {
	sim := New(&testField{}, testIntegrator{}, testScheme())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := sim.Run(ctx, 100)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result == nil || result.Ticks != 0 {
		t.Errorf("expected empty partial result, got %+v", result)
	}
}

func TestSimulatorReset(t *testing.T) {
	sim := New(&testField{delta: Vec3{4, 4, 4}}, testIntegrator{}, testScheme())
	metric := &testMetric{}
	sim.AddMetric(metric)

	sim.Tick(true)
	sim.Tick(true)
	sim.Reset()

	if sim.TickCount() != 0 {
		t.Errorf("tick count after reset = %d", sim.TickCount())
	}
	if sim.Scheme().Movable[0].Pos != (Vec3{10, 20, 30}) {
		t.Error("positions not restored")
	}
	if metric.count != 0 {
		t.Error("metrics not reset")
	}
}
