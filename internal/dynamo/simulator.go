package dynamo

import (
	"context"

	"go.uber.org/zap"
)

type Simulator struct {
	field      ForceField
	integrator Integrator
	scheme     Scheme
	initial    Scheme
	tick       int
	renderers  []Renderer
	metrics    []Metric
	logger     *zap.Logger
}

func New(field ForceField, integrator Integrator, scheme Scheme) *Simulator {
	return &Simulator{
		field:      field,
		integrator: integrator,
		scheme:     scheme.Clone(),
		initial:    scheme.Clone(),
		renderers:  make([]Renderer, 0),
		metrics:    make([]Metric, 0),
		logger:     zap.NewNop(),
	}
}

func (s *Simulator) AddRenderer(r Renderer) { s.renderers = append(s.renderers, r) }
func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) TickCount() int         { return s.tick }

func (s *Simulator) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
}

// Scheme returns a copy of the current point set.
func (s *Simulator) Scheme() Scheme { return s.scheme.Clone() }

// Tick advances the simulation by one step when running is true and reports
// whether it did. Forces are computed from a snapshot taken before any point
// moves, so the result does not depend on point order.
func (s *Simulator) Tick(running bool) bool {
	if !running {
		return false
	}

	snap := s.scheme.Clone()
	deltas := s.field.Forces(snap)

	next := make([]Point, len(snap.Movable))
	for i, p := range snap.Movable {
		if p.Fixed {
			next[i] = p
			continue
		}
		next[i] = s.integrator.Step(p, deltas[i])
	}
	s.scheme.Movable = next
	s.tick++

	f := s.Frame()
	for _, m := range s.metrics {
		m.Observe(f)
	}
	for _, r := range s.renderers {
		r.Render(f)
	}
	return true
}

// Frame builds the renderer hand-off for the current state.
func (s *Simulator) Frame() Frame {
	slots := make([]Slot, len(s.scheme.Movable))
	for i, p := range s.scheme.Movable {
		slots[i] = Slot{Index: i, Colour: p.Pos, Home: p.Home}
	}
	return Frame{
		Tick:   s.tick,
		Slots:  slots,
		Points: s.scheme.All(),
	}
}

// Reset restores the scheme the simulator was built with.
func (s *Simulator) Reset() {
	s.scheme = s.initial.Clone()
	s.tick = 0
	for _, m := range s.metrics {
		m.Reset()
	}
	s.logger.Debug("simulation reset", zap.Int("movable", len(s.scheme.Movable)))
}

// Run ticks the simulation n times without pacing and records the trace of
// movable positions, including the starting positions.
func (s *Simulator) Run(ctx context.Context, n int) (*Result, error) {
	if n < 0 {
		return nil, ErrInvalidTicks
	}
	if err := s.scheme.Validate(); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{
		Trace:   make([][]Vec3, 0, n+1),
		Metrics: make(map[string]float64),
	}
	result.Trace = append(result.Trace, s.positions())

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		s.Tick(true)
		result.Ticks++
		result.Trace = append(result.Trace, s.positions())
	}

	s.finish(result)
	return result, nil
}

func (s *Simulator) finish(result *Result) {
	result.Final = s.scheme.Clone()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) positions() []Vec3 {
	pos := make([]Vec3, len(s.scheme.Movable))
	for i, p := range s.scheme.Movable {
		pos[i] = p.Pos
	}
	return pos
}
