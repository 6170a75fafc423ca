package dynamo

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// DefaultPeriod is the tick period of the live animation.
const DefaultPeriod = 10 * time.Millisecond

// Loop drives a Simulator on a fixed period. Ticks run on the goroutine that
// called Run, one at a time; a tick that overruns the period makes the ticker
// drop the missed firings rather than queue them.
type Loop struct {
	sim     *Simulator
	period  time.Duration
	clock   clock.Clock
	running *atomic.Bool
	logger  *zap.Logger
}

type LoopOption func(*Loop)

func WithClock(c clock.Clock) LoopOption {
	return func(l *Loop) { l.clock = c }
}

func WithLogger(logger *zap.Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRunning sets the initial state of the run/pause flag. Loops start paused.
func WithRunning(running bool) LoopOption {
	return func(l *Loop) { l.running.Store(running) }
}

func NewLoop(sim *Simulator, period time.Duration, opts ...LoopOption) (*Loop, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	l := &Loop{
		sim:     sim,
		period:  period,
		clock:   clock.New(),
		running: atomic.NewBool(false),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

func (l *Loop) Running() bool { return l.running.Load() }

// Toggle flips the run/pause flag and returns the new state. Safe to call from
// any goroutine.
func (l *Loop) Toggle() bool {
	running := !l.running.Toggle()
	l.logger.Info("loop toggled", zap.Bool("running", running))
	return running
}

func (l *Loop) SetRunning(running bool) {
	if l.running.Swap(running) != running {
		l.logger.Info("loop toggled", zap.Bool("running", running))
	}
}

// Run ticks until ctx is done or, when maxTicks > 0, until maxTicks ticks have
// been applied. Timer firings while paused do not count.
func (l *Loop) Run(ctx context.Context, maxTicks int) error {
	if maxTicks < 0 {
		return ErrInvalidTicks
	}

	ticker := l.clock.Ticker(l.period)
	defer ticker.Stop()

	l.logger.Info("loop started",
		zap.Duration("period", l.period),
		zap.Int("max_ticks", maxTicks),
		zap.Bool("running", l.running.Load()))

	applied := 0
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loop stopped", zap.Int("ticks", applied), zap.Error(ctx.Err()))
			return ctx.Err()
		case <-ticker.C:
			if !l.sim.Tick(l.running.Load()) {
				continue
			}
			applied++
			if maxTicks > 0 && applied >= maxTicks {
				l.logger.Info("loop finished", zap.Int("ticks", applied))
				return nil
			}
		}
	}
}
