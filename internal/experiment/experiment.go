package experiment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/colourpush/internal/config"
	"github.com/san-kum/colourpush/internal/dynamo"
	"github.com/san-kum/colourpush/internal/physics"
)

// Experiment wires a config into a ready simulator.
type Experiment struct {
	cfg       *config.Config
	simulator *dynamo.Simulator
	logger    *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) *Experiment {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Experiment{cfg: cfg, logger: logger}
}

func (e *Experiment) Setup(reg *Registry) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	scheme, err := e.cfg.BuildScheme()
	if err != nil {
		return err
	}
	integ, err := reg.GetIntegrator(e.cfg.Integrator)
	if err != nil {
		return err
	}

	field := &physics.Field{Walls: e.cfg.Walls, SelfPull: e.cfg.SelfPull}
	e.simulator = dynamo.New(field, integ, scheme)
	e.simulator.SetLogger(e.logger)
	for _, m := range reg.DefaultMetrics() {
		e.simulator.AddMetric(m)
	}

	e.logger.Debug("experiment ready",
		zap.String("scheme", e.cfg.Scheme),
		zap.String("integrator", e.cfg.Integrator),
		zap.Int("anchors", len(scheme.Anchors)),
		zap.Int("movable", len(scheme.Movable)),
		zap.Bool("self_pull", e.cfg.SelfPull),
	)
	return nil
}

// Run ticks the configured number of times as fast as possible.
func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.cfg.Ticks)
}

// Loop paces the simulator at the configured period.
func (e *Experiment) Loop(opts ...dynamo.LoopOption) (*dynamo.Loop, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	opts = append([]dynamo.LoopOption{dynamo.WithLogger(e.logger)}, opts...)
	return dynamo.NewLoop(e.simulator, e.cfg.Period, opts...)
}

func (e *Experiment) GetSimulator() *dynamo.Simulator {
	return e.simulator
}
