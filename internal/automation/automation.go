package automation

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/colourpush/internal/analysis"
	"github.com/san-kum/colourpush/internal/config"
	"github.com/san-kum/colourpush/internal/dynamo"
	"github.com/san-kum/colourpush/internal/experiment"
)

// Scenario is a scripted batch of runs.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step overrides the base config for one run. Unset fields keep the base value.
type Step struct {
	Name       string `yaml:"name"`
	Scheme     string `yaml:"scheme"`
	Integrator string `yaml:"integrator"`
	Walls      *bool  `yaml:"walls"`
	SelfPull   *bool  `yaml:"self_pull"`
	Ticks      int    `yaml:"ticks"`
}

// StepResult pairs a step with the run it produced.
type StepResult struct {
	Step   Step
	Config *config.Config
	Result *dynamo.Result
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}
	return &scenario, nil
}

// Apply returns a copy of base with the step's overrides.
func (s Step) Apply(base *config.Config) *config.Config {
	cfg := *base
	if s.Scheme != "" {
		cfg.Scheme = s.Scheme
		cfg.Anchors = nil
		cfg.Movable = nil
	}
	if s.Integrator != "" {
		cfg.Integrator = s.Integrator
	}
	if s.Walls != nil {
		cfg.Walls = *s.Walls
	}
	if s.SelfPull != nil {
		cfg.SelfPull = *s.SelfPull
	}
	if s.Ticks > 0 {
		cfg.Ticks = s.Ticks
	}
	return &cfg
}

// Label is the step name, or a description of its overrides.
func (s Step) Label() string {
	if s.Name != "" {
		return s.Name
	}
	cfg := s.Apply(config.DefaultConfig())
	return fmt.Sprintf("%s/%s", cfg.Scheme, cfg.Integrator)
}

// RunScenario executes every step in order, stopping at the first failure.
func RunScenario(
	ctx context.Context,
	scenario *Scenario,
	base *config.Config,
	registry *experiment.Registry,
	logger *zap.Logger,
) ([]StepResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		logger.Info("running step",
			zap.Int("step", i+1),
			zap.Int("of", len(scenario.Steps)),
			zap.String("name", step.Label()),
		)

		cfg := step.Apply(base)
		exp := experiment.New(cfg, logger)
		if err := exp.Setup(registry); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Step: step, Config: cfg, Result: result})
	}

	return results, nil
}

// MonteCarloConfig jitters the movable homes of a scheme between trials.
type MonteCarloConfig struct {
	Perturbation float64
	Trials       int
	Seed         int64
}

// MonteCarloResult is one jittered trial.
type MonteCarloResult struct {
	Trial        int
	Homes        []dynamo.Vec3
	Final        []dynamo.Vec3
	Displacement float64
	Spread       float64
	Settled      bool
}

// RunMonteCarlo runs the base config repeatedly with every movable home
// shifted by up to Perturbation on each channel.
func RunMonteCarlo(
	ctx context.Context,
	base *config.Config,
	mc MonteCarloConfig,
	registry *experiment.Registry,
	logger *zap.Logger,
) ([]MonteCarloResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mc.Trials <= 0 {
		return nil, fmt.Errorf("monte carlo needs at least one trial, got %d", mc.Trials)
	}

	scheme, err := base.BuildScheme()
	if err != nil {
		return nil, err
	}

	seed := mc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	results := make([]MonteCarloResult, 0, mc.Trials)
	for trial := 0; trial < mc.Trials; trial++ {
		cfg := *base
		cfg.Anchors = pointConfigs(scheme.Anchors, nil, 0)
		cfg.Movable = pointConfigs(scheme.Movable, rng, mc.Perturbation)

		exp := experiment.New(&cfg, logger)
		if err := exp.Setup(registry); err != nil {
			return results, fmt.Errorf("trial %d setup: %w", trial, err)
		}
		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("trial %d run: %w", trial, err)
		}

		results = append(results, summariseTrial(trial, result))

		if (trial+1)%10 == 0 {
			logger.Info("monte carlo progress", zap.Int("done", trial+1), zap.Int("trials", mc.Trials))
		}
	}

	return results, nil
}

func pointConfigs(points []dynamo.Point, rng *rand.Rand, perturbation float64) []config.PointConfig {
	out := make([]config.PointConfig, len(points))
	for i, p := range points {
		home := p.Home
		if rng != nil {
			home = dynamo.Vec3{
				R: home.R + (rng.Float64()-0.5)*2*perturbation,
				G: home.G + (rng.Float64()-0.5)*2*perturbation,
				B: home.B + (rng.Float64()-0.5)*2*perturbation,
			}.Clamp()
		}
		mass := p.Mass
		out[i] = config.PointConfig{Colour: config.Colour(home), Mass: &mass}
	}
	return out
}

func summariseTrial(trial int, result *dynamo.Result) MonteCarloResult {
	res := MonteCarloResult{
		Trial:        trial,
		Displacement: result.Metrics["displacement"],
		Spread:       result.Metrics["spread"],
		Settled:      true,
	}
	for _, p := range result.Final.Movable {
		res.Homes = append(res.Homes, p.Home)
		res.Final = append(res.Final, p.Pos)
	}
	for _, r := range analysis.Summarise(result, analysis.DefaultSettleTolerance) {
		if r.Settled < 0 {
			res.Settled = false
			break
		}
	}
	return res
}

// MonteCarloStats counts settled and still-moving trials.
func MonteCarloStats(results []MonteCarloResult) (settled int, moving int) {
	for _, r := range results {
		if r.Settled {
			settled++
		} else {
			moving++
		}
	}
	return
}
