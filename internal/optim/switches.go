package optim

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/san-kum/colourpush/internal/config"
	"github.com/san-kum/colourpush/internal/experiment"
)

const (
	ParamIntegrator = "integrator"
	ParamWalls      = "walls"
	ParamSelfPull   = "self_pull"
)

// SwitchGrid searches every integrator with walls and self-pull on and off,
// keeping the base config's scheme and tick count.
func SwitchGrid(base *config.Config, reg *experiment.Registry, logger *zap.Logger) (*GridSearch, BuildFunc) {
	names := reg.ListIntegrators()
	indices := make([]float64, len(names))
	for i := range names {
		indices[i] = float64(i)
	}

	grid := NewGridSearch(
		[]string{ParamIntegrator, ParamWalls, ParamSelfPull},
		[][]float64{indices, {0, 1}, {0, 1}},
	)

	build := func(params map[string]float64) (*experiment.Experiment, error) {
		cfg, err := ApplySwitches(base, names, params)
		if err != nil {
			return nil, err
		}
		exp := experiment.New(cfg, logger)
		if err := exp.Setup(reg); err != nil {
			return nil, err
		}
		return exp, nil
	}
	return grid, build
}

// ApplySwitches copies base with the grid point's switches set.
func ApplySwitches(base *config.Config, integrators []string, params map[string]float64) (*config.Config, error) {
	cfg := *base
	if v, ok := params[ParamIntegrator]; ok {
		i := int(v)
		if i < 0 || i >= len(integrators) {
			return nil, fmt.Errorf("integrator index %d out of range", i)
		}
		cfg.Integrator = integrators[i]
	}
	if v, ok := params[ParamWalls]; ok {
		cfg.Walls = v != 0
	}
	if v, ok := params[ParamSelfPull]; ok {
		cfg.SelfPull = v != 0
	}
	return &cfg, nil
}

// DescribeSwitches renders a grid point as "integrator=damped walls=on self_pull=off".
func DescribeSwitches(integrators []string, params map[string]float64) string {
	var parts []string
	if v, ok := params[ParamIntegrator]; ok {
		if i := int(v); i >= 0 && i < len(integrators) {
			parts = append(parts, ParamIntegrator+"="+integrators[i])
		}
	}
	for _, name := range []string{ParamWalls, ParamSelfPull} {
		if v, ok := params[name]; ok {
			parts = append(parts, name+"="+onOff(v != 0))
		}
	}
	return strings.Join(parts, " ")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
