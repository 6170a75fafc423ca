package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/colourpush/internal/dynamo"
	"github.com/san-kum/colourpush/internal/integrators"
	"github.com/san-kum/colourpush/internal/metrics"
)

type Registry struct {
	integrators map[string]func() dynamo.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		integrators: make(map[string]func() dynamo.Integrator),
	}

	r.integrators["damped"] = func() dynamo.Integrator { return integrators.NewDamped() }
	r.integrators["direct"] = func() dynamo.Integrator { return integrators.NewDirect() }

	return r
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics() []dynamo.Metric {
	return metrics.Defaults()
}
