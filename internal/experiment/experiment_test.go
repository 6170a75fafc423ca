package experiment

import (
	"context"
	"testing"

	"github.com/san-kum/colourpush/internal/config"
	"github.com/san-kum/colourpush/internal/dynamo"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	names := reg.ListIntegrators()
	if len(names) != 2 || names[0] != "damped" || names[1] != "direct" {
		t.Errorf("unexpected integrators %v", names)
	}
	if _, err := reg.GetIntegrator("rk4"); err == nil {
		t.Error("expected error for unknown integrator")
	}
	if len(reg.DefaultMetrics()) == 0 {
		t.Error("expected default metrics")
	}
}

func TestExperimentNotSetup(t *testing.T) {
	exp := New(config.DefaultConfig(), nil)
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error before setup")
	}
	if _, err := exp.Loop(); err == nil {
		t.Error("expected error before setup")
	}
}

func TestExperimentRun(t *testing.T) {
	for _, integ := range []string{"damped", "direct"} {
		cfg := config.DefaultConfig()
		cfg.Integrator = integ
		cfg.Ticks = 200

		exp := New(cfg, nil)
		if err := exp.Setup(NewRegistry()); err != nil {
			t.Fatalf("%s: setup failed: %v", integ, err)
		}
		result, err := exp.Run(context.Background())
		if err != nil {
			t.Fatalf("%s: run failed: %v", integ, err)
		}

		if result.Ticks != 200 {
			t.Errorf("%s: expected 200 ticks, got %d", integ, result.Ticks)
		}
		if len(result.Trace) != 201 {
			t.Errorf("%s: expected 201 trace rows, got %d", integ, len(result.Trace))
		}
		for _, p := range result.Final.Movable {
			if !p.Pos.InBounds() {
				t.Errorf("%s: point left the cube: %+v", integ, p.Pos)
			}
		}
		if _, ok := result.Metrics["displacement"]; !ok {
			t.Errorf("%s: displacement metric missing", integ)
		}
	}
}

func TestExperimentSetupErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"unknown integrator", func(c *config.Config) { c.Integrator = "euler" }},
		{"unknown scheme", func(c *config.Config) { c.Scheme = "missing" }},
		{"negative ticks", func(c *config.Config) { c.Ticks = -5 }},
	}

	for _, tt := range tests {
		cfg := config.DefaultConfig()
		tt.modify(cfg)
		if err := New(cfg, nil).Setup(NewRegistry()); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestExperimentLoop(t *testing.T) {
	exp := New(config.DefaultConfig(), nil)
	if err := exp.Setup(NewRegistry()); err != nil {
		t.Fatal(err)
	}
	loop, err := exp.Loop(dynamo.WithRunning(true))
	if err != nil {
		t.Fatalf("Loop failed: %v", err)
	}
	if !loop.Running() {
		t.Error("WithRunning(true) ignored")
	}
}
