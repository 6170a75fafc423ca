package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/colourpush/internal/dynamo"
)

const (
	DefaultScheme     = "original"
	DefaultIntegrator = "damped"
	DefaultTicks      = 2000
	DefaultPeriod     = dynamo.DefaultPeriod
)

var ErrUnknownScheme = errors.New("config: unknown scheme")

type Config struct {
	Scheme     string        `yaml:"scheme"`
	Anchors    []PointConfig `yaml:"anchors,omitempty"`
	Movable    []PointConfig `yaml:"movable,omitempty"`
	Integrator string        `yaml:"integrator"`
	Walls      bool          `yaml:"walls"`
	SelfPull   bool          `yaml:"self_pull"`
	Ticks      int           `yaml:"ticks"`
	Period     time.Duration `yaml:"period"`
}

// PointConfig is one colour of a scheme. Mass defaults to 1.
type PointConfig struct {
	Colour Colour   `yaml:"colour"`
	Mass   *float64 `yaml:"mass,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Scheme:     DefaultScheme,
		Integrator: DefaultIntegrator,
		Walls:      true,
		Ticks:      DefaultTicks,
		Period:     DefaultPeriod,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildScheme resolves the configured colours. Explicit movable points win over
// the named preset; explicit anchors are only used alongside them.
func (c *Config) BuildScheme() (dynamo.Scheme, error) {
	anchors, movable := c.Anchors, c.Movable
	if len(movable) == 0 {
		p := GetPreset(c.Scheme)
		if p == nil {
			return dynamo.Scheme{}, fmt.Errorf("%w: %q", ErrUnknownScheme, c.Scheme)
		}
		anchors, movable = p.Anchors, p.Movable
	}

	s := dynamo.NewScheme(points(anchors), points(movable))
	if err := s.Validate(); err != nil {
		return dynamo.Scheme{}, err
	}
	return s, nil
}

func (c *Config) Validate() error {
	if c.Ticks < 0 {
		return dynamo.ErrInvalidTicks
	}
	if c.Period <= 0 {
		return dynamo.ErrInvalidPeriod
	}
	_, err := c.BuildScheme()
	return err
}

func (p PointConfig) Point() dynamo.Point {
	v := dynamo.Vec3(p.Colour)
	pt := dynamo.NewPoint(v.R, v.G, v.B)
	if p.Mass != nil {
		pt.Mass = *p.Mass
	}
	return pt
}

func points(cfgs []PointConfig) []dynamo.Point {
	out := make([]dynamo.Point, len(cfgs))
	for i, c := range cfgs {
		out[i] = c.Point()
	}
	return out
}
