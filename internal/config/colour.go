package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/colourpush/internal/dynamo"
)

// Colour reads either "#rrggbb" or a [r, g, b] sequence and writes hex.
type Colour dynamo.Vec3

func RGB(r, g, b float64) Colour {
	return Colour{R: r, G: g, B: b}
}

func (c *Colour) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		v, err := dynamo.ParseHex(node.Value)
		if err != nil {
			return fmt.Errorf("config: line %d: %w", node.Line, err)
		}
		*c = Colour(v)
		return nil
	case yaml.SequenceNode:
		var ch []float64
		if err := node.Decode(&ch); err != nil {
			return err
		}
		if len(ch) != 3 {
			return fmt.Errorf("config: line %d: colour needs 3 channels, got %d", node.Line, len(ch))
		}
		*c = Colour{R: ch[0], G: ch[1], B: ch[2]}
		return nil
	}
	return fmt.Errorf("config: line %d: colour must be a hex string or [r, g, b]", node.Line)
}

func (c Colour) MarshalYAML() (interface{}, error) {
	return dynamo.Vec3(c).Hex(), nil
}
