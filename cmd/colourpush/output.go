package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/colourpush/internal/config"
	"github.com/san-kum/colourpush/internal/dynamo"
	"github.com/san-kum/colourpush/internal/export"
)

// simulate runs the configured ticks for the export commands.
func simulate(cmd *cobra.Command) (*config.Config, *dynamo.Result, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, nil, err
	}
	defer logger.Sync()

	cfg, exp, err := setup(cmd, logger)
	if err != nil {
		return nil, nil, err
	}
	result, err := exp.Run(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("simulated", zap.String("scheme", cfg.Scheme), zap.Int("ticks", result.Ticks))
	return cfg, result, nil
}

func runProject(cmd *cobra.Command, args []string) error {
	_, result, err := simulate(cmd)
	if err != nil {
		return err
	}

	svg := strings.EqualFold(filepath.Ext(output), ".svg")
	if trace && !svg {
		return fmt.Errorf("--trace needs an .svg output")
	}

	return withOutput(func(w io.Writer) error {
		switch {
		case trace:
			_, err := io.WriteString(w, export.TraceToSVG(result, size))
			return err
		case svg:
			_, err := io.WriteString(w, export.ProjectionToSVG(result.Final.All(), size))
			return err
		default:
			return export.WriteProjectionPNG(w, result.Final.All(), size)
		}
	})
}

func runSwatch(cmd *cobra.Command, args []string) error {
	_, result, err := simulate(cmd)
	if err != nil {
		return err
	}
	slots := make([]dynamo.Slot, len(result.Final.Movable))
	for i, p := range result.Final.Movable {
		slots[i] = dynamo.Slot{Index: i, Colour: p.Pos, Home: p.Home}
	}
	return withOutput(func(w io.Writer) error {
		return export.WriteSwatchPNG(w, slots, cell)
	})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, result, err := simulate(cmd)
	if err != nil {
		return err
	}
	meta := export.Meta{
		Scheme:     cfg.Scheme,
		Integrator: cfg.Integrator,
		SelfPull:   cfg.SelfPull,
		Walls:      cfg.Walls,
	}
	return withOutput(func(w io.Writer) error {
		return export.WriteJSON(w, meta, result)
	})
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, result, err := simulate(cmd)
	if err != nil {
		return err
	}
	return withOutput(func(w io.Writer) error {
		return export.WriteCSV(w, result)
	})
}
