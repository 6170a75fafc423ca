package main

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/colourpush/internal/dynamo"
)

func runWatch(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, exp, err := setup(cmd, logger)
	if err != nil {
		return err
	}

	sim := exp.GetSimulator()
	if logEvery > 0 {
		sim.AddRenderer(dynamo.RendererFunc(func(f dynamo.Frame) {
			if f.Tick%logEvery != 0 {
				return
			}
			logger.Info("palette", zap.Int("tick", f.Tick), zap.String("colours", palette(f)))
		}))
	}

	loop, err := exp.Loop(dynamo.WithRunning(true))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	stopToggle := notifyToggle(ctx, loop, logger)
	defer stopToggle()

	logger.Info("watching", zap.String("scheme", cfg.Scheme), zap.Duration("period", cfg.Period), zap.Int("ticks", cfg.Ticks))
	err = loop.Run(ctx, cfg.Ticks)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func palette(f dynamo.Frame) string {
	hexes := make([]string, len(f.Slots))
	for i, s := range f.Slots {
		hexes[i] = s.Colour.Hex()
	}
	return strings.Join(hexes, " ")
}
