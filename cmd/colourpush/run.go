package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/colourpush/internal/analysis"
	"github.com/san-kum/colourpush/internal/dynamo"
	"github.com/san-kum/colourpush/internal/experiment"
	"github.com/san-kum/colourpush/internal/integrators"
	"github.com/san-kum/colourpush/internal/physics"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, exp, err := setup(cmd, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}
	logger.Info("run finished",
		zap.String("scheme", cfg.Scheme),
		zap.Int("ticks", result.Ticks),
		zap.Duration("elapsed", time.Since(start)),
	)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tHOME\tFINAL\tDISPLACEMENT")
	for i, p := range result.Final.Movable {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.3f\n", i, p.Home.Hex(), p.Pos.Hex(), p.DistanceFromHome())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nmetrics:")
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	if plot {
		for i := range result.Final.Movable {
			graph := asciigraph.Plot(analysis.Displacements(result, i),
				asciigraph.Height(8),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("slot %d displacement", i)),
			)
			fmt.Println()
			fmt.Println(graph)
		}
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, exp, err := setup(cmd, logger)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}

	integ, err := experiment.NewRegistry().GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}
	field := &physics.Field{Walls: cfg.Walls, SelfPull: cfg.SelfPull}
	initial, err := cfg.BuildScheme()
	if err != nil {
		return err
	}

	fmt.Printf("analysis: %s (%s, %d ticks)\n\n", cfg.Scheme, cfg.Integrator, result.Ticks)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tHOME\tFINAL\tDISPLACEMENT\tSETTLED\tPERIOD\tSENSITIVITY")
	for _, rep := range analysis.Summarise(result, analysis.DefaultSettleTolerance) {
		settled := "no"
		if rep.Settled >= 0 {
			settled = fmt.Sprintf("tick %d", rep.Settled)
		}
		period := "-"
		if rep.Ringing {
			period = fmt.Sprintf("%.1f", rep.Period)
		}
		lambda, err := analysis.Sensitivity(ctx, field, integ, initial, rep.Slot, 1e-3, result.Ticks)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.3f\t%s\t%s\t%s\n",
			rep.Slot, rep.Home.Hex(), rep.Final.Hex(), rep.Displacement, settled, period, formatRate(lambda))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if sweep {
		points, err := analysis.TetherSweep(ctx, field, initial, slot, 0.005, 0.2, 40, result.Ticks, 100)
		if err != nil {
			return err
		}
		fmt.Printf("\ntether sweep, slot %d (x: tether %.3f..%.3f, y: displacement)\n", slot, 0.005, 0.2)
		fmt.Print(analysis.SweepToASCII(points, 60, 16))
	}

	if portrait {
		p := analysis.NewPortrait(result, slot)
		if p == nil {
			return fmt.Errorf("no slot %d", slot)
		}
		fmt.Printf("\nportrait, slot %d (x: displacement, y: step)\n", slot)
		fmt.Print(analysis.PortraitToASCII(p, 60, 16))
	}
	return nil
}

func formatRate(v float64) string {
	if math.IsInf(v, -1) {
		return "merged"
	}
	return fmt.Sprintf("%+.4f", v)
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	registry := experiment.NewRegistry()
	names := args
	if len(names) == 0 {
		names = registry.ListIntegrators()
	}

	fmt.Printf("comparing integrators for %s (%d ticks)\n\n", cfg.Scheme, cfg.Ticks)
	fmt.Printf("%-12s  %-12s  %-12s  %-12s  %-12s\n", "integrator", "displacement", "max_disp", "spread", "time_ms")
	fmt.Println(strings.Repeat("-", 68))

	for _, name := range names {
		c := *cfg
		c.Integrator = name
		exp := experiment.New(&c, nil)
		if err := exp.Setup(registry); err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		start := time.Now()
		result, err := exp.Run(cmd.Context())
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		fmt.Printf("%-12s  %12.3f  %12.3f  %12.3f  %12.2f\n", name,
			result.Metrics["displacement"], result.Metrics["max_displacement"], result.Metrics["spread"],
			float64(elapsed.Microseconds())/1000)
	}
	return nil
}

func benchScheme(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	initial, err := cfg.BuildScheme()
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %s (%d points)\n\n", cfg.Scheme, len(initial.Anchors)+len(initial.Movable))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tTICKS\tTIME\tTICKS/SEC")

	for _, integ := range []dynamo.Integrator{integrators.NewDamped(), integrators.NewDirect()} {
		for _, n := range []int{1000, 10000, 100000} {
			sim := dynamo.New(&physics.Field{Walls: cfg.Walls, SelfPull: cfg.SelfPull}, integ, initial)
			start := time.Now()
			if _, err := sim.Run(context.Background(), n); err != nil {
				return err
			}
			elapsed := time.Since(start)
			fmt.Fprintf(w, "%T\t%d\t%v\t%.0f\n", integ, n, elapsed, float64(n)/elapsed.Seconds())
		}
	}
	return w.Flush()
}
