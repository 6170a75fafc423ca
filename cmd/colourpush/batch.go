package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/colourpush/internal/automation"
	"github.com/san-kum/colourpush/internal/experiment"
	"github.com/san-kum/colourpush/internal/optim"
)

func runTune(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	registry := experiment.NewRegistry()
	grid, build := optim.SwitchGrid(cfg, registry, logger.Named("tune"))
	if !minimize {
		grid.Maximize()
	}

	logger.Info("tuning",
		zap.String("scheme", cfg.Scheme),
		zap.String("metric", metric),
		zap.Int("candidates", grid.Size()),
	)
	params, best, err := grid.Search(cmd.Context(), build, metric)
	if err != nil {
		return err
	}

	goal := "max"
	if minimize {
		goal = "min"
	}
	fmt.Printf("best for %s (%s %s = %.6f)\n", cfg.Scheme, goal, metric, best)
	fmt.Printf("  %s\n", optim.DescribeSwitches(registry.ListIntegrators(), params))
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	results, err := automation.RunScenario(cmd.Context(), scenario, base, experiment.NewRegistry(), logger)
	if err != nil {
		return err
	}

	if scenario.Name != "" {
		fmt.Printf("%s: %s\n\n", scenario.Name, scenario.Description)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tTICKS\tDISPLACEMENT\tSPREAD\tCONTAINMENT\tPALETTE")
	for _, r := range results {
		palette := ""
		for _, p := range r.Result.Final.Movable {
			palette += p.Pos.Hex() + " "
		}
		fmt.Fprintf(w, "%s\t%d\t%.3f\t%.3f\t%.3f\t%s\n", r.Step.Label(), r.Result.Ticks,
			r.Result.Metrics["displacement"], r.Result.Metrics["spread"], r.Result.Metrics["containment"], palette)
	}
	return w.Flush()
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	mc := automation.MonteCarloConfig{Perturbation: perturbation, Trials: trials, Seed: seed}
	results, err := automation.RunMonteCarlo(cmd.Context(), cfg, mc, experiment.NewRegistry(), logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRIAL\tDISPLACEMENT\tSPREAD\tSETTLED")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%.3f\t%.3f\t%t\n", r.Trial, r.Displacement, r.Spread, r.Settled)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	settled, moving := automation.MonteCarloStats(results)
	fmt.Printf("\n%d settled, %d still moving after %d ticks\n", settled, moving, cfg.Ticks)
	return nil
}
