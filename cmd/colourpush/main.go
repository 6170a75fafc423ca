package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/colourpush/internal/config"
	"github.com/san-kum/colourpush/internal/experiment"
	"github.com/san-kum/colourpush/internal/logging"
	"github.com/san-kum/colourpush/internal/viz"
)

var (
	configFile string
	scheme     string
	integrator string
	selfPull   bool
	noWalls    bool
	ticks      int
	period     time.Duration
	logLevel   string
	output     string
	size       int
	cell       int
	plot       bool
	trace      bool
	slot       int
	sweep      bool
	portrait   bool
	logEvery   int

	metric       string
	minimize     bool
	trials       int
	perturbation float64
	seed         int64
)

// main registers every command and opens the preset picker when no
// subcommand is given. Exits 1 on any command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "colourpush",
		Short: "colour palettes that push each other apart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&scheme, "scheme", config.DefaultScheme, "preset scheme name")
	pf.StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator (damped, direct)")
	pf.BoolVar(&selfPull, "self-pull", false, "pull points back home beyond the dead zone")
	pf.BoolVar(&noWalls, "no-walls", false, "disable the six wall pushes")
	pf.IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks (0 runs forever in watch)")
	pf.DurationVar(&period, "period", config.DefaultPeriod, "tick period for live and watch")
	pf.StringVar(&logLevel, "log-level", "info", "log level")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate a scheme in the terminal",
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scheme headless and print the final colours",
		RunE:  runSimulation,
	}
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot displacement of every slot")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "tick in real time and log progress (SIGUSR1 toggles pause)",
		RunE:  runWatch,
	}
	watchCmd.Flags().IntVar(&logEvery, "log-every", 100, "log the palette every n ticks")

	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "render the pseudo-3D projection as png or svg",
		RunE:  runProject,
	}
	projectCmd.Flags().StringVarP(&output, "output", "o", "", "output file, .png or .svg (default stdout png)")
	projectCmd.Flags().IntVar(&size, "size", 480, "image size in pixels")
	projectCmd.Flags().BoolVar(&trace, "trace", false, "draw every slot's path (svg only)")

	swatchCmd := &cobra.Command{
		Use:   "swatch",
		Short: "render current and home colours as png",
		RunE:  runSwatch,
	}
	swatchCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	swatchCmd.Flags().IntVar(&cell, "cell", 64, "swatch size in pixels")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "run and write the trace as json",
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "run and write the trace as csv",
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "ringing period, settling and sensitivity per slot",
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&slot, "slot", 0, "slot for sweep and portrait")
	analyzeCmd.Flags().BoolVar(&sweep, "sweep", false, "sweep the tether fraction")
	analyzeCmd.Flags().BoolVar(&portrait, "portrait", false, "plot displacement against step length")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator...]",
		Short: "compare integrators on the same scheme",
		RunE:  compareIntegrators,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure ticks per second",
		RunE:  benchScheme,
	}

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "search integrator, walls and self pull for the best metric",
		RunE:  runTune,
	}
	tuneCmd.Flags().StringVar(&metric, "metric", "spread", "metric to optimise")
	tuneCmd.Flags().BoolVar(&minimize, "minimize", false, "prefer smaller metric values")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	monteCarloCmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "rerun with jittered home colours",
		RunE:  runMonteCarlo,
	}
	monteCarloCmd.Flags().IntVar(&trials, "trials", 20, "number of trials")
	monteCarloCmd.Flags().Float64Var(&perturbation, "perturbation", 8, "maximum per-channel jitter")
	monteCarloCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset schemes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %d anchors, %d movable  %s\n", name, len(p.Anchors), len(p.Movable), p.Description)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file with the current settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, watchCmd, projectCmd, swatchCmd, exportJSONCmd, exportCSVCmd, analyzeCmd, compareCmd, benchCmd, tuneCmd, batchCmd, monteCarloCmd, presetsCmd, initCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig starts from the config file, if any, and applies flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("scheme") {
		cfg.Scheme = scheme
		cfg.Anchors, cfg.Movable = nil, nil
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("self-pull") {
		cfg.SelfPull = selfPull
	}
	if flags.Changed("no-walls") {
		cfg.Walls = !noWalls
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("period") {
		cfg.Period = period
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger() (*zap.Logger, error) {
	return logging.New(logLevel)
}

// setup loads the config and builds a ready experiment.
func setup(cmd *cobra.Command, logger *zap.Logger) (*config.Config, *experiment.Experiment, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	exp := experiment.New(cfg, logger)
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return nil, nil, err
	}
	return cfg, exp, nil
}

// withOutput runs write against the --output file, or stdout when unset.
func withOutput(write func(io.Writer) error) error {
	if output == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func runLive(cmd *cobra.Command, args []string) error {
	// the tui owns the terminal, so nothing logs here
	cfg, exp, err := setup(cmd, nil)
	if err != nil {
		return err
	}
	return viz.RunLive(viz.NewModel(exp.GetSimulator(), cfg.Scheme, cfg.Period))
}
