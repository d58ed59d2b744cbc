package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/san-kum/attractor/internal/analysis"
	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/engine"
	"github.com/san-kum/attractor/internal/export"
	"github.com/san-kum/attractor/internal/gui"
	"github.com/san-kum/attractor/internal/viz"
)

var (
	configFile string
	preset     string
	duration   float64
	// Simulation overrides (only applied when the flag is set)
	numTrails   int
	lifetime    int
	refreshRate int
	deltaT      int
	sigma       float64
	rho         float64
	beta        float64
	rotate      bool
	diagnostics bool
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "attractor",
		Short: "real-time Lorenz attractor visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&numTrails, "trails", 0, "number of particles")
	rootCmd.PersistentFlags().IntVar(&lifetime, "lifetime", 0, "trail lifetime (tenths of a second)")
	rootCmd.PersistentFlags().IntVar(&refreshRate, "rate", 0, "physics ticks per second")
	rootCmd.PersistentFlags().IntVar(&deltaT, "delta-t", 0, "integration step (ten-thousandths)")
	rootCmd.PersistentFlags().Float64Var(&sigma, "sigma", 0, "lorenz sigma")
	rootCmd.PersistentFlags().Float64Var(&rho, "rho", 0, "lorenz rho")
	rootCmd.PersistentFlags().Float64Var(&beta, "beta", 0, "lorenz beta")
	rootCmd.PersistentFlags().BoolVar(&rotate, "rotate", false, "auto-rotate the camera")
	rootCmd.PersistentFlags().BoolVar(&diagnostics, "diagnostics", false, "show fps and segment count")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the OpenGL visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd)
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and print simulation stats",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "duration", 10.0, "simulated seconds")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
		},
	}

	saveConfigCmd := &cobra.Command{
		Use:   "save-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return config.Save(args[0], cfg)
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "estimate chaos indicators for the configured parameters",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().Float64Var(&duration, "duration", 40.0, "simulated seconds for the exponent estimate")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [path]",
		Short: "render the simulated trajectories to an svg image",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().Float64Var(&duration, "duration", 10.0, "simulated seconds")

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, presetsCmd, saveConfigCmd, analyzeCmd, snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: defaults, then preset,
// then config file, then explicit flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("trails") {
		cfg.NumOfTrails = numTrails
	}
	if flags.Changed("lifetime") {
		cfg.TrailLifetime = lifetime
	}
	if flags.Changed("rate") {
		cfg.PhysicsRefreshRate = refreshRate
	}
	if flags.Changed("delta-t") {
		cfg.DeltaT = deltaT
	}
	if flags.Changed("sigma") {
		cfg.Sigma = float32(sigma)
	}
	if flags.Changed("rho") {
		cfg.Rho = float32(rho)
	}
	if flags.Changed("beta") {
		cfg.Beta = float32(beta)
	}
	if flags.Changed("rotate") {
		cfg.RotateCamera = rotate
	}
	if flags.Changed("diagnostics") {
		cfg.ShowDiagnostics = diagnostics
	}
	return cfg, nil
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

func runGUI(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return gui.New(cfg, newLogger()).Run()
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	eng := engine.New(cfg)
	start := time.Now()
	if err := eng.Run(ctx, float32(duration)); err != nil {
		return err
	}
	elapsed := time.Since(start)

	log.Info().
		Uint64("ticks", eng.Ticks()).
		Float32("simulated_seconds", eng.Now()).
		Int("trail_segments", eng.SegmentCount()).
		Dur("wall_time", elapsed).
		Msg("run complete")

	head := eng.Head(0)
	fmt.Printf("ticks:          %d\n", eng.Ticks())
	fmt.Printf("simulated time: %.2fs\n", eng.Now())
	fmt.Printf("trail segments: %d\n", eng.SegmentCount())
	fmt.Printf("head position:  (%.3f, %.3f, %.3f)\n", head.X(), head.Y(), head.Z())
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	params := attractor.Params{Sigma: cfg.Sigma, Rho: cfg.Rho, Beta: cfg.Beta}
	x0 := mgl32.Vec3{1, 1, 1}
	dt := cfg.Dt()

	lambda := analysis.LyapunovExponent(params, x0, dt, float32(duration), 1e-6)

	const samples = 4096
	series := analysis.SampleTrajectory(params, x0, dt, samples, 0)
	freq := analysis.DominantFrequency(series, 1/float64(dt))

	fmt.Printf("sigma=%.3f rho=%.3f beta=%.3f\n", cfg.Sigma, cfg.Rho, cfg.Beta)
	fmt.Printf("largest lyapunov exponent: %.4f\n", lambda)
	if lambda > 0 {
		fmt.Println("regime:                    chaotic")
	} else {
		fmt.Println("regime:                    non-chaotic")
	}
	fmt.Printf("dominant frequency:        %.3f Hz\n", freq)
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if duration <= 0 {
		return engine.ErrInvalidDuration
	}

	eng := engine.New(cfg)
	ticks := int(float32(duration) * float32(cfg.TickRate()))

	tracks := make([]export.Track, len(eng.Particles()))
	for i, p := range eng.Particles() {
		tracks[i] = export.Track{
			Points: make([]mgl32.Vec3, 0, ticks),
			Color:  p.HeadColor,
		}
	}
	for t := 0; t < ticks; t++ {
		eng.Tick()
		for i := range tracks {
			tracks[i].Points = append(tracks[i].Points, eng.Head(i))
		}
	}

	svg := export.TrajectorySVG(tracks, 1200, 900)
	if err := os.WriteFile(args[0], []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	logger := newLogger()
	logger.Info().Str("path", args[0]).Int("ticks", ticks).Msg("snapshot written")
	return nil
}
