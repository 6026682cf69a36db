package main

import (
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mandelview/internal/compute"
	"github.com/san-kum/mandelview/internal/config"
	"github.com/san-kum/mandelview/internal/control"
	"github.com/san-kum/mandelview/internal/gui"
	"github.com/san-kum/mandelview/internal/render"
	"github.com/san-kum/mandelview/internal/tui"
	"github.com/spf13/cobra"
)

var (
	monochrome  bool
	verbose     bool
	iterations  uint32
	periodicity uint32
	width       int
	height      int
	centerX     float64
	centerY     float64
	scale       float64
	backend     string
	// Config file
	configFile string
	// Preset name
	preset string
	// render / bench
	output      string
	benchFrames int
)

var benchBudgets = []uint32{64, 256, 1024, 4096}

func main() {
	rootCmd := &cobra.Command{
		Use:          "mandelview",
		Short:        "interactive mandelbrot viewer",
		SilenceUsage: true,
		RunE:         runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&monochrome, "monochrome", "b", false, "black and white palette")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log every frame")
	pf.Uint32VarP(&iterations, "iterations", "i", 1024, "iteration budget")
	pf.Uint32VarP(&periodicity, "periodicity", "p", 20, "periodicity check interval")
	pf.IntVarP(&width, "width", "w", 640, "width in pixels")
	pf.IntVarP(&height, "height", "h", 480, "height in pixels")
	pf.Float64VarP(&centerX, "center-x", "x", -0.75, "real part of the view center")
	pf.Float64VarP(&centerY, "center-y", "y", 0.0, "imaginary part of the view center")
	pf.Float64VarP(&scale, "scale", "z", 0, "plane units per pixel (0 fits the whole set)")
	pf.StringVar(&backend, "backend", compute.CPU, "compute backend (cpu, gpu, soft)")
	pf.StringVar(&configFile, "config", "", "yaml config file")
	pf.StringVar(&preset, "preset", "", "start at a preset location")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "view in the terminal",
		RunE:  runTUI,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame to a png file",
		RunE:  renderImage,
	}
	renderCmd.Flags().StringVarP(&output, "output", "o", "mandelbrot.png", "output file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark a backend across iteration budgets",
		RunE:  benchBackend,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 5, "frames per budget")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset locations",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCENTER\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				cx, cy := p.Region.Center()
				fmt.Fprintf(w, "%s\t%.6g%+.6gi\t%s\n", p.Name, cx, cy, p.Description)
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(tuiCmd, renderCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file, a preset and explicitly
// set flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("%w: unknown preset %q (available: %v)", config.ErrInvalidConfig, preset, config.ListPresets())
		}
		p.Apply(cfg)
	}

	if flags.Changed("monochrome") {
		cfg.Monochrome = monochrome
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if flags.Changed("periodicity") {
		cfg.Periodicity = periodicity
	}
	if flags.Changed("center-x") {
		cfg.CenterX = centerX
	}
	if flags.Changed("center-y") {
		cfg.CenterY = centerY
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newController(cfg *config.Config, logger *slog.Logger) (*control.Controller, error) {
	view, err := cfg.Viewport()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	return control.New(view, cfg.Params(), logger), nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	ctrl, err := newController(cfg, logger)
	if err != nil {
		return err
	}

	logger.Debug("starting viewer", "backend", cfg.Backend, "width", cfg.Width, "height", cfg.Height)
	if err := gui.Run(ctrl, gui.Options{Backend: cfg.Backend, Logger: logger}); err != nil {
		logger.Error("viewer stopped", "err", err)
		return err
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Backend == compute.GPU {
		return fmt.Errorf("%w: the terminal viewer needs the cpu or soft backend", compute.ErrBackendUnavailable)
	}
	// The terminal owns stdout, so frame logs would corrupt the display.
	cfg.Verbose = false
	logger := slog.New(slog.DiscardHandler)

	ctrl, err := newController(cfg, logger)
	if err != nil {
		return err
	}
	b, err := compute.New(cfg.Backend)
	if err != nil {
		return err
	}
	renderer := render.New(b, logger)
	defer renderer.Close()

	return tui.Run(ctrl, renderer)
}

// withBackend creates the configured backend, opening a hidden window
// first when it needs a GL context.
func withBackend(cfg *config.Config, fn func(compute.Backend) error) error {
	run := func() error {
		b, err := compute.New(cfg.Backend)
		if err != nil {
			return err
		}
		defer b.Cleanup()
		return fn(b)
	}
	if cfg.Backend == compute.GPU {
		return gui.Offscreen(cfg.Width, cfg.Height, run)
	}
	return run()
}

func renderImage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	view, err := cfg.Viewport()
	if err != nil {
		return err
	}

	return withBackend(cfg, func(b compute.Backend) error {
		r := render.New(b, logger)
		frame, err := r.Render(view, cfg.Params())
		if err != nil {
			return err
		}

		f, err := os.Create(output)
		if err != nil {
			return err
		}
		if err := png.Encode(f, frame.Image()); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		fmt.Printf("wrote %s (%dx%d, %s, %v)\n", output, frame.Width, frame.Height, b.Name(), r.Last().Duration)
		return nil
	})
}

func benchBackend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if benchFrames < 1 {
		return errors.New("frames must be at least 1")
	}
	logger := newLogger(cfg)
	view, err := cfg.Viewport()
	if err != nil {
		return err
	}

	return withBackend(cfg, func(b compute.Backend) error {
		r := render.New(b, logger)
		params := cfg.Params()
		pixels := float64(view.Width * view.Height)

		fmt.Printf("benchmarking %s at %s\n\n", b.Name(), view)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ITERATIONS\tFRAMES\tMEAN\tMIN\tMAX\tMPIX/SEC")

		means := make([]float64, 0, len(benchBudgets))
		for _, budget := range benchBudgets {
			params.MaxIterations = budget

			var total, lo, hi time.Duration
			for i := 0; i < benchFrames; i++ {
				if _, err := r.Render(view, params); err != nil {
					return err
				}
				d := r.Last().Duration
				total += d
				if i == 0 || d < lo {
					lo = d
				}
				hi = max(hi, d)
			}
			mean := total / time.Duration(benchFrames)
			means = append(means, float64(mean.Microseconds())/1000)

			fmt.Fprintf(w, "%d\t%d\t%v\t%v\t%v\t%.2f\n",
				budget, benchFrames, mean, lo, hi, pixels/mean.Seconds()/1e6)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Println()
		graph := asciigraph.Plot(means,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("mean frame time (ms) for budgets %v", benchBudgets)),
		)
		fmt.Println(graph)
		return nil
	})
}
