package gui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/mandelview/internal/compute"
	"github.com/san-kum/mandelview/internal/control"
	"github.com/san-kum/mandelview/internal/render"
)

const (
	DefaultTitle = "mandelbrot"
	fallbackHz   = 60
)

var ErrWindow = errors.New("gui: window creation failed")

type Options struct {
	Title   string
	Backend string
	Logger  *slog.Logger
}

type App struct {
	Ctrl     *control.Controller
	Renderer *render.Renderer
	Screen   *Screen
	Delay    time.Duration

	logger       *slog.Logger
	wasMinimized bool
}

// initWindow opens a resizable window sized to the viewport and disables
// the default exit key.
func initWindow(title string, width, height int) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("%w: %dx%d", ErrWindow, width, height)
	}
	rl.SetExitKey(0)
	return nil
}

// frameDelay is one refresh interval of the window's monitor.
func frameDelay() time.Duration {
	hz := rl.GetMonitorRefreshRate(rl.GetCurrentMonitor())
	if hz <= 0 {
		hz = fallbackHz
	}
	return time.Second / time.Duration(hz)
}

// Run opens the window, creates the backend inside its GL context and
// blocks until the window is closed.
func Run(ctrl *control.Controller, opts Options) error {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	view := ctrl.View()
	if err := initWindow(opts.Title, view.Width, view.Height); err != nil {
		return err
	}
	defer rl.CloseWindow()

	backend, err := compute.New(opts.Backend)
	if err != nil {
		return err
	}
	renderer := render.New(backend, logger)
	defer renderer.Close()

	app := NewApp(ctrl, renderer, logger)
	defer app.Screen.Unload()
	return app.RunLoop()
}

func NewApp(ctrl *control.Controller, renderer *render.Renderer, logger *slog.Logger) *App {
	return &App{
		Ctrl:     ctrl,
		Renderer: renderer,
		Screen:   &Screen{},
		Delay:    frameDelay(),
		logger:   logger,
	}
}

// RunLoop polls input, renders when the state is dirty and presents the
// current frame, sleeping one refresh interval per iteration. A render
// blocks the loop until it completes.
func (a *App) RunLoop() error {
	for {
		if a.Ctrl.HandleAll(a.PollEvents()) {
			return nil
		}

		frame, rendered, err := a.Renderer.Refresh(a.Ctrl)
		if err != nil {
			return err
		}
		if rendered {
			a.Screen.Upload(frame)
		}
		a.Screen.Draw()

		time.Sleep(a.Delay)
	}
}

// Offscreen runs fn with a hidden window's GL context current, so the gpu
// backend can render without presenting anything.
func Offscreen(width, height int, fn func() error) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(width), int32(height), DefaultTitle)
	if !rl.IsWindowReady() {
		return fmt.Errorf("%w: offscreen %dx%d", ErrWindow, width, height)
	}
	defer rl.CloseWindow()
	return fn()
}
