// Package tui runs the viewer in a terminal.
//
// Each terminal cell shows two vertically stacked pixels. Keys and mouse
// map onto the same controller the window uses; q, Escape and ctrl+c quit.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/mandelview/internal/control"
	"github.com/san-kum/mandelview/internal/render"
)

// statusLines is the number of terminal rows below the image.
const statusLines = 2

type Model struct {
	ctrl     *control.Controller
	renderer *render.Renderer

	image  string
	err    error
	sized  bool
	width  int
	height int
}

func New(ctrl *control.Controller, renderer *render.Renderer) *Model {
	return &Model{ctrl: ctrl, renderer: renderer}
}

// Run blocks until the user quits.
func Run(ctrl *control.Controller, renderer *render.Renderer) error {
	m := New(ctrl, renderer)
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(*Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var ev control.Event

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w, h := msg.Width, 2*(msg.Height-statusLines)
		if w < 1 || h < 1 {
			return m, nil
		}
		if !m.sized {
			m.fit(w, h)
			m.sized = true
			m.ctrl.MarkDirty()
		} else {
			ev = control.Resize{Width: w, Height: h}
		}
	case tea.KeyMsg:
		ev = keyEvent(msg)
	case tea.MouseMsg:
		ev = mouseEvent(msg)
	}

	if ev != nil && m.ctrl.Handle(ev) {
		return m, tea.Quit
	}
	if !m.sized {
		return m, nil
	}

	frame, rendered, err := m.renderer.Refresh(m.ctrl)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	if rendered {
		m.image = Cells(frame)
	}
	return m, nil
}

// fit sizes the viewport to the terminal while keeping the plane region
// chosen at startup in view.
func (m *Model) fit(w, h int) {
	view := m.ctrl.View()
	spanW := float64(view.Width) * view.Scale
	spanH := float64(view.Height) * view.Scale
	if err := view.Resize(w, h); err != nil {
		return
	}
	view.Scale = math.Max(spanW/float64(w), spanH/float64(h))
}

func keyEvent(msg tea.KeyMsg) control.Event {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return control.Quit{}
	case "left":
		return control.KeyDown{Key: control.KeyPanLeft}
	case "right":
		return control.KeyDown{Key: control.KeyPanRight}
	case "up":
		return control.KeyDown{Key: control.KeyPanUp}
	case "down":
		return control.KeyDown{Key: control.KeyPanDown}
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if k := control.KeyFromRune(msg.Runes[0]); k != control.KeyNone {
			return control.KeyDown{Key: k}
		}
	}
	return nil
}

func mouseEvent(msg tea.MouseMsg) control.Event {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return control.Wheel{Delta: 1}
	case tea.MouseButtonWheelDown:
		return control.Wheel{Delta: -1}
	case tea.MouseButtonLeft:
		return control.MouseDown{X: float64(msg.X), Y: float64(2 * msg.Y), Button: control.ButtonLeft}
	case tea.MouseButtonRight:
		return control.MouseDown{X: float64(msg.X), Y: float64(2 * msg.Y), Button: control.ButtonRight}
	}
	return nil
}

func (m *Model) View() string {
	if !m.sized {
		return dim.Render("waiting for terminal size...")
	}

	var sb strings.Builder
	sb.WriteString(m.image)
	sb.WriteString("\n")
	sb.WriteString(m.status())
	sb.WriteString("\n")
	sb.WriteString(dim.Render("wasd/arrows pan · z/x zoom · r reset · b mono · ,/. iterations · [/] periodicity · click recenter · q quit"))
	return sb.String()
}

func (m *Model) status() string {
	view, params, st := m.ctrl.View(), m.ctrl.Params(), m.renderer.Last()

	mode := cyan.Render("color")
	if params.Monochrome {
		mode = white.Render("mono")
	}
	parts := []string{
		magenta.Render(st.Backend),
		fmt.Sprintf("%s %s", dim.Render("center"), white.Render(fmt.Sprintf("%.6g%+.6gi", view.CenterX, view.CenterY))),
		fmt.Sprintf("%s %s", dim.Render("scale"), white.Render(fmt.Sprintf("%.3e", view.Scale))),
		fmt.Sprintf("%s %s", dim.Render("iter"), yellow.Render(fmt.Sprint(params.MaxIterations))),
		fmt.Sprintf("%s %s", dim.Render("period"), yellow.Render(fmt.Sprint(params.Periodicity))),
		mode,
		fmt.Sprintf("%s %s", dim.Render("took"), white.Render(st.Duration.Round(time.Microsecond).String())),
		fmt.Sprintf("%s %s", dim.Render("avg"), white.Render(average(m.renderer.History()).Round(time.Microsecond).String())),
	}
	if m.err != nil {
		parts = append(parts, red.Render(m.err.Error()))
	}
	return statusBar.Width(max(m.width, 1)).Render(strings.Join(parts, "  "))
}

func average(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range ds {
		sum += d
	}
	return sum / time.Duration(len(ds))
}
