package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/mandelview/internal/control"
)

var keyMap = map[int32]control.Key{
	rl.KeyA:            control.KeyPanLeft,
	rl.KeyLeft:         control.KeyPanLeft,
	rl.KeyD:            control.KeyPanRight,
	rl.KeyRight:        control.KeyPanRight,
	rl.KeyW:            control.KeyPanUp,
	rl.KeyUp:           control.KeyPanUp,
	rl.KeyS:            control.KeyPanDown,
	rl.KeyDown:         control.KeyPanDown,
	rl.KeyZ:            control.KeyZoomIn,
	rl.KeyX:            control.KeyZoomOut,
	rl.KeyR:            control.KeyReset,
	rl.KeyB:            control.KeyMonochrome,
	rl.KeyComma:        control.KeyHalveIterations,
	rl.KeyPeriod:       control.KeyDoubleIterations,
	rl.KeyLeftBracket:  control.KeyPeriodicityDown,
	rl.KeyRightBracket: control.KeyPeriodicityUp,
	rl.KeyQ:            control.KeyQuit,
}

var buttonMap = map[rl.MouseButton]control.MouseButton{
	rl.MouseButtonLeft:   control.ButtonLeft,
	rl.MouseButtonMiddle: control.ButtonMiddle,
	rl.MouseButtonRight:  control.ButtonRight,
}

// PollEvents drains the input raylib gathered since the last frame.
func (a *App) PollEvents() []control.Event {
	var events []control.Event

	if rl.WindowShouldClose() {
		return append(events, control.Quit{})
	}

	minimized := rl.IsWindowMinimized()
	if a.wasMinimized && !minimized {
		events = append(events, control.Expose{})
	}
	a.wasMinimized = minimized

	if rl.IsWindowResized() {
		events = append(events, control.Resize{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()})
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if k, ok := keyMap[key]; ok {
			events = append(events, control.KeyDown{Key: k})
		}
	}

	for rb, b := range buttonMap {
		if rl.IsMouseButtonPressed(rb) {
			events = append(events, control.MouseDown{
				X:      float64(rl.GetMouseX()),
				Y:      float64(rl.GetMouseY()),
				Button: b,
			})
		}
	}

	if dy := rl.GetMouseWheelMove(); dy != 0 {
		events = append(events, control.Wheel{Delta: float64(dy)})
	}
	return events
}
