package control

type Key int

const (
	KeyNone Key = iota
	KeyPanLeft
	KeyPanRight
	KeyPanUp
	KeyPanDown
	KeyZoomIn
	KeyZoomOut
	KeyReset
	KeyMonochrome
	KeyHalveIterations
	KeyDoubleIterations
	KeyPeriodicityDown
	KeyPeriodicityUp
	KeyQuit
)

var keyNames = map[Key]string{
	KeyNone:             "none",
	KeyPanLeft:          "pan-left",
	KeyPanRight:         "pan-right",
	KeyPanUp:            "pan-up",
	KeyPanDown:          "pan-down",
	KeyZoomIn:           "zoom-in",
	KeyZoomOut:          "zoom-out",
	KeyReset:            "reset",
	KeyMonochrome:       "monochrome",
	KeyHalveIterations:  "halve-iterations",
	KeyDoubleIterations: "double-iterations",
	KeyPeriodicityDown:  "periodicity-down",
	KeyPeriodicityUp:    "periodicity-up",
	KeyQuit:             "quit",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// KeyFromRune maps the character keys shared by every frontend.
func KeyFromRune(r rune) Key {
	switch r {
	case 'a', 'A':
		return KeyPanLeft
	case 'd', 'D':
		return KeyPanRight
	case 'w', 'W':
		return KeyPanUp
	case 's', 'S':
		return KeyPanDown
	case 'z', 'Z':
		return KeyZoomIn
	case 'x', 'X':
		return KeyZoomOut
	case 'r', 'R':
		return KeyReset
	case 'b', 'B':
		return KeyMonochrome
	case ',':
		return KeyHalveIterations
	case '.':
		return KeyDoubleIterations
	case '[':
		return KeyPeriodicityDown
	case ']':
		return KeyPeriodicityUp
	}
	return KeyNone
}

type MouseButton int

const (
	ButtonLeft MouseButton = iota + 1
	ButtonMiddle
	ButtonRight
)

// Event is a discrete input from a window or terminal.
type Event interface {
	event()
}

type Quit struct{}

type Resize struct {
	Width, Height int
}

// Expose reports that the window contents were lost and must be redrawn.
type Expose struct{}

type KeyDown struct {
	Key Key
}

type MouseDown struct {
	X, Y   float64
	Button MouseButton
}

// Wheel carries vertical scroll; positive is away from the user.
type Wheel struct {
	Delta float64
}

func (Quit) event()      {}
func (Resize) event()    {}
func (Expose) event()    {}
func (KeyDown) event()   {}
func (MouseDown) event() {}
func (Wheel) event()     {}
