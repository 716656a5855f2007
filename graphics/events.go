package graphics

// Action is the state change of a key or mouse button.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Key identifies the keys the application reacts to. Keys it has no use
// for arrive as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyEnter
	KeySpace
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyTab:
		return "Tab"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	}
	return "Unknown"
}

// EventHandler receives window events on the thread that polls them.
type EventHandler interface {
	// OnFramebufferSize is called with the new framebuffer size in pixels.
	// A minimised window reports 0x0.
	OnFramebufferSize(width, height int)
	// OnCursorPos is called with the pointer position in framebuffer pixels.
	OnCursorPos(x, y float64)
	OnMouseButton(button MouseButton, action Action)
	OnKey(key Key, action Action)
}

// NopHandler ignores every event. Embed it to handle only some events.
type NopHandler struct{}

func (NopHandler) OnFramebufferSize(int, int)        {}
func (NopHandler) OnCursorPos(float64, float64)      {}
func (NopHandler) OnMouseButton(MouseButton, Action) {}
func (NopHandler) OnKey(Key, Action)                 {}
