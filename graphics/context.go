package graphics

// Context defines the interface for an OpenGL context and the window that
// owns it.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	// EndFrame presents the frame and then polls events, so event handlers
	// run before the next frame is drawn.
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// CursorPos returns the pointer position in framebuffer pixels,
	// measured from the top-left corner.
	CursorPos() (float64, float64)
	SetSwapInterval(interval int)
	SetTitle(title string)
	// AddHandler registers h for window events. Handlers run in the order
	// they were added.
	AddHandler(h EventHandler)
}
