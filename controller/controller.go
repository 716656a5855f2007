// Package controller turns window events into navigation calls and keeps
// the overlay panel in step with the view.
package controller

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gomandel/graphics"
	"github.com/richinsley/gomandel/navigation"
	"github.com/richinsley/gomandel/uniform"
)

// UniformScreenSize is the shader uniform holding the framebuffer size.
const UniformScreenSize = "u_vScreenSize"

// Zoom factors applied per Up and Down key event.
const (
	ZoomInFactor  = 0.99
	ZoomOutFactor = 1.01
)

// Controller holds the transient interaction state: the framebuffer size,
// whether the pointer is dragging and where it was last seen. The view
// itself belongs to the engine.
type Controller struct {
	engine *navigation.Engine
	screen mgl32.Vec2

	screenSize *uniform.Vec[int32]

	cursor       func() (float64, float64)
	captured     func() bool
	viewport     func(width, height int32)
	swapInterval func(interval int)
	vsync        bool

	dragging bool
	last     mgl32.Vec2
	pointer  mgl32.Vec2
}

var _ graphics.EventHandler = (*Controller)(nil)

// Option configures a Controller.
type Option func(*Controller)

// WithCursor sets the source of the current pointer position. Without it
// the last position seen by OnCursorPos is used.
func WithCursor(f func() (float64, float64)) Option {
	return func(c *Controller) { c.cursor = f }
}

// WithCapture sets the overlay's capture signal. While it reports true a
// drag cannot start.
func WithCapture(f func() bool) Option {
	return func(c *Controller) { c.captured = f }
}

// WithViewport sets the function called with the new framebuffer size,
// normally gl.Viewport bound to the origin.
func WithViewport(f func(width, height int32)) Option {
	return func(c *Controller) { c.viewport = f }
}

// WithSwapInterval sets the vsync switch and its initial state.
func WithSwapInterval(f func(interval int), vsync bool) Option {
	return func(c *Controller) {
		c.swapInterval = f
		c.vsync = vsync
	}
}

// New returns a controller for engine on a framebuffer of width by height
// pixels.
func New(engine *navigation.Engine, width, height int, opts ...Option) *Controller {
	c := &Controller{engine: engine}
	if width > 0 && height > 0 {
		c.screen = mgl32.Vec2{float32(width), float32(height)}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attach creates the screen-size binding against l and pushes the current
// size. Like the engine bindings it must be redone when the program is
// rebuilt.
func (c *Controller) Attach(l uniform.Locator, p uniform.Pushers) bool {
	c.screenSize = uniform.New2(p.Int2)
	ok := c.screenSize.Create(l, UniformScreenSize)
	c.pushScreen()
	return ok
}

// ScreenSize returns the current framebuffer size.
func (c *Controller) ScreenSize() mgl32.Vec2 { return c.screen }

// Dragging reports whether a pan drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// OnFramebufferSize rescales the view to the new size. A minimised window
// reports 0x0; that size is not recorded so restoring resizes from the
// last real size.
func (c *Controller) OnFramebufferSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	next := mgl32.Vec2{float32(width), float32(height)}
	c.engine.OnResize(c.screen, next)
	c.screen = next
	c.pushScreen()
	if c.viewport != nil {
		c.viewport(int32(width), int32(height))
	}
}

// OnCursorPos pans by the pointer movement while dragging.
func (c *Controller) OnCursorPos(x, y float64) {
	c.pointer = mgl32.Vec2{float32(x), float32(y)}
	if !c.dragging {
		return
	}
	c.engine.Pan(c.pointer.Sub(c.last))
	c.last = c.pointer
}

// OnMouseButton starts and stops a drag with the left button. A press is
// ignored while the overlay captures the pointer; a release always ends
// the drag.
func (c *Controller) OnMouseButton(button graphics.MouseButton, action graphics.Action) {
	if button != graphics.MouseLeft {
		return
	}
	switch action {
	case graphics.Press:
		if c.captured != nil && c.captured() {
			return
		}
		c.dragging = true
		c.last = c.cursorPos()
	case graphics.Release:
		c.dragging = false
	}
}

// OnKey zooms toward the pointer with Up and away with Down.
func (c *Controller) OnKey(key graphics.Key, action graphics.Action) {
	if action == graphics.Release {
		return
	}
	switch key {
	case graphics.KeyUp:
		c.engine.Zoom(ZoomInFactor, c.cursorPos(), c.screen)
	case graphics.KeyDown:
		c.engine.Zoom(ZoomOutFactor, c.cursorPos(), c.screen)
	}
}

func (c *Controller) cursorPos() mgl32.Vec2 {
	if c.cursor == nil {
		return c.pointer
	}
	x, y := c.cursor()
	return mgl32.Vec2{float32(x), float32(y)}
}

func (c *Controller) pushScreen() {
	if c.screenSize == nil {
		return
	}
	c.screenSize.Set(int32(c.screen[0]), int32(c.screen[1]))
}
