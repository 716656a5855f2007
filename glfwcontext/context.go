package glfwcontext

import (
	"log/slog"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gomandel/graphics"
	options "github.com/richinsley/gomandel/options"
)

// Context is a GLFW window with a current OpenGL 4.1 core context.
type Context struct {
	window   *glfw.Window
	handlers []graphics.EventHandler
}

var _ graphics.Context = (*Context)(nil)

// New creates the window and its GL context. A hidden window is used when
// rendering offscreen.
func New(options *options.Options, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*options.Width, *options.Height, "Mandel", nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win}

	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	win.SetKeyCallback(c.glfwKeyCallback)

	return c, nil
}

// AddHandler registers h for window events.
func (c *Context) AddHandler(h graphics.EventHandler) {
	c.handlers = append(c.handlers, h)
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	for _, h := range c.handlers {
		h.OnFramebufferSize(width, height)
	}
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	x, y := c.toFramebuffer(xpos, ypos)
	for _, h := range c.handlers {
		h.OnCursorPos(x, y)
	}
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := mouseButton(button)
	if !ok {
		return
	}
	for _, h := range c.handlers {
		h.OnMouseButton(b, convertAction(action))
	}
}

// glfwKeyCallback closes the window on Escape and forwards every key to the
// registered handlers.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	k := convertKey(key)
	a := convertAction(action)
	for _, h := range c.handlers {
		h.OnKey(k, a)
	}
}

// toFramebuffer converts window coordinates to framebuffer pixels. They
// differ on high-DPI displays.
func (c *Context) toFramebuffer(x, y float64) (float64, float64) {
	fbWidth, fbHeight := c.GetFramebufferSize()
	winWidth, winHeight := c.window.GetSize()
	var scaleX, scaleY float64 = 1.0, 1.0
	if winWidth > 0 && winHeight > 0 {
		scaleX = float64(fbWidth) / float64(winWidth)
		scaleY = float64(fbHeight) / float64(winHeight)
	}
	return x * scaleX, y * scaleY
}

// CursorPos implements the method for the graphics.Context interface.
func (c *Context) CursorPos() (float64, float64) {
	if c.window == nil {
		return 0, 0
	}
	return c.toFramebuffer(c.window.GetCursorPos())
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (c *Context) SetTitle(title string) {
	c.window.SetTitle(title)
}

// Shutdown only destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	slog.Info("GLFW initialized", "version", glfw.GetVersionString())
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	slog.Info("GLFW terminated")
}
