package renderer

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gomandel/controller"
	"github.com/richinsley/gomandel/glcall"
	"github.com/richinsley/gomandel/globject"
	"github.com/richinsley/gomandel/graphics"
	"github.com/richinsley/gomandel/navigation"
	"github.com/richinsley/gomandel/options"
	"github.com/richinsley/gomandel/overlay"
	"github.com/richinsley/gomandel/shader"
	"github.com/richinsley/gomandel/uniform"
)

var (
	glInitOnce sync.Once
	glInitErr  error
)

// Two triangles covering clip space, sharing the diagonal.
var (
	quadVertices = []float32{
		-1.0, 1.0,
		-1.0, -1.0,
		1.0, 1.0,
		1.0, -1.0,
	}
	quadIndices = []uint32{0, 1, 2, 1, 2, 3}
)

type Renderer struct {
	context graphics.Context
	options *options.Options

	vao globject.VertexArray
	vbo globject.Buffer
	ebo globject.Buffer

	program    *shader.Program
	engine     *navigation.Engine
	controller *controller.Controller
	panel      *overlay.KeyPanel
	watcher    *shader.Watcher
}

func NewRenderer(context graphics.Context, options *options.Options) (*Renderer, error) {
	context.MakeCurrent()
	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", glInitErr)
	}
	// errors raised while the context was being set up are not ours
	glcall.Clear()
	slog.Info("opengl initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)), "checked", glcall.Enabled)
	return &Renderer{context: context, options: options}, nil
}

// InitScene builds the quad, the program and the navigation state, and
// connects them to the window's events.
func (r *Renderer) InitScene() error {
	r.vao.Create()
	r.vao.Bind()
	if err := r.vbo.Create(gl.ARRAY_BUFFER, quadVertices, gl.STATIC_DRAW); err != nil {
		return fmt.Errorf("failed to create vertex buffer: %w", err)
	}
	r.vao.SetAndEnableVertex(0, 2, gl.FLOAT, false, 2*4, 0)
	if err := r.ebo.Create(gl.ELEMENT_ARRAY_BUFFER, quadIndices, gl.STATIC_DRAW); err != nil {
		return fmt.Errorf("failed to create index buffer: %w", err)
	}
	r.vao.Unbind()
	r.vbo.Unbind()

	src, err := shader.ReadSources(shader.VertexPath, shader.FragmentPath)
	if err != nil {
		return err
	}
	r.program, err = shader.Build(src)
	if err != nil {
		return err
	}

	width, height := r.context.GetFramebufferSize()
	if width <= 0 || height <= 0 {
		slog.Debug("framebuffer not ready, using requested size", "width", width, "height", height)
		width, height = *r.options.Width, *r.options.Height
	}
	r.engine = navigation.NewEngine(mgl32.Vec2{float32(width), float32(height)})
	r.panel = overlay.NewKeyPanel(r.context.SetTitle)
	r.controller = controller.New(r.engine, width, height,
		controller.WithCursor(r.context.CursorPos),
		controller.WithCapture(r.panel.WantCaptureMouse),
		controller.WithViewport(func(w, h int32) {
			gl.Viewport(0, 0, w, h)
			glcall.Check("Viewport")
		}),
		controller.WithSwapInterval(r.context.SetSwapInterval, *r.options.VSync),
	)
	r.attach()

	r.context.AddHandler(r.controller)
	r.context.AddHandler(r.panel)

	gl.Viewport(0, 0, int32(width), int32(height))
	glcall.Check("Viewport")
	if *r.options.VSync {
		r.context.SetSwapInterval(1)
	} else {
		r.context.SetSwapInterval(0)
	}

	if *r.options.Watch {
		r.watcher, err = shader.NewWatcher(shader.VertexPath, shader.FragmentPath)
		if err != nil {
			return err
		}
		slog.Info("watching shader sources", "vertex", shader.VertexPath, "fragment", shader.FragmentPath)
	}
	return nil
}

// attach binds the current program and points every uniform binding at
// it.
func (r *Renderer) attach() {
	r.program.Bind()
	pushers := uniform.GL()
	missing := r.engine.Attach(navigation.NewUniforms(pushers), r.program)
	if !r.controller.Attach(r.program, pushers) {
		missing = append(missing, controller.UniformScreenSize)
	}
	if len(missing) > 0 {
		slog.Debug("uniforms left unbound", "names", missing)
	}
}

// reload rebuilds the program from disk. A source that fails to build is
// reported and the running program is kept.
func (r *Renderer) reload() {
	src, err := shader.ReadSources(shader.VertexPath, shader.FragmentPath)
	if err != nil {
		slog.Error("shader reload", "error", err)
		return
	}
	p, err := shader.Build(src)
	if err != nil {
		slog.Error("shader reload", "error", err)
		return
	}
	r.engine.Detach()
	r.program.Destroy()
	r.program = p
	r.attach()
	slog.Info("shader reloaded")
}

func (r *Renderer) draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	glcall.Check("Clear")
	r.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, nil)
	glcall.Check("DrawElements")
	r.vao.Unbind()
}

// Run draws until the window is closed. Events are handled between frames
// on this goroutine.
func (r *Renderer) Run() {
	last := r.context.Time()
	var frameTime time.Duration
	for !r.context.ShouldClose() {
		if r.watcher != nil && r.watcher.Changed() {
			r.reload()
		}

		r.draw()
		r.controller.DrawOverlay(r.panel, frameTime)
		r.context.EndFrame()

		now := r.context.Time()
		frameTime = secondsToDuration(now - last)
		last = now
	}
}

func secondsToDuration(s float64) time.Duration {
	if s < 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}

func (r *Renderer) Shutdown() {
	if r.watcher != nil {
		if err := r.watcher.Close(); err != nil {
			slog.Warn("closing shader watcher", "error", err)
		}
	}
	if r.engine != nil {
		r.engine.Detach()
	}
	if r.program != nil {
		r.program.Destroy()
	}
	r.ebo.Destroy()
	r.vbo.Destroy()
	r.vao.Destroy()
	r.context.Shutdown()
}
