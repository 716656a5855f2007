package controller

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gomandel/graphics"
	"github.com/richinsley/gomandel/navigation"
	"github.com/richinsley/gomandel/overlay"
	"github.com/richinsley/gomandel/uniform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var screen = mgl32.Vec2{640, 480}

func newController(opts ...Option) (*Controller, *navigation.Engine) {
	e := navigation.NewEngine(screen)
	return New(e, int(screen[0]), int(screen[1]), opts...), e
}

type locator map[string]int32

func (l locator) UniformLocation(name string) int32 {
	if loc, ok := l[name]; ok {
		return loc
	}
	return -1
}

func TestFramebufferSize(t *testing.T) {
	var viewports [][2]int32
	c, e := newController(WithViewport(func(w, h int32) {
		viewports = append(viewports, [2]int32{w, h})
	}))
	before := e.State().Scale

	c.OnFramebufferSize(1280, 960)
	assert.Equal(t, mgl32.Vec2{1280, 960}, c.ScreenSize())
	assert.InDelta(t, before[0]/2, e.State().Scale[0], 1e-9)
	assert.Equal(t, [][2]int32{{1280, 960}}, viewports)

	c.OnFramebufferSize(0, 0)
	assert.Equal(t, mgl32.Vec2{1280, 960}, c.ScreenSize())
	assert.Len(t, viewports, 1)
}

func TestFramebufferSizeFromHiddenWindow(t *testing.T) {
	e := navigation.NewEngine(mgl32.Vec2{})
	c := New(e, 0, 0)
	assert.Equal(t, mgl32.Vec2{}, c.ScreenSize())

	c.OnFramebufferSize(800, 600)
	assert.Equal(t, mgl32.Vec2{800, 600}, c.ScreenSize())
	assert.Equal(t, mgl32.Vec2{4.0 / 600, 4.0 / 600}, e.State().Scale)

	c.OnFramebufferSize(400, 300)
	assert.InDelta(t, 8.0/600, e.State().Scale[0], 1e-7)
}

func TestScreenSizeUniform(t *testing.T) {
	var pushed [][3]int32
	p := uniform.Pushers{Int2: func(loc int32, v0, v1 int32) {
		pushed = append(pushed, [3]int32{loc, v0, v1})
	}}
	c, _ := newController()

	require.True(t, c.Attach(locator{UniformScreenSize: 3}, p))
	c.OnFramebufferSize(800, 600)
	assert.Equal(t, [][3]int32{{3, 640, 480}, {3, 800, 600}}, pushed)

	assert.False(t, c.Attach(locator{}, p))
}

func TestDragPans(t *testing.T) {
	c, e := newController()
	twin := navigation.NewEngine(screen)

	c.OnCursorPos(100, 100)
	assert.Equal(t, e.State(), twin.State())

	c.OnMouseButton(graphics.MouseLeft, graphics.Press)
	require.True(t, c.Dragging())
	c.OnCursorPos(110, 95)
	c.OnCursorPos(130, 95)
	twin.Pan(mgl32.Vec2{10, -5})
	twin.Pan(mgl32.Vec2{20, 0})
	assert.Equal(t, twin.State().Origin, e.State().Origin)

	c.OnMouseButton(graphics.MouseLeft, graphics.Release)
	c.OnCursorPos(300, 300)
	assert.False(t, c.Dragging())
	assert.Equal(t, twin.State().Origin, e.State().Origin)
}

func TestDragIgnoresOtherButtons(t *testing.T) {
	c, _ := newController()
	c.OnMouseButton(graphics.MouseRight, graphics.Press)
	assert.False(t, c.Dragging())
}

func TestCapturedPressDoesNotDrag(t *testing.T) {
	captured := true
	c, e := newController(WithCapture(func() bool { return captured }))
	origin := e.State().Origin

	c.OnMouseButton(graphics.MouseLeft, graphics.Press)
	c.OnCursorPos(50, 50)
	assert.False(t, c.Dragging())
	assert.Equal(t, origin, e.State().Origin)

	captured = false
	c.OnMouseButton(graphics.MouseLeft, graphics.Press)
	assert.True(t, c.Dragging())
	captured = true
	c.OnMouseButton(graphics.MouseLeft, graphics.Release)
	assert.False(t, c.Dragging())
}

func TestKeyZoom(t *testing.T) {
	cursor := mgl32.Vec2{200, 100}
	c, e := newController(WithCursor(func() (float64, float64) {
		return float64(cursor[0]), float64(cursor[1])
	}))
	twin := navigation.NewEngine(screen)

	c.OnKey(graphics.KeyUp, graphics.Press)
	twin.Zoom(ZoomInFactor, cursor, screen)
	assert.Equal(t, twin.State(), e.State())

	c.OnKey(graphics.KeyUp, graphics.Release)
	assert.Equal(t, twin.State(), e.State())

	c.OnKey(graphics.KeyDown, graphics.Repeat)
	twin.Zoom(ZoomOutFactor, cursor, screen)
	assert.Equal(t, twin.State(), e.State())

	c.OnKey(graphics.KeyLeft, graphics.Press)
	assert.Equal(t, twin.State(), e.State())
}

func TestKeyZoomFallsBackToPointer(t *testing.T) {
	c, e := newController()
	twin := navigation.NewEngine(screen)

	c.OnCursorPos(10, 20)
	c.OnKey(graphics.KeyUp, graphics.Press)
	twin.Zoom(ZoomInFactor, mgl32.Vec2{10, 20}, screen)
	assert.Equal(t, twin.State(), e.State())
}

func TestOverlayEditsEngine(t *testing.T) {
	var interval []int
	c, e := newController(WithSwapInterval(func(i int) { interval = append(interval, i) }, true))
	panel := overlay.NewKeyPanel(nil)
	draw := func(keys ...graphics.Key) {
		for _, k := range keys {
			panel.OnKey(k, graphics.Press)
		}
		c.DrawOverlay(panel, 16*time.Millisecond)
	}

	draw()
	assert.Contains(t, panel.Status(), "> [Reset Angle]")
	assert.Contains(t, panel.Status(), "16.000 ms (62.5 FPS)")

	// Angle slider
	draw(graphics.KeyTab)
	draw(graphics.KeyRight)
	assert.InDelta(t, 2*mgl32.DegToRad(180)/100, e.State().RotationAngle, 1e-6)

	// Max Iteration slider
	draw(graphics.KeyTab)
	draw(graphics.KeyRight)
	assert.Equal(t, int32(130), e.State().MaxIterations)

	// Reset Mandel
	draw(graphics.KeyTab)
	draw(graphics.KeyEnter)
	assert.Equal(t, navigation.NewEngine(screen).State(), e.State())

	// ColorPalette[0], green channel
	draw(graphics.KeyTab)
	draw(graphics.KeySpace, graphics.KeyRight)
	green, err := e.State().Palette.Color(0)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 1.0 / 32, 0}, green)

	// Period slider, then its reset button
	draw(graphics.KeyTab, graphics.KeyTab, graphics.KeyTab, graphics.KeyTab)
	assert.Contains(t, panel.Status(), "> Period")
	draw(graphics.KeyLeft)
	assert.InDelta(t, 0.08, e.State().ColorPeriod, 1e-6)
	draw(graphics.KeyTab, graphics.KeyTab, graphics.KeyTab, graphics.KeyTab, graphics.KeyTab, graphics.KeyTab, graphics.KeyTab, graphics.KeyTab, graphics.KeyTab, graphics.KeyTab, graphics.KeyTab, graphics.KeyTab)
	assert.Contains(t, panel.Status(), "> [Reset Period]")
	draw(graphics.KeyEnter)
	assert.InDelta(t, navigation.DefaultColorPeriod, e.State().ColorPeriod, 1e-6)
}

func TestOverlayJuliaAndVSync(t *testing.T) {
	var interval []int
	c, e := newController(WithSwapInterval(func(i int) { interval = append(interval, i) }, true))
	panel := overlay.NewKeyPanel(nil)
	draw := func(keys ...graphics.Key) {
		for _, k := range keys {
			panel.OnKey(k, graphics.Press)
		}
		c.DrawOverlay(panel, 0)
	}
	tabs := func(n int) []graphics.Key {
		keys := make([]graphics.Key, n)
		for i := range keys {
			keys[i] = graphics.KeyTab
		}
		return keys
	}

	draw()
	assert.Contains(t, panel.Status(), "0.000 ms (0.0 FPS)")

	// Julia Set is the twelfth widget
	draw(tabs(11)...)
	assert.Contains(t, panel.Status(), "> Julia Set: off")
	draw(graphics.KeySpace)
	assert.True(t, e.State().UseJuliaSet)

	draw(graphics.KeyTab)
	assert.Contains(t, panel.Status(), "> Julia Constant x")
	draw(graphics.KeyRight)
	assert.InDelta(t, 0.04, e.State().JuliaConstant[0], 1e-6)

	draw(tabs(2)...)
	assert.Contains(t, panel.Status(), "> FPS Lock: on")
	draw(graphics.KeyEnter)
	assert.Equal(t, []int{0}, interval)
}
