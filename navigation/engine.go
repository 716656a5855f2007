// Package navigation maps pointer and keyboard interaction onto a view of
// the complex plane.
//
// Screen coordinates are pixels with the origin at the top-left corner of
// the render target. World coordinates are points of the complex plane.
// A screen point p on a screen of size s maps to
//
//	origin + rotate((p - s/2) * scale)
//
// Every mutating operation computes its result on a copy and commits it in
// one assignment; inputs that would break the view (a zero-sized screen, a
// non-positive zoom factor) leave the state untouched.
package navigation

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gomandel/uniform"
)

// Engine owns the ViewState and keeps an attached binding set in sync
// with it.
type Engine struct {
	state    ViewState
	uniforms *Uniforms
}

// NewEngine returns an engine reset for a screen of the given size. A
// hidden or minimised window reports an empty screen; the view is then
// fitted to a single pixel until the first OnResize.
func NewEngine(screenSize mgl32.Vec2) *Engine {
	if !validScreen(screenSize) {
		slog.Debug("empty screen, using a unit screen", "screen", screenSize)
		screenSize = unitScreen
	}
	e := &Engine{}
	e.Reset(screenSize)
	return e
}

// Attach resolves u against l, makes it the engine's binding set and
// pushes the whole state. It returns the uniform names l could not
// resolve. Attach must be called again whenever the program is rebuilt.
func (e *Engine) Attach(u *Uniforms, l uniform.Locator) []string {
	missing := u.Create(l)
	e.uniforms = u
	e.pushAll()
	return missing
}

// Detach drops the binding set. Later changes are not pushed.
func (e *Engine) Detach() { e.uniforms = nil }

// State returns a copy of the current view.
func (e *Engine) State() ViewState { return e.state }

// Reset restores the default view of a DefaultWorldSpan wide square
// centred on 0 and the default colouring.
func (e *Engine) Reset(screenSize mgl32.Vec2) {
	scale, ok := fitScale(mgl32.Vec2{DefaultWorldSpan, DefaultWorldSpan}, screenSize)
	if !ok {
		slog.Debug("reset ignored", "screen", screenSize)
		return
	}
	e.state = ViewState{
		Scale:          scale,
		RotationAngle:  0,
		RotationVector: mgl32.Vec2{1, 0},
		MaxIterations:  DefaultIterations,
		ColorPeriod:    DefaultColorPeriod,
		Exponent:       DefaultExponent,
		Palette:        IdentityPalette(),
	}
	e.pushAll()
}

// UpdateScale fits worldSpan onto screenSize. The larger per-axis scale
// wins on both axes so the plane is never stretched.
func (e *Engine) UpdateScale(worldSpan, screenSize mgl32.Vec2) {
	scale, ok := fitScale(worldSpan, screenSize)
	if !ok {
		slog.Debug("scale update ignored", "span", worldSpan, "screen", screenSize)
		return
	}
	e.state.Scale = scale
	e.pushScale()
}

// OnResize keeps the world extent that was visible on oldScreenSize
// visible on newScreenSize. An empty oldScreenSize stands for the unit
// screen NewEngine falls back to.
func (e *Engine) OnResize(oldScreenSize, newScreenSize mgl32.Vec2) {
	if !validScreen(oldScreenSize) {
		oldScreenSize = unitScreen
	}
	e.UpdateScale(mulVec(e.state.Scale, oldScreenSize), newScreenSize)
}

// Pan moves the view by a screen-space delta. Dragging right moves the
// content right, so the origin moves left.
func (e *Engine) Pan(screenDelta mgl32.Vec2) {
	origin := e.state.Origin.Sub(e.rotate(mulVec(screenDelta, e.state.Scale)))
	if !finite(origin) {
		slog.Debug("pan ignored", "delta", screenDelta)
		return
	}
	e.state.Origin = origin
	e.pushOrigin()
}

// Zoom multiplies the scale by factor while keeping the world point under
// cursor fixed on screen. factor below 1 zooms in. A zoom that would take
// the scale below MinScale or the visible span past MaxWorldSpan is
// ignored.
func (e *Engine) Zoom(factor float32, cursor, screenSize mgl32.Vec2) {
	if !(factor > 0) || math32.IsInf(factor, 0) || !validScreen(screenSize) {
		slog.Debug("zoom ignored", "factor", factor, "screen", screenSize)
		return
	}
	before := e.ScreenToWorld(cursor, screenSize)

	next := e.state
	next.Scale = next.Scale.Mul(factor)
	if !zoomable(next.Scale, screenSize) {
		slog.Debug("zoom limit reached", "factor", factor, "scale", e.state.Scale)
		return
	}
	after := screenToWorld(&next, cursor, screenSize)
	next.Origin = next.Origin.Sub(after.Sub(before))
	if !finite(next.Origin) {
		slog.Debug("zoom ignored", "factor", factor, "origin", next.Origin)
		return
	}

	e.state = next
	e.pushScale()
	e.pushOrigin()
}

// ScreenToWorld returns the plane point drawn at screen position p.
func (e *Engine) ScreenToWorld(p, screenSize mgl32.Vec2) mgl32.Vec2 {
	return screenToWorld(&e.state, p, screenSize)
}

// SetRotation sets the view angle in radians.
func (e *Engine) SetRotation(angle float32) {
	e.state.RotationAngle, e.state.RotationVector = angle, rotationVector(angle)
	e.pushRotation()
}

// SetOrigin centres the view on a plane point. Non-finite points are
// ignored.
func (e *Engine) SetOrigin(p mgl32.Vec2) {
	if !finite(p) {
		return
	}
	e.state.Origin = p
	e.pushOrigin()
}

// SetMaxIterations clamps n to [MinIterations, MaxIterations].
func (e *Engine) SetMaxIterations(n int32) {
	n = min(max(n, MinIterations), MaxIterations)
	if n == e.state.MaxIterations {
		return
	}
	e.state.MaxIterations = n
	e.pushInt(e.uniformsOr().MaxIteration, n)
}

// SetColorPeriod clamps v to [MinColorPeriod, MaxColorPeriod].
func (e *Engine) SetColorPeriod(v float32) {
	v = mgl32.Clamp(v, MinColorPeriod, MaxColorPeriod)
	if v == e.state.ColorPeriod {
		return
	}
	e.state.ColorPeriod = v
	e.pushFloat(e.uniformsOr().ColorPeriod, v)
}

// SetExponent clamps v to [MinExponent, MaxExponent].
func (e *Engine) SetExponent(v float32) {
	v = mgl32.Clamp(v, MinExponent, MaxExponent)
	if v == e.state.Exponent {
		return
	}
	e.state.Exponent = v
	e.pushFloat(e.uniformsOr().Exponent, v)
}

// SetJuliaSet switches between the Mandelbrot and Julia iteration.
func (e *Engine) SetJuliaSet(on bool) {
	if on == e.state.UseJuliaSet {
		return
	}
	e.state.UseJuliaSet = on
	e.pushInt(e.uniformsOr().UseJuliaSet, boolInt(on))
}

// SetJuliaConstant clamps both components to [-JuliaBound, JuliaBound].
func (e *Engine) SetJuliaConstant(c mgl32.Vec2) {
	c = mgl32.Vec2{mgl32.Clamp(c[0], -JuliaBound, JuliaBound), mgl32.Clamp(c[1], -JuliaBound, JuliaBound)}
	if c == e.state.JuliaConstant {
		return
	}
	e.state.JuliaConstant = c
	e.pushJulia()
}

// SetPaletteColor replaces one palette colour.
func (e *Engine) SetPaletteColor(slot int, c mgl32.Vec3) error {
	next := e.state.Palette
	if err := next.SetColor(slot, c); err != nil {
		return err
	}
	if next == e.state.Palette {
		return nil
	}
	e.state.Palette = next
	e.pushPalette()
	return nil
}

func screenToWorld(s *ViewState, p, screenSize mgl32.Vec2) mgl32.Vec2 {
	centered := p.Sub(screenSize.Mul(0.5))
	return s.Origin.Add(rotateBy(s.RotationVector, mulVec(centered, s.Scale)))
}

func (e *Engine) rotate(v mgl32.Vec2) mgl32.Vec2 {
	return rotateBy(e.state.RotationVector, v)
}

// rotateBy rotates v by the unit vector r = (cos, sin).
func rotateBy(r, v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		v[0]*r[0] - v[1]*r[1],
		v[0]*r[1] + v[1]*r[0],
	}
}

func rotationVector(angle float32) mgl32.Vec2 {
	return mgl32.Vec2{math32.Cos(angle), math32.Sin(angle)}
}

// fitScale returns worldSpan/screenSize with both components raised to
// the larger of the two.
func fitScale(worldSpan, screenSize mgl32.Vec2) (mgl32.Vec2, bool) {
	if !validScreen(screenSize) {
		return mgl32.Vec2{}, false
	}
	s := math32.Max(worldSpan[0]/screenSize[0], worldSpan[1]/screenSize[1])
	if !validScale(s) {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{s, s}, true
}

// validScale reports whether s is a usable per-pixel scale. NaN fails
// the comparison.
func validScale(s float32) bool {
	return s >= MinScale && !math32.IsInf(s, 0)
}

// zoomable reports whether scale is valid on both axes and keeps the
// visible span on screenSize within MaxWorldSpan.
func zoomable(scale, screenSize mgl32.Vec2) bool {
	for i := range scale {
		if !validScale(scale[i]) || scale[i]*screenSize[i] > MaxWorldSpan {
			return false
		}
	}
	return true
}

func finite(v mgl32.Vec2) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// unitScreen stands in for an empty screen.
var unitScreen = mgl32.Vec2{1, 1}

func validScreen(s mgl32.Vec2) bool {
	return s[0] > 0 && s[1] > 0
}

func mulVec(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{a[0] * b[0], a[1] * b[1]}
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
