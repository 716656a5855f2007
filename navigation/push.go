package navigation

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gomandel/uniform"
)

// detached stands in for a missing binding set so setters can name a
// binding without a nil check.
var detached = &Uniforms{}

func (e *Engine) uniformsOr() *Uniforms {
	if e.uniforms == nil {
		return detached
	}
	return e.uniforms
}

func (e *Engine) pushFloat(u *uniform.Vec[float32], v float32) {
	if u != nil {
		u.Set(v)
	}
}

func (e *Engine) pushInt(u *uniform.Vec[int32], v int32) {
	if u != nil {
		u.Set(v)
	}
}

func (e *Engine) pushVec2(u *uniform.Vec[float32], v mgl32.Vec2) {
	if u != nil {
		u.Set(v[0], v[1])
	}
}

func (e *Engine) pushOrigin()   { e.pushVec2(e.uniformsOr().StartPos, e.state.Origin) }
func (e *Engine) pushScale()    { e.pushVec2(e.uniformsOr().Increment, e.state.Scale) }
func (e *Engine) pushRotation() { e.pushVec2(e.uniformsOr().Rotation, e.state.RotationVector) }
func (e *Engine) pushJulia()    { e.pushVec2(e.uniformsOr().JuliaConstant, e.state.JuliaConstant) }

func (e *Engine) pushPalette() {
	u := e.uniformsOr().ColorPalette
	if u == nil {
		return
	}
	if err := u.SetVec(e.state.Palette.Floats()); err != nil {
		slog.Error("palette push", "error", err)
	}
}

func (e *Engine) pushAll() {
	if e.uniforms == nil {
		return
	}
	u := e.uniforms
	e.pushOrigin()
	e.pushScale()
	e.pushRotation()
	e.pushInt(u.MaxIteration, e.state.MaxIterations)
	e.pushPalette()
	e.pushJulia()
	e.pushInt(u.UseJuliaSet, boolInt(e.state.UseJuliaSet))
	e.pushFloat(u.Exponent, e.state.Exponent)
	e.pushFloat(u.ColorPeriod, e.state.ColorPeriod)
}
