package navigation

import (
	"github.com/richinsley/gomandel/uniform"
)

// Shader uniform names fed from a ViewState.
const (
	UniformStartPos      = "u_vStartPos"
	UniformIncrement     = "u_vIncrement"
	UniformRotation      = "u_vRotationVec"
	UniformMaxIteration  = "u_maxIteration"
	UniformColorPalette  = "u_vColorPalette"
	UniformJuliaConstant = "u_vJuliaConstant"
	UniformUseJuliaSet   = "u_bUseJuliaSet"
	UniformExponent      = "u_exponent"
	UniformColorPeriod   = "u_colorPeriod"
)

// Uniforms is the binding set for one shader program.
type Uniforms struct {
	StartPos      *uniform.Vec[float32]
	Increment     *uniform.Vec[float32]
	Rotation      *uniform.Vec[float32]
	MaxIteration  *uniform.Vec[int32]
	ColorPalette  *uniform.Array[float32]
	JuliaConstant *uniform.Vec[float32]
	UseJuliaSet   *uniform.Vec[int32]
	Exponent      *uniform.Vec[float32]
	ColorPeriod   *uniform.Vec[float32]
}

// NewUniforms builds an unresolved binding set pushing through p.
func NewUniforms(p uniform.Pushers) *Uniforms {
	return &Uniforms{
		StartPos:      uniform.New2(p.Float2),
		Increment:     uniform.New2(p.Float2),
		Rotation:      uniform.New2(p.Float2),
		MaxIteration:  uniform.New1(p.Int1),
		ColorPalette:  uniform.NewArray(PaletteSlots, 3, p.Float3Of),
		JuliaConstant: uniform.New2(p.Float2),
		UseJuliaSet:   uniform.New1(p.Int1),
		Exponent:      uniform.New1(p.Float1),
		ColorPeriod:   uniform.New1(p.Float1),
	}
}

func (u *Uniforms) bindings() map[string]uniform.Binding {
	return map[string]uniform.Binding{
		UniformStartPos:      u.StartPos,
		UniformIncrement:     u.Increment,
		UniformRotation:      u.Rotation,
		UniformMaxIteration:  u.MaxIteration,
		UniformColorPalette:  u.ColorPalette,
		UniformJuliaConstant: u.JuliaConstant,
		UniformUseJuliaSet:   u.UseJuliaSet,
		UniformExponent:      u.Exponent,
		UniformColorPeriod:   u.ColorPeriod,
	}
}

// Create resolves every binding against l and returns the names the
// program does not expose.
func (u *Uniforms) Create(l uniform.Locator) []string {
	return uniform.CreateAll(l, u.bindings())
}
