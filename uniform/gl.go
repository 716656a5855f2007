package uniform

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Pushers is the set of typed push functions a binding set is built from.
// Production code uses GL(); tests substitute recorders.
type Pushers struct {
	Float1   func(loc int32, v0 float32)
	Float2   func(loc int32, v0, v1 float32)
	Int1     func(loc int32, v0 int32)
	Int2     func(loc int32, v0, v1 int32)
	Float3Of func(loc int32, count int32, v *float32)
}

// GL returns pushers calling straight into the current GL context.
func GL() Pushers {
	return Pushers{
		Float1:   gl.Uniform1f,
		Float2:   gl.Uniform2f,
		Int1:     gl.Uniform1i,
		Int2:     gl.Uniform2i,
		Float3Of: gl.Uniform3fv,
	}
}
