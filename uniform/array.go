package uniform

import (
	"errors"
	"fmt"

	"github.com/richinsley/gomandel/glcall"
)

// ErrArrayLength is returned when SetVec is given a buffer of the wrong size.
var ErrArrayLength = errors.New("uniform: array length mismatch")

// Array is a fixed-size uniform array such as vec3[3]. The local buffer
// holds count*components values laid out element by element.
type Array[T Scalar] struct {
	binding
	components int
	buf        []T
	push       func(loc int32, count int32, v *T)
}

var _ Binding = (*Array[float32])(nil)

// NewArray returns an array of count elements of components values each,
// pushed with f, e.g. gl.Uniform3fv.
func NewArray[T Scalar](count, components int, f func(loc int32, count int32, v *T)) *Array[T] {
	if count <= 0 || components < 1 || components > 4 {
		panic(fmt.Sprintf("uniform: invalid array shape %dx%d", count, components))
	}
	return &Array[T]{
		binding:    unbound(),
		components: components,
		buf:        make([]T, count*components),
		push:       f,
	}
}

// Count returns the number of elements.
func (a *Array[T]) Count() int { return len(a.buf) / a.components }

// Vec returns a copy of the local buffer.
func (a *Array[T]) Vec() []T {
	out := make([]T, len(a.buf))
	copy(out, a.buf)
	return out
}

// SetVec copies v over the whole local buffer and pushes it.
func (a *Array[T]) SetVec(v []T) error {
	if len(v) != len(a.buf) {
		return fmt.Errorf("%w: got %d values, want %d", ErrArrayLength, len(v), len(a.buf))
	}
	copy(a.buf, v)
	a.Update()
	return nil
}

func (a *Array[T]) Update() {
	a.push(a.loc, int32(a.Count()), &a.buf[0])
	glcall.Check("UniformArray")
}
