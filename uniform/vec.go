package uniform

import (
	"github.com/richinsley/gomandel/glcall"
)

// Vec is a uniform of one to four components. The local value is always
// four wide; New1..New4 fix how many leading components are pushed.
//
// There is no constructor for more than four components, so a wider
// vector cannot be built.
type Vec[T Scalar] struct {
	binding
	size int
	vec  [4]T
	push func(loc int32, v [4]T)
}

var _ Binding = (*Vec[float32])(nil)

// New1 returns a scalar uniform pushed with f, e.g. gl.Uniform1f.
func New1[T Scalar](f func(loc int32, v0 T)) *Vec[T] {
	return &Vec[T]{binding: unbound(), size: 1, push: func(loc int32, v [4]T) {
		f(loc, v[0])
	}}
}

// New2 returns a two-component uniform pushed with f, e.g. gl.Uniform2f.
func New2[T Scalar](f func(loc int32, v0, v1 T)) *Vec[T] {
	return &Vec[T]{binding: unbound(), size: 2, push: func(loc int32, v [4]T) {
		f(loc, v[0], v[1])
	}}
}

// New3 returns a three-component uniform pushed with f.
func New3[T Scalar](f func(loc int32, v0, v1, v2 T)) *Vec[T] {
	return &Vec[T]{binding: unbound(), size: 3, push: func(loc int32, v [4]T) {
		f(loc, v[0], v[1], v[2])
	}}
}

// New4 returns a four-component uniform pushed with f.
func New4[T Scalar](f func(loc int32, v0, v1, v2, v3 T)) *Vec[T] {
	return &Vec[T]{binding: unbound(), size: 4, push: func(loc int32, v [4]T) {
		f(loc, v[0], v[1], v[2], v[3])
	}}
}

// Vec returns the local value.
func (u *Vec[T]) Vec() [4]T { return u.vec }

// SetVec stores v and pushes it immediately.
func (u *Vec[T]) SetVec(v [4]T) {
	u.vec = v
	u.Update()
}

// Set stores the leading components from vs and pushes. Values past the
// pushed width are ignored; components past the ones given keep their
// previous value.
func (u *Vec[T]) Set(vs ...T) {
	v := u.vec
	copy(v[:u.size], vs)
	u.SetVec(v)
}

func (u *Vec[T]) Update() {
	u.push(u.loc, u.vec)
	glcall.Check("Uniform")
}
