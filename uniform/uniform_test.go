package uniform

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locations map[string]int32

func (l locations) UniformLocation(name string) int32 {
	if loc, ok := l[name]; ok {
		return loc
	}
	return -1
}

type call struct {
	loc  int32
	vals []float32
}

type recorder struct {
	calls []call
}

func (r *recorder) f1(loc int32, v0 float32)     { r.calls = append(r.calls, call{loc, []float32{v0}}) }
func (r *recorder) f2(loc int32, v0, v1 float32) { r.calls = append(r.calls, call{loc, []float32{v0, v1}}) }
func (r *recorder) f4(loc int32, v0, v1, v2, v3 float32) {
	r.calls = append(r.calls, call{loc, []float32{v0, v1, v2, v3}})
}
func (r *recorder) f3v(loc int32, count int32, v *float32) {
	vals := unsafe.Slice(v, count*3)
	r.calls = append(r.calls, call{loc, append([]float32(nil), vals...)})
}

func TestVecCreateAndPush(t *testing.T) {
	rec := &recorder{}
	u := New2[float32](rec.f2)
	assert.Equal(t, int32(-1), u.Location())

	require.True(t, u.Create(locations{"u_vStartPos": 3}, "u_vStartPos"))
	assert.Equal(t, int32(3), u.Location())
	assert.Equal(t, "u_vStartPos", u.Name())

	u.SetVec([4]float32{0.5, -1.25, 9, 9})
	require.Len(t, rec.calls, 1)
	assert.Equal(t, call{3, []float32{0.5, -1.25}}, rec.calls[0])
	assert.Equal(t, [4]float32{0.5, -1.25, 9, 9}, u.Vec())
}

func TestVecSetKeepsTrailingComponents(t *testing.T) {
	rec := &recorder{}
	u := New4[float32](rec.f4)
	u.SetVec([4]float32{1, 2, 3, 4})
	u.Set(7, 8)
	assert.Equal(t, [4]float32{7, 8, 3, 4}, u.Vec())

	// extra values past Size are ignored
	s := New1[float32](rec.f1)
	s.Set(1, 2, 3)
	assert.Equal(t, [4]float32{1, 0, 0, 0}, s.Vec())
	assert.Equal(t, call{-1, []float32{1}}, rec.calls[len(rec.calls)-1])
}

func TestVecMissingUniformStaysInert(t *testing.T) {
	rec := &recorder{}
	u := New1[float32](rec.f1)
	assert.False(t, u.Create(locations{}, "u_exponent"))

	// pushes still happen, against location -1
	u.Set(2)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, int32(-1), rec.calls[0].loc)
}

func TestIntVec(t *testing.T) {
	var got [2]int32
	u := New2[int32](func(loc int32, v0, v1 int32) { got = [2]int32{v0, v1} })
	u.Set(800, 600)
	assert.Equal(t, [2]int32{800, 600}, got)
}

func TestArraySetVec(t *testing.T) {
	rec := &recorder{}
	a := NewArray[float32](3, 3, rec.f3v)
	assert.Equal(t, 3, a.Count())
	assert.Len(t, a.Vec(), 9)
	require.True(t, a.Create(locations{"u_vColorPalette": 7}, "u_vColorPalette"))

	palette := []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	require.NoError(t, a.SetVec(palette))
	require.Len(t, rec.calls, 1)
	assert.Equal(t, call{7, palette}, rec.calls[0])

	// the binding owns its buffer
	palette[0] = 0.25
	assert.Equal(t, float32(1), a.Vec()[0])
	v := a.Vec()
	v[1] = 0.5
	assert.Equal(t, float32(0), a.Vec()[1])
}

func TestArrayLengthMismatch(t *testing.T) {
	rec := &recorder{}
	a := NewArray[float32](3, 3, rec.f3v)
	err := a.SetVec([]float32{1, 2, 3})
	assert.ErrorIs(t, err, ErrArrayLength)
	assert.Empty(t, rec.calls)
}

func TestNewArrayRejectsBadShape(t *testing.T) {
	assert.Panics(t, func() { NewArray[float32](0, 3, nil) })
	assert.Panics(t, func() { NewArray[float32](2, 5, nil) })
}

func TestCreateAll(t *testing.T) {
	rec := &recorder{}
	bs := map[string]Binding{
		"u_exponent":    New1[float32](rec.f1),
		"u_colorPeriod": New1[float32](rec.f1),
		"u_bUseJulia":   New1[float32](rec.f1),
	}
	missing := CreateAll(locations{"u_exponent": 1}, bs)
	assert.Equal(t, []string{"u_bUseJulia", "u_colorPeriod"}, missing)

	for name, b := range bs {
		b.Update()
		assert.Equal(t, bs[name].Location(), rec.calls[len(rec.calls)-1].loc, name)
	}
	assert.Len(t, rec.calls, 3)
}
