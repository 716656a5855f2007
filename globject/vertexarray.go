package globject

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gomandel/glcall"
)

// VertexArray is a vertex array object.
type VertexArray struct {
	id uint32
}

// Create generates the vertex array.
func (v *VertexArray) Create() {
	mustBeEmpty("vertex array", v.id)
	gl.GenVertexArrays(1, &v.id)
	glcall.Check("GenVertexArrays")
}

func (v *VertexArray) ID() uint32 { return v.id }

func (v *VertexArray) Bind() {
	gl.BindVertexArray(v.id)
	glcall.Check("BindVertexArray")
}

func (v *VertexArray) Unbind() {
	gl.BindVertexArray(0)
	glcall.Check("BindVertexArray")
}

// SetAndEnableVertex describes attribute slot index and enables it. The
// vertex array and the source ARRAY_BUFFER must both be bound.
func (v *VertexArray) SetAndEnableVertex(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
	glcall.Check("VertexAttribPointer")
	gl.EnableVertexAttribArray(index)
	glcall.Check("EnableVertexAttribArray")
}

func (v *VertexArray) Destroy() {
	if v.id == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &v.id)
	glcall.Check("DeleteVertexArrays")
	v.id = 0
}
