package globject

import (
	"encoding/binary"
	"errors"
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gomandel/glcall"
)

// ErrEmptyBuffer is returned when Create is given no data to upload.
var ErrEmptyBuffer = errors.New("globject: buffer data is empty")

// Buffer is a buffer object bound to a single target such as
// ARRAY_BUFFER or ELEMENT_ARRAY_BUFFER.
type Buffer struct {
	id     uint32
	target uint32
	size   int
}

// Create generates the buffer and uploads all of data in one call. data
// must be a slice of fixed-size values, e.g. []float32 or []uint32.
func (b *Buffer) Create(target uint32, data any, usage uint32) error {
	mustBeEmpty("buffer", b.id)
	size, err := byteSize(data)
	if err != nil {
		return err
	}
	b.target = target
	b.size = size

	gl.GenBuffers(1, &b.id)
	glcall.Check("GenBuffers")
	b.Bind()
	gl.BufferData(target, size, gl.Ptr(data), usage)
	glcall.Check("BufferData")
	return nil
}

func byteSize(data any) (int, error) {
	size := binary.Size(data)
	if size < 0 {
		return 0, fmt.Errorf("globject: unsupported buffer data %T", data)
	}
	if size == 0 {
		return 0, ErrEmptyBuffer
	}
	return size, nil
}

func (b *Buffer) ID() uint32 { return b.id }

// Size returns the number of bytes uploaded by Create.
func (b *Buffer) Size() int { return b.size }

func (b *Buffer) Bind() {
	gl.BindBuffer(b.target, b.id)
	glcall.Check("BindBuffer")
}

func (b *Buffer) Unbind() {
	gl.BindBuffer(b.target, 0)
	glcall.Check("BindBuffer")
}

func (b *Buffer) Destroy() {
	if b.id == 0 {
		return
	}
	gl.DeleteBuffers(1, &b.id)
	glcall.Check("DeleteBuffers")
	b.id = 0
}
