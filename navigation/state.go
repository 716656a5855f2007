package navigation

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Parameter domains. The overlay sliders use the same bounds.
const (
	MinIterations  = 0
	MaxIterations  = 3000
	MinColorPeriod = 0
	MaxColorPeriod = 2
	MinExponent    = -10
	MaxExponent    = 10
	JuliaBound     = 2
)

// Scale limits. MinScale is the smallest normal float32; below it the
// mapping loses precision and eventually collapses to zero. MaxWorldSpan
// bounds the plane extent visible along either screen axis.
const (
	MinScale     = 0x1p-126
	MaxWorldSpan = 1 << 20
)

// Defaults applied by Reset.
const (
	DefaultIterations  = 100
	DefaultColorPeriod = 0.1
	DefaultExponent    = 2
	DefaultWorldSpan   = 4
)

// PaletteSlots is the number of colours in a Palette.
const PaletteSlots = 3

// ErrPaletteIndex is returned for a palette slot or channel out of range.
var ErrPaletteIndex = errors.New("navigation: palette index out of range")

// Palette holds PaletteSlots RGB colours back to back, in slot order.
type Palette [PaletteSlots * 3]float32

// IdentityPalette returns red, green and blue in slots 0, 1 and 2.
func IdentityPalette() Palette {
	return Palette{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns a pointer to one channel of one slot.
func (p *Palette) At(slot, channel int) (*float32, error) {
	if slot < 0 || slot >= PaletteSlots || channel < 0 || channel >= 3 {
		return nil, fmt.Errorf("%w: slot %d channel %d", ErrPaletteIndex, slot, channel)
	}
	return &p[slot*3+channel], nil
}

// Color returns the colour in slot.
func (p *Palette) Color(slot int) (mgl32.Vec3, error) {
	if slot < 0 || slot >= PaletteSlots {
		return mgl32.Vec3{}, fmt.Errorf("%w: slot %d", ErrPaletteIndex, slot)
	}
	return mgl32.Vec3{p[slot*3], p[slot*3+1], p[slot*3+2]}, nil
}

// SetColor replaces the colour in slot, clamping each channel to [0, 1].
func (p *Palette) SetColor(slot int, c mgl32.Vec3) error {
	if slot < 0 || slot >= PaletteSlots {
		return fmt.Errorf("%w: slot %d", ErrPaletteIndex, slot)
	}
	for ch := 0; ch < 3; ch++ {
		p[slot*3+ch] = mgl32.Clamp(c[ch], 0, 1)
	}
	return nil
}

// Floats returns the nine palette values as one slice backed by p.
func (p *Palette) Floats() []float32 { return p[:] }

// ViewState is where the viewport sits in the complex plane and how the
// fractal is coloured.
type ViewState struct {
	// Origin is the plane point at the centre of the screen.
	Origin mgl32.Vec2
	// Scale is plane units per screen pixel. Both components are equal.
	Scale mgl32.Vec2
	// RotationAngle is in radians. RotationVector is always its
	// (cos, sin) pair.
	RotationAngle  float32
	RotationVector mgl32.Vec2

	MaxIterations int32
	ColorPeriod   float32
	Exponent      float32

	UseJuliaSet   bool
	JuliaConstant mgl32.Vec2

	Palette Palette
}
