package overlay

import (
	"testing"

	"github.com/richinsley/gomandel/graphics"
	"github.com/stretchr/testify/assert"
)

type form struct {
	reset bool
	angle float32
	iter  int32
	julia bool
	color [3]float32

	changed []string
}

func (f *form) draw(w Widgets) {
	f.changed = f.changed[:0]
	w.Begin("Mandel")
	f.reset = w.Button("Reset")
	w.SameLine()
	if w.SliderFloat("Angle", &f.angle, -1, 1) {
		f.changed = append(f.changed, "angle")
	}
	if w.SliderInt("Max Iteration", &f.iter, 0, 3000) {
		f.changed = append(f.changed, "iter")
	}
	if w.Checkbox("Julia Set", &f.julia) {
		f.changed = append(f.changed, "julia")
	}
	if w.ColorEdit3("Color", &f.color) {
		f.changed = append(f.changed, "color")
	}
	w.Text("%.1f ms", 16.7)
	w.End()
}

func press(p *KeyPanel, keys ...graphics.Key) {
	for _, k := range keys {
		p.OnKey(k, graphics.Press)
		p.OnKey(k, graphics.Release)
	}
}

func TestKeyPanelButton(t *testing.T) {
	var titles []string
	p := NewKeyPanel(func(s string) { titles = append(titles, s) })
	f := &form{}

	f.draw(p)
	assert.False(t, f.reset)
	assert.Equal(t, "Mandel | > [Reset] | 16.7 ms", p.Status())

	press(p, graphics.KeyEnter)
	f.draw(p)
	assert.True(t, f.reset)

	// unchanged status is published once
	f.draw(p)
	assert.Len(t, titles, 1)
}

func TestKeyPanelSliders(t *testing.T) {
	p := NewKeyPanel(nil)
	f := &form{iter: 100}
	f.draw(p)

	press(p, graphics.KeyTab)
	f.draw(p)
	press(p, graphics.KeyRight, graphics.KeyRight)
	f.draw(p)
	assert.Equal(t, []string{"angle"}, f.changed)
	assert.InDelta(t, 0.04, f.angle, 1e-6)
	assert.Contains(t, p.Status(), "> Angle: 0.040")

	press(p, graphics.KeyTab)
	f.draw(p)
	press(p, graphics.KeyLeft)
	f.draw(p)
	assert.Equal(t, int32(70), f.iter)

	// clamped at the lower bound
	f.iter = 10
	press(p, graphics.KeyLeft)
	f.draw(p)
	assert.Equal(t, int32(0), f.iter)
	press(p, graphics.KeyLeft)
	f.draw(p)
	assert.Empty(t, f.changed)
}

func TestKeyPanelCheckboxAndColor(t *testing.T) {
	p := NewKeyPanel(nil)
	f := &form{color: [3]float32{1, 0, 0}}
	f.draw(p)

	press(p, graphics.KeyTab, graphics.KeyTab, graphics.KeyTab)
	f.draw(p)
	press(p, graphics.KeySpace)
	f.draw(p)
	assert.True(t, f.julia)
	assert.Contains(t, p.Status(), "> Julia Set: on")

	press(p, graphics.KeyTab)
	f.draw(p)
	// select green, raise it twice
	press(p, graphics.KeySpace, graphics.KeyRight, graphics.KeyRight)
	f.draw(p)
	assert.Equal(t, []string{"color"}, f.changed)
	assert.Equal(t, [3]float32{1, 2.0 / 32, 0}, f.color)
	assert.Contains(t, p.Status(), "*G0.06")

	// focus wraps back to the first widget
	press(p, graphics.KeyTab)
	f.draw(p)
	assert.Contains(t, p.Status(), "> [Reset]")
}

func TestKeyPanelIgnoresUnfocusedKeys(t *testing.T) {
	p := NewKeyPanel(nil)
	f := &form{}
	f.draw(p)
	press(p, graphics.KeyRight, graphics.KeyUp)
	f.draw(p)
	assert.Zero(t, f.angle)
	assert.False(t, p.WantCaptureMouse())
}
