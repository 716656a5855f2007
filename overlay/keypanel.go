package overlay

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gomandel/graphics"
)

// sliderSteps is the number of Left/Right presses spanning a slider.
const sliderSteps = 100

// colorStep is the per-press change of a colour channel.
const colorStep = 1.0 / 32

// KeyPanel is a Widgets implementation driven by the keyboard that shows
// its state through a single status line, usually the window title.
//
// Tab moves the focus to the next widget. Left and Right move the focused
// slider or colour channel. Enter presses a button or toggles a checkbox.
// Space toggles a checkbox or selects the next channel of a colour.
type KeyPanel struct {
	graphics.NopHandler

	status  func(string)
	pending []graphics.Key

	title   string
	index   int
	focus   int
	channel int
	line    []string
	focused string
	last    string
}

var _ Widgets = (*KeyPanel)(nil)

// NewKeyPanel returns a panel reporting its status line to status.
func NewKeyPanel(status func(string)) *KeyPanel {
	return &KeyPanel{status: status}
}

// OnKey queues key presses for the next frame.
func (p *KeyPanel) OnKey(key graphics.Key, action graphics.Action) {
	if action == graphics.Release {
		return
	}
	switch key {
	case graphics.KeyTab, graphics.KeyLeft, graphics.KeyRight, graphics.KeyEnter, graphics.KeySpace:
		p.pending = append(p.pending, key)
	}
}

func (p *KeyPanel) Begin(title string) {
	p.title = title
	p.index = 0
	p.line = p.line[:0]
	p.focused = ""
}

// End applies focus movement and publishes the status line if it changed.
func (p *KeyPanel) End() {
	for _, k := range p.pending {
		if k == graphics.KeyTab && p.index > 0 {
			p.focus = (p.focus + 1) % p.index
			p.channel = 0
		}
	}
	p.pending = p.pending[:0]
	if p.index > 0 && p.focus >= p.index {
		p.focus = 0
	}

	parts := append([]string{p.title}, p.focused)
	parts = append(parts, p.line...)
	status := strings.Join(parts, " | ")
	if status != p.last && p.status != nil {
		p.status(status)
	}
	p.last = status
}

// Status returns the last published status line.
func (p *KeyPanel) Status() string { return p.last }

// widget registers the next widget and reports whether it has focus.
func (p *KeyPanel) widget(display string) bool {
	has := p.index == p.focus
	if has {
		p.focused = "> " + display
	}
	p.index++
	return has
}

// take removes and counts the queued presses of key.
func (p *KeyPanel) take(key graphics.Key) int {
	n := 0
	kept := p.pending[:0]
	for _, k := range p.pending {
		if k == key {
			n++
			continue
		}
		kept = append(kept, k)
	}
	p.pending = kept
	return n
}

func (p *KeyPanel) Button(label string) bool {
	if !p.widget("[" + label + "]") {
		return false
	}
	return p.take(graphics.KeyEnter) > 0
}

func (p *KeyPanel) SameLine() {}

func (p *KeyPanel) SliderFloat(label string, v *float32, min, max float32) bool {
	if !p.widget(fmt.Sprintf("%s: %.3f", label, *v)) {
		return false
	}
	steps := p.take(graphics.KeyRight) - p.take(graphics.KeyLeft)
	if steps == 0 {
		return false
	}
	next := mgl32.Clamp(*v+float32(steps)*(max-min)/sliderSteps, min, max)
	changed := next != *v
	*v = next
	p.focused = fmt.Sprintf("> %s: %.3f", label, *v)
	return changed
}

func (p *KeyPanel) SliderInt(label string, v *int32, min, max int32) bool {
	if !p.widget(fmt.Sprintf("%s: %d", label, *v)) {
		return false
	}
	steps := int32(p.take(graphics.KeyRight) - p.take(graphics.KeyLeft))
	if steps == 0 {
		return false
	}
	step := (max - min) / sliderSteps
	if step < 1 {
		step = 1
	}
	next := *v + steps*step
	if next < min {
		next = min
	}
	if next > max {
		next = max
	}
	changed := next != *v
	*v = next
	p.focused = fmt.Sprintf("> %s: %d", label, *v)
	return changed
}

func (p *KeyPanel) Checkbox(label string, v *bool) bool {
	if !p.widget(fmt.Sprintf("%s: %s", label, onOff(*v))) {
		return false
	}
	toggles := p.take(graphics.KeyEnter) + p.take(graphics.KeySpace)
	if toggles%2 == 0 {
		return false
	}
	*v = !*v
	p.focused = fmt.Sprintf("> %s: %s", label, onOff(*v))
	return true
}

func (p *KeyPanel) ColorEdit3(label string, c *[3]float32) bool {
	if !p.widget(colorDisplay(label, c, -1)) {
		return false
	}
	p.channel = (p.channel + p.take(graphics.KeySpace)) % 3
	steps := p.take(graphics.KeyRight) - p.take(graphics.KeyLeft)
	changed := false
	if steps != 0 {
		next := mgl32.Clamp(c[p.channel]+float32(steps)*colorStep, 0, 1)
		changed = next != c[p.channel]
		c[p.channel] = next
	}
	p.focused = "> " + colorDisplay(label, c, p.channel)
	return changed
}

func (p *KeyPanel) Text(format string, args ...any) {
	p.line = append(p.line, fmt.Sprintf(format, args...))
}

// WantCaptureMouse is always false: the panel has no on-screen area.
func (p *KeyPanel) WantCaptureMouse() bool { return false }

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func colorDisplay(label string, c *[3]float32, channel int) string {
	names := [3]string{"R", "G", "B"}
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(":")
	for i, v := range c {
		sep := " "
		if i == channel {
			sep = " *"
		}
		fmt.Fprintf(&b, "%s%s%.2f", sep, names[i], v)
	}
	return b.String()
}
