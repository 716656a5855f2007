package controller

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gomandel/navigation"
	"github.com/richinsley/gomandel/overlay"
)

// DrawOverlay describes the control panel on w from the current view and
// writes every edit back through the engine. frameTime is shown as the
// last render time.
func (c *Controller) DrawOverlay(w overlay.Widgets, frameTime time.Duration) {
	w.Begin("Mandel")
	defer w.End()

	s := c.engine.State()

	angle := s.RotationAngle
	if w.Button("Reset Angle") {
		angle = 0
	}
	w.SameLine()
	w.SliderFloat("Angle", &angle, -math32.Pi, math32.Pi)
	if angle != s.RotationAngle {
		c.engine.SetRotation(angle)
	}

	iterations := s.MaxIterations
	if w.SliderInt("Max Iteration", &iterations, navigation.MinIterations, navigation.MaxIterations) {
		c.engine.SetMaxIterations(iterations)
	}

	if w.Button("Reset Mandel") {
		c.engine.Reset(c.screen)
	}
	s = c.engine.State()

	for slot := 0; slot < navigation.PaletteSlots; slot++ {
		color, err := s.Palette.Color(slot)
		if err != nil {
			slog.Error("palette slot", "slot", slot, "error", err)
			continue
		}
		rgb := [3]float32(color)
		if w.ColorEdit3(fmt.Sprintf("ColorPalette[%d]", slot), &rgb) {
			if err := c.engine.SetPaletteColor(slot, mgl32.Vec3(rgb)); err != nil {
				slog.Error("palette edit", "slot", slot, "error", err)
			}
		}
	}

	period := s.ColorPeriod
	if w.Button("Reset Period") {
		period = navigation.DefaultColorPeriod
	}
	w.SameLine()
	w.SliderFloat("Period", &period, navigation.MinColorPeriod, navigation.MaxColorPeriod)
	c.engine.SetColorPeriod(period)

	exponent := s.Exponent
	if w.Button("Reset Exponent") {
		exponent = navigation.DefaultExponent
	}
	w.SameLine()
	w.SliderFloat("Exponent", &exponent, navigation.MinExponent, navigation.MaxExponent)
	c.engine.SetExponent(exponent)

	julia := s.UseJuliaSet
	if w.Checkbox("Julia Set", &julia) {
		c.engine.SetJuliaSet(julia)
	}
	if julia {
		k := s.JuliaConstant
		changed := w.SliderFloat("Julia Constant x", &k[0], -navigation.JuliaBound, navigation.JuliaBound)
		changed = w.SliderFloat("Julia Constant y", &k[1], -navigation.JuliaBound, navigation.JuliaBound) || changed
		if changed {
			c.engine.SetJuliaConstant(k)
		}
	}

	if c.swapInterval != nil && w.Checkbox("FPS Lock", &c.vsync) {
		c.swapInterval(boolInterval(c.vsync))
	}

	ms := float64(frameTime) / float64(time.Millisecond)
	fps := 0.0
	if frameTime > 0 {
		fps = float64(time.Second) / float64(frameTime)
	}
	w.Text("Frame render time: %.3f ms (%.1f FPS)", ms, fps)
}

func boolInterval(on bool) int {
	if on {
		return 1
	}
	return 0
}
