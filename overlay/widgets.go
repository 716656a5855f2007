// Package overlay defines the immediate-mode control panel drawn over the
// fractal.
//
// The panel is described from scratch every frame by calling Widgets
// methods in order. Each value widget edits the value it is given in place
// and reports whether the user changed it during this frame.
package overlay

// Widgets is an immediate-mode widget set.
type Widgets interface {
	Begin(title string)
	End()

	Button(label string) bool
	// SameLine places the next widget beside the previous one.
	SameLine()
	SliderFloat(label string, v *float32, min, max float32) bool
	SliderInt(label string, v *int32, min, max int32) bool
	Checkbox(label string, v *bool) bool
	ColorEdit3(label string, c *[3]float32) bool
	Text(format string, args ...any)

	// WantCaptureMouse reports whether the pointer is over the panel, in
	// which case pointer input must not reach the scene.
	WantCaptureMouse() bool
}
