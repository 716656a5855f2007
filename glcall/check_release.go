//go:build !gldebug

package glcall

// Enabled reports whether GL calls are checked in this build.
const Enabled = false

// Clear is a no-op without the gldebug tag.
func Clear() {}

// Check is a no-op without the gldebug tag.
func Check(string) {}
