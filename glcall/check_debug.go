//go:build gldebug

package glcall

import (
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Enabled reports whether GL calls are checked in this build.
const Enabled = true

// Clear discards any errors raised before the next checked call.
func Clear() {
	for gl.GetError() != gl.NO_ERROR {
	}
}

// Check aborts the process if the GL call that just returned raised an error.
func Check(call string) {
	_, file, line, _ := runtime.Caller(1)
	if drain(gl.GetError, call, file, line) {
		os.Exit(2)
	}
}
