// Package glcall checks OpenGL calls for errors.
//
// Checking is only compiled in with the gldebug build tag:
//
//	go build -tags gldebug ./cmd
//
// In a debug build every Check drains the GL error queue, logs each error
// with the call site and aborts the process. In a default build Check is an
// empty function and the driver's error state is never queried.
package glcall

import (
	"log/slog"
)

// drain pops every pending error from getError and logs it against the
// named call. It reports whether any error was pending.
func drain(getError func() uint32, call, file string, line int) bool {
	failed := false
	for code := getError(); code != 0; code = getError() {
		slog.Error("opengl error", "call", call, "code", code, "file", file, "line", line)
		failed = true
	}
	return failed
}
