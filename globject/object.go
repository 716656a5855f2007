// Package globject wraps the OpenGL objects a render session owns.
//
// Each handle holds exactly one GL object id. Handles are created in two
// phases: declare the zero value, then call Create. Destroy releases the GL
// object and zeroes the id, so a second Destroy is a no-op. Calling Create
// on a handle that still holds an object panics; Destroy it first. Handles
// must not be copied after Create.
package globject

import "fmt"

// Object is implemented by every GL object kind.
type Object interface {
	// ID returns the GL object name, or 0 before Create and after Destroy.
	ID() uint32
	// Bind makes the object the active one of its target.
	Bind()
	// Unbind clears the active object of its target.
	Unbind()
	// Destroy releases the GL object.
	Destroy()
}

// mustBeEmpty panics if a handle of kind already holds object id.
func mustBeEmpty(kind string, id uint32) {
	if id != 0 {
		panic(fmt.Sprintf("globject: %s %d created twice", kind, id))
	}
}

var (
	_ Object = (*VertexArray)(nil)
	_ Object = (*Buffer)(nil)
	_ Object = (*Program)(nil)
)
