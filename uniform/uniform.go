// Package uniform connects in-process values to named shader uniforms.
//
// A binding is created once per linked program: Create resolves the uniform
// name to a location, after which Update pushes the local value to that
// location. Locations belong to the program that produced them, so when the
// program is recreated every binding must be created again.
package uniform

import (
	"log/slog"
	"slices"
)

// Scalar is the set of component types GL uniforms accept.
type Scalar interface {
	~float32 | ~int32 | ~uint32
}

// Locator resolves uniform names for a linked program.
type Locator interface {
	UniformLocation(name string) int32
}

// Binding is the capability set shared by every uniform kind.
type Binding interface {
	// Create resolves name against l. It reports false, after logging, when
	// the program has no such uniform; the binding then stays inert.
	Create(l Locator, name string) bool
	// Update pushes the local value to the bound location.
	Update()
	// Name returns the name passed to Create.
	Name() string
	// Location returns the resolved location, or -1.
	Location() int32
}

// binding is the name/location half every uniform kind embeds.
type binding struct {
	name string
	loc  int32
}

func unbound() binding { return binding{loc: -1} }

func (b *binding) Create(l Locator, name string) bool {
	b.name = name
	b.loc = l.UniformLocation(name)
	if b.loc < 0 {
		slog.Warn("uniform not found", "name", name)
		return false
	}
	return true
}

func (b *binding) Name() string    { return b.name }
func (b *binding) Location() int32 { return b.loc }

// CreateAll creates every binding in bs against l and returns the names
// that could not be resolved, sorted.
func CreateAll(l Locator, bs map[string]Binding) []string {
	var missing []string
	for name, b := range bs {
		if !b.Create(l, name) {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)
	return missing
}
