// Package shader loads the fractal program from its source files and
// resolves uniform names through the translator's renaming.
package shader

import (
	"fmt"
	"os"
	"strings"

	"github.com/richinsley/gomandel/globject"
	"github.com/richinsley/gomandel/translator"
)

// Fixed source locations, relative to the working directory.
const (
	VertexPath   = "res/vertex.glsl"
	FragmentPath = "res/fragment.glsl"
)

// Sources holds the text of both stages. Fragment is WebGL2 ESSL 3.00 and
// is translated at build time; Vertex is compiled as is.
type Sources struct {
	Vertex   string
	Fragment string
}

// ReadSources reads both stages from disk.
func ReadSources(vertexPath, fragmentPath string) (Sources, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return Sources{}, fmt.Errorf("reading vertex shader: %w", err)
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return Sources{}, fmt.Errorf("reading fragment shader: %w", err)
	}
	return Sources{Vertex: string(vs), Fragment: string(fs)}, nil
}

// Program is a linked program that knows the names the translator gave
// its uniforms.
type Program struct {
	globject.Program
	mapped map[string]string
}

// Build translates the fragment stage and links it with the vertex stage.
func Build(src Sources) (*Program, error) {
	code, names, err := translator.Translate(src.Fragment, "fragment")
	if err != nil {
		return nil, err
	}
	p := &Program{mapped: names}
	if err := p.Create(src.Vertex, code); err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	return p, nil
}

// UniformLocation returns the location of the uniform declared as name in
// the fragment source, or -1.
func (p *Program) UniformLocation(name string) int32 {
	for _, n := range candidates(name, p.mapped) {
		if loc := p.Program.UniformLocation(n); loc >= 0 {
			return loc
		}
	}
	return -1
}

// candidates lists the names a uniform may be linked under: the
// translated name, the declared name, and the first element of an array.
func candidates(name string, mapped map[string]string) []string {
	var out []string
	add := func(n string) {
		for _, seen := range out {
			if seen == n {
				return
			}
		}
		out = append(out, n)
	}
	if m, ok := mapped[name]; ok && m != "" {
		add(m)
		if !strings.HasSuffix(m, "]") {
			add(m + "[0]")
		}
	}
	add(name)
	if !strings.HasSuffix(name, "]") {
		add(name + "[0]")
	}
	return out
}
