package globject

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/gomandel/glcall"
)

// Program is a linked shader program.
type Program struct {
	id uint32
}

// Create compiles both stages and links them. On failure no GL object is
// left behind and the error carries the driver's info log.
func (p *Program) Create(vertexSource, fragmentSource string) error {
	mustBeEmpty("program", p.id)
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	glcall.Check("LinkProgram")

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return fmt.Errorf("failed to link program: %v", trimLog(log))
	}

	p.id = program
	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)
	glcall.Check("CompileShader")

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", trimLog(logText))
	}
	return shader, nil
}

// trimLog strips the NUL padding and trailing newlines of a GL info log.
func trimLog(log string) string {
	return strings.TrimRight(log, "\x00\r\n ")
}

func (p *Program) ID() uint32 { return p.id }

func (p *Program) Bind() {
	gl.UseProgram(p.id)
	glcall.Check("UseProgram")
}

func (p *Program) Unbind() {
	gl.UseProgram(0)
	glcall.Check("UseProgram")
}

// UniformLocation returns the location of the named uniform, or -1 if the
// program has no active uniform of that name.
func (p *Program) UniformLocation(name string) int32 {
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	glcall.Check("GetUniformLocation")
	return loc
}

func (p *Program) Destroy() {
	if p.id == 0 {
		return
	}
	gl.DeleteProgram(p.id)
	glcall.Check("DeleteProgram")
	p.id = 0
}
