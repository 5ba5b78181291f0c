package shaders

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a linked, executable vertex+fragment pipeline object.
// It is only ever handed out after both compiles and the link reported
// success.
type Program struct {
	id uint32
}

// Build compiles both stages and links them into a Program. It fails on
// the first broken step with a *CompileError or *LinkError carrying the
// driver's diagnostic log. The per-stage shader objects are deleted in
// every outcome; they are only inputs to the link.
func Build(vertexSource, fragmentSource string) (*Program, error) {
	vertex, err := compileStage(vertexSource, StageVertex)
	if err != nil {
		return nil, err
	}

	fragment, err := compileStage(fragmentSource, StageFragment)
	if err != nil {
		gl.DeleteShader(vertex)
		return nil, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		logmsg := programInfoLog(program)
		gl.DeleteProgram(program)
		return nil, &LinkError{Log: logmsg}
	}

	return &Program{id: program}, nil
}

func compileStage(source string, stage Stage) (uint32, error) {
	shader := gl.CreateShader(stage.glEnum())

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		logmsg := shaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: logmsg}
	}

	return shader, nil
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	logmsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logmsg))

	return strings.TrimRight(logmsg, "\x00")
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	logmsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))

	return strings.TrimRight(logmsg, "\x00")
}

func (s Stage) glEnum() uint32 {
	if s == StageVertex {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

func (p *Program) ID() uint32 {
	return p.id
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

func (p *Program) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
}

// Delete releases the GL program object. The Program must not be used
// afterwards.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
