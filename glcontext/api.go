package glcontext

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/glkit/glscope/graphics"
)

// GL implements graphics.API over desktop OpenGL 4.1 core. It must be used
// from the thread holding the current context.
type GL struct{}

// NewAPI initializes the go-gl bindings against the current context.
func NewAPI() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &GL{}, nil
}

func (*GL) CreateShader(stage graphics.ShaderStage) graphics.ShaderID {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == graphics.FragmentShader {
		kind = gl.FRAGMENT_SHADER
	}
	return graphics.ShaderID(gl.CreateShader(kind))
}

func (*GL) CompileShader(sh graphics.ShaderID, source string) (bool, string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(sh), 1, csources, nil)
	free()
	gl.CompileShader(uint32(sh))

	var status int32
	gl.GetShaderiv(uint32(sh), gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(uint32(sh), gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(uint32(sh), logLength, nil, gl.Str(logText))
		return false, logText
	}
	return true, ""
}

func (*GL) DeleteShader(sh graphics.ShaderID) {
	gl.DeleteShader(uint32(sh))
}

func (*GL) CreateProgram() graphics.ProgramID {
	return graphics.ProgramID(gl.CreateProgram())
}

func (*GL) AttachShader(p graphics.ProgramID, sh graphics.ShaderID) {
	gl.AttachShader(uint32(p), uint32(sh))
}

func (*GL) LinkProgram(p graphics.ProgramID) (bool, string) {
	gl.LinkProgram(uint32(p))

	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(uint32(p), logLength, nil, gl.Str(logText))
		return false, logText
	}
	return true, ""
}

func (*GL) DeleteProgram(p graphics.ProgramID) {
	gl.DeleteProgram(uint32(p))
}

func (*GL) UseProgram(p graphics.ProgramID) {
	gl.UseProgram(uint32(p))
}

func (*GL) GetAttribLocation(p graphics.ProgramID, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
}

func (*GL) GetUniformLocation(p graphics.ProgramID, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (*GL) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (*GL) Uniform2f(loc int32, x, y float32) {
	gl.Uniform2f(loc, x, y)
}

func (*GL) Uniform3f(loc int32, x, y, z float32) {
	gl.Uniform3f(loc, x, y, z)
}

func (*GL) Uniform4f(loc int32, x, y, z, w float32) {
	gl.Uniform4f(loc, x, y, z, w)
}

func (*GL) Uniform1i(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

func (*GL) UniformMatrix4fv(loc int32, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}
