package graphics

// ShaderID identifies a shader object owned by the drawing API.
type ShaderID uint32

// ProgramID identifies a linked program object owned by the drawing API.
type ProgramID uint32

// ShaderStage selects which pipeline stage a shader object compiles for.
type ShaderStage int

const (
	VertexShader ShaderStage = iota
	FragmentShader
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// API is the drawing capability object the framework runs against. It covers
// exactly the primitives the resource core needs: object creation and
// deletion, compile/link with a success flag and diagnostic log, location
// queries, program binding, and uniform writes. Implementations are expected
// to be driven from a single OS thread.
type API interface {
	CreateShader(stage ShaderStage) ShaderID
	CompileShader(sh ShaderID, source string) (ok bool, log string)
	DeleteShader(sh ShaderID)

	CreateProgram() ProgramID
	AttachShader(p ProgramID, sh ShaderID)
	LinkProgram(p ProgramID) (ok bool, log string)
	DeleteProgram(p ProgramID)
	UseProgram(p ProgramID)

	// GetAttribLocation and GetUniformLocation return -1 when the linked
	// program declares no such name.
	GetAttribLocation(p ProgramID, name string) int32
	GetUniformLocation(p ProgramID, name string) int32

	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform3f(loc int32, x, y, z float32)
	Uniform4f(loc int32, x, y, z, w float32)
	Uniform1i(loc int32, v int32)

	// UniformMatrix4fv uploads 16 floats in column-major order. The pointed-to
	// array is a caller-owned scratch buffer, valid only for the duration of
	// the call.
	UniformMatrix4fv(loc int32, m *[16]float32)
}
