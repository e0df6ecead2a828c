package renderer

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glkit/glscope/graphics"
)

// fakeAPI is an in-memory graphics.API for exercising the resource core
// without a GL context. Uniform and attribute tables are keyed by name and
// shared by every linked program, which is all these tests need.
type fakeAPI struct {
	nextShader  uint32
	nextProgram uint32
	stages      map[graphics.ShaderID]graphics.ShaderStage

	uniforms map[string]int32
	attribs  map[string]int32

	compileFail map[graphics.ShaderStage]string // stage -> diagnostic log
	linkFail    string

	uniformLookups  int
	attribLookups   int
	used            []graphics.ProgramID
	deletedShaders  []graphics.ShaderID
	deletedPrograms []graphics.ProgramID

	scalars    map[int32][]float32
	ints       map[int32]int32
	lastMatrix Mat4
	matrixLoc  int32
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		stages:      map[graphics.ShaderID]graphics.ShaderStage{},
		uniforms:    map[string]int32{},
		attribs:     map[string]int32{},
		compileFail: map[graphics.ShaderStage]string{},
		scalars:     map[int32][]float32{},
		ints:        map[int32]int32{},
		matrixLoc:   -1,
	}
}

func (f *fakeAPI) CreateShader(stage graphics.ShaderStage) graphics.ShaderID {
	f.nextShader++
	id := graphics.ShaderID(f.nextShader)
	f.stages[id] = stage
	return id
}

func (f *fakeAPI) CompileShader(sh graphics.ShaderID, source string) (bool, string) {
	if log, ok := f.compileFail[f.stages[sh]]; ok {
		return false, log
	}
	return true, ""
}

func (f *fakeAPI) DeleteShader(sh graphics.ShaderID) {
	f.deletedShaders = append(f.deletedShaders, sh)
}

func (f *fakeAPI) CreateProgram() graphics.ProgramID {
	f.nextProgram++
	return graphics.ProgramID(f.nextProgram)
}

func (f *fakeAPI) AttachShader(p graphics.ProgramID, sh graphics.ShaderID) {}

func (f *fakeAPI) LinkProgram(p graphics.ProgramID) (bool, string) {
	if f.linkFail != "" {
		return false, f.linkFail
	}
	return true, ""
}

func (f *fakeAPI) DeleteProgram(p graphics.ProgramID) {
	f.deletedPrograms = append(f.deletedPrograms, p)
}

func (f *fakeAPI) UseProgram(p graphics.ProgramID) {
	f.used = append(f.used, p)
}

func (f *fakeAPI) GetAttribLocation(p graphics.ProgramID, name string) int32 {
	f.attribLookups++
	if loc, ok := f.attribs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeAPI) GetUniformLocation(p graphics.ProgramID, name string) int32 {
	f.uniformLookups++
	if loc, ok := f.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeAPI) Uniform1f(loc int32, v float32)          { f.scalars[loc] = []float32{v} }
func (f *fakeAPI) Uniform2f(loc int32, x, y float32)       { f.scalars[loc] = []float32{x, y} }
func (f *fakeAPI) Uniform3f(loc int32, x, y, z float32)    { f.scalars[loc] = []float32{x, y, z} }
func (f *fakeAPI) Uniform4f(loc int32, x, y, z, w float32) { f.scalars[loc] = []float32{x, y, z, w} }
func (f *fakeAPI) Uniform1i(loc int32, v int32)            { f.ints[loc] = v }

func (f *fakeAPI) UniformMatrix4fv(loc int32, m *[16]float32) {
	f.matrixLoc = loc
	copy(f.lastMatrix[:], m[:])
}

var _ graphics.API = (*fakeAPI)(nil)

func newTestRenderer(f *fakeAPI) *Renderer {
	return New(f, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func newTestProgram(t *testing.T, r *Renderer, name string, inputs ...string) *Program {
	t.Helper()
	p, err := r.NewProgram(name, "vertex src", "fragment src", inputs...)
	require.NoError(t, err)
	return p
}
