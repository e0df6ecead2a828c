package renderer

import (
	"fmt"
	"strings"

	"github.com/glkit/glscope/cleanup"
	"github.com/glkit/glscope/graphics"
)

// Program bundles a linked vertex/fragment shader pair with its declared
// uniform inputs. It is immutable after construction; attribute locations are
// resolved lazily and cached for the program's lifetime, while uniform
// locations live on the Inputs and are cached per session.
type Program struct {
	r       *Renderer
	name    string
	id      graphics.ProgramID
	inputs  map[string]*Input
	attribs map[string]int32
	handle  *cleanup.Handle
}

// NewProgram compiles and links a program, declaring inputs as its settable
// uniform set. Construction runs through the cleanup registry: the vertex
// shader, fragment shader, and program object each register their deletion
// the moment they are created, so a compile or link failure tears down
// whatever was built before the error — carrying the driver's diagnostic
// log — reaches the caller. On success the same teardowns transfer to the
// program's handle; shader objects are deleted together with the program,
// which is when the driver actually frees them.
func (r *Renderer) NewProgram(name, vertexSrc, fragmentSrc string, inputs ...string) (*Program, error) {
	p := &Program{
		r:       r,
		name:    name,
		inputs:  make(map[string]*Input, len(inputs)),
		attribs: make(map[string]int32),
	}
	handle, err := r.res.Build(func() error {
		vert, err := r.compileShader(name, graphics.VertexShader, vertexSrc)
		if err != nil {
			return err
		}
		frag, err := r.compileShader(name, graphics.FragmentShader, fragmentSrc)
		if err != nil {
			return err
		}
		id := r.api.CreateProgram()
		if err := r.res.OnTeardown(func() error {
			r.api.DeleteProgram(id)
			return nil
		}); err != nil {
			return err
		}
		r.api.AttachShader(id, vert)
		r.api.AttachShader(id, frag)
		if ok, log := r.api.LinkProgram(id); !ok {
			return fmt.Errorf("%w: program %q: %s", ErrLink, name, trimLog(log))
		}
		p.id = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.handle = handle
	for _, in := range inputs {
		p.inputs[in] = &Input{prog: p, name: in}
	}
	return p, nil
}

func (r *Renderer) compileShader(program string, stage graphics.ShaderStage, source string) (graphics.ShaderID, error) {
	sh := r.api.CreateShader(stage)
	if err := r.res.OnTeardown(func() error {
		r.api.DeleteShader(sh)
		return nil
	}); err != nil {
		return 0, err
	}
	if ok, log := r.api.CompileShader(sh, source); !ok {
		return 0, fmt.Errorf("%w: %s shader of program %q: %s", ErrCompile, stage, program, trimLog(log))
	}
	return sh, nil
}

// Name returns the program's name.
func (p *Program) Name() string { return p.name }

// ID returns the underlying program object.
func (p *Program) ID() graphics.ProgramID { return p.id }

// Input returns the declared input with the given shader-side name. Names
// outside the declared set are a usage error.
func (p *Program) Input(name string) (*Input, error) {
	in, ok := p.inputs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in program %q", ErrUnknownInput, name, p.name)
	}
	return in, nil
}

// Attrib returns the attribute location for name, querying the driver on
// first use and caching for the life of the program.
func (p *Program) Attrib(name string) (int32, error) {
	if loc, ok := p.attribs[name]; ok {
		return loc, nil
	}
	loc := p.r.api.GetAttribLocation(p.id, name)
	if loc < 0 {
		return -1, fmt.Errorf("%w: %q in program %q", ErrNoSuchAttrib, name, p.name)
	}
	p.attribs[name] = loc
	return loc, nil
}

// Release tears down the program and its shaders. Idempotent.
func (p *Program) Release() error { return p.handle.Release() }

func trimLog(log string) string {
	return strings.TrimRight(log, "\x00\n ")
}
