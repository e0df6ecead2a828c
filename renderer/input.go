package renderer

import "fmt"

// Input is a named uniform binding declared by a Program. Its driver-side
// location is resolved lazily and cached for exactly one session: the cached
// value is stamped with the renderer's session generation and re-queried when
// the stamp goes stale, since the same shader may later be bound under a
// different session or context.
type Input struct {
	prog *Program
	name string
	gen  uint64
	loc  int32
}

// Name returns the shader-side uniform name.
func (i *Input) Name() string { return i.name }

// resolve returns the input's location in the active session, querying the
// driver at most once per session. It distinguishes three failures: no
// session (usage), input owned by a program other than the bound one (usage),
// and the linked shader declaring no such uniform (a shader authoring bug).
func (i *Input) resolve() (int32, error) {
	r := i.prog.r
	s := r.active
	if s == nil {
		return -1, fmt.Errorf("%w: resolving input %q", ErrNoSession, i.name)
	}
	if s.program != i.prog {
		return -1, fmt.Errorf("%w: input %q belongs to %q, active program is %q",
			ErrForeignInput, i.name, i.prog.name, s.program.name)
	}
	if i.gen == r.gen {
		return i.loc, nil
	}
	loc := r.api.GetUniformLocation(i.prog.id, i.name)
	if loc < 0 {
		return -1, fmt.Errorf("%w: %q in program %q", ErrNoSuchUniform, i.name, i.prog.name)
	}
	i.gen = r.gen
	i.loc = loc
	return loc, nil
}

// Set writes a 1 to 4 component float uniform.
func (i *Input) Set(values ...float32) error {
	loc, err := i.resolve()
	if err != nil {
		return err
	}
	api := i.prog.r.api
	switch len(values) {
	case 1:
		api.Uniform1f(loc, values[0])
	case 2:
		api.Uniform2f(loc, values[0], values[1])
	case 3:
		api.Uniform3f(loc, values[0], values[1], values[2])
	case 4:
		api.Uniform4f(loc, values[0], values[1], values[2], values[3])
	default:
		return fmt.Errorf("%w: input %q got %d", ErrBadComponents, i.name, len(values))
	}
	return nil
}

// SetInt writes an integer uniform.
func (i *Input) SetInt(v int32) error {
	loc, err := i.resolve()
	if err != nil {
		return err
	}
	i.prog.r.api.Uniform1i(loc, v)
	return nil
}

// SetMatrix writes a 4x4 matrix uniform. The values pass through the
// renderer's reusable scratch buffer, which every call overwrites
// synchronously before the upload is issued.
func (i *Input) SetMatrix(m Mat4) error {
	loc, err := i.resolve()
	if err != nil {
		return err
	}
	r := i.prog.r
	copy(r.scratch[:], m[:])
	r.api.UniformMatrix4fv(loc, &r.scratch)
	return nil
}
