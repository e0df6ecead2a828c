package renderer

import "fmt"

// TransformStack is a session-scoped stack of 4x4 matrices driving one
// uniform Input. The stack is never empty: the bottom entry is the identity,
// restored every time a session begins. Pushes write the new top to the
// driving input immediately, so the shader always sees the current transform.
type TransformStack struct {
	r      *Renderer
	mats   []Mat4
	driver *Input
}

func (t *TransformStack) reset() {
	t.mats = append(t.mats[:0], Identity())
	t.driver = nil
}

// Depth returns the number of matrices on the stack, including the baseline.
func (t *TransformStack) Depth() int { return len(t.mats) }

// Top returns the current top matrix.
func (t *TransformStack) Top() Mat4 { return t.mats[len(t.mats)-1] }

// Use declares in as the stack's driving input for the remainder of the
// current session. Only one input may drive the stack per session. When the
// session ends the stack pops back to just the identity and the driver
// clears.
func (t *TransformStack) Use(in *Input) error {
	s := t.r.active
	if s == nil {
		return fmt.Errorf("%w: binding transform driver", ErrNoSession)
	}
	if t.driver != nil {
		return fmt.Errorf("%w: %q", ErrDriverBound, t.driver.name)
	}
	t.driver = in
	return s.OnEnd(func(bool) error {
		t.reset()
		return nil
	})
}

// PushAbsolute pushes m verbatim, replacing rather than composing with the
// current top, and writes it to the driving input.
func (t *TransformStack) PushAbsolute(m Mat4) error {
	if t.driver == nil {
		return ErrNoDriver
	}
	if err := t.driver.SetMatrix(m); err != nil {
		return err
	}
	t.mats = append(t.mats, m)
	return nil
}

// Push pushes m composed with the current top (m × top: m applied in the
// frame the top establishes) and writes the result to the driving input.
func (t *TransformStack) Push(m Mat4) error {
	if t.driver == nil {
		return ErrNoDriver
	}
	return t.PushAbsolute(m.Mul(t.Top()))
}

// Translate composes a translation onto the current transform.
func (t *TransformStack) Translate(x, y, z float32) error {
	return t.Push(Translation(x, y, z))
}

// Scale composes a per-axis scale onto the current transform. Negative
// factors mirror that axis.
func (t *TransformStack) Scale(x, y, z float32) error {
	return t.Push(Scaling(x, y, z))
}

// RotateX composes a rotation about the X axis (radians).
func (t *TransformStack) RotateX(angle float32) error {
	return t.Push(RotationX(angle))
}

// RotateY composes a rotation about the Y axis (radians).
func (t *TransformStack) RotateY(angle float32) error {
	return t.Push(RotationY(angle))
}

// RotateZ composes a rotation about the Z axis (radians).
func (t *TransformStack) RotateZ(angle float32) error {
	return t.Push(RotationZ(angle))
}

// Pop removes the top entry and writes the uncovered matrix to the driving
// input. Popping the baseline identity is a usage error.
func (t *TransformStack) Pop() error {
	if t.driver == nil {
		return ErrNoDriver
	}
	if len(t.mats) <= 1 {
		return ErrStackBaseline
	}
	t.mats = t.mats[:len(t.mats)-1]
	return t.driver.SetMatrix(t.Top())
}

// Scope records the stack depth, runs body, and — whether body returns
// normally, returns an error, or panics — pops any entries body left pushed
// and rewrites the uncovered top to the driving input. Nested drawing code
// can therefore push freely without balancing pops. A body that pops below
// the entry depth is a usage error, never a silent corruption of the
// baseline.
func (t *TransformStack) Scope(body func() error) (err error) {
	depth := len(t.mats)
	defer func() {
		if p := recover(); p != nil {
			if rerr := t.restore(depth); rerr != nil {
				t.r.log.Warn("renderer: transform scope restore failed", "err", rerr)
			}
			panic(p)
		}
		rerr := t.restore(depth)
		if err == nil {
			err = rerr
		} else if rerr != nil {
			t.r.log.Warn("renderer: transform scope restore failed", "err", rerr)
		}
	}()
	err = body()
	return err
}

// ScopeWith is Scope for bodies that take an argument, keeping the call site
// closure-free.
func ScopeWith[T any](t *TransformStack, arg T, body func(T) error) error {
	return t.Scope(func() error { return body(arg) })
}

func (t *TransformStack) restore(depth int) error {
	if len(t.mats) < depth {
		return fmt.Errorf("%w: scope exited %d below its entry depth",
			ErrStackBaseline, depth-len(t.mats))
	}
	if len(t.mats) == depth {
		return nil
	}
	t.mats = t.mats[:depth]
	if t.driver == nil {
		return ErrNoDriver
	}
	return t.driver.SetMatrix(t.Top())
}
