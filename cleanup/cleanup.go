// Package cleanup provides scoped construct-with-rollback resource
// registration. A Registry runs construction code under a scope that collects
// teardown closures; if construction fails the closures run immediately, and
// if it succeeds they are adopted by a Handle that releases them on demand.
package cleanup

import (
	"errors"
	"log/slog"
)

var (
	// ErrNoScope is returned when OnTeardown is called outside any active
	// Scoped/Build/BuildInto call.
	ErrNoScope = errors.New("cleanup: no active scope")

	// ErrNilHandle is returned by BuildInto for a nil target handle.
	ErrNilHandle = errors.New("cleanup: nil handle")

	// ErrReleased is returned by BuildInto when the target handle has already
	// been released.
	ErrReleased = errors.New("cleanup: handle already released")
)

// frame is one nesting level of pending teardowns. Frames form a LIFO chain
// through parent, one link per Scoped/Build call in flight.
type frame struct {
	parent  *frame
	pending []func() error
}

// Registry tracks the innermost construction scope. A single Registry is
// meant to be shared by everything building resources against one context;
// it is not safe for concurrent use.
type Registry struct {
	log *slog.Logger
	top *frame
}

// NewRegistry returns a Registry reporting swallowed teardown failures to
// logger. A nil logger falls back to slog.Default.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{log: logger}
}

// OnTeardown appends fn to the innermost active scope's pending list.
func (r *Registry) OnTeardown(fn func() error) error {
	if r.top == nil {
		return ErrNoScope
	}
	r.top.pending = append(r.top.pending, fn)
	return nil
}

// Scoped runs fn under a fresh pending-teardown scope. If fn returns an error
// or panics, every teardown registered during the call runs in registration
// order (failures logged, never propagated) and the error or panic continues
// out. On success the pending list is discarded: ownership of anything built
// is assumed to have transferred to the caller's own registration.
func (r *Registry) Scoped(fn func() error) (err error) {
	fr := &frame{parent: r.top}
	r.top = fr
	defer func() {
		r.top = fr.parent
		if p := recover(); p != nil {
			r.unwind(fr)
			panic(p)
		}
		if err != nil {
			r.unwind(fr)
		}
	}()
	err = fn()
	return err
}

// Build runs fn like Scoped, but on success the teardowns accumulated in this
// scope become a Handle the caller releases later. On failure the teardowns
// run immediately and no Handle is created.
func (r *Registry) Build(fn func() error) (*Handle, error) {
	h := &Handle{log: r.log}
	if err := r.BuildInto(h, fn); err != nil {
		return nil, err
	}
	return h, nil
}

// BuildInto is the incremental form of Build: on success the scope's
// teardowns are merged into h's existing list, supporting resources that are
// built up across several calls. Building into a released handle is a usage
// error.
func (r *Registry) BuildInto(h *Handle, fn func() error) (err error) {
	if h == nil {
		return ErrNilHandle
	}
	if h.released {
		return ErrReleased
	}
	fr := &frame{parent: r.top}
	r.top = fr
	defer func() {
		r.top = fr.parent
		if p := recover(); p != nil {
			r.unwind(fr)
			panic(p)
		}
		if err != nil {
			r.unwind(fr)
			return
		}
		h.funcs = append(h.funcs, fr.pending...)
	}()
	err = fn()
	return err
}

// unwind runs a failed scope's teardowns in registration order. Each failure
// is reported and swallowed so that every closure gets its chance to run.
func (r *Registry) unwind(fr *frame) {
	for _, fn := range fr.pending {
		if err := protect(fn); err != nil {
			r.log.Warn("cleanup: teardown failed during rollback", "err", err)
		}
	}
	fr.pending = nil
}

// Handle owns the teardown actions of a successfully constructed resource.
type Handle struct {
	log      *slog.Logger
	funcs    []func() error
	released bool
}

// Release runs every teardown in registration order. The first error is
// remembered and returned, but all remaining closures are still attempted.
// Release is idempotent: a second call does nothing and returns nil.
func (h *Handle) Release() error {
	if h == nil || h.released {
		return nil
	}
	h.released = true
	var first error
	for _, fn := range h.funcs {
		if err := protect(fn); err != nil {
			if first == nil {
				first = err
			} else if h.log != nil {
				h.log.Warn("cleanup: teardown failed during release", "err", err)
			}
		}
	}
	h.funcs = nil
	return first
}

// protect invokes one teardown closure, converting a panic into an error so a
// misbehaving closure cannot abort the rest of the list.
func protect(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &panicError{val: p}
		}
	}()
	return fn()
}

type panicError struct {
	val any
}

func (e *panicError) Error() string {
	if err, ok := e.val.(error); ok {
		return "teardown panic: " + err.Error()
	}
	return "teardown panic"
}
