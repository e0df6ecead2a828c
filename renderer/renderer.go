// Package renderer is the resource and state core of glscope: it owns the
// notion of the currently bound program, scoped uniform-input binding, and a
// session-scoped 4x4 transform stack with automatic rollback. All GL work is
// funneled through the graphics.API capability object, and every constructed
// GPU resource is registered with a cleanup.Registry so partial construction
// failures never leak driver objects.
package renderer

import (
	"log/slog"

	"github.com/glkit/glscope/cleanup"
	"github.com/glkit/glscope/graphics"
)

// Renderer serializes access to one drawing context. At most one Session is
// active at a time; the generation counter stamps each session so per-session
// caches (uniform locations) invalidate themselves without callbacks.
//
// A Renderer is single-threaded by contract, like the context it wraps.
type Renderer struct {
	api graphics.API
	res *cleanup.Registry
	log *slog.Logger

	active *Session
	gen    uint64

	stack TransformStack

	// scratch is the reusable upload buffer for matrix writes. Every
	// SetMatrix overwrites it synchronously; it is never stable across calls.
	scratch [16]float32
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger routes callback and teardown failure reports to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) { r.log = logger }
}

// WithRegistry shares an existing cleanup registry instead of creating one.
func WithRegistry(res *cleanup.Registry) Option {
	return func(r *Renderer) { r.res = res }
}

// New returns a Renderer over the given drawing API.
func New(api graphics.API, opts ...Option) *Renderer {
	r := &Renderer{api: api}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	if r.res == nil {
		r.res = cleanup.NewRegistry(r.log)
	}
	r.stack.r = r
	r.stack.reset()
	return r
}

// API returns the drawing capability object the renderer runs against.
func (r *Renderer) API() graphics.API { return r.api }

// Resources returns the cleanup registry GPU resources are built through.
func (r *Renderer) Resources() *cleanup.Registry { return r.res }

// Current returns the active session, or nil when idle. Pure query.
func (r *Renderer) Current() *Session { return r.active }
