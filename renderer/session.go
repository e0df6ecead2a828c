package renderer

import "fmt"

// Session represents one exclusive period during which a single program is
// bound and drawable. It is created by Renderer.Begin and is only valid
// inside the body passed there.
type Session struct {
	r        *Renderer
	program  *Program
	deferred []func(failed bool) error
}

// Begin opens a session with p bound as the active program and runs body
// inside it. The program is bound exactly once, at entry. Whether body
// returns normally, returns an error, or panics, the session's deferred
// callbacks drain in FIFO order — each told whether the body failed, each
// failure logged rather than propagated — and the renderer returns to idle.
// Body's error (or panic) then continues out to the caller.
//
// Beginning a session while one is active is a usage error, not a wait.
func (r *Renderer) Begin(p *Program, body func(*Session) error) (err error) {
	if r.active != nil {
		return ErrSessionActive
	}
	r.gen++
	r.api.UseProgram(p.id)
	s := &Session{r: r, program: p}
	r.active = s
	r.stack.reset()
	defer func() {
		if pv := recover(); pv != nil {
			s.drain(true)
			r.active = nil
			panic(pv)
		}
		s.drain(err != nil)
		r.active = nil
	}()
	err = body(s)
	return err
}

// Program returns the program bound for this session.
func (s *Session) Program() *Program { return s.program }

// Stack returns the transform stack, reset to just the identity when this
// session began.
func (s *Session) Stack() *TransformStack { return &s.r.stack }

// OnEnd appends fn to the session's deferred queue. Callbacks run in FIFO
// order when the session ends and receive true when the body failed. Calling
// OnEnd after the session has ended is a usage error.
func (s *Session) OnEnd(fn func(failed bool) error) error {
	if s.r.active != s {
		return ErrNoSession
	}
	s.deferred = append(s.deferred, fn)
	return nil
}

// drain runs the deferred queue. Indexed iteration so callbacks registered by
// other callbacks still run, in order.
func (s *Session) drain(failed bool) {
	for i := 0; i < len(s.deferred); i++ {
		if err := runCallback(s.deferred[i], failed); err != nil {
			s.r.log.Warn("renderer: session-end callback failed",
				"program", s.program.name, "err", err)
		}
	}
	s.deferred = nil
}

// runCallback invokes one deferred callback, converting a panic into an error
// so a misbehaving callback cannot stop the rest of the queue.
func runCallback(fn func(failed bool) error, failed bool) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("callback panic: %v", p)
		}
	}()
	return fn(failed)
}
