package renderer

import "errors"

// Usage errors: the operation was invoked in the wrong state. Always fatal to
// the immediate call, never retried.
var (
	ErrSessionActive = errors.New("renderer: a session is already active")
	ErrNoSession     = errors.New("renderer: no active session")
	ErrForeignInput  = errors.New("renderer: input does not belong to the active program")
	ErrUnknownInput  = errors.New("renderer: input not in the program's declared set")
	ErrNoDriver      = errors.New("renderer: no input is driving the transform stack")
	ErrDriverBound   = errors.New("renderer: another input already drives the transform stack")
	ErrStackBaseline = errors.New("renderer: transform stack popped past its baseline")
	ErrBadComponents = errors.New("renderer: uniform takes 1 to 4 components")
)

// Resource errors: the driver rejected a shader or program. The wrapped
// message carries the driver's diagnostic log.
var (
	ErrCompile = errors.New("renderer: shader compilation failed")
	ErrLink    = errors.New("renderer: program link failed")
)

// Declaration errors: the linked program has no such name. Distinct from
// ErrUnknownInput, which is a caller-scoping mistake rather than a shader
// authoring one.
var (
	ErrNoSuchUniform = errors.New("renderer: uniform not declared by shader")
	ErrNoSuchAttrib  = errors.New("renderer: attribute not declared by shader")
)
