package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutsideSessionIsUsageError(t *testing.T) {
	f := newFakeAPI()
	f.uniforms["u_time"] = 3
	r := newTestRenderer(f)
	p := newTestProgram(t, r, "p", "u_time")

	in, err := p.Input("u_time")
	require.NoError(t, err)
	require.ErrorIs(t, in.Set(1.0), ErrNoSession)
}

func TestSetAgainstForeignProgramIsUsageError(t *testing.T) {
	f := newFakeAPI()
	f.uniforms["u_time"] = 3
	r := newTestRenderer(f)
	a := newTestProgram(t, r, "a", "u_time")
	b := newTestProgram(t, r, "b", "u_time")

	other, err := b.Input("u_time")
	require.NoError(t, err)

	err = r.Begin(a, func(*Session) error {
		return other.Set(1.0)
	})
	require.ErrorIs(t, err, ErrForeignInput)
}

func TestMissingUniformIsDeclarationError(t *testing.T) {
	f := newFakeAPI()
	r := newTestRenderer(f)
	p := newTestProgram(t, r, "p", "u_ghost")

	in, err := p.Input("u_ghost")
	require.NoError(t, err)

	err = r.Begin(p, func(*Session) error {
		return in.Set(1.0)
	})
	require.ErrorIs(t, err, ErrNoSuchUniform)
}

func TestLocationCachedForExactlyOneSession(t *testing.T) {
	f := newFakeAPI()
	f.uniforms["u_time"] = 3
	r := newTestRenderer(f)
	p := newTestProgram(t, r, "p", "u_time")

	in, err := p.Input("u_time")
	require.NoError(t, err)

	require.NoError(t, r.Begin(p, func(*Session) error {
		require.NoError(t, in.Set(1.0))
		require.NoError(t, in.Set(2.0))
		return nil
	}))
	assert.Equal(t, 1, f.uniformLookups, "one driver query per session")

	require.NoError(t, r.Begin(p, func(*Session) error {
		return in.Set(3.0)
	}))
	assert.Equal(t, 2, f.uniformLookups, "the cache dies with its session")
}

func TestSetDispatchesByComponentCount(t *testing.T) {
	f := newFakeAPI()
	f.uniforms["u_v"] = 7
	r := newTestRenderer(f)
	p := newTestProgram(t, r, "p", "u_v")

	in, err := p.Input("u_v")
	require.NoError(t, err)

	require.NoError(t, r.Begin(p, func(*Session) error {
		require.NoError(t, in.Set(1))
		assert.Equal(t, []float32{1}, f.scalars[7])
		require.NoError(t, in.Set(1, 2))
		assert.Equal(t, []float32{1, 2}, f.scalars[7])
		require.NoError(t, in.Set(1, 2, 3))
		assert.Equal(t, []float32{1, 2, 3}, f.scalars[7])
		require.NoError(t, in.Set(1, 2, 3, 4))
		assert.Equal(t, []float32{1, 2, 3, 4}, f.scalars[7])

		require.ErrorIs(t, in.Set(), ErrBadComponents)
		require.ErrorIs(t, in.Set(1, 2, 3, 4, 5), ErrBadComponents)

		require.NoError(t, in.SetInt(42))
		assert.Equal(t, int32(42), f.ints[7])
		return nil
	}))
}

func TestSetMatrixGoesThroughScratchBuffer(t *testing.T) {
	f := newFakeAPI()
	f.uniforms["u_transform"] = 5
	r := newTestRenderer(f)
	p := newTestProgram(t, r, "p", "u_transform")

	in, err := p.Input("u_transform")
	require.NoError(t, err)

	m := Translation(1, 2, 3)
	require.NoError(t, r.Begin(p, func(*Session) error {
		return in.SetMatrix(m)
	}))
	assert.Equal(t, int32(5), f.matrixLoc)
	assert.Equal(t, m, f.lastMatrix)
	assert.Equal(t, [16]float32(m), r.scratch, "upload staged through the shared scratch buffer")
}
