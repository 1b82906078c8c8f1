package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeKey(t *testing.T) {
	assert.Equal(t, ComputeKey(123), ComputeKey(123))
	assert.Equal(t, ComputeKey("test", 123, 0.456, true), ComputeKey("test", 123, 0.456, true))
	assert.NotEqual(t, ComputeKey(0.123), ComputeKey(0.124))
	assert.NotEqual(t, ComputeKey("prefix", 1.0), ComputeKey("prefix", 2.0))
	assert.NotEqual(t, ComputeKey(true), ComputeKey(false))

	// String boundaries are part of the key.
	assert.NotEqual(t, ComputeKey("ab", "c"), ComputeKey("a", "bc"))
}

func TestRenderCache_Eviction(t *testing.T) {
	rc := NewRenderCache(2)
	rc.Set(1, "one")
	rc.Set(2, "two")
	rc.Set(3, "three")

	assert.Equal(t, 2, rc.Len())
	_, ok := rc.Get(1)
	assert.False(t, ok)
	got, ok := rc.Get(3)
	assert.True(t, ok)
	assert.Equal(t, "three", got)

	rc.Clear()
	assert.Zero(t, rc.Len())
}

func TestCachedRender(t *testing.T) {
	calls := 0
	render := func() (string, error) {
		calls++
		return "rendered", nil
	}

	cr := NewCachedRender(NewRenderCache(4))
	for i := 0; i < 3; i++ {
		out, err := cr.Render([]interface{}{"doc", 80}, render)
		require.NoError(t, err)
		assert.Equal(t, "rendered", out)
	}
	assert.Equal(t, 1, calls)

	_, err := cr.Render([]interface{}{"doc", 60}, render)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	// Back to a width the shared cache has already seen.
	cr.Invalidate()
	_, err = cr.Render([]interface{}{"doc", 80}, render)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCachedRender_ErrorsAreNotCached(t *testing.T) {
	cr := NewCachedRender(NewRenderCache(4))
	boom := errors.New("boom")

	_, err := cr.Render([]interface{}{"x"}, func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)

	out, err := cr.Render([]interface{}{"x"}, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}
