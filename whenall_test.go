package futures_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsopel/futures"
)

func TestWhenAll(t *testing.T) {
	var e futures.Executor
	e.Autorun(e.Run)

	t.Run("zero operations complete immediately", func(t *testing.T) {
		f := futures.WhenAll(&e)
		require.True(t, f.Completed())
		outcomes, err := f.Get()
		require.NoError(t, err)
		assert.Empty(t, outcomes)
	})

	t.Run("mixed outcomes keep input order", func(t *testing.T) {
		errBoom := errors.New("boom")

		fa := futures.Ready(42)
		fb := futures.Failed[string](errBoom)
		pc := futures.NewPromise[bool](&e)
		fc := pc.Future()

		f := futures.WhenAll(&e, fa, fb, fc)
		require.False(t, f.Available(), "the join waits for the pending member")

		e.Spawn(func() { pc.SetValue(true) })

		require.True(t, f.Completed(), "the join itself never fails")
		outcomes, err := f.Get()
		require.NoError(t, err)
		require.Len(t, outcomes, 3)

		v, err := outcomes[0].(*futures.Future[int]).Get()
		require.NoError(t, err)
		assert.Equal(t, 42, v)

		assert.True(t, outcomes[1].Failed(), "a failed member stays failed in place")
		assert.ErrorIs(t, outcomes[1].Err(), errBoom)

		b, err := outcomes[2].(*futures.Future[bool]).Get()
		require.NoError(t, err)
		assert.True(t, b)
	})

	t.Run("members complete in any order", func(t *testing.T) {
		p1 := futures.NewPromise[int](&e)
		p2 := futures.NewPromise[int](&e)
		f1, f2 := p1.Future(), p2.Future()

		f := futures.WhenAll(&e, f1, f2)

		e.Spawn(func() { p2.SetValue(2) })
		require.False(t, f.Available())

		e.Spawn(func() { p1.SetValue(1) })
		require.True(t, f.Completed())

		outcomes, _ := f.Get()
		v1, _ := outcomes[0].(*futures.Future[int]).Get()
		v2, _ := outcomes[1].(*futures.Future[int]).Get()
		assert.Equal(t, 1, v1)
		assert.Equal(t, 2, v2)
	})
}

func TestWhenAll2(t *testing.T) {
	var e futures.Executor
	e.Autorun(e.Run)

	errBoom := errors.New("boom")

	pa := futures.NewPromise[int](&e)
	fa := pa.Future()
	fb := futures.Failed[string](errBoom)

	f := futures.WhenAll2(&e, fa, fb)
	require.False(t, f.Available())

	e.Spawn(func() { pa.SetValue(5) })

	require.True(t, f.Completed())
	pair, err := f.Get()
	require.NoError(t, err)

	v, err := pair.First.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.ErrorIs(t, pair.Second.Err(), errBoom)
}

func TestWhenAll3(t *testing.T) {
	var e futures.Executor
	e.Autorun(e.Run)

	pa := futures.NewPromise[int](&e)
	fa := pa.Future()
	fb := futures.Ready("two")
	pc := futures.NewPromise[bool](&e)
	fc := pc.Future()

	f := futures.WhenAll3(&e, fa, fb, fc)

	e.Spawn(func() { pc.SetValue(true) })
	require.False(t, f.Available())

	e.Spawn(func() { pa.SetValue(1) })
	require.True(t, f.Completed())

	triple, err := f.Get()
	require.NoError(t, err)

	v1, _ := triple.First.Get()
	v2, _ := triple.Second.Get()
	v3, _ := triple.Third.Get()
	assert.Equal(t, 1, v1)
	assert.Equal(t, "two", v2)
	assert.True(t, v3)
}
