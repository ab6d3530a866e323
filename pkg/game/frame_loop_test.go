package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameLoopOrder(t *testing.T) {
	loop := NewFrameLoop()
	var calls []string
	record := func(name string) UpdateFunc {
		return func(float64) error {
			calls = append(calls, name)
			return nil
		}
	}

	require.NoError(t, loop.Register("cleanup", OrderLate, record("cleanup")))
	require.NoError(t, loop.Register("controller", OrderDefault, record("controller")))
	require.NoError(t, loop.Register("input", OrderEarly, record("input")))
	require.NoError(t, loop.Register("hud", OrderDefault, record("hud")))

	require.NoError(t, loop.Tick(0.016))

	// 同一 order 内保持注册顺序
	assert.Equal(t, []string{"input", "controller", "hud", "cleanup"}, calls)
	assert.Equal(t, []string{"input", "controller", "hud", "cleanup"}, loop.Names())
	assert.Equal(t, uint64(1), loop.FrameCount())
}

func TestFrameLoopPassesDeltaTime(t *testing.T) {
	loop := NewFrameLoop()
	var got float64
	require.NoError(t, loop.Register("probe", OrderDefault, func(dt float64) error {
		got = dt
		return nil
	}))

	require.NoError(t, loop.Tick(0.25))
	assert.Equal(t, 0.25, got)
}

func TestFrameLoopRegisterErrors(t *testing.T) {
	loop := NewFrameLoop()
	noop := func(float64) error { return nil }

	require.NoError(t, loop.Register("a", OrderDefault, noop))
	assert.ErrorIs(t, loop.Register("a", OrderLate, noop), ErrDuplicateUpdate)
	assert.ErrorIs(t, loop.Register("b", OrderDefault, nil), ErrNilUpdate)
	assert.Equal(t, []string{"a"}, loop.Names())
}

func TestFrameLoopErrorStopsFrame(t *testing.T) {
	loop := NewFrameLoop()
	fatal := errors.New("boom")
	lateCalled := false

	require.NoError(t, loop.Register("controller", OrderDefault, func(float64) error { return fatal }))
	require.NoError(t, loop.Register("cleanup", OrderLate, func(float64) error {
		lateCalled = true
		return nil
	}))

	err := loop.Tick(0.016)
	require.Error(t, err)
	assert.ErrorIs(t, err, fatal)
	assert.Contains(t, err.Error(), "controller")
	assert.False(t, lateCalled, "callables after a failing one must not run")
}

func TestFrameLoopUnregister(t *testing.T) {
	loop := NewFrameLoop()
	count := 0
	require.NoError(t, loop.Register("counter", OrderDefault, func(float64) error {
		count++
		return nil
	}))

	require.NoError(t, loop.Tick(0.016))
	assert.True(t, loop.Unregister("counter"))
	assert.False(t, loop.Unregister("counter"))
	require.NoError(t, loop.Tick(0.016))

	assert.Equal(t, 1, count)
	assert.Equal(t, uint64(2), loop.FrameCount())
}

// TestFrameLoopUnregisterDuringTick 更新函数中注销其他函数，本帧剩余函数照常执行
func TestFrameLoopUnregisterDuringTick(t *testing.T) {
	loop := NewFrameLoop()
	var calls []string
	record := func(name string) UpdateFunc {
		return func(float64) error {
			calls = append(calls, name)
			return nil
		}
	}

	require.NoError(t, loop.Register("controller", OrderDefault, record("controller")))
	require.NoError(t, loop.Register("cleanup", OrderLate, func(float64) error {
		calls = append(calls, "cleanup")
		loop.Unregister("controller")
		return nil
	}))
	require.NoError(t, loop.Register("render", OrderLate+1, record("render")))
	require.NoError(t, loop.Register("audit", OrderLate+2, record("audit")))

	require.NoError(t, loop.Tick(0.016))
	assert.Equal(t, []string{"controller", "cleanup", "render", "audit"}, calls)

	calls = nil
	require.NoError(t, loop.Tick(0.016))
	assert.Equal(t, []string{"cleanup", "render", "audit"}, calls)
	assert.Equal(t, []string{"cleanup", "render", "audit"}, loop.Names())
}
