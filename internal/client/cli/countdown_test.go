package cli

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdown_RunsDown(t *testing.T) {
	var done atomic.Bool
	var ticks atomic.Int32

	c := NewCountdown(5*time.Millisecond,
		func(time.Duration) { ticks.Add(1) },
		func() { done.Store(true) },
	)
	c.interval = time.Millisecond
	c.Start()

	require.Eventually(t, done.Load, time.Second, time.Millisecond)
	assert.False(t, c.Running())
	assert.LessOrEqual(t, c.Remaining(), time.Duration(0))
	assert.GreaterOrEqual(t, ticks.Load(), int32(5))
}

func TestCountdown_PauseHoldsRemaining(t *testing.T) {
	c := NewCountdown(time.Hour, nil, nil)
	c.interval = time.Millisecond
	c.Start()

	require.Eventually(t, func() bool {
		return c.Remaining() < time.Hour
	}, time.Second, time.Millisecond)

	c.Pause()
	assert.False(t, c.Running())

	rem := c.Remaining()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, rem, c.Remaining(), "paused countdown must not tick")
}

func TestCountdown_ResumeCompletes(t *testing.T) {
	var done atomic.Bool

	c := NewCountdown(3*time.Millisecond, nil, func() { done.Store(true) })
	c.interval = time.Millisecond
	c.Start()
	c.Pause()
	require.False(t, done.Load())

	c.Resume()
	require.Eventually(t, done.Load, time.Second, time.Millisecond)
}

func TestCountdown_ResumeAfterDoneIsNoop(t *testing.T) {
	var calls atomic.Int32

	c := NewCountdown(time.Millisecond, nil, func() { calls.Add(1) })
	c.interval = time.Millisecond
	c.Start()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	c.Resume()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, c.Running())
}

func TestCountdown_PauseWithoutStartIsNoop(t *testing.T) {
	c := NewCountdown(time.Minute, nil, nil)
	c.Pause()
	assert.Equal(t, time.Minute, c.Remaining())
}
