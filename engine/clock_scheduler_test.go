package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockSchedulerCreation(t *testing.T) {
	cs := NewClockScheduler(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, cs.Interval())
	assert.False(t, cs.Running())
	assert.Zero(t, cs.TickCount())

	// Fallback for unset interval
	assert.Equal(t, DefaultTickInterval, NewClockScheduler(0).Interval())
}

func TestClockSchedulerTicking(t *testing.T) {
	cs := NewClockScheduler(5 * time.Millisecond)
	var ticks atomic.Int64
	cs.Start(func() { ticks.Add(1) })
	require.True(t, cs.Running())

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, 2*time.Second, time.Millisecond)
	cs.Stop()

	assert.False(t, cs.Running())
	assert.Equal(t, uint64(ticks.Load()), cs.TickCount())
}

// TestClockSchedulerNoTickAfterStop verifies teardown releases the timer for good
func TestClockSchedulerNoTickAfterStop(t *testing.T) {
	cs := NewClockScheduler(time.Millisecond)
	var ticks atomic.Int64
	cs.Start(func() { ticks.Add(1) })
	require.Eventually(t, func() bool { return ticks.Load() >= 1 }, 2*time.Second, time.Millisecond)

	cs.Stop()
	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, ticks.Load())
}

func TestClockSchedulerStopIdempotent(t *testing.T) {
	cs := NewClockScheduler(10 * time.Millisecond)

	// Stop before Start, then repeatedly
	cs.Stop()
	cs.Stop()
	cs.Stop()

	// Start after Stop must not arm the loop
	var ticks atomic.Int64
	cs.Start(func() { ticks.Add(1) })
	assert.False(t, cs.Running())
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, ticks.Load())
}

func TestClockSchedulerDoubleStart(t *testing.T) {
	cs := NewClockScheduler(2 * time.Millisecond)
	var first, second atomic.Int64
	cs.Start(func() { first.Add(1) })
	cs.Start(func() { second.Add(1) })

	require.Eventually(t, func() bool { return first.Load() >= 2 }, 2*time.Second, time.Millisecond)
	cs.Stop()
	assert.Zero(t, second.Load(), "second Start must be ignored")
}

func TestManualClock(t *testing.T) {
	mc := NewManualClock()
	count := 0

	assert.Zero(t, mc.Advance(5), "unarmed clock delivers nothing")

	mc.Start(func() { count++ })
	assert.True(t, mc.Running())
	assert.Equal(t, 3, mc.Advance(3))
	assert.Equal(t, 3, count)
	assert.Equal(t, uint64(3), mc.TickCount())

	mc.Stop()
	assert.False(t, mc.Running())
	assert.Zero(t, mc.Advance(10))
	assert.Equal(t, 3, count)

	// Stopped clocks cannot be re-armed
	mc.Start(func() { count++ })
	assert.False(t, mc.Running())
	mc.Advance(1)
	assert.Equal(t, 3, count)
}
