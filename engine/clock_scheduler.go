package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/skill-orbit/core"
)

// maxBehindTicks bounds drift catch-up; further behind than this, the schedule restarts from now
const maxBehindTicks = 2

// ClockScheduler calls a tick function on a fixed cadence in its own goroutine
// Handles drift correction without busy-wait
// Owns its goroutine exclusively: Start arms it once, Stop releases it once
type ClockScheduler struct {
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction
	mu               sync.Mutex

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	stopped  atomic.Bool
}

// NewClockScheduler creates a scheduler with the specified tick interval
// Non-positive intervals fall back to DefaultTickInterval
func NewClockScheduler(tickInterval time.Duration) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}
	return &ClockScheduler{
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
	}
}

// DefaultTickInterval is the cadence used when none is configured
const DefaultTickInterval = 30 * time.Millisecond

// Interval returns the configured tick interval
func (cs *ClockScheduler) Interval() time.Duration {
	return cs.tickInterval
}

// TickCount returns the number of ticks delivered so far
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Running reports whether the scheduler loop is active
func (cs *ClockScheduler) Running() bool {
	return cs.running.Load()
}

// Start begins the scheduler loop, calling tick every interval
// No-op if already running or already stopped
func (cs *ClockScheduler) Start(tick func()) {
	if cs.stopped.Load() {
		return
	}
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// core.Go routes panics in tick through the crash handler
		core.Go(func() { cs.schedulerLoop(tick) })
	}
}

// Stop halts the scheduler loop and waits for it to exit
// After Stop returns no further tick is delivered
// Must not be called from inside the tick function
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		cs.stopped.Store(true)
		close(cs.stopChan)
		cs.wg.Wait()
		cs.running.Store(false)
	})
}

func (cs *ClockScheduler) schedulerLoop(tick func()) {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	deadline := cs.nextTickDeadline
	cs.mu.Unlock()

	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		// Timer and stop may become ready together; stop wins
		select {
		case <-cs.stopChan:
			return
		default:
		}

		tick()
		cs.tickCount.Add(1)

		now := time.Now()
		cs.mu.Lock()
		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
		if now.Sub(cs.nextTickDeadline) > cs.tickInterval*maxBehindTicks {
			cs.nextTickDeadline = now.Add(cs.tickInterval)
		}
		deadline = cs.nextTickDeadline
		cs.mu.Unlock()

		sleep := deadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
