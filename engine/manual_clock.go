package engine

import "sync"

// ManualClock is a controllable tick source for tests and deterministic hosts
// Ticks are delivered synchronously on the caller's goroutine by Advance
type ManualClock struct {
	mu      sync.Mutex
	tick    func()
	running bool
	stopped bool
	ticks   uint64
}

// NewManualClock creates an unarmed manual clock
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Start arms the clock with the tick function
// No-op if already running or already stopped
func (m *ManualClock) Start(tick func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running || m.stopped {
		return
	}
	m.tick = tick
	m.running = true
}

// Stop releases the tick function; later Advance calls deliver nothing
func (m *ManualClock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = false
	m.stopped = true
	m.tick = nil
}

// Advance delivers up to n ticks and returns how many were delivered
// A Stop from inside a tick halts the remaining ones
func (m *ManualClock) Advance(n int) int {
	delivered := 0
	for ; delivered < n; delivered++ {
		m.mu.Lock()
		tick := m.tick
		if !m.running || tick == nil {
			m.mu.Unlock()
			break
		}
		m.ticks++
		m.mu.Unlock()

		tick()
	}
	return delivered
}

// Running reports whether the clock is armed
func (m *ManualClock) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// TickCount returns the number of ticks delivered so far
func (m *ManualClock) TickCount() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ticks
}
