package clock

import (
	"sync"
	"time"
)

// TimeSource provides the current time.
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the real wall clock.
type SystemTime struct{}

// Now returns time.Now().
func (SystemTime) Now() time.Time {
	return time.Now()
}

// ManualTime is a controllable TimeSource for tests.
type ManualTime struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualTime creates a manual time source starting at start.
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

// Now returns the current manual time.
func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the manual time forward by d.
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// PausableClock is game time: real time minus every paused interval.
// While paused, Now is frozen at the moment Pause was called.
type PausableClock struct {
	mu          sync.RWMutex
	src         TimeSource
	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock creates a running clock over src (SystemTime if nil).
func NewPausableClock(src TimeSource) *PausableClock {
	if src == nil {
		src = SystemTime{}
	}
	return &PausableClock{src: src}
}

// Now returns the current game time.
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStart.Add(-pc.totalPaused)
	}
	return pc.src.Now().Add(-pc.totalPaused)
}

// Pause stops game time. Pausing a paused clock is a no-op.
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.src.Now()
}

// Resume continues game time. Resuming a running clock is a no-op.
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPaused += pc.src.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// Toggle flips the pause state and returns the new state.
func (pc *PausableClock) Toggle() bool {
	if pc.Paused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// Paused reports whether the clock is paused.
func (pc *PausableClock) Paused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused returns the cumulative paused duration, including a pause in progress.
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused {
		total += pc.src.Now().Sub(pc.pauseStart)
	}
	return total
}
