// Package clock schedules game callbacks on two independent timing domains:
// per-frame callbacks (fired once per display refresh) and periodic timers
// (fired against clock time). Both are delivered on the caller's goroutine,
// so a Loop gives single-threaded, run-to-completion semantics.
package clock

import (
	"sort"
	"time"
)

// Subscription is a handle to a scheduled callback.
type Subscription interface {
	// Cancel prevents any further invocation. Safe to call repeatedly.
	Cancel()
	// Active reports whether the callback may still be invoked.
	Active() bool
}

// Scheduler is the timing surface the simulation depends on.
type Scheduler interface {
	// RequestFrame schedules fn to run once, on the next frame.
	RequestFrame(fn func()) Subscription
	// Every schedules fn to run every d of clock time until cancelled.
	Every(d time.Duration, fn func()) Subscription
}

type entry struct {
	id        uint64
	fn        func()
	periodic  bool
	interval  time.Duration
	due       time.Time
	fired     bool
	cancelled bool
}

func (e *entry) Cancel() {
	e.cancelled = true
}

func (e *entry) Active() bool {
	if e.cancelled {
		return false
	}
	return e.periodic || !e.fired
}

// Loop is a Scheduler driven explicitly by its owner: Frame fires pending
// frame callbacks, Advance moves clock time forward and fires due timers.
// The TUI drives it from Bubble Tea tick messages; tests and the headless
// runner drive it with virtual time.
//
// A Loop is not safe for concurrent use.
type Loop struct {
	now    time.Time
	nextID uint64
	frames []*entry
	timers []*entry
	frame  uint64
}

// NewLoop creates a loop whose clock starts at start.
func NewLoop(start time.Time) *Loop {
	return &Loop{now: start}
}

// Now returns the loop's current clock time.
func (l *Loop) Now() time.Time {
	return l.now
}

// FrameCount returns how many frames have been processed.
func (l *Loop) FrameCount() uint64 {
	return l.frame
}

// RequestFrame implements Scheduler.
func (l *Loop) RequestFrame(fn func()) Subscription {
	l.nextID++
	e := &entry{id: l.nextID, fn: fn}
	l.frames = append(l.frames, e)
	return e
}

// Every implements Scheduler. The first invocation is due one interval
// after the current clock time. Panics if d is not positive.
func (l *Loop) Every(d time.Duration, fn func()) Subscription {
	if d <= 0 {
		panic("clock: Every requires a positive interval")
	}
	l.nextID++
	e := &entry{
		id:       l.nextID,
		fn:       fn,
		periodic: true,
		interval: d,
		due:      l.now.Add(d),
	}
	l.timers = append(l.timers, e)
	return e
}

// Frame runs every frame callback requested before this call, in request
// order, and returns how many ran. Callbacks requested while the frame is
// being processed are deferred to the next frame.
func (l *Loop) Frame() int {
	l.frame++
	batch := l.frames
	l.frames = nil

	ran := 0
	for _, e := range batch {
		if e.cancelled {
			continue
		}
		e.fired = true
		e.fn()
		ran++
	}
	return ran
}

// Advance moves clock time to now and fires every timer that came due,
// earliest first. A timer fires at most once per Advance: missed periods
// are dropped rather than replayed in a burst. Moving time backwards is
// ignored. Returns how many callbacks ran.
func (l *Loop) Advance(now time.Time) int {
	if now.Before(l.now) {
		return 0
	}
	l.now = now

	var due []*entry
	for _, e := range l.timers {
		if !e.cancelled && !e.due.After(now) {
			due = append(due, e)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})

	ran := 0
	for _, e := range due {
		// An earlier callback in this batch may have cancelled it
		if e.cancelled {
			continue
		}
		for !e.due.After(now) {
			e.due = e.due.Add(e.interval)
		}
		e.fn()
		ran++
	}

	l.compact()
	return ran
}

// AdvanceBy is Advance relative to the current clock time.
func (l *Loop) AdvanceBy(d time.Duration) int {
	return l.Advance(l.now.Add(d))
}

// Pending returns the number of subscriptions that may still fire.
func (l *Loop) Pending() int {
	n := 0
	for _, e := range l.frames {
		if e.Active() {
			n++
		}
	}
	for _, e := range l.timers {
		if e.Active() {
			n++
		}
	}
	return n
}

// compact drops cancelled timers.
func (l *Loop) compact() {
	live := l.timers[:0]
	for _, e := range l.timers {
		if !e.cancelled {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(l.timers); i++ {
		l.timers[i] = nil
	}
	l.timers = live
}
