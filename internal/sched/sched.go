// Package sched models frame and interval callbacks as explicit tasks.
//
// Instead of ambient timers, callers submit work and get back a Handle they
// can cancel. Clock is a deterministic, single-threaded implementation: the
// platform advances it once per display frame, so all callbacks run on the
// platform's own goroutine and never concurrently with each other.
package sched

import "time"

// Handle refers to a submitted task.
type Handle interface {
	// Cancel prevents any future run of the task. Cancelling twice is a no-op.
	Cancel()
}

// Scheduler accepts frame and interval tasks.
type Scheduler interface {
	// RequestFrame runs fn once at the start of the next frame.
	RequestFrame(fn func()) Handle
	// Every runs fn each time period elapses until cancelled.
	Every(period time.Duration, fn func()) Handle
}

type task struct {
	fn        func()
	period    time.Duration
	due       time.Duration
	seq       uint64
	cancelled bool
}

func (t *task) Cancel() {
	t.cancelled = true
}

// Clock is a virtual-time Scheduler driven by explicit Frame and Advance calls.
type Clock struct {
	now    time.Duration
	seq    uint64
	frames []*task
	timers []*task
}

// NewClock creates a clock at time zero with no pending tasks.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the virtual time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// RequestFrame implements Scheduler.
func (c *Clock) RequestFrame(fn func()) Handle {
	t := &task{fn: fn, seq: c.next()}
	c.frames = append(c.frames, t)
	return t
}

// Every implements Scheduler. A non-positive period is treated as one
// nanosecond so the task cannot fire unboundedly within one Advance.
func (c *Clock) Every(period time.Duration, fn func()) Handle {
	if period <= 0 {
		period = time.Nanosecond
	}
	t := &task{fn: fn, period: period, due: c.now + period, seq: c.next()}
	c.timers = append(c.timers, t)
	return t
}

func (c *Clock) next() uint64 {
	c.seq++
	return c.seq
}

// Frame runs every frame callback requested before this call.
// Callbacks requested while the frame runs are deferred to the next frame.
// Returns the number of callbacks that ran.
func (c *Clock) Frame() int {
	pending := c.frames
	c.frames = nil

	ran := 0
	for _, t := range pending {
		if t.cancelled {
			continue
		}
		t.cancelled = true
		t.fn()
		ran++
	}
	return ran
}

// Advance moves virtual time forward by d, firing interval tasks as their
// deadlines pass. Tasks fire in deadline order, ties broken by submission
// order. A task cancelled by an earlier callback does not fire.
// Returns the number of callbacks that ran.
func (c *Clock) Advance(d time.Duration) int {
	target := c.now + d
	ran := 0
	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.due
		t.due += t.period
		t.fn()
		ran++
	}
	c.now = target
	c.compact()
	return ran
}

// nextDue returns the live timer with the earliest deadline not after target.
func (c *Clock) nextDue(target time.Duration) *task {
	var best *task
	for _, t := range c.timers {
		if t.cancelled || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// compact drops cancelled timers.
func (c *Clock) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = live
}

// PendingFrames returns how many frame callbacks are waiting.
func (c *Clock) PendingFrames() int {
	n := 0
	for _, t := range c.frames {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// ActiveTimers returns how many interval tasks are still scheduled.
func (c *Clock) ActiveTimers() int {
	n := 0
	for _, t := range c.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

var _ Scheduler = (*Clock)(nil)
