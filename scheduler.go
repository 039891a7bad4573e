package landing

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Timer is a pending callback registered with a Scheduler.
type Timer interface {
	// Stop cancels the timer. It reports whether the timer was still pending.
	Stop() bool
}

// Scheduler runs deferred callbacks. Page features never sleep or spawn
// goroutines; every delayed step goes through a Scheduler.
type Scheduler interface {
	// AfterFunc runs fn once, d after now.
	AfterFunc(d time.Duration, fn func()) Timer
	// Every runs fn every d, first after d.
	Every(d time.Duration, fn func()) Timer
}

// minInterval bounds repeating timers so a zero interval cannot spin Advance.
const minInterval = time.Millisecond

// FrameClock is a single-threaded Scheduler driven by explicit Advance calls,
// usually once per frame from Update. Callbacks run on the caller's
// goroutine, in due-time order; timers due at the same instant run in the
// order they were scheduled.
type FrameClock struct {
	now    time.Duration
	seq    uint64
	timers []*clockTimer
}

type clockTimer struct {
	due     time.Duration
	every   time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

func (t *clockTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// NewFrameClock returns a clock at time zero.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Now returns the clock's elapsed time.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of timers that have not fired or been stopped.
func (c *FrameClock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (c *FrameClock) AfterFunc(d time.Duration, fn func()) Timer {
	return c.add(d, 0, fn)
}

func (c *FrameClock) Every(d time.Duration, fn func()) Timer {
	return c.add(d, max(d, minInterval), fn)
}

func (c *FrameClock) add(d, every time.Duration, fn func()) *clockTimer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &clockTimer{due: c.now + d, every: every, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by dt, firing every timer that comes due.
// A negative dt is treated as zero.
// Timers scheduled by a callback fire within the same Advance when their due
// time falls inside it.
func (c *FrameClock) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := c.now + dt
	for {
		t := c.next(target)
		if t == nil {
			break
		}
		c.now = t.due
		if t.every > 0 {
			c.seq++
			t.due += t.every
			t.seq = c.seq
		} else {
			t.stopped = true
		}
		t.fn()
	}
	c.now = target
	c.compact()
}

// Tick advances the clock by one Ebitengine tick.
func (c *FrameClock) Tick() {
	c.Advance(time.Second / time.Duration(ebiten.TPS()))
}

// next returns the earliest pending timer due at or before target.
func (c *FrameClock) next(target time.Duration) *clockTimer {
	var best *clockTimer
	for _, t := range c.timers {
		if t.stopped || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (c *FrameClock) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = live
}
