// Package timing drives the game from one logical clock: countdown ticks,
// game steps and the active-time counter all read the same Clock.
package timing

import (
	"sort"
	"time"
)

// Clock provides the current logical time and one-shot callbacks.
type Clock interface {
	Now() time.Duration
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is the handle returned by AfterFunc.
type Timer interface {
	// Stop prevents the callback from running. It reports false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// LoopClock is a Clock for a single-threaded event loop. Nothing fires on
// its own: callbacks run on the goroutine that calls Advance or AdvanceTo,
// in due order, with Now set to their due time. A front-end advances it to
// wall-clock time once per frame; tests advance it by hand.
//
// LoopClock is not safe for concurrent use.
type LoopClock struct {
	now    time.Duration
	seq    uint64
	timers []*loopTimer
}

type loopTimer struct {
	clock *LoopClock
	when  time.Duration
	seq   uint64
	f     func()
	done  bool
}

func NewLoopClock() *LoopClock {
	return &LoopClock{}
}

func (c *LoopClock) Now() time.Duration {
	return c.now
}

func (c *LoopClock) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &loopTimer{clock: c, when: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Pending is the number of timers that have neither fired nor been stopped.
func (c *LoopClock) Pending() int {
	return len(c.timers)
}

func (c *LoopClock) Advance(d time.Duration) {
	c.AdvanceTo(c.now + d)
}

// AdvanceTo moves the clock forward to target, running every timer due on
// the way, including timers armed by callbacks during the advance.
func (c *LoopClock) AdvanceTo(target time.Duration) {
	for {
		t := c.next(target)
		if t == nil {
			break
		}
		c.remove(t)
		if t.when > c.now {
			c.now = t.when
		}
		t.done = true
		t.f()
	}
	if target > c.now {
		c.now = target
	}
}

func (c *LoopClock) next(target time.Duration) *loopTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].when != c.timers[j].when {
			return c.timers[i].when < c.timers[j].when
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	if c.timers[0].when > target {
		return nil
	}
	return c.timers[0]
}

func (c *LoopClock) remove(t *loopTimer) {
	for i, p := range c.timers {
		if p == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

func (t *loopTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.clock.remove(t)
	return true
}
