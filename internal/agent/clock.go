package agent

import (
	"sort"
	"sync"
	"time"
)

// Clock schedules delayed callbacks. Agents only use it to post messages to
// themselves later.
type Clock interface {
	AfterFunc(d time.Duration, f func())
}

type RealClock struct{}

func (RealClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

type pendingTimer struct {
	due time.Duration
	seq int
	f   func()
}

// ManualClock only fires timers when told to. Tests use it to drive cook
// times, bussing delays and breaks without sleeping.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []pendingTimer
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.pending = append(c.pending, pendingTimer{due: c.now + d, seq: c.seq, f: f})
}

// Advance moves the clock forward by d and fires every timer that became due,
// earliest first. It returns the number of timers fired.
func (c *ManualClock) Advance(d time.Duration) int {
	c.mu.Lock()
	c.now += d
	due := c.takeDue(c.now)
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
	return len(due)
}

// FireAll fires every pending timer regardless of its due time.
func (c *ManualClock) FireAll() int {
	c.mu.Lock()
	if len(c.pending) > 0 {
		latest := c.pending[0].due
		for _, t := range c.pending {
			if t.due > latest {
				latest = t.due
			}
		}
		if latest > c.now {
			c.now = latest
		}
	}
	due := c.takeDue(c.now)
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
	return len(due)
}

func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *ManualClock) takeDue(now time.Duration) []pendingTimer {
	var due, rest []pendingTimer
	for _, t := range c.pending {
		if t.due <= now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	c.pending = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].seq < due[j].seq
		}
		return due[i].due < due[j].due
	})
	return due
}
