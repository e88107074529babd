package engine

import (
	"sort"
	"time"
)

// Coalescer accumulates folders with pending changes and releases them as
// one batch after a quiet period: every insertion re-arms the timer, so
// only the trailing edge of a burst fires. It is owned by the watcher loop
// goroutine and is not safe for concurrent use.
type Coalescer struct {
	delay   time.Duration
	pending map[string]struct{}
	timer   *time.Timer
	ch      <-chan time.Time
}

// NewCoalescer creates a coalescer with the given quiet period.
func NewCoalescer(delay time.Duration) *Coalescer {
	return &Coalescer{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

// Add records a folder with pending changes and re-arms the flush timer.
func (c *Coalescer) Add(folder string) {
	c.pending[folder] = struct{}{}
	if c.timer == nil {
		c.timer = time.NewTimer(c.delay)
		c.ch = c.timer.C
	} else {
		c.timer.Reset(c.delay)
	}
}

// C returns the flush signal channel. It is nil until the first Add, which
// a select treats as never-ready.
func (c *Coalescer) C() <-chan time.Time {
	return c.ch
}

// Len returns the number of pending folders.
func (c *Coalescer) Len() int {
	return len(c.pending)
}

// Drain returns the pending folders sorted by path and clears the set.
func (c *Coalescer) Drain() []string {
	out := make([]string, 0, len(c.pending))
	for f := range c.pending {
		out = append(out, f)
	}
	sort.Strings(out)
	c.pending = make(map[string]struct{})
	return out
}

// Stop releases the timer.
func (c *Coalescer) Stop() {
	if c.timer != nil {
		c.timer.Stop()
	}
}
