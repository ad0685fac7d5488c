package core

import (
	"sync"
	"time"
)

// IDSource issues note ids.
type IDSource interface {
	Next() int64
}

// ClockIDs issues ids from the wall clock in Unix milliseconds.
// Ids are strictly increasing: when the clock has not moved past the last
// issued id, the next id is last+1.
type ClockIDs struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewClockIDs creates a ClockIDs reading time from now (time.Now when nil).
func NewClockIDs(now func() time.Time) *ClockIDs {
	if now == nil {
		now = time.Now
	}
	return &ClockIDs{now: now}
}

// Next returns a fresh id.
func (c *ClockIDs) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

// Observe raises the floor so later ids are greater than id.
func (c *ClockIDs) Observe(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id > c.last {
		c.last = id
	}
}
