package signature

import (
	"sync"
	"time"
)

// Clock hands out decision timestamps that strictly increase per actor key
// within the process, even when the platform clock stalls or steps back.
type Clock struct {
	mu   sync.Mutex
	last map[string]time.Time
}

func NewClock() *Clock {
	return &Clock{last: make(map[string]time.Time)}
}

// Stamp returns now, or one microsecond after the last stamp handed to key
// when now is not after it.
func (c *Clock) Stamp(key string, now time.Time) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now = now.Truncate(time.Microsecond)
	if prev, ok := c.last[key]; ok && !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	c.last[key] = now
	return now
}
