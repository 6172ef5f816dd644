// Package ratelimit enforces per-client daily usage caps.
//
// The counter is an injected service rather than package state so handlers
// can be tested in isolation and the backend swapped (in-memory map,
// external cache).
package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Limits holds the daily caps per app type and tier. App types without an
// entry fall back to a cap of 10.
var Limits = map[string]map[string]int{
	"cost":   {"normal": 20, "premium": 200},
	"bid":    {"normal": 10, "premium": 200},
	"agency": {"normal": 100},
}

const fallbackLimit = 10

// Usage reports the state of one client's counter after an operation.
type Usage struct {
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	Tier      string `json:"tier"`
}

// QuotaError signals that a client has exhausted its daily cap.
type QuotaError struct {
	Limit int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("일일 사용 한도(%d회) 초과", e.Limit)
}

// Counter tracks per-client daily usage.
type Counter interface {
	// Increment counts one request for the client against an app type.
	// Returns a QuotaError when the daily cap is already reached; the
	// request is not counted in that case.
	Increment(clientID, app string, premium bool) (Usage, error)
	// Peek reports current usage without counting a request.
	Peek(clientID, app string, premium bool) Usage
}

// limitFor resolves the cap for an app type and tier.
func limitFor(app string, premium bool) int {
	tiers, ok := Limits[app]
	if !ok {
		return fallbackLimit
	}
	if premium {
		if limit, ok := tiers["premium"]; ok {
			return limit
		}
	}
	// App types without a premium tier use the normal cap for everyone.
	if limit, ok := tiers["normal"]; ok {
		return limit
	}
	return fallbackLimit
}

func tierName(premium bool) string {
	if premium {
		return "premium"
	}
	return "normal"
}

// DailyCounter is the in-memory Counter backend. Counts reset when the
// calendar date changes; the whole map is dropped on rollover so stale
// clients do not accumulate.
type DailyCounter struct {
	mu     sync.Mutex
	date   string
	counts map[string]map[string]int // clientID -> app -> used
	now    func() time.Time
}

// NewDailyCounter creates an in-memory daily counter.
func NewDailyCounter() *DailyCounter {
	return &DailyCounter{
		counts: make(map[string]map[string]int),
		now:    time.Now,
	}
}

// rollover clears all counts when the date has changed.
// Caller must hold the mutex.
func (c *DailyCounter) rollover() {
	today := c.now().Format("2006-01-02")
	if c.date != today {
		c.date = today
		c.counts = make(map[string]map[string]int)
	}
}

// Increment implements Counter.
func (c *DailyCounter) Increment(clientID, app string, premium bool) (Usage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rollover()

	limit := limitFor(app, premium)

	apps, ok := c.counts[clientID]
	if !ok {
		apps = make(map[string]int)
		c.counts[clientID] = apps
	}

	used := apps[app]
	if used >= limit {
		return Usage{Used: used, Limit: limit, Remaining: 0, Tier: tierName(premium)}, &QuotaError{Limit: limit}
	}

	apps[app] = used + 1

	return Usage{
		Used:      used + 1,
		Limit:     limit,
		Remaining: limit - used - 1,
		Tier:      tierName(premium),
	}, nil
}

// Peek implements Counter.
func (c *DailyCounter) Peek(clientID, app string, premium bool) Usage {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rollover()

	limit := limitFor(app, premium)
	used := c.counts[clientID][app]
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}

	return Usage{Used: used, Limit: limit, Remaining: remaining, Tier: tierName(premium)}
}

// Date returns the counter's current calendar date.
func (c *DailyCounter) Date() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollover()
	return c.date
}
