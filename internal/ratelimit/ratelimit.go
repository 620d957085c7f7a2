package ratelimit

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow(key string) bool
}

type entry struct {
	count       int
	windowStart time.Time
}

// FixedWindow counts requests per key in fixed windows. State is
// process-local and lost on restart; for multi-instance deployments the
// counters would have to move to a shared store.
type FixedWindow struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*entry
	now     func() time.Time
}

func New(limit int, window time.Duration) *FixedWindow {
	return &FixedWindow{
		limit:   limit,
		window:  window,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

func (f *FixedWindow) Allow(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()

	e, ok := f.entries[key]
	if !ok || now.Sub(e.windowStart) > f.window {
		f.entries[key] = &entry{count: 1, windowStart: now}
		return true
	}

	if e.count < f.limit {
		e.count++
		return true
	}

	return false
}
