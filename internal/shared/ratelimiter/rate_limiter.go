// Package ratelimiter provides a fixed-window request rate limiter.
package ratelimiter

import (
	"sync"
	"time"
)

// pruneThreshold bounds the window map: once it grows past this size, stale
// windows are dropped on the next Allow call.
const pruneThreshold = 10000

// Limiter limits how often an operation may run per key within a window.
// It is safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	limit    int           // allowed calls per window
	interval time.Duration // window length
	windows  map[string]*window
}

type window struct {
	count int
	start time.Time
}

// NewLimiter creates a new Limiter allowing limit calls per interval per key.
func NewLimiter(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// Allow reports whether the caller identified by key may proceed, counting
// the call against the current window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	if len(l.windows) > pruneThreshold {
		l.prune(now)
	}

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.interval {
		l.windows[key] = &window{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= l.limit
}

// prune drops windows whose interval has elapsed. Caller must hold mu.
func (l *Limiter) prune(now time.Time) {
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.interval {
			delete(l.windows, key)
		}
	}
}
