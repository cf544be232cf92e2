package security

import (
	"sync"
	"time"
)

type rateWindow struct {
	count     int
	resetTime time.Time
}

// RateLimiter is a fixed-window request counter keyed by an arbitrary
// identifier (client IP for the public forms). Expired windows are evicted
// by a janitor goroutine so the map stays bounded under many distinct keys.
type RateLimiter struct {
	mu          sync.Mutex
	entries     map[string]*rateWindow
	maxRequests int
	window      time.Duration
	stop        chan struct{}
	now         func() time.Time
}

// NewRateLimiter creates a limiter allowing maxRequests per window per key.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	if maxRequests <= 0 {
		maxRequests = 5
	}
	if window <= 0 {
		window = 5 * time.Minute
	}

	rl := &RateLimiter{
		entries:     make(map[string]*rateWindow),
		maxRequests: maxRequests,
		window:      window,
		stop:        make(chan struct{}),
		now:         time.Now,
	}

	go rl.janitor()
	return rl
}

// Allow records a request for the key and reports whether it is within the
// window limit. The first request after the window elapses resets the count.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, ok := rl.entries[key]
	if !ok || now.After(entry.resetTime) {
		rl.entries[key] = &rateWindow{count: 1, resetTime: now.Add(rl.window)}
		return true
	}

	if entry.count >= rl.maxRequests {
		return false
	}

	entry.count++
	return true
}

// Close stops the janitor goroutine.
func (rl *RateLimiter) Close() {
	close(rl.stop)
}

func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := rl.now()
			for key, entry := range rl.entries {
				if now.After(entry.resetTime) {
					delete(rl.entries, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
