package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBlocksSixthRequest(t *testing.T) {
	rl := NewRateLimiter(5, 5*time.Minute)
	defer rl.Close()

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"), "sixth request should be rejected")

	// A different key has its own window.
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Close()

	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	assert.True(t, rl.Allow("key"))
	assert.True(t, rl.Allow("key"))
	assert.False(t, rl.Allow("key"))

	current = current.Add(61 * time.Second)
	assert.True(t, rl.Allow("key"), "window should reset after it elapses")
	assert.True(t, rl.Allow("key"))
	assert.False(t, rl.Allow("key"))
}

func TestRateLimiterDefaults(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	defer rl.Close()

	assert.Equal(t, 5, rl.maxRequests)
	assert.Equal(t, 5*time.Minute, rl.window)
}
