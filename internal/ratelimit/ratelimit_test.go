package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindow_Allow(t *testing.T) {
	t.Run("allows up to the limit within one window", func(t *testing.T) {
		limiter := New(5, time.Minute)

		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("+1234567890"), "request %d should be allowed", i+1)
		}

		assert.False(t, limiter.Allow("+1234567890"), "6th request should be denied")
	})

	t.Run("tracks keys independently", func(t *testing.T) {
		limiter := New(5, time.Minute)

		for i := 0; i < 5; i++ {
			limiter.Allow("+1111111111")
		}

		assert.False(t, limiter.Allow("+1111111111"))
		assert.True(t, limiter.Allow("+2222222222"))
	})

	t.Run("resets after the window elapses", func(t *testing.T) {
		now := time.Now()
		limiter := New(5, time.Minute)
		limiter.now = func() time.Time { return now }

		for i := 0; i < 5; i++ {
			limiter.Allow("+1234567890")
		}
		assert.False(t, limiter.Allow("+1234567890"))

		now = now.Add(61 * time.Second)

		assert.True(t, limiter.Allow("+1234567890"), "window elapsed, counter should reset")
	})

	t.Run("denies again once the fresh window fills up", func(t *testing.T) {
		now := time.Now()
		limiter := New(2, time.Minute)
		limiter.now = func() time.Time { return now }

		assert.True(t, limiter.Allow("k"))
		assert.True(t, limiter.Allow("k"))
		assert.False(t, limiter.Allow("k"))

		now = now.Add(2 * time.Minute)

		assert.True(t, limiter.Allow("k"))
		assert.True(t, limiter.Allow("k"))
		assert.False(t, limiter.Allow("k"))
	})
}
