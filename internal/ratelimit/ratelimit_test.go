package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiterAllowsWithinWindow(t *testing.T) {
	limiter := NewLimiter(3)
	defer limiter.Stop()

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestLimiterTracksClientsSeparately(t *testing.T) {
	limiter := NewLimiter(1)
	defer limiter.Stop()

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestLimiterDefaultsWhenMisconfigured(t *testing.T) {
	limiter := NewLimiter(0)
	defer limiter.Stop()

	for i := 0; i < 60; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"))
	}
	assert.False(t, limiter.Allow("10.0.0.1"))
}
