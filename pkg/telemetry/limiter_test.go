package telemetry

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterStoreDefaults(t *testing.T) {
	store := NewRateLimiterStore(1, 2)
	deviceID := uuid.NewString()

	limiter := store.GetLimiter(deviceID)
	assert.NotNil(t, limiter)

	// burst of 2, so two immediate requests pass and the third is denied
	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())

	// same device gets the same limiter back
	assert.Same(t, limiter, store.GetLimiter(deviceID))
}

func TestRateLimiterStoreSetLimiter(t *testing.T) {
	store := NewRateLimiterStore(0, 0)
	deviceID := uuid.NewString()

	assert.False(t, store.GetLimiter(deviceID).Allow())

	store.SetLimiter(deviceID, 10, 5)
	assert.True(t, store.GetLimiter(deviceID).Allow())
}
