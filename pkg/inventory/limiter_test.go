package inventory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimiterStore_DefaultLimiter(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	limiter := store.GetLimiter("192.0.2.10")
	require.NotNil(t, limiter)
	assert.Equal(t, rate.Limit(1), limiter.Limit())
	assert.Equal(t, 2, limiter.Burst())

	assert.Same(t, limiter, store.GetLimiter("192.0.2.10"))
	assert.NotSame(t, limiter, store.GetLimiter("192.0.2.11"))
}

func TestRateLimiterStore_SetLimiterReplacesClientLimit(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	store.SetLimiter("192.0.2.20", 5, 10)
	limiter := store.GetLimiter("192.0.2.20")

	assert.Equal(t, rate.Limit(5), limiter.Limit())
	assert.Equal(t, 10, limiter.Burst())
	assert.Equal(t, 2, store.GetLimiter("192.0.2.21").Burst())
}

func TestRateLimiterStore_ConcurrentClients(t *testing.T) {
	store := NewRateLimiterStore(10, 5)

	var wg sync.WaitGroup
	limiters := make([]*rate.Limiter, 100)
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiters[i] = store.GetLimiter("scanner-station")
		}()
	}
	wg.Wait()

	for _, l := range limiters {
		assert.Same(t, limiters[0], l)
	}
}

func TestRateLimiterStore_AllowRefills(t *testing.T) {
	store := NewRateLimiterStore(2, 2)

	assert.True(t, store.Allow("bench"))
	assert.True(t, store.Allow("bench"))
	assert.False(t, store.Allow("bench"), "burst exhausted")

	time.Sleep(600 * time.Millisecond)
	assert.True(t, store.Allow("bench"), "one token refilled")
}

func TestRateLimiterStore_NilAllows(t *testing.T) {
	var store *RateLimiterStore
	for range 5 {
		assert.True(t, store.Allow("anyone"))
	}

	assert.False(t, NewRateLimiterStore(0, 0).Allow("anyone"))
}
