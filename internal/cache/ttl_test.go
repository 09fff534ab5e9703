package cache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"event-management-service/internal/cache"
	"event-management-service/internal/model"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTTL_GetSetExpire(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := cache.NewTTL(clock.Now)

	_, ok := c.Get("ev1")
	assert.False(t, ok)

	c.Set("ev1", model.Dashboard{EventID: "ev1", Members: 3}, time.Minute)

	got, ok := c.Get("ev1")
	assert.True(t, ok)
	assert.Equal(t, 3, got.Members)

	clock.Advance(59 * time.Second)
	_, ok = c.Get("ev1")
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok = c.Get("ev1")
	assert.False(t, ok, "entry must expire exactly at ttl")
}

func TestTTL_SetReplacesWholeValue(t *testing.T) {
	c := cache.NewTTL(nil)

	c.Set("ev1", model.Dashboard{EventID: "ev1", Members: 3, Risks: 2}, time.Minute)
	c.Set("ev1", model.Dashboard{EventID: "ev1", Members: 5}, time.Minute)

	got, ok := c.Get("ev1")
	assert.True(t, ok)
	assert.Equal(t, 5, got.Members)
	assert.Equal(t, 0, got.Risks)
}

func TestTTL_Invalidate(t *testing.T) {
	c := cache.NewTTL(nil)

	c.Set("ev1", model.Dashboard{EventID: "ev1"}, time.Minute)
	c.Set("ev2", model.Dashboard{EventID: "ev2"}, time.Minute)
	c.Invalidate("ev1")

	_, ok := c.Get("ev1")
	assert.False(t, ok)
	_, ok = c.Get("ev2")
	assert.True(t, ok)
}

func TestTTL_NonPositiveTTLDeletes(t *testing.T) {
	c := cache.NewTTL(nil)

	c.Set("ev1", model.Dashboard{EventID: "ev1"}, time.Minute)
	c.Set("ev1", model.Dashboard{EventID: "ev1"}, 0)

	_, ok := c.Get("ev1")
	assert.False(t, ok)
}

func TestTTL_ConcurrentAccess(t *testing.T) {
	c := cache.NewTTL(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set("ev", model.Dashboard{Members: i}, time.Minute)
			c.Get("ev")
			if i%10 == 0 {
				c.Invalidate("ev")
			}
		}(i)
	}
	wg.Wait()
}
