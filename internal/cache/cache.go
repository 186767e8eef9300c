// Package cache memoizes prediction results per normalized input with
// single-flight de-duplication of concurrent identical requests.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"medcoder/internal/domain"
)

// Cache is a process-scoped TTL cache over prediction results. Entries are
// never mutated in place, only replaced. Safe for concurrent use; readers
// of resolved values never serialize behind resolvers.
type Cache struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	value     domain.PredictionResult
	createdAt time.Time
}

// New creates a cache. A zero ttl disables expiry.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Get returns the cached result for key. Expiry is checked lazily on read:
// an expired entry is reported as absent and replaced on the next compute.
func (c *Cache) Get(key string) (domain.PredictionResult, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.expired(e) {
		return nil, false
	}
	return e.value, true
}

// Put stores a result under key, replacing any previous entry.
func (c *Cache) Put(key string, value domain.PredictionResult) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, createdAt: c.now()}
	c.mu.Unlock()
}

// Status classifies how GetOrCompute produced its value.
type Status int

const (
	// StatusHit means the value was already cached.
	StatusHit Status = iota
	// StatusResolved means this caller ran the resolver.
	StatusResolved
	// StatusShared means this caller joined another caller's in-flight
	// resolution without running the resolver itself.
	StatusShared
)

// GetOrCompute returns the cached result for key, or resolves it via fn.
// Concurrent calls for the same key share a single in-flight resolution:
// only one caller runs fn, the rest await its result and report
// StatusShared. A failed resolution is not cached. The status is only
// meaningful when the returned error is nil.
func (c *Cache) GetOrCompute(ctx context.Context, key string, fn func(context.Context) (domain.PredictionResult, error)) (domain.PredictionResult, Status, error) {
	if value, ok := c.Get(key); ok {
		return value, StatusHit, nil
	}

	// Only the flight leader's closure runs, so waiters keep StatusShared.
	status := StatusShared
	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent resolver may have stored the value between the
		// miss above and acquiring the flight.
		if value, ok := c.Get(key); ok {
			status = StatusHit
			return value, nil
		}
		value, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		status = StatusResolved
		c.Put(key, value)
		return value, nil
	})
	if err != nil {
		return nil, status, err
	}
	return v.(domain.PredictionResult), status, nil
}

// Len reports the number of stored entries, including not-yet-evicted
// expired ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) expired(e entry) bool {
	return c.ttl > 0 && c.now().Sub(e.createdAt) >= c.ttl
}
