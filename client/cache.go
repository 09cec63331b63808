package client

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long CachedClient keeps list responses.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value   any
	expires time.Time
}

// Cache is a small in-memory TTL cache. Entries with a zero ttl never expire.
// It is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	group   singleflight.Group
	now     func() time.Time
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the value for key if present and not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expires.IsZero() && !c.now().Before(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := entry{value: value}
	if ttl > 0 {
		e.expires = c.now().Add(ttl)
	}
	c.entries[key] = e
}

// Delete removes key from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of stored entries, expired ones included until they
// are next read.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Fetch returns the cached value for key, or calls fn and caches its result.
// Concurrent callers for the same key share one call to fn. Errors are
// returned to every waiter and never cached.
func Fetch[V any](c *Cache, key string, ttl time.Duration, fn func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(V); ok {
			return typed, nil
		}
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := fn()
		if err != nil {
			log.Printf("cache: fetch %s: %v", key, err)
			return nil, err
		}
		c.Set(key, v, ttl)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// ---------------------------------------------------------------------------
// CachedClient
// ---------------------------------------------------------------------------

// CachedClient serves read endpoints from a Cache keyed by tenant.
type CachedClient struct {
	*Client
	Cache *Cache
	TTL   time.Duration
}

// NewCachedClient wraps c with a response cache. A ttl <= 0 uses DefaultTTL.
func NewCachedClient(c *Client, ttl time.Duration) *CachedClient {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedClient{Client: c, Cache: NewCache(), TTL: ttl}
}

func (cc *CachedClient) key(name string) string {
	return cc.BarbershopID + "/" + name
}

// Invalidate drops every cached response.
func (cc *CachedClient) Invalidate() {
	cc.Cache.Clear()
}

func (cc *CachedClient) GetBarbershop(ctx context.Context, id string) (*Barbershop, error) {
	return Fetch(cc.Cache, cc.key("barbershop/"+id), cc.TTL, func() (*Barbershop, error) {
		return cc.Client.GetBarbershop(ctx, id)
	})
}

func (cc *CachedClient) ListAppointments(ctx context.Context) ([]Appointment, error) {
	return Fetch(cc.Cache, cc.key("appointments"), cc.TTL, func() ([]Appointment, error) {
		return cc.Client.ListAppointments(ctx)
	})
}

func (cc *CachedClient) ListBarbers(ctx context.Context) ([]Barber, error) {
	return Fetch(cc.Cache, cc.key("barbers"), cc.TTL, func() ([]Barber, error) {
		return cc.Client.ListBarbers(ctx)
	})
}

func (cc *CachedClient) ListServices(ctx context.Context) ([]Service, error) {
	return Fetch(cc.Cache, cc.key("services"), cc.TTL, func() ([]Service, error) {
		return cc.Client.ListServices(ctx)
	})
}

func (cc *CachedClient) ListComments(ctx context.Context) ([]Comment, error) {
	return Fetch(cc.Cache, cc.key("comments"), cc.TTL, func() ([]Comment, error) {
		return cc.Client.ListComments(ctx)
	})
}
