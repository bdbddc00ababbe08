package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"pcremote/internal/provider"
)

// Provider caches the last successful quote of the wrapped provider for a TTL.
// Failed or unavailable quotes are returned as-is and never stored, so the
// next call reaches the upstream again. Concurrent refreshes are coalesced.
type Provider struct {
	P   provider.Provider
	TTL time.Duration

	// now is replaceable in tests.
	now func() time.Time

	mu        sync.RWMutex
	last      provider.Quote
	expiresAt time.Time

	sf singleflight.Group
}

func (c *Provider) Name() string            { return c.P.Name() }
func (c *Provider) Source() provider.Source { return c.P.Source() }

func (c *Provider) Fetch(ctx context.Context) provider.Quote {
	if c.TTL <= 0 {
		return c.P.Fetch(ctx)
	}

	c.mu.RLock()
	if c.last.OK() && c.clock().Before(c.expiresAt) {
		q := c.last
		c.mu.RUnlock()
		return q
	}
	c.mu.RUnlock()

	v, _, _ := c.sf.Do(c.P.Name(), func() (any, error) {
		// a flight that finished just before this one may have filled it
		c.mu.RLock()
		if c.last.OK() && c.clock().Before(c.expiresAt) {
			q := c.last
			c.mu.RUnlock()
			return q, nil
		}
		c.mu.RUnlock()

		q := c.P.Fetch(ctx)
		if q.OK() {
			c.mu.Lock()
			c.last = q
			c.expiresAt = c.clock().Add(c.TTL)
			c.mu.Unlock()
		}
		return q, nil
	})
	return v.(provider.Quote)
}

func (c *Provider) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}
