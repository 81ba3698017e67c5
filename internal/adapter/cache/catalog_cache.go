package cache

import (
	"context"
	"sync"
	"time"

	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/domain/entities"
	"github.com/CoderHifzurRehman/fixxbuddy-backend/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultCatalogTTL         = 5 * time.Minute
	DefaultCatalogFillTimeout = 5 * time.Second
)

type catalogEntry struct {
	snapshot entities.ServiceSnapshot
	expires  time.Time
}

// CatalogCache decorates a catalog reader with TTL-bounded snapshots.
//
// Concurrent misses for one service share a single store read. The read is detached from the
// caller that started it and bounded by fillTimeout, so a canceled caller does not fail the others.
// Entries are filled on read only; Invalidate and InvalidateAll drop entries and discard reads that
// were in flight when called.
type CatalogCache struct {
	next        interfaces.ICatalogReader
	ttl         time.Duration
	fillTimeout time.Duration
	now         func() time.Time
	logger      *zap.Logger

	mu         sync.RWMutex
	entries    map[string]catalogEntry
	generation uint64
	group      singleflight.Group
}

var (
	_ interfaces.ICatalogReader           = (*CatalogCache)(nil)
	_ interfaces.ICatalogCacheInvalidator = (*CatalogCache)(nil)
)

func NewCatalogCache(next interfaces.ICatalogReader, ttl, fillTimeout time.Duration, logger *zap.Logger) *CatalogCache {
	c := newCatalogCache(next, ttl, logger, time.Now)
	if fillTimeout > 0 {
		c.fillTimeout = fillTimeout
	}
	return c
}

func newCatalogCache(next interfaces.ICatalogReader, ttl time.Duration, logger *zap.Logger, now func() time.Time) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogCache{
		next:        next,
		ttl:         ttl,
		fillTimeout: DefaultCatalogFillTimeout,
		now:         now,
		logger:      logger,
		entries:     make(map[string]catalogEntry),
	}
}

func (c *CatalogCache) GetServicePrice(ctx context.Context, serviceID string) (entities.ServiceSnapshot, error) {
	if snapshot, ok := c.lookup(serviceID); ok {
		return snapshot, nil
	}

	fill := c.group.DoChan(serviceID, func() (any, error) {
		c.mu.RLock()
		generation := c.generation
		c.mu.RUnlock()

		fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fillTimeout)
		defer cancel()
		snapshot, err := c.next.GetServicePrice(fillCtx, serviceID)
		if err != nil {
			c.logger.Debug("[catalog][cache] fill failed", zap.String("service_id", serviceID), zap.Error(err))
			return entities.ServiceSnapshot{}, err
		}

		c.mu.Lock()
		if c.generation == generation {
			c.entries[serviceID] = catalogEntry{snapshot: snapshot, expires: c.now().Add(c.ttl)}
		}
		c.mu.Unlock()
		return snapshot, nil
	})

	select {
	case res := <-fill:
		if res.Err != nil {
			return entities.ServiceSnapshot{}, res.Err
		}
		return res.Val.(entities.ServiceSnapshot), nil
	case <-ctx.Done():
		return entities.ServiceSnapshot{}, ctx.Err()
	}
}

func (c *CatalogCache) lookup(serviceID string) (entities.ServiceSnapshot, bool) {
	c.mu.RLock()
	entry, ok := c.entries[serviceID]
	c.mu.RUnlock()
	if !ok || !c.now().Before(entry.expires) {
		return entities.ServiceSnapshot{}, false
	}
	return entry.snapshot, true
}

func (c *CatalogCache) Invalidate(serviceID string) {
	c.mu.Lock()
	delete(c.entries, serviceID)
	c.generation++
	c.mu.Unlock()
	c.group.Forget(serviceID)
	c.logger.Debug("[catalog][cache] invalidated", zap.String("service_id", serviceID))
}

func (c *CatalogCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]catalogEntry)
	c.generation++
	c.mu.Unlock()
	c.logger.Debug("[catalog][cache] cleared")
}

// Len reports the number of cached entries, expired ones included.
func (c *CatalogCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
