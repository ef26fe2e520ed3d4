package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"festivos/constants"
	"festivos/types"
)

// CacheKey addresses one resolved date. Signature changes whenever the rule's
// date-relevant fields change, so edited rules never read an old entry.
type CacheKey struct {
	RuleID    uint
	Year      int
	Signature string
}

func NewCacheKey(rule types.HolidayRule, year int) CacheKey {
	return CacheKey{RuleID: rule.ID, Year: year, Signature: rule.Signature()}
}

func (k CacheKey) String() string {
	return fmt.Sprintf("%s:%d:%d:%s", constants.ResolvedCachePrefix, k.RuleID, k.Year, k.Signature)
}

// ResolutionCache memoizes resolved dates by (rule, year). Implementations must
// be safe for concurrent use; the cache is never the source of truth.
type ResolutionCache interface {
	Get(ctx context.Context, key CacheKey) (time.Time, bool, error)
	Put(ctx context.Context, key CacheKey, date time.Time) error
}

// NoopResolutionCache disables memoization
type NoopResolutionCache struct{}

func (NoopResolutionCache) Get(context.Context, CacheKey) (time.Time, bool, error) {
	return time.Time{}, false, nil
}

func (NoopResolutionCache) Put(context.Context, CacheKey, time.Time) error {
	return nil
}

// MemoryResolutionCache is a process-local cache guarded by a RWMutex
type MemoryResolutionCache struct {
	mu      sync.RWMutex
	entries map[CacheKey]time.Time
}

func NewMemoryResolutionCache() *MemoryResolutionCache {
	return &MemoryResolutionCache{entries: make(map[CacheKey]time.Time)}
}

func (c *MemoryResolutionCache) Get(_ context.Context, key CacheKey) (time.Time, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	date, ok := c.entries[key]
	return date, ok, nil
}

func (c *MemoryResolutionCache) Put(_ context.Context, key CacheKey, date time.Time) error {
	c.mu.Lock()
	c.entries[key] = date
	c.mu.Unlock()
	return nil
}

// Len returns the number of cached dates
func (c *MemoryResolutionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
