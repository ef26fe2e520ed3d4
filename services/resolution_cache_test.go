package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"festivos/builders"
	"festivos/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	fixed := builders.NewHolidayRuleBuilder("Navidad").WithID(19).OnFixedDate(12, 25).MustBuild()
	easter := builders.NewHolidayRuleBuilder("Pascua").WithID(6).OnEasterOffset(-2).MustBuild()

	assert.Equal(t, "holiday:resolved:19:2024:1.12.25.-", NewCacheKey(fixed, 2024).String())
	assert.Equal(t, "holiday:resolved:6:2024:3.0.0.-2", NewCacheKey(easter, 2024).String())

	moved := fixed
	moved.Type = types.FixedMovedToMonday
	assert.NotEqual(t, NewCacheKey(fixed, 2024), NewCacheKey(moved, 2024))
}

func TestMemoryResolutionCache(t *testing.T) {
	cache := NewMemoryResolutionCache()
	ctx := context.Background()
	key := CacheKey{RuleID: 1, Year: 2024, Signature: "1.1.1.-"}

	_, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	date := types.CivilDate(2024, time.January, 1)
	require.NoError(t, cache.Put(ctx, key, date))

	got, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, date, got)
	assert.Equal(t, 1, cache.Len())
}

func TestMemoryResolutionCacheConcurrentAccess(t *testing.T) {
	cache := NewMemoryResolutionCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := CacheKey{RuleID: uint(i % 20), Year: 2000 + w}
				_ = cache.Put(ctx, key, types.CivilDate(2000+w, time.January, 1+i%20))
				_, _, _ = cache.Get(ctx, key)
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, 8*20, cache.Len())
}

func TestNoopResolutionCache(t *testing.T) {
	var cache NoopResolutionCache
	require.NoError(t, cache.Put(context.Background(), CacheKey{RuleID: 1}, time.Now()))
	_, ok, err := cache.Get(context.Background(), CacheKey{RuleID: 1})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func newTestRedisCache(t *testing.T, ttl time.Duration) (*RedisResolutionCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisResolutionCache(rdb, ttl), mr
}

func TestRedisResolutionCache(t *testing.T) {
	cache, mr := newTestRedisCache(t, time.Hour)
	ctx := context.Background()
	key := CacheKey{RuleID: 15, Year: 2024, Signature: "2.10.12.-"}

	_, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	want := types.CivilDate(2024, time.October, 14)
	require.NoError(t, cache.Put(ctx, key, want))

	stored, err := mr.Get(key.String())
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-10-14"}`, stored)

	got, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRedisResolutionCacheExpires(t *testing.T) {
	cache, mr := newTestRedisCache(t, time.Minute)
	ctx := context.Background()
	key := CacheKey{RuleID: 3, Year: 2025, Signature: "1.1.1.-"}

	require.NoError(t, cache.Put(ctx, key, types.CivilDate(2025, time.January, 1)))
	assert.Equal(t, time.Minute, mr.TTL(key.String()))

	mr.FastForward(2 * time.Minute)
	_, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisResolutionCacheCorruptEntry(t *testing.T) {
	cache, mr := newTestRedisCache(t, time.Minute)
	key := CacheKey{RuleID: 4, Year: 2025, Signature: "1.5.1.-"}
	require.NoError(t, mr.Set(key.String(), "not json"))

	_, ok, err := cache.Get(context.Background(), key)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHolidayServiceOverRedis(t *testing.T) {
	cache, mr := newTestRedisCache(t, time.Hour)
	uncached, _ := colombiaService(nil)
	cached, _ := colombiaService(cache)
	ctx := context.Background()

	want, err := uncached.ListHolidays(ctx, colombia, 2024)
	require.NoError(t, err)
	for pass := 0; pass < 2; pass++ {
		got, err := cached.ListHolidays(ctx, colombia, 2024)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Len(t, mr.Keys(), len(ColombiaHolidays(colombia)))
}

func TestRedisUnavailableFallsBackToResolution(t *testing.T) {
	cache, mr := newTestRedisCache(t, time.Hour)
	mr.Close()
	uncached, _ := colombiaService(nil)
	cached, _ := colombiaService(cache)
	ctx := context.Background()

	want, err := uncached.ListHolidays(ctx, colombia, 2024)
	require.NoError(t, err)
	got, err := cached.ListHolidays(ctx, colombia, 2024)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
