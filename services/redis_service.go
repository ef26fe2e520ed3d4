package services

import (
	"context"
	stderrors "errors"
	"time"

	"festivos/constants"
	"festivos/types"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// GetFromRedis decodes the JSON value stored at key into target. found is false on a miss.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Result()
	if stderrors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return false, err
	}
	return true, nil
}

// SetToRedis stores value as JSON at key
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

type cachedDate struct {
	Date string `json:"date"`
}

// RedisResolutionCache shares resolved dates between processes
type RedisResolutionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisResolutionCache(rdb *redis.Client, ttl time.Duration) *RedisResolutionCache {
	return &RedisResolutionCache{rdb: rdb, ttl: ttl}
}

func (c *RedisResolutionCache) Get(ctx context.Context, key CacheKey) (time.Time, bool, error) {
	var entry cachedDate
	found, err := GetFromRedis(ctx, c.rdb, key.String(), &entry)
	if err != nil || !found {
		return time.Time{}, false, err
	}
	date, err := time.Parse(constants.DateLayout, entry.Date)
	if err != nil {
		return time.Time{}, false, err
	}
	return types.ToCivilDate(date), true, nil
}

func (c *RedisResolutionCache) Put(ctx context.Context, key CacheKey, date time.Time) error {
	return SetToRedis(ctx, c.rdb, key.String(), cachedDate{Date: date.Format(constants.DateLayout)}, c.ttl)
}
