package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to redis with a short ping timeout. It returns nil
// when the address is empty or the server is unreachable; callers degrade to
// uncached operation in that case.
func NewRedisClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

// CalendarCache caches rendered rate calendar grids. The grid is recomputed
// from scratch on every request otherwise, and the staff view polls it. All
// methods are safe on a nil receiver or nil client.
type CalendarCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCalendarCache(client *redis.Client, ttl time.Duration) *CalendarCache {
	if client == nil {
		return nil
	}
	return &CalendarCache{client: client, ttl: ttl}
}

// Key builds the cache key for one property and window
func Key(propertyID int, from, to string) string {
	return fmt.Sprintf("calendar:%d:%s:%s", propertyID, from, to)
}

// Get returns the cached payload for the key, if any
func (c *CalendarCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores the payload under the key with the configured TTL
func (c *CalendarCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, key, payload, c.ttl).Err()
}

// InvalidateProperty drops every cached window of the property. Called after
// rate override writes so staff never see a stale grid.
func (c *CalendarCache) InvalidateProperty(ctx context.Context, propertyID int) {
	if c == nil || c.client == nil {
		return
	}
	pattern := fmt.Sprintf("calendar:%d:*", propertyID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		_ = c.client.Del(ctx, iter.Val()).Err()
	}
}
