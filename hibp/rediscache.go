package hibp

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache adapts a *redis.Client to the Cache interface, so HIBP range
// responses can be shared across multiple process instances instead of
// being cached per-process as MemoryCache does. Keys are namespaced under
// a fixed prefix to avoid colliding with unrelated keys in a shared Redis
// instance.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache wraps client for use as a [Cache]. keyPrefix is prepended
// to every cache key (e.g. "hibp:"); pass "" to use the bare prefix.
func NewRedisCache(client *redis.Client, keyPrefix string) *RedisCache {
	return &RedisCache{client: client, prefix: keyPrefix}
}

// Get returns the cached response body for key, if present and unexpired.
// Any Redis error (including a miss) is reported as ok == false; HIBP
// checks treat a cache miss the same as an empty cache, so callers never
// need to distinguish "not cached" from "Redis is unreachable".
func (r *RedisCache) Get(key string) (value string, ok bool) {
	v, err := r.client.Get(context.Background(), r.prefix+key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

// Set stores value for key with the given TTL. Errors are swallowed: a
// failed cache write must never fail the breach check itself.
func (r *RedisCache) Set(key, value string, ttl time.Duration) {
	r.client.Set(context.Background(), r.prefix+key, value, ttl)
}
