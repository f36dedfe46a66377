package service

// Read-through cache helpers shared by the services. A nil client disables
// caching entirely, which is how the unit tests run.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheTTL = 5 * time.Minute

// cacheGet loads key into dest. Returns false on miss, disabled cache, or
// any Redis error (the caller falls back to the database).
func cacheGet(ctx context.Context, rdb *redis.Client, key string, dest interface{}) bool {
	if rdb == nil {
		return false
	}
	raw, err := rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Str("key", key).Err(err).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("cache entry corrupt, ignoring")
		return false
	}
	return true
}

// cacheSet stores value under key. Failures are logged and swallowed; the
// cache is an optimization, never a source of truth.
func cacheSet(ctx context.Context, rdb *redis.Client, key string, value interface{}) {
	if rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("cache write failed")
	}
}

// cacheDel drops key after a mutation so the next read repopulates it.
func cacheDel(ctx context.Context, rdb *redis.Client, key string) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, key).Err(); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("cache invalidation failed")
	}
}
