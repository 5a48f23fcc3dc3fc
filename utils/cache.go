// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"qport/config"
)

// CacheClient is the generic cache client. It stays nil when REDIS_ADDR is
// unset or the server is unreachable; callers must treat the cache as
// optional.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client used for slot-set caching.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		GetLogger().Info("Redis not configured, slot cache disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Failed to connect to Redis, slot cache disabled", zap.Error(err))
		return
	}
	CacheClient = client
}

// GetCacheClient returns the generic cache client, which may be nil.
func GetCacheClient() *redis.Client {
	return CacheClient
}
