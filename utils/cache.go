// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"haki/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// OTPCacheClient holds short-lived OTP codes.
	OTPCacheClient *redis.Client
	// AIContextCacheClient holds chatbot conversation context.
	AIContextCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients used by the platform.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB)
	AIContextCacheClient = newRedisClient(config.AppConfig.RedisAIContextDB)
}

// GetCacheClient returns the generic cache client, or nil before InitRedis.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
// Callers treat nil as cache-disabled and fall back to the database.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// GetOTPCacheClient returns the Redis client holding OTP codes.
func GetOTPCacheClient() *redis.Client {
	return OTPCacheClient
}

// GetAIContextCacheClient returns the Redis client for chatbot context.
func GetAIContextCacheClient() *redis.Client {
	return AIContextCacheClient
}
