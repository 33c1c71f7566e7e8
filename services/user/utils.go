package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode"

	"haki/models"
	"haki/utils"

	"github.com/go-redis/redis/v8"
)

const registrationSessionPrefix = "regSession:"

// AuthTokenDuration is the lifetime of issued auth tokens.
const AuthTokenDuration = 72 * time.Hour

// VerifyPasswordComplexity enforces the minimum password policy.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain both letters and digits")
	}
	return nil
}

// SaveUserRegistrationSession saves the registration session in Redis with a TTL.
func SaveUserRegistrationSession(client *redis.Client, sessionID string, session models.UserRegistrationSession, ttl time.Duration) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal registration session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, registrationSessionPrefix+sessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save registration session: %w", err)
	}
	return nil
}

// GetUserRegistrationSession retrieves the registration session from Redis.
func GetUserRegistrationSession(client *redis.Client, sessionID string) (*models.UserRegistrationSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, registrationSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session models.UserRegistrationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal registration session: %w", err)
	}
	return &session, nil
}

// DeleteUserRegistrationSession removes a registration session from Redis.
func DeleteUserRegistrationSession(client *redis.Client, sessionID string) error {
	ctx := context.Background()
	return client.Del(ctx, registrationSessionPrefix+sessionID).Err()
}

// cacheAuthToken records a token hash in the auth cache so middleware lookups
// skip the database on the hot path.
func cacheAuthToken(userID, tokenHash string) {
	client := utils.GetAuthCacheClient()
	if client == nil {
		return
	}
	key := utils.AuthCachePrefix + userID
	_ = client.Set(context.Background(), key, tokenHash, utils.AuthCacheTTL).Err()
}

// dropCachedAuthToken evicts a user's auth cache entry.
func dropCachedAuthToken(userID string) {
	client := utils.GetAuthCacheClient()
	if client == nil {
		return
	}
	_ = client.Del(context.Background(), utils.AuthCachePrefix+userID).Err()
}
