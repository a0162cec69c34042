package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()
var RedisClient *redis.Client

// SessionTTL bounds how long a login session stays valid without a logout.
const SessionTTL = 72 * time.Hour

// ConnectRedis initializes the Redis client used for sessions and rate limiting
func ConnectRedis() {
	var redisAddr = os.Getenv("REDIS_ADDRESS")
	var redisPassword = os.Getenv("REDIS_PASSWORD")
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       0, // default DB
	})

	_, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	fmt.Println("Connected to Redis")
}

// SessionKey builds the Redis key holding a login session.
func SessionKey(sessionID string) string {
	return "session:" + sessionID
}

// StoreSession records a session id for a user with the standard TTL.
func StoreSession(sessionID string, userID int64) error {
	return RedisClient.Set(Ctx, SessionKey(sessionID), userID, SessionTTL).Err()
}

// SessionExists reports whether the given session id is still live.
func SessionExists(sessionID string) (bool, error) {
	n, err := RedisClient.Exists(Ctx, SessionKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RevokeSession removes a session so its token stops validating immediately.
func RevokeSession(sessionID string) error {
	return RedisClient.Del(Ctx, SessionKey(sessionID)).Err()
}
