package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"civic-reporter/config"

	"github.com/gin-gonic/gin"
)

// IssueRateLimiter caps how many issues a user may create per day, using a
// per-user Redis counter with a 24h TTL.
func IssueRateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}
		userID, ok := userIDVal.(int64)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			c.Abort()
			return
		}

		ctx := config.Ctx

		// Create individual key for each user
		userKey := "issue-limit:" + strconv.FormatInt(userID, 10)

		// Increment user's count with TTL
		count, err := config.RedisClient.Incr(ctx, userKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		// Set TTL only for the first increment (when count = 1)
		if count == 1 {
			err = config.RedisClient.Expire(ctx, userKey, 24*time.Hour).Err()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		// Check if user exceeded limit
		if count > int64(limit) {
			retryAfter, _ := config.RedisClient.TTL(ctx, userKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
