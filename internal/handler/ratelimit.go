package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// LoginRateLimit returns a fixed-window per-IP limiter for the credential
// endpoints, backed by redis. With a nil client the limiter is disabled and
// requests pass through, so the service keeps working without redis.
func LoginRateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if rdb == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:auth:%s", c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// redis being down should not lock users out
			log.Printf("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
