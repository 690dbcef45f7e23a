package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"aparthotel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

type idempotentResult struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Idempotency replays the stored result of a POST carrying the same
// Idempotency-Key for the same user, and rejects a duplicate while the first
// one is still running. A nil client disables it.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString("user_id"), idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached idempotentResult
			if json.Unmarshal([]byte(val), &cached) == nil {
				status := cached.Status
				if status == 0 {
					status = http.StatusOK
				}
				c.Header("Idempotent-Replayed", "true")
				response.Success(c, status, cached.Data, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// Redis down: process the request without deduplication.
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "A request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}

// ReleaseIdempotencyLock drops the in-flight lock. Handlers defer it.
func ReleaseIdempotencyLock(c *gin.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if lk := c.GetString("idempotency_lock_key"); lk != "" {
		_ = rdb.Del(c.Request.Context(), lk).Err()
	}
}

// StoreIdempotentResult caches a successful result and its status code for
// replay.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, status int, result any) {
	if rdb == nil {
		return
	}
	ck := c.GetString("idempotency_cache_key")
	if ck == "" {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if payload, err := json.Marshal(idempotentResult{Status: status, Data: data}); err == nil {
		_ = rdb.Set(c.Request.Context(), ck, payload, idempotencyResultTTL).Err()
	}
}
