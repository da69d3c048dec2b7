package middleware

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const idempotencyHeader = "Idempotency-Key"

// Idempotency rejects a repeat of a request that carried the same
// Idempotency-Key within the TTL window. The key is claimed with SETNX
// before the handler runs, so the second request loses even when the
// two arrive concurrently. Requests without the header pass through.
func Idempotency(rdb *redis.Client, ttl time.Duration, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		ok, err := rdb.SetNX(c.Request.Context(), "idempotency:"+key, 1, ttl).Result()
		if err != nil {
			// Redis being down should not block checkout.
			log.Error("idempotency check failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusConflict,
				ginext.H{"error": "duplicate request: idempotency key already used"},
			)
			return
		}

		c.Next()
	}
}
