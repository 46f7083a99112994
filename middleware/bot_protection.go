package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/Maetry/website/security"
)

// BotProtection blocks suspected bots on the click-registration routes so
// campaign analytics only count real visitors.
type BotProtection struct {
	detector *security.BotDetector
	enabled  bool
	redis    *redis.Client
}

// NewBotProtection creates a new bot protection middleware
func NewBotProtection(maxRequestsPerMinute int, enabled bool, rdb *redis.Client) *BotProtection {
	return &BotProtection{
		detector: security.NewBotDetector(maxRequestsPerMinute),
		enabled:  enabled,
		redis:    rdb,
	}
}

// Protect returns a middleware function that blocks bots
func (bp *BotProtection) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !bp.enabled {
			next.ServeHTTP(w, r)
			return
		}

		isBot, reason := bp.detector.IsBot(r)

		if isBot {
			log.Warn().
				Str("ip", security.ClientIP(r)).
				Str("user_agent", r.UserAgent()).
				Str("reason", reason).
				Str("path", r.URL.Path).
				Msg("Bot detected - click not registered")

			// Track bot detection in Redis
			if bp.redis != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()

				bp.redis.Incr(ctx, "security:bot_detections")
				bp.redis.ZIncrBy(ctx, "security:blocked_ips", 1, security.ClientIP(r))
				bp.redis.ZIncrBy(ctx, "security:block_reasons", 1, reason)
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)

			response := map[string]interface{}{
				"error":   "BOT_DETECTED",
				"message": "This request appears to be automated. If you believe this is an error, please contact support.",
				"reason":  reason,
			}

			json.NewEncoder(w).Encode(response)
			return
		}

		next.ServeHTTP(w, r)
	})
}
