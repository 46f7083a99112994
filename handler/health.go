package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/Maetry/website/shortlink"
)

// System serves the operational endpoints: health probe and cache metrics.
type System struct {
	redis *redis.Client
	cache *shortlink.Cache
}

// NewSystem creates the system handler. Both dependencies may be nil.
func NewSystem(rdb *redis.Client, cache *shortlink.Cache) *System {
	return &System{redis: rdb, cache: cache}
}

// HealthCheck handles GET /health
// @Summary Health check
// @Description Returns service health status and Redis connectivity
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Service is healthy"
// @Failure 503 {object} map[string]string "Service is unhealthy"
// @Router /health [get]
func (h *System) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{
		"status": "healthy",
		"redis":  "disabled",
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			log.Error().Err(err).Msg("Redis health check failed")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "unhealthy",
				"redis":  "unavailable",
			})
			return
		}
		status["redis"] = "connected"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}

// CacheMetrics handles GET /cache/metrics
// @Summary Cache performance metrics
// @Description Returns local cache hit rate, misses and evictions
// @Tags System
// @Produce json
// @Security AdminKey
// @Success 200 {object} shortlink.MetricsSnapshot "Cache metrics"
// @Failure 503 {object} ErrorResponse "Cache is disabled"
// @Router /cache/metrics [get]
func (h *System) CacheMetrics(w http.ResponseWriter, r *http.Request) {
	if !h.cache.Enabled() {
		SendJSONError(w, http.StatusServiceUnavailable, "CACHE_DISABLED", "Cache is disabled")
		return
	}

	SendJSONSuccess(w, http.StatusOK, h.cache.Metrics())
}
