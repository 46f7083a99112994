package redis

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/Maetry/website/config"
)

var ctx = context.Background()

// NewClient connects to redis and verifies the connection. Redis backs the
// shared cache tier and the bot-detection counters; without it the service
// still runs on the local tier alone, so failure here is fatal only by
// operator choice through required=true.
func NewClient(cfg config.RedisConfig, required bool) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		if required {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		log.Warn().Err(err).Msg("Redis unavailable, continuing with local cache only")
		return nil
	}

	log.Info().Str("address", cfg.Address).Msg("Connected to Redis")
	return rdb
}
