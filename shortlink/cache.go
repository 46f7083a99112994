package shortlink

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/Maetry/website/config"
	"github.com/Maetry/website/model"
)

const (
	campaignKeyPrefix = "campaign:"
	linkKeyPrefix     = "link:"
)

// Cache is a two-tier read cache for link classifications and campaigns:
// ristretto locally, redis shared across replicas. Click registration is a
// write and is never cached.
type Cache struct {
	local *ristretto.Cache
	redis *redis.Client
	ttl   time.Duration
}

// NewCache creates the cache. Either tier may be nil (disabled).
func NewCache(cfg config.CacheConfig, rdb *redis.Client) (*Cache, error) {
	var local *ristretto.Cache
	if cfg.Enabled {
		var err error
		local, err = ristretto.NewCache(&ristretto.Config{
			NumCounters: int64(cfg.CounterSize),
			MaxCost:     int64(cfg.MaxSizeMB) * 1024 * 1024,
			BufferItems: 64,
			Metrics:     true,
		})
		if err != nil {
			return nil, err
		}

		log.Info().
			Int("max_size_mb", cfg.MaxSizeMB).
			Int("ttl_seconds", cfg.TTLSeconds).
			Msg("Link cache initialized")
	}

	return &Cache{
		local: local,
		redis: rdb,
		ttl:   time.Duration(cfg.TTLSeconds) * time.Second,
	}, nil
}

// GetCampaign looks a campaign up in the local tier, then redis.
func (c *Cache) GetCampaign(ctx context.Context, nanoID string) *model.MarketingCampaign {
	key := campaignKeyPrefix + nanoID

	if c.local != nil {
		if value, found := c.local.Get(key); found {
			if campaign, ok := value.(*model.MarketingCampaign); ok {
				return campaign
			}
		}
	}

	if c.redis != nil {
		raw, err := c.redis.Get(ctx, key).Bytes()
		if err == nil {
			var campaign model.MarketingCampaign
			if json.Unmarshal(raw, &campaign) == nil {
				c.setLocal(key, &campaign)
				return &campaign
			}
		} else if err != redis.Nil {
			log.Debug().Err(err).Str("nano_id", nanoID).Msg("Redis campaign lookup failed")
		}
	}

	return nil
}

// SetCampaign fills both tiers.
func (c *Cache) SetCampaign(ctx context.Context, nanoID string, campaign *model.MarketingCampaign) {
	key := campaignKeyPrefix + nanoID
	c.setLocal(key, campaign)
	c.setRedis(ctx, key, campaign)
}

// GetLink looks link metadata up in the local tier, then redis.
func (c *Cache) GetLink(ctx context.Context, nanoID string) *model.MagicLink {
	key := linkKeyPrefix + nanoID

	if c.local != nil {
		if value, found := c.local.Get(key); found {
			if link, ok := value.(*model.MagicLink); ok {
				return link
			}
		}
	}

	if c.redis != nil {
		raw, err := c.redis.Get(ctx, key).Bytes()
		if err == nil {
			var link model.MagicLink
			if json.Unmarshal(raw, &link) == nil {
				c.setLocal(key, &link)
				return &link
			}
		} else if err != redis.Nil {
			log.Debug().Err(err).Str("nano_id", nanoID).Msg("Redis link lookup failed")
		}
	}

	return nil
}

// SetLink fills both tiers.
func (c *Cache) SetLink(ctx context.Context, nanoID string, link *model.MagicLink) {
	key := linkKeyPrefix + nanoID
	c.setLocal(key, link)
	c.setRedis(ctx, key, link)
}

func (c *Cache) setLocal(key string, value interface{}) {
	if c.local == nil {
		return
	}
	c.local.SetWithTTL(key, value, 1, c.ttl)
}

func (c *Cache) setRedis(ctx context.Context, key string, value interface{}) {
	if c.redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("Redis cache write failed")
	}
}

// MetricsSnapshot is a point-in-time view of local-tier cache performance.
type MetricsSnapshot struct {
	Hits         uint64  `json:"hits"`
	Misses       uint64  `json:"misses"`
	KeysAdded    uint64  `json:"keys_added"`
	KeysEvicted  uint64  `json:"keys_evicted"`
	CostAdded    uint64  `json:"cost_added"`
	CostEvicted  uint64  `json:"cost_evicted"`
	SetsDropped  uint64  `json:"sets_dropped"`
	SetsRejected uint64  `json:"sets_rejected"`
	GetsDropped  uint64  `json:"gets_dropped"`
	HitRatio     float64 `json:"hit_ratio"`
	TTLSeconds   int     `json:"ttl_seconds"`
}

// Metrics returns current local-tier metrics as a snapshot.
func (c *Cache) Metrics() MetricsSnapshot {
	if c.local == nil || c.local.Metrics == nil {
		return MetricsSnapshot{TTLSeconds: int(c.ttl.Seconds())}
	}

	m := c.local.Metrics
	hits := m.Hits()
	misses := m.Misses()
	total := hits + misses

	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return MetricsSnapshot{
		Hits:         hits,
		Misses:       misses,
		KeysAdded:    m.KeysAdded(),
		KeysEvicted:  m.KeysEvicted(),
		CostAdded:    m.CostAdded(),
		CostEvicted:  m.CostEvicted(),
		SetsDropped:  m.SetsDropped(),
		SetsRejected: m.SetsRejected(),
		GetsDropped:  m.GetsDropped(),
		HitRatio:     hitRatio,
		TTLSeconds:   int(c.ttl.Seconds()),
	}
}

// Enabled reports whether the local tier is active.
func (c *Cache) Enabled() bool {
	return c != nil && c.local != nil
}

// Close shuts down the local tier.
func (c *Cache) Close() {
	if c.local != nil {
		c.local.Close()
	}
}
