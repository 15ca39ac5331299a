package service

import (
	"context"
	"encoding/json"
	"time"

	"flotagest/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	filterOptionsKey = "records:filter_options"
	filterOptionsTTL = 5 * time.Minute
)

// FilterOptionsCache is a best-effort Redis cache for the filter-options
// endpoint. A nil client disables it (memory mode); cache failures are
// logged and treated as misses, never surfaced to the caller.
type FilterOptionsCache struct {
	rdb *redis.Client
}

func NewFilterOptionsCache(rdb *redis.Client) *FilterOptionsCache {
	return &FilterOptionsCache{rdb: rdb}
}

func (c *FilterOptionsCache) Get(ctx context.Context) (*dto.FilterOptions, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, filterOptionsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Msg("filter options cache read failed")
		}
		return nil, false
	}
	var opts dto.FilterOptions
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, false
	}
	return &opts, true
}

func (c *FilterOptionsCache) Set(ctx context.Context, opts *dto.FilterOptions) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, filterOptionsKey, raw, filterOptionsTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("filter options cache write failed")
	}
}

// Invalidate drops the cached options; called after any vehicle or driver
// write so the option lists never serve deleted or renamed entities for a
// full TTL.
func (c *FilterOptionsCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, filterOptionsKey).Err(); err != nil {
		log.Debug().Err(err).Msg("filter options cache invalidation failed")
	}
}
