package repository

import (
	"encoding/json"

	"github.com/bradfitz/gomemcache/memcache"
)

// SummaryCache memoizes computed summary blocks in memcached. Mutating
// handlers drop the key, so a cached summary never outlives the snapshot
// it was computed from. A nil cache disables memoization.
type SummaryCache struct {
	mc  *memcache.Client
	ttl int32
}

func NewSummaryCache(mc *memcache.Client, ttlSeconds int32) *SummaryCache {
	return &SummaryCache{mc: mc, ttl: ttlSeconds}
}

func (c *SummaryCache) Get(key string, dest any) bool {
	if c == nil || c.mc == nil {
		return false
	}
	item, err := c.mc.Get(key)
	if err != nil {
		return false
	}
	return json.Unmarshal(item.Value, dest) == nil
}

func (c *SummaryCache) Set(key string, value any) {
	if c == nil || c.mc == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.mc.Set(&memcache.Item{Key: key, Value: payload, Expiration: c.ttl})
}

func (c *SummaryCache) Invalidate(key string) {
	if c == nil || c.mc == nil {
		return
	}
	_ = c.mc.Delete(key)
}
