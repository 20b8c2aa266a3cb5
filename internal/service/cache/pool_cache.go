// Package cache holds the season player-pool cache. Pools are large and
// change rarely (nightly stat refreshes), so every analysis endpoint reads
// through this layer instead of hitting ClickHouse per request.
package cache

import (
	"context"
	"time"

	"CourtIQ/internal/domain/models"
	pkgcache "CourtIQ/pkg/cache"
)

// Clock supplies the current time. Injected so expiry is testable without
// sleeping.
type Clock func() time.Time

const keyPrefix = "pool"

// poolEntry is the cached payload. FetchedAt drives expiry under the
// injected clock; the backend TTL is a safety net for entries this
// process never reads again.
type poolEntry struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Players   []models.Player `json:"players"`
}

// PoolCache caches player pools keyed by (season, minGames).
type PoolCache struct {
	backend pkgcache.Service
	ttl     time.Duration
	now     Clock
}

func NewPoolCache(backend pkgcache.Service, ttl time.Duration, now Clock) *PoolCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if now == nil {
		now = time.Now
	}
	return &PoolCache{backend: backend, ttl: ttl, now: now}
}

// Get returns the cached pool for a season, or ok=false on a miss or an
// expired entry. Backend errors degrade to a miss; the store is the
// source of truth.
func (c *PoolCache) Get(ctx context.Context, season string, minGames int) ([]models.Player, bool) {
	key := pkgcache.GenerateKeyWithParams(keyPrefix, season, minGames)

	var entry poolEntry
	if err := c.backend.Get(ctx, key, &entry); err != nil {
		return nil, false
	}
	if c.now().Sub(entry.FetchedAt) > c.ttl {
		_ = c.backend.Delete(ctx, key)
		return nil, false
	}
	return entry.Players, true
}

// Put stores a freshly loaded pool.
func (c *PoolCache) Put(ctx context.Context, season string, minGames int, players []models.Player) {
	key := pkgcache.GenerateKeyWithParams(keyPrefix, season, minGames)
	entry := poolEntry{FetchedAt: c.now(), Players: players}
	_ = c.backend.Set(ctx, key, entry, c.ttl)
}

// Invalidate drops every cached pool for a season, regardless of the
// minGames filter it was loaded with. Called when new stats arrive.
func (c *PoolCache) Invalidate(ctx context.Context, season string) error {
	pattern := pkgcache.BuildPattern(pkgcache.GenerateKey(keyPrefix, season))
	return c.backend.DeleteByPattern(ctx, pattern)
}
