package cache

import (
	"context"
	"testing"
	"time"

	"CourtIQ/internal/domain/models"
	pkgcache "CourtIQ/pkg/cache"
)

// fakeClock is an adjustable clock for expiry tests.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time            { return f.now }
func (f *fakeClock) Advance(d time.Duration)   { f.now = f.now.Add(d) }

func newTestCache(t *testing.T, ttl time.Duration) (*PoolCache, *fakeClock) {
	t.Helper()
	backend := pkgcache.NewMemoryCache()
	t.Cleanup(func() { _ = backend.Close() })
	clock := &fakeClock{now: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
	return NewPoolCache(backend, ttl, clock.Now), clock
}

func pool(names ...string) []models.Player {
	out := make([]models.Player, len(names))
	for i, n := range names {
		out[i] = models.Player{ID: n, Name: n}
	}
	return out
}

func TestGetMissOnEmptyCache(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	if _, ok := c.Get(context.Background(), "2024-25", 10); ok {
		t.Fatalf("expected miss on empty cache")
	}
}

func TestPutThenGet(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	c.Put(ctx, "2024-25", 10, pool("a", "b"))
	players, ok := c.Get(ctx, "2024-25", 10)
	if !ok {
		t.Fatalf("expected hit after put")
	}
	if len(players) != 2 || players[0].Name != "a" {
		t.Fatalf("got %d players, want the stored pool", len(players))
	}
}

func TestMinGamesPartOfKey(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	c.Put(ctx, "2024-25", 10, pool("a"))
	if _, ok := c.Get(ctx, "2024-25", 0); ok {
		t.Fatalf("different minGames filter must not share an entry")
	}
}

func TestEntryExpiresUnderClock(t *testing.T) {
	c, clock := newTestCache(t, time.Hour)
	ctx := context.Background()

	c.Put(ctx, "2024-25", 10, pool("a"))
	clock.Advance(59 * time.Minute)
	if _, ok := c.Get(ctx, "2024-25", 10); !ok {
		t.Fatalf("entry expired early")
	}
	clock.Advance(2 * time.Minute)
	if _, ok := c.Get(ctx, "2024-25", 10); ok {
		t.Fatalf("entry should have expired after the ttl")
	}
}

func TestInvalidateDropsSeason(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	c.Put(ctx, "2024-25", 10, pool("a"))
	if err := c.Invalidate(ctx, "2024-25"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok := c.Get(ctx, "2024-25", 10); ok {
		t.Fatalf("entry should be gone after invalidation")
	}
}
