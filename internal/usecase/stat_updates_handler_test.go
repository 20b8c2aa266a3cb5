package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"CourtIQ/internal/domain/models"
	icache "CourtIQ/internal/service/cache"
	pkgcache "CourtIQ/pkg/cache"
	applogger "CourtIQ/pkg/logger"
)

// fakeStore records upserts and serves a fixed pool.
type fakeStore struct {
	upserts map[string][]models.Player
	pool    []models.Player
	failing bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{upserts: make(map[string][]models.Player)}
}

func (s *fakeStore) Init(context.Context) error { return nil }

func (s *fakeStore) Players(_ context.Context, season string, _ int) ([]models.Player, error) {
	if s.failing {
		return nil, errStoreDown
	}
	return s.pool, nil
}

func (s *fakeStore) Seasons(context.Context) ([]string, error) { return []string{"2024-25"}, nil }

func (s *fakeStore) Upsert(_ context.Context, season string, players []models.Player) error {
	if s.failing {
		return errStoreDown
	}
	s.upserts[season] = append(s.upserts[season], players...)
	return nil
}

func (s *fakeStore) Health(context.Context) error { return nil }
func (s *fakeStore) Close() error                 { return nil }

var errStoreDown = errors.New("store down")

// fakeMetrics counts errors by kind.
type fakeMetrics struct {
	errors map[string]int
}

func newFakeMetrics() *fakeMetrics { return &fakeMetrics{errors: make(map[string]int)} }

func (m *fakeMetrics) RecordSimulation(int, float64)        {}
func (m *fakeMetrics) RecordRecommendations(string, int)    {}
func (m *fakeMetrics) RecordPoolSize(string, int)           {}
func (m *fakeMetrics) RecordError(kind string)              { m.errors[kind]++ }
func (m *fakeMetrics) RecordLatency(string, float64)        {}

func newTestHandler(t *testing.T, store *fakeStore, metrics *fakeMetrics) (*StatUpdatesHandler, *icache.PoolCache) {
	t.Helper()
	backend := pkgcache.NewMemoryCache()
	t.Cleanup(func() { _ = backend.Close() })
	pools := icache.NewPoolCache(backend, time.Hour, nil)
	log, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewStatUpdatesHandler("player_stat_updates", store, pools, metrics, log), pools
}

func TestHandleSingleUpdate(t *testing.T) {
	store := newFakeStore()
	metrics := newFakeMetrics()
	h, _ := newTestHandler(t, store, metrics)

	payload := []byte(`{
		"season": "2024-25",
		"player_id": "203999",
		"name": "Test Center",
		"position": "C",
		"games_played": 70,
		"minutes": 34.5,
		"stats": {"points": 26.4, "rebounds": 12.4, "fg_percentage": 0.583}
	}`)
	if err := h.Handle(context.Background(), payload); err != nil {
		t.Fatalf("handle: %v", err)
	}

	players := store.upserts["2024-25"]
	if len(players) != 1 {
		t.Fatalf("got %d upserted players, want 1", len(players))
	}
	p := players[0]
	if p.ID != "203999" || p.Stats.Points != 26.4 {
		t.Fatalf("wrong player persisted: %+v", p)
	}
	if !p.Stats.FieldGoalPct.Valid || p.Stats.FieldGoalPct.Value != 0.583 {
		t.Fatalf("fg%% = %+v, want known 0.583", p.Stats.FieldGoalPct)
	}
}

func TestHandleBatchGroupsBySeason(t *testing.T) {
	store := newFakeStore()
	h, _ := newTestHandler(t, store, newFakeMetrics())

	payload := []byte(`[
		{"season": "2024-25", "player_id": "1", "stats": {"points": 10}},
		{"season": "2024-25", "player_id": "2", "stats": {"points": 12}},
		{"season": "2023-24", "player_id": "1", "stats": {"points": 9}}
	]`)
	if err := h.Handle(context.Background(), payload); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(store.upserts["2024-25"]) != 2 || len(store.upserts["2023-24"]) != 1 {
		t.Fatalf("upserts grouped wrong: %d / %d",
			len(store.upserts["2024-25"]), len(store.upserts["2023-24"]))
	}
}

func TestHandleMalformedPayload(t *testing.T) {
	store := newFakeStore()
	metrics := newFakeMetrics()
	h, _ := newTestHandler(t, store, metrics)

	if err := h.Handle(context.Background(), []byte(`{not json`)); err == nil {
		t.Fatalf("malformed payload must error so the consumer can retry")
	}
	if metrics.errors["stat_update_decode"] != 1 {
		t.Fatalf("decode error not recorded: %v", metrics.errors)
	}
}

func TestHandleMissingIdentityRejected(t *testing.T) {
	store := newFakeStore()
	metrics := newFakeMetrics()
	h, _ := newTestHandler(t, store, metrics)

	if err := h.Handle(context.Background(), []byte(`{"season": "2024-25"}`)); err == nil {
		t.Fatalf("update without player_id must be rejected")
	}
	if metrics.errors["stat_update_invalid"] != 1 {
		t.Fatalf("validation error not recorded: %v", metrics.errors)
	}
	if len(store.upserts) != 0 {
		t.Fatalf("nothing should be persisted for invalid updates")
	}
}

func TestHandleInvalidatesCachedPool(t *testing.T) {
	store := newFakeStore()
	h, pools := newTestHandler(t, store, newFakeMetrics())
	ctx := context.Background()

	pools.Put(ctx, "2024-25", 10, []models.Player{{ID: "stale"}})
	payload := []byte(`{"season": "2024-25", "player_id": "1", "stats": {"points": 10}}`)
	if err := h.Handle(ctx, payload); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if _, ok := pools.Get(ctx, "2024-25", 10); ok {
		t.Fatalf("cached pool should be invalidated after an update")
	}
}

func TestHandleStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failing = true
	metrics := newFakeMetrics()
	h, _ := newTestHandler(t, store, metrics)

	payload := []byte(`{"season": "2024-25", "player_id": "1", "stats": {"points": 10}}`)
	if err := h.Handle(context.Background(), payload); err == nil {
		t.Fatalf("store failure must bubble up for retry")
	}
	if metrics.errors["stat_update_store"] != 1 {
		t.Fatalf("store error not recorded: %v", metrics.errors)
	}
}
