package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"CourtIQ/internal/domain/models"
	icache "CourtIQ/internal/service/cache"
	"CourtIQ/internal/services/draft"
	"CourtIQ/internal/services/recommend"
	"CourtIQ/internal/services/sim"
	pkgcache "CourtIQ/pkg/cache"
	applogger "CourtIQ/pkg/logger"
)

func poolPlayer(id, fantasyTeam string, points float64) models.Player {
	return models.Player{
		ID:          id,
		Name:        "Player " + id,
		Position:    "SG",
		FantasyTeam: fantasyTeam,
		GamesPlayed: 70,
		Minutes:     30,
		Stats:       models.CategoryStats{Points: points},
	}
}

func newTestAnalyzer(t *testing.T, store *fakeStore, metrics *fakeMetrics) *Analyzer {
	t.Helper()
	backend := pkgcache.NewMemoryCache()
	t.Cleanup(func() { _ = backend.Close() })
	pools := icache.NewPoolCache(backend, time.Hour, nil)
	log, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewAnalyzer(
		store, pools,
		sim.New(sim.Config{Trials: 500, DetailTrials: 100}),
		recommend.New(recommend.Config{}),
		draft.New(draft.Config{}),
		metrics, log,
		[]string{"2024-25"}, 10,
	)
}

func TestSimulateResolvesRosters(t *testing.T) {
	store := newFakeStore()
	store.pool = []models.Player{
		poolPlayer("1", "My Team", 25),
		poolPlayer("2", "Rivals", 18),
	}
	a := newTestAnalyzer(t, store, newFakeMetrics())

	report, err := a.Simulate(context.Background(), models.SimulateRequest{
		Season:         "2024-25",
		MyRoster:       []string{"1"},
		OpponentRoster: []string{"2"},
		Trials:         500,
		Seed:           1,
	})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if report.Trials != 500 {
		t.Fatalf("trials = %d, want 500", report.Trials)
	}
}

func TestSimulateUnknownPlayer(t *testing.T) {
	store := newFakeStore()
	store.pool = []models.Player{poolPlayer("1", "", 20)}
	a := newTestAnalyzer(t, store, newFakeMetrics())

	_, err := a.Simulate(context.Background(), models.SimulateRequest{
		Season:         "2024-25",
		MyRoster:       []string{"1"},
		OpponentRoster: []string{"missing-b", "missing-a"},
	})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	// Missing ids are sorted for stable messages.
	if !strings.Contains(err.Error(), "missing-a, missing-b") {
		t.Fatalf("error = %q, want sorted missing ids", err.Error())
	}
}

func TestRecommendationsDerivesFreeAgents(t *testing.T) {
	store := newFakeStore()
	store.pool = []models.Player{
		poolPlayer("mine", "My Team", 10),
		poolPlayer("fa", "", 25),       // unrostered, eligible pickup
		poolPlayer("taken", "Rivals", 30), // rostered elsewhere, not a free agent
	}
	a := newTestAnalyzer(t, store, newFakeMetrics())

	moves, err := a.Recommendations(context.Background(), models.RecommendationsRequest{
		Season: "2024-25",
		Roster: []string{"mine"},
	})
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if len(moves) == 0 {
		t.Fatalf("expected a pickup recommendation")
	}
	for _, m := range moves {
		for _, add := range m.Add {
			if add.Name == "Player taken" {
				t.Fatalf("rostered player offered as a free-agent pickup")
			}
		}
	}
}

func TestPoolCachedAfterFirstLoad(t *testing.T) {
	store := newFakeStore()
	store.pool = []models.Player{poolPlayer("1", "", 20)}
	metrics := newFakeMetrics()
	a := newTestAnalyzer(t, store, metrics)
	ctx := context.Background()

	if _, err := a.Pool(ctx, "2024-25", 10); err != nil {
		t.Fatalf("first load: %v", err)
	}

	// Second read must come from the cache, not the store.
	store.failing = true
	if _, err := a.Pool(ctx, "2024-25", 10); err != nil {
		t.Fatalf("cached load hit the store: %v", err)
	}
}

func TestPoolEmptySeasonNotFound(t *testing.T) {
	store := newFakeStore()
	a := newTestAnalyzer(t, store, newFakeMetrics())

	_, err := a.Pool(context.Background(), "1990-91", 10)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for empty season, got %v", err)
	}
}
