package recommend

import (
	"testing"

	"CourtIQ/internal/domain/models"
)

// scorer weighs bare points at 1.0, so a points-only player's swap value
// equals their scoring average. That keeps expected improvements exact.
func player(name, pos string, points float64) models.Player {
	return models.Player{
		Name:     name,
		Position: pos,
		Stats:    models.CategoryStats{Points: points},
	}
}

func TestSingleSwapRecommended(t *testing.T) {
	e := New(Config{})
	roster := []models.Player{player("Bench Guy", "PG", 10)}
	pool := []models.Player{player("Hot Pickup", "PG", 25)}

	moves := e.Recommendations(roster, pool, nil, 10, nil)
	if len(moves) == 0 {
		t.Fatalf("expected at least one move")
	}
	m := moves[0]
	if m.Type != "single_swap" || m.SwapType != "1-for-1" {
		t.Fatalf("got %s/%s, want single_swap/1-for-1", m.Type, m.SwapType)
	}
	if m.Drop[0].Name != "Bench Guy" || m.Add[0].Name != "Hot Pickup" {
		t.Fatalf("wrong players: drop %s, add %s", m.Drop[0].Name, m.Add[0].Name)
	}
	if m.Add[0].FantasyTeam != "Free Agent" {
		t.Fatalf("add side fantasy team = %q, want Free Agent", m.Add[0].FantasyTeam)
	}
	if m.ImpactScore != 15 {
		t.Fatalf("impact = %v, want 15", m.ImpactScore)
	}
	if m.Priority != "high" {
		t.Fatalf("priority = %q, want high for a 15-point gain", m.Priority)
	}
	if len(m.Improvements) != 1 || m.Improvements[0] != "PTS +15.0" {
		t.Fatalf("improvements = %v, want [PTS +15.0]", m.Improvements)
	}
}

func TestSameMoveReportedOnce(t *testing.T) {
	// The same drop/add pair qualifies as both a single swap and a value
	// play; the merge must keep only the first.
	e := New(Config{})
	roster := []models.Player{player("Bench Guy", "PG", 10)}
	pool := []models.Player{player("Hot Pickup", "PG", 25)}

	moves := e.Recommendations(roster, pool, nil, 10, nil)
	if len(moves) != 1 {
		t.Fatalf("got %d moves, want 1 after dedup", len(moves))
	}
}

func TestEmptyPoolsYieldNoMoves(t *testing.T) {
	e := New(Config{})
	if moves := e.Recommendations(nil, nil, nil, 0, nil); len(moves) != 0 {
		t.Fatalf("empty inputs produced %d moves", len(moves))
	}
}

func TestMarginalUpgradeSkipped(t *testing.T) {
	e := New(Config{})
	roster := []models.Player{player("Starter", "PG", 10)}
	pool := []models.Player{player("Sidegrade", "PG", 10.3)}

	if moves := e.Recommendations(roster, pool, nil, 10, nil); len(moves) != 0 {
		t.Fatalf("0.3-point upgrade should be below threshold, got %d moves", len(moves))
	}
}

func TestIncompatiblePositionsSkipped(t *testing.T) {
	e := New(Config{})
	roster := []models.Player{player("Point Guard", "PG", 10)}
	pool := []models.Player{player("Big Man", "C", 25)}

	if moves := e.Recommendations(roster, pool, nil, 10, nil); len(moves) != 0 {
		t.Fatalf("PG-for-C swap should be filtered, got %d moves", len(moves))
	}
}

func TestMovesRankedAndTruncated(t *testing.T) {
	e := New(Config{})
	roster := []models.Player{player("Bench Guy", "PG", 10)}
	pool := []models.Player{
		player("Okay", "PG", 18),
		player("Best", "PG", 25),
		player("Good", "PG", 21),
	}

	moves := e.Recommendations(roster, pool, nil, 2, nil)
	if len(moves) != 2 {
		t.Fatalf("got %d moves, want 2 after truncation", len(moves))
	}
	if moves[0].ImpactScore != 15 || moves[1].ImpactScore != 11 {
		t.Fatalf("impacts = %v, %v; want 15, 11 in rank order",
			moves[0].ImpactScore, moves[1].ImpactScore)
	}
}

func TestSingleTradeWithinBand(t *testing.T) {
	e := New(Config{})
	roster := []models.Player{player("My Guard", "PG", 20)}
	teams := []models.TeamRoster{{
		TeamName: "Rivals",
		Roster:   []models.Player{player("Their Guard", "PG", 23)},
	}}

	moves := e.Recommendations(roster, nil, nil, 10, teams)
	if len(moves) != 1 {
		t.Fatalf("got %d moves, want 1 trade (ratio 1.15 is in band)", len(moves))
	}
	m := moves[0]
	if m.Type != "trade" || m.SwapType != "trade-1-for-1" {
		t.Fatalf("got %s/%s, want trade/trade-1-for-1", m.Type, m.SwapType)
	}
	if m.TradePartner != "Rivals" {
		t.Fatalf("trade partner = %q, want Rivals", m.TradePartner)
	}
	if m.Add[0].FantasyTeam != "Rivals" {
		t.Fatalf("incoming player fantasy team = %q, want Rivals", m.Add[0].FantasyTeam)
	}
}

func TestLopsidedTradesRejected(t *testing.T) {
	e := New(Config{})
	roster := []models.Player{player("My Guard", "PG", 20)}
	teams := []models.TeamRoster{{
		TeamName: "Rivals",
		Roster: []models.Player{
			player("Superstar", "PG", 40),  // ratio 2.0, they would never accept
			player("Sidegrade", "PG", 21),  // ratio 1.05, not worth proposing
			player("Downgrade", "PG", 15),  // ratio 0.75
		},
	}}

	if moves := e.Recommendations(roster, nil, nil, 10, teams); len(moves) != 0 {
		t.Fatalf("out-of-band ratios produced %d trades", len(moves))
	}
}

func TestCombinationsLexicographicAndCapped(t *testing.T) {
	combos := combinations(4, 2, 3)
	want := [][]int{{0, 1}, {0, 2}, {0, 3}}
	if len(combos) != len(want) {
		t.Fatalf("got %d combos, want %d", len(combos), len(want))
	}
	for i := range want {
		if combos[i][0] != want[i][0] || combos[i][1] != want[i][1] {
			t.Fatalf("combo %d = %v, want %v", i, combos[i], want[i])
		}
	}
	if combinations(2, 3, 10) != nil {
		t.Fatalf("k > n should yield nil")
	}
}
