package draft

import (
	"math"
	"testing"

	"CourtIQ/internal/domain/models"
)

func seasonPlayer(id string, points float64, games int, minutes float64) models.Player {
	return models.Player{
		ID:          id,
		Name:        "Player " + id,
		Position:    "SG",
		GamesPlayed: games,
		Minutes:     minutes,
		Stats:       models.CategoryStats{Points: points},
	}
}

func board(pools map[string][]models.Player) []models.DraftRanking {
	a := New(Config{})
	return a.Rankings([]string{"2024-25", "2023-24", "2022-23"}, pools, 0)
}

func TestWeightsRenormalizedForShortHistory(t *testing.T) {
	// A rookie with one season should be weighted entirely on it, not
	// scaled down by the missing seasons.
	pools := map[string][]models.Player{
		"2024-25": {seasonPlayer("rookie", 20, 75, 32)},
	}
	rankings := board(pools)
	if len(rankings) != 1 {
		t.Fatalf("got %d rankings, want 1", len(rankings))
	}
	if rankings[0].WeightedStats.Points != 20 {
		t.Fatalf("weighted points = %v, want 20 for single-season player",
			rankings[0].WeightedStats.Points)
	}
}

func TestWeightedStatsBlendSeasons(t *testing.T) {
	pools := map[string][]models.Player{
		"2024-25": {seasonPlayer("vet", 20, 75, 32)},
		"2023-24": {seasonPlayer("vet", 10, 75, 32)},
	}
	rankings := board(pools)
	// 0.6 and 0.3 renormalize to 2/3 and 1/3.
	want := 20*(2.0/3.0) + 10*(1.0/3.0)
	if math.Abs(rankings[0].WeightedStats.Points-want) > 1e-9 {
		t.Fatalf("weighted points = %v, want %v", rankings[0].WeightedStats.Points, want)
	}
}

func TestWeightedRatioIgnoresUnknownSeasons(t *testing.T) {
	recent := seasonPlayer("vet", 20, 75, 32)
	recent.Stats.FieldGoalPct = models.KnownRatio(0.50)
	prior := seasonPlayer("vet", 18, 70, 30) // fg% unknown that season

	pools := map[string][]models.Player{
		"2024-25": {recent},
		"2023-24": {prior},
	}
	rankings := board(pools)
	got := rankings[0].WeightedStats.FieldGoalPct
	if !got.Valid || math.Abs(got.Value-0.50) > 1e-9 {
		t.Fatalf("weighted fg%% = %+v, want known 0.50 from the one valid season", got)
	}
}

func TestTrendThresholds(t *testing.T) {
	// Scale points, rebounds, and assists by the same factor so the
	// averaged trend equals the per-category change.
	withLine := func(id string, scale float64) models.Player {
		p := seasonPlayer(id, 20*scale, 75, 32)
		p.Stats.Rebounds = 6 * scale
		p.Stats.Assists = 4 * scale
		return p
	}
	cases := []struct {
		scale float64
		want  string
	}{
		{1.10, "improving"}, // +10%
		{0.85, "declining"}, // -15%
		{1.02, "stable"},    // +2%
	}
	for _, c := range cases {
		pools := map[string][]models.Player{
			"2024-25": {withLine("p", c.scale)},
			"2023-24": {withLine("p", 1.0)},
		}
		rankings := board(pools)
		if got := rankings[0].Trends.Overall; got != c.want {
			t.Fatalf("scale %v scored %q, want %q", c.scale, got, c.want)
		}
	}
}

func TestTrendInsufficientData(t *testing.T) {
	pools := map[string][]models.Player{
		"2024-25": {seasonPlayer("rookie", 20, 75, 32)},
	}
	rankings := board(pools)
	if got := rankings[0].Trends.Overall; got != "insufficient_data" {
		t.Fatalf("single-season trend = %q, want insufficient_data", got)
	}
}

func TestInjuryRiskBoundaries(t *testing.T) {
	cases := []struct {
		games int
		want  string
	}{
		{82, "low"},
		{70, "low"},
		{69, "medium"},
		{50, "medium"},
		{49, "high"},
	}
	for _, c := range cases {
		pools := map[string][]models.Player{
			"2024-25": {seasonPlayer("p", 20, c.games, 32)},
		}
		rankings := board(pools)
		if got := rankings[0].InjuryRisk; got != c.want {
			t.Fatalf("%d games scored %q, want %q", c.games, got, c.want)
		}
	}
}

func TestRankingOrderAndTopN(t *testing.T) {
	pools := map[string][]models.Player{
		"2024-25": {
			seasonPlayer("mid", 18, 75, 32),
			seasonPlayer("star", 30, 75, 34),
			seasonPlayer("bench", 8, 75, 18),
		},
	}
	a := New(Config{})
	rankings := a.Rankings([]string{"2024-25"}, pools, 2)
	if len(rankings) != 2 {
		t.Fatalf("got %d rankings, want 2", len(rankings))
	}
	if rankings[0].PlayerID != "star" || rankings[1].PlayerID != "mid" {
		t.Fatalf("order = %s, %s; want star, mid", rankings[0].PlayerID, rankings[1].PlayerID)
	}
	if rankings[0].DraftRank != 1 || rankings[1].DraftRank != 2 {
		t.Fatalf("ranks = %d, %d; want 1, 2", rankings[0].DraftRank, rankings[1].DraftRank)
	}
}

func TestPerMinuteStats(t *testing.T) {
	pools := map[string][]models.Player{
		"2024-25": {seasonPlayer("p", 24, 75, 30)},
	}
	rankings := board(pools)
	pm := rankings[0].PerMinuteStats
	if pm["points"] != 0.8 {
		t.Fatalf("points per minute = %v, want 0.8", pm["points"])
	}
}
