package stats

import (
	"math"

	"CourtIQ/internal/domain/models"
)

// League-average shooting baselines, substituted for unknown percentages
// only when a downstream consumer scores value. Display paths keep unknown
// ratios unknown so players with missing attempt data are not shown as 0%.
const (
	LeagueFieldGoalPct = 0.45
	LeagueFreeThrowPct = 0.75
)

// Estimated per-game attempt volumes, used to weight a known percentage
// in team aggregation when the source did not provide attempt counts.
const (
	estFieldGoalAttempts = 10.0
	estFreeThrowAttempts = 3.0
)

// Project converts a raw stat payload into a fully populated CategoryStats.
// Counting stats default to 0; ratio stats stay unknown when absent.
// Malformed numeric input (NaN, Inf) is coerced to the category default,
// never propagated.
func Project(raw models.RawStats) models.CategoryStats {
	var s models.CategoryStats
	s.Points = counting(raw, "points")
	s.Rebounds = counting(raw, "rebounds")
	s.Assists = counting(raw, "assists")
	s.Steals = counting(raw, "steals")
	s.Blocks = counting(raw, "blocks")
	s.ThreesMade = counting(raw, "three_pointers_made")
	s.Turnovers = counting(raw, "turnovers")
	s.FieldGoalPct = ratio(raw, "fg_percentage")
	s.FreeThrowPct = ratio(raw, "ft_percentage")
	s.FieldGoalAttempts = counting(raw, "field_goals_attempted")
	s.FreeThrowAttempts = counting(raw, "free_throws_attempted")
	return s
}

func counting(raw models.RawStats, key string) float64 {
	v, ok := number(raw, key)
	if !ok {
		return 0
	}
	return v
}

func ratio(raw models.RawStats, key string) models.Ratio {
	v, ok := number(raw, key)
	if !ok || v < 0 || v > 1 {
		return models.Ratio{}
	}
	return models.KnownRatio(v)
}

func number(raw models.RawStats, key string) (float64, bool) {
	p, ok := raw[key]
	if !ok || p == nil {
		return 0, false
	}
	v := *p
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
