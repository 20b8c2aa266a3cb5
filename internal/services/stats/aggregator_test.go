package stats

import (
	"math"
	"testing"

	"CourtIQ/internal/domain/models"
)

func shooter(fgPct, fgAttempts float64) models.Player {
	return models.Player{Stats: models.CategoryStats{
		FieldGoalPct:      models.KnownRatio(fgPct),
		FieldGoalAttempts: fgAttempts,
	}}
}

func TestTeamProjectionSumsCountingStats(t *testing.T) {
	roster := []models.Player{
		{Stats: models.CategoryStats{Points: 25, Rebounds: 10, Turnovers: 3}},
		{Stats: models.CategoryStats{Points: 18, Rebounds: 4, Turnovers: 1.5}},
	}
	proj := TeamProjection(roster)
	if proj[models.CatPoints] != 43 {
		t.Fatalf("points = %v, want 43", proj[models.CatPoints])
	}
	if proj[models.CatRebounds] != 14 {
		t.Fatalf("rebounds = %v, want 14", proj[models.CatRebounds])
	}
	if proj[models.CatTurnovers] != 4.5 {
		t.Fatalf("turnovers = %v, want 4.5", proj[models.CatTurnovers])
	}
}

func TestTeamPercentageWeightedByAttempts(t *testing.T) {
	// 1-of-1 plus 9-of-20 is 10-of-21, not the 72.5% a naive average gives.
	roster := []models.Player{shooter(1.0, 1), shooter(0.45, 20)}
	proj := TeamProjection(roster)
	want := 10.0 / 21.0
	if math.Abs(proj[models.CatFieldGoalPct]-want) > 1e-9 {
		t.Fatalf("fg%% = %v, want %v", proj[models.CatFieldGoalPct], want)
	}
}

func TestTeamPercentageUsesEstimatedAttempts(t *testing.T) {
	// Known percentage, unknown volume: a league-typical attempt count
	// stands in so the player still influences the team line.
	roster := []models.Player{shooter(0.50, 0), shooter(0.40, 10)}
	proj := TeamProjection(roster)
	want := (0.50*estFieldGoalAttempts + 4.0) / (estFieldGoalAttempts + 10)
	if math.Abs(proj[models.CatFieldGoalPct]-want) > 1e-9 {
		t.Fatalf("fg%% = %v, want %v", proj[models.CatFieldGoalPct], want)
	}
}

func TestTeamPercentageUnknownWhenNoShooters(t *testing.T) {
	roster := []models.Player{
		{Stats: models.CategoryStats{Points: 10}},
	}
	proj := TeamProjection(roster)
	if proj[models.CatFieldGoalPct] != 0 || proj[models.CatFreeThrowPct] != 0 {
		t.Fatalf("percentages should be 0 with no known shooters, got %v / %v",
			proj[models.CatFieldGoalPct], proj[models.CatFreeThrowPct])
	}
}

func TestBlockTotalsCarryDerivedPercentages(t *testing.T) {
	block := []models.Player{shooter(0.50, 10), shooter(0.50, 10)}
	totals := BlockTotals(block)
	if !totals.FieldGoalPct.Valid || math.Abs(totals.FieldGoalPct.Value-0.50) > 1e-9 {
		t.Fatalf("block fg%% = %+v, want known 0.50", totals.FieldGoalPct)
	}
	if totals.FreeThrowPct.Valid {
		t.Fatalf("block ft%% should stay unknown with no ft shooters")
	}
}
