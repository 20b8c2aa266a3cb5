package recommend

import (
	"testing"

	"CourtIQ/internal/domain/models"
)

func findDelta(t *testing.T, deltas []models.CategoryDelta, category string) models.CategoryDelta {
	t.Helper()
	for _, d := range deltas {
		if d.Category == category {
			return d
		}
	}
	t.Fatalf("no delta for %s", category)
	return models.CategoryDelta{}
}

func TestCompareBlocksCoversEveryCategory(t *testing.T) {
	p := player("Same", "PG", 12)
	deltas, ups, downs := compareBlocks([]models.Player{p}, []models.Player{p})
	if len(deltas) != int(models.NumCategories) {
		t.Fatalf("got %d deltas, want %d", len(deltas), models.NumCategories)
	}
	if len(ups) != 0 || len(downs) != 0 {
		t.Fatalf("identical blocks should change nothing, got ups=%v downs=%v", ups, downs)
	}
	for _, d := range deltas {
		if d.Changed {
			t.Fatalf("%s marked changed for identical blocks", d.Category)
		}
	}
}

func TestCompareBlocksTurnoverOrientation(t *testing.T) {
	drop := models.Player{Stats: models.CategoryStats{Turnovers: 4}}
	add := models.Player{Stats: models.CategoryStats{Turnovers: 2}}

	deltas, ups, _ := compareBlocks([]models.Player{drop}, []models.Player{add})
	d := findDelta(t, deltas, models.CatTurnovers.String())
	if d.Delta != 2 {
		t.Fatalf("turnover delta = %v, want +2 (fewer turnovers is better)", d.Delta)
	}
	found := false
	for _, u := range ups {
		if u == "TO +2.0" {
			found = true
		}
	}
	if !found {
		t.Fatalf("improvements = %v, want TO +2.0 listed", ups)
	}
}

func TestCompareBlocksPercentagePoints(t *testing.T) {
	drop := models.Player{Stats: models.CategoryStats{
		FieldGoalPct:      models.KnownRatio(0.45),
		FieldGoalAttempts: 10,
	}}
	add := models.Player{Stats: models.CategoryStats{
		FieldGoalPct:      models.KnownRatio(0.50),
		FieldGoalAttempts: 10,
	}}

	deltas, ups, _ := compareBlocks([]models.Player{drop}, []models.Player{add})
	d := findDelta(t, deltas, models.CatFieldGoalPct.String())
	if d.Delta != 5 {
		t.Fatalf("fg%% delta = %v, want 5 percentage points", d.Delta)
	}
	if d.Label != "FG% +5.0%" {
		t.Fatalf("label = %q, want FG%% +5.0%%", d.Label)
	}
	if len(ups) != 1 {
		t.Fatalf("improvements = %v, want only the fg%% gain", ups)
	}
}

func TestCompareBlocksDeclineLabeled(t *testing.T) {
	drop := models.Player{Stats: models.CategoryStats{Assists: 8}}
	add := models.Player{Stats: models.CategoryStats{Assists: 3}}

	deltas, _, downs := compareBlocks([]models.Player{drop}, []models.Player{add})
	d := findDelta(t, deltas, models.CatAssists.String())
	if d.Delta != -5 {
		t.Fatalf("assist delta = %v, want -5", d.Delta)
	}
	if len(downs) != 1 || downs[0] != "AST -5.0" {
		t.Fatalf("declines = %v, want [AST -5.0]", downs)
	}
}
