package sim

import (
	"errors"
	"math"
	"testing"

	"CourtIQ/internal/domain/models"
)

func roster(points, rebounds, turnovers float64) []models.Player {
	return []models.Player{{
		Name: "p1",
		Stats: models.CategoryStats{
			Points:       points,
			Rebounds:     rebounds,
			Assists:      5,
			Steals:       1.2,
			Blocks:       0.8,
			ThreesMade:   2,
			Turnovers:    turnovers,
			FieldGoalPct: models.KnownRatio(0.46),
			FreeThrowPct: models.KnownRatio(0.78),
		},
	}}
}

func TestSimulateEmptyRoster(t *testing.T) {
	m := New(Config{Trials: 100})
	if _, err := m.SimulateMatchup(nil, roster(20, 8, 2), models.SimOptions{}); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}
}

func TestIdenticalRostersNearCoinFlip(t *testing.T) {
	m := New(Config{})
	report, err := m.SimulateMatchup(roster(22, 9, 2.5), roster(22, 9, 2.5), models.SimOptions{Trials: 20000, Seed: 7})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if report.WinProbability < 45 || report.WinProbability > 55 {
		t.Fatalf("identical rosters win probability = %v, want near 50", report.WinProbability)
	}
}

func TestDominantRosterWins(t *testing.T) {
	m := New(Config{})
	report, err := m.SimulateMatchup(roster(40, 16, 1), roster(15, 5, 4), models.SimOptions{Trials: 5000, Seed: 11})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if report.WinProbability < 80 {
		t.Fatalf("dominant roster win probability = %v, want > 80", report.WinProbability)
	}
}

func TestCategoryBreakdownSumsToHundred(t *testing.T) {
	m := New(Config{})
	report, err := m.SimulateMatchup(roster(25, 10, 2), roster(20, 11, 3), models.SimOptions{Trials: 2000, Seed: 3})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if len(report.Categories) != int(models.NumCategories) {
		t.Fatalf("got %d category outcomes, want %d", len(report.Categories), models.NumCategories)
	}
	for _, o := range report.Categories {
		sum := o.WinPct + o.LossPct + o.TiePct
		if math.Abs(sum-100) > 0.2 {
			t.Fatalf("%s outcome percentages sum to %v", o.Category, sum)
		}
	}
}

func TestTurnoversInverted(t *testing.T) {
	// Same roster except my side commits fewer turnovers; that category
	// should favor me even though the raw value is smaller.
	m := New(Config{})
	report, err := m.SimulateMatchup(roster(20, 8, 1), roster(20, 8, 4), models.SimOptions{Trials: 5000, Seed: 5})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for _, o := range report.Categories {
		if o.Category == models.CatTurnovers.String() && o.WinPct <= 50 {
			t.Fatalf("turnovers win pct = %v, want > 50 for fewer turnovers", o.WinPct)
		}
	}
}

func TestSeedReproducibility(t *testing.T) {
	m := New(Config{})
	opts := models.SimOptions{Trials: 1000, Seed: 42}
	a, err := m.SimulateMatchup(roster(24, 9, 2), roster(21, 10, 3), opts)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	b, err := m.SimulateMatchup(roster(24, 9, 2), roster(21, 10, 3), opts)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if a.WinProbability != b.WinProbability {
		t.Fatalf("same seed produced %v and %v", a.WinProbability, b.WinProbability)
	}
}

func TestDetailRetentionBounded(t *testing.T) {
	m := New(Config{DetailTrials: 100})
	report, err := m.SimulateMatchup(roster(24, 9, 2), roster(21, 10, 3),
		models.SimOptions{Trials: 500, Seed: 9, IncludeDetails: true})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if len(report.Details) != 100 {
		t.Fatalf("retained %d details, want 100", len(report.Details))
	}
	if report.Details[0].Trial != 1 || report.Details[99].Trial != 100 {
		t.Fatalf("details should cover trials 1..100, got %d..%d",
			report.Details[0].Trial, report.Details[99].Trial)
	}
	if report.Trials != 500 {
		t.Fatalf("report trials = %d, want 500", report.Trials)
	}
}

func TestDetailsOmittedByDefault(t *testing.T) {
	m := New(Config{DetailTrials: 100})
	report, err := m.SimulateMatchup(roster(24, 9, 2), roster(21, 10, 3), models.SimOptions{Trials: 500, Seed: 9})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if len(report.Details) != 0 {
		t.Fatalf("details should be empty without IncludeDetails, got %d", len(report.Details))
	}
}

func TestSampleLineClampsPercentages(t *testing.T) {
	m := New(Config{})
	rng := m.newRand(1)
	var proj models.StatLine
	proj[models.CatFieldGoalPct] = 0.45
	proj[models.CatPoints] = 5
	for i := 0; i < 10000; i++ {
		line := sampleLine(rng, proj)
		pct := line[models.CatFieldGoalPct]
		if pct < 0.2 || pct > 1.0 {
			t.Fatalf("sampled percentage %v outside [0.2, 1.0]", pct)
		}
		if line[models.CatPoints] < 0 {
			t.Fatalf("sampled counting stat went negative: %v", line[models.CatPoints])
		}
	}
}

func TestPointsLeagueSimulation(t *testing.T) {
	m := New(Config{})
	scoring := map[string]float64{"points": 1, "rebounds": 1.2, "turnovers": -1}
	report, err := m.SimulatePointsLeague(roster(35, 12, 1), roster(18, 6, 4), scoring, models.SimOptions{Trials: 3000, Seed: 13})
	if err != nil {
		t.Fatalf("simulate points: %v", err)
	}
	if report.WinProbability < 80 {
		t.Fatalf("win probability = %v, want > 80 for dominant roster", report.WinProbability)
	}
	if report.ProjectedPoints <= report.OppProjectedPoints {
		t.Fatalf("projected points %v should exceed opponent %v",
			report.ProjectedPoints, report.OppProjectedPoints)
	}
}

func TestPointsLeagueRequiresScoring(t *testing.T) {
	m := New(Config{})
	if _, err := m.SimulatePointsLeague(roster(20, 8, 2), roster(20, 8, 2), nil, models.SimOptions{Trials: 100}); err == nil {
		t.Fatalf("expected error for missing scoring settings")
	}
}
