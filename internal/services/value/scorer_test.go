package value

import (
	"testing"

	"CourtIQ/internal/domain/models"
)

func statLine(points float64) models.CategoryStats {
	return models.CategoryStats{
		Points:       points,
		Rebounds:     6,
		Assists:      4,
		Steals:       1,
		Blocks:       0.5,
		ThreesMade:   2,
		Turnovers:    2,
		FieldGoalPct: models.KnownRatio(0.47),
		FreeThrowPct: models.KnownRatio(0.80),
	}
}

func TestScoreUnknownPercentagesContributeNothing(t *testing.T) {
	known := models.CategoryStats{Points: 20}
	unknown := models.CategoryStats{Points: 20}
	known.FieldGoalPct = models.KnownRatio(SwapWeights.FieldGoalBaseline)

	// Shooting exactly the baseline is worth the same as not shooting at
	// all, so missing data never penalizes a player.
	if SwapWeights.Score(known) != SwapWeights.Score(unknown) {
		t.Fatalf("baseline shooter %v != unknown shooter %v",
			SwapWeights.Score(known), SwapWeights.Score(unknown))
	}
}

func TestScoreTurnoversSubtract(t *testing.T) {
	clean := models.CategoryStats{Points: 20}
	sloppy := models.CategoryStats{Points: 20, Turnovers: 4}
	if SwapWeights.Score(sloppy) >= SwapWeights.Score(clean) {
		t.Fatalf("turnovers should lower the score")
	}
}

func TestCreditFloorUnderTenMinutes(t *testing.T) {
	if c := Credit(statLine(35), 9.9); c != 1 {
		t.Fatalf("credit = %d, want 1 for sub-10-minute player", c)
	}
}

func TestCreditBounds(t *testing.T) {
	star := models.CategoryStats{
		Points: 40, Rebounds: 15, Assists: 12, Steals: 3, Blocks: 3,
		ThreesMade: 5,
		FieldGoalPct: models.KnownRatio(0.60),
		FreeThrowPct: models.KnownRatio(0.95),
	}
	if c := Credit(star, 36); c != 70 {
		t.Fatalf("credit = %d, want cap 70", c)
	}

	scrub := models.CategoryStats{Points: 1}
	if c := Credit(scrub, 12); c < 1 {
		t.Fatalf("credit = %d, want at least 1", c)
	}
}

func TestCreditTierBoundaries(t *testing.T) {
	// A points-only line scores exactly its point total under the credit
	// weights, which pins the composite score to each tier threshold.
	cases := []struct {
		score float64
		want  int
	}{
		{55, 50}, // elite
		{45, 35}, // star
		{35, 25}, // strong starter
		{25, 15}, // solid starter
		{15, 8},  // role player
		{5, 3},   // deep bench
	}
	for _, c := range cases {
		s := models.CategoryStats{Points: c.score}
		if got := Credit(s, 30); got != c.want {
			t.Fatalf("score %v earned %d credits, want %d", c.score, got, c.want)
		}
	}
}

func TestCreditExtremeScores(t *testing.T) {
	sloppy := models.CategoryStats{Turnovers: 1e6}
	if got := Credit(sloppy, 30); got != 1 {
		t.Fatalf("hugely negative score earned %d credits, want floor 1", got)
	}

	monster := models.CategoryStats{Points: 1e6}
	if got := Credit(monster, 30); got != 70 {
		t.Fatalf("hugely positive score earned %d credits, want cap 70", got)
	}
}

func TestCreditMinutesDampening(t *testing.T) {
	s := statLine(22)
	limited := Credit(s, 20)
	starter := Credit(s, 30)
	if limited >= starter {
		t.Fatalf("limited minutes credit %d should be below starter credit %d", limited, starter)
	}
}

func TestCreditMonotonicInScore(t *testing.T) {
	prev := 0
	for points := 0.0; points <= 45; points += 1.5 {
		c := Credit(statLine(points), 34)
		if c < prev {
			t.Fatalf("credit dropped from %d to %d at %v points", prev, c, points)
		}
		prev = c
	}
}
