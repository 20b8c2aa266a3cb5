package stats

import (
	"math"
	"testing"

	"CourtIQ/internal/domain/models"
)

func fp(v float64) *float64 { return &v }

func TestProjectMissingStatsDefaultToZero(t *testing.T) {
	s := Project(models.RawStats{"points": fp(22.5)})
	if s.Points != 22.5 {
		t.Fatalf("points = %v, want 22.5", s.Points)
	}
	if s.Rebounds != 0 || s.Turnovers != 0 {
		t.Fatalf("missing counting stats should be 0, got reb=%v to=%v", s.Rebounds, s.Turnovers)
	}
	if s.FieldGoalPct.Valid || s.FreeThrowPct.Valid {
		t.Fatalf("missing percentages should stay unknown")
	}
}

func TestProjectNilEntryStaysUnknown(t *testing.T) {
	s := Project(models.RawStats{"ft_percentage": nil, "rebounds": nil})
	if s.FreeThrowPct.Valid {
		t.Fatalf("nil percentage should stay unknown")
	}
	if s.Rebounds != 0 {
		t.Fatalf("nil counting stat should be 0, got %v", s.Rebounds)
	}
}

func TestProjectRatioOutOfRangeRejected(t *testing.T) {
	s := Project(models.RawStats{
		"fg_percentage": fp(1.2),
		"ft_percentage": fp(0.82),
	})
	if s.FieldGoalPct.Valid {
		t.Fatalf("fg ratio above 1 should be rejected")
	}
	if !s.FreeThrowPct.Valid || s.FreeThrowPct.Value != 0.82 {
		t.Fatalf("ft ratio = %+v, want valid 0.82", s.FreeThrowPct)
	}
}

func TestProjectMalformedNumbersCoerced(t *testing.T) {
	s := Project(models.RawStats{
		"points":        fp(math.NaN()),
		"assists":       fp(math.Inf(1)),
		"fg_percentage": fp(math.NaN()),
	})
	if s.Points != 0 || s.Assists != 0 {
		t.Fatalf("NaN/Inf counting stats should be 0, got pts=%v ast=%v", s.Points, s.Assists)
	}
	if s.FieldGoalPct.Valid {
		t.Fatalf("NaN percentage should stay unknown")
	}
}

func TestProjectZeroPercentageIsKnown(t *testing.T) {
	// A true 0% (0-for-N) is a known value, distinct from missing data.
	s := Project(models.RawStats{"ft_percentage": fp(0)})
	if !s.FreeThrowPct.Valid || s.FreeThrowPct.Value != 0 {
		t.Fatalf("ft = %+v, want known 0", s.FreeThrowPct)
	}
}
