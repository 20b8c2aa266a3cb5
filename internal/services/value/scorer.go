// Package value scores players for ranking, swap search, and auction
// budgeting. Three weight sets coexist deliberately: the draft board, the
// in-season swap search, and the credit formula each inherited their own
// constants from years of league tuning, and reconciling them would shift
// every ranking at once. Each set lives next to its single consumer.
package value

import (
	"math"

	"CourtIQ/internal/domain/models"
)

// Weights is a per-category linear scoring formula. Percentage categories
// contribute (actual − baseline) × scale so below-average shooters are
// penalized relative to the league, not in absolute terms; a baseline of 0
// makes the contribution absolute.
type Weights struct {
	Points     float64
	Rebounds   float64
	Assists    float64
	Steals     float64
	Blocks     float64
	ThreesMade float64
	Turnovers  float64

	FieldGoalBaseline float64
	FieldGoalScale    float64
	FreeThrowBaseline float64
	FreeThrowScale    float64
}

// SwapWeights ranks players for in-season swap and trade decisions.
var SwapWeights = Weights{
	Points:     1.0,
	Rebounds:   1.3,
	Assists:    1.5,
	Steals:     3.5,
	Blocks:     3.5,
	ThreesMade: 1.5,
	Turnovers:  -2.0,

	FieldGoalBaseline: 0.45,
	FieldGoalScale:    100,
	FreeThrowBaseline: 0.75,
	FreeThrowScale:    80,
}

// DraftWeights ranks players for the draft board. Percentages contribute
// absolutely here, matching the board's historical behavior.
var DraftWeights = Weights{
	Points:     1.0,
	Rebounds:   1.2,
	Assists:    1.5,
	Steals:     3.0,
	Blocks:     3.0,
	ThreesMade: 3.0,
	Turnovers:  -1.0,

	FieldGoalScale: 10,
	FreeThrowScale: 8,
}

// creditWeights feeds the auction-credit composite score.
var creditWeights = Weights{
	Points:     1.0,
	Rebounds:   1.2,
	Assists:    1.5,
	Steals:     3.0,
	Blocks:     3.0,
	ThreesMade: 0.5,
	Turnovers:  -1.0,

	FieldGoalBaseline: 0.46,
	FieldGoalScale:    50,
	FreeThrowBaseline: 0.78,
	FreeThrowScale:    30,
}

// Score computes the weighted composite for one stat line. Unknown
// percentages contribute nothing, which equals substituting the league
// baseline.
func (w Weights) Score(s models.CategoryStats) float64 {
	v := s.Points*w.Points +
		s.Rebounds*w.Rebounds +
		s.Assists*w.Assists +
		s.Steals*w.Steals +
		s.Blocks*w.Blocks +
		s.ThreesMade*w.ThreesMade +
		s.Turnovers*w.Turnovers

	if s.FieldGoalPct.Valid && s.FieldGoalPct.Value > 0 {
		v += (s.FieldGoalPct.Value - w.FieldGoalBaseline) * w.FieldGoalScale
	}
	if s.FreeThrowPct.Valid && s.FreeThrowPct.Value > 0 {
		v += (s.FreeThrowPct.Value - w.FreeThrowBaseline) * w.FreeThrowScale
	}
	return v
}

// Swap is the fantasy value used by the recommendation search.
func Swap(p models.Player) float64 { return SwapWeights.Score(p.Stats) }

// Credit maps a composite score band to an auction dollar range:
// scores at Threshold earn Base credits, growing by Slope per point of
// excess. Bands are ordered highest first and evaluated by first match.
type tier struct {
	Threshold float64
	Base      float64
	Slope     float64
}

var creditTiers = []tier{
	{Threshold: 55, Base: 50, Slope: 1.5}, // elite
	{Threshold: 45, Base: 35, Slope: 1.4}, // star
	{Threshold: 35, Base: 25, Slope: 1.0}, // strong starter
	{Threshold: 25, Base: 15, Slope: 1.0}, // solid starter
	{Threshold: 15, Base: 8, Slope: 0.7},  // role player
	{Threshold: 5, Base: 3, Slope: 0.4},   // deep bench
}

// Starter-minutes threshold for the dampening multiplier, and the floor
// below which a player is pinned to the minimum credit outright.
const (
	starterMinutes = 28.0
	minimumMinutes = 10.0
)

// Credit computes the bounded [1,70] auction budget value for a player.
// Sub-10-minute players take the floor credit without scoring at all.
func Credit(s models.CategoryStats, minutes float64) int {
	if minutes < minimumMinutes {
		return 1
	}

	score := creditWeights.Score(s)

	var credit float64
	matched := false
	for _, t := range creditTiers {
		if score >= t.Threshold {
			credit = t.Base + (score-t.Threshold)*t.Slope
			matched = true
			break
		}
	}
	if !matched {
		credit = math.Max(1, score*0.4)
	}

	// Limited minutes scale the credit from 60% toward 100% of the tier
	// value as minutes approach the starter threshold.
	if minutes < starterMinutes {
		credit *= 0.6 + (minutes/starterMinutes)*0.4
	}

	c := int(math.Round(credit))
	if c < 1 {
		return 1
	}
	if c > 70 {
		return 70
	}
	return c
}
