package stats

import (
	"CourtIQ/internal/domain/models"
)

// TeamProjection aggregates a roster into one team-level stat line.
//
// Counting categories sum the per-game rates. The two percentage
// categories are re-derived as weighted makes over summed attempts;
// averaging the individual percentages would let a 100%-on-1-attempt
// shooter outweigh a 45%-on-20-attempts one. When a player's percentage
// is known but attempts are not, a league-typical attempt volume stands
// in as the weight.
func TeamProjection(roster []models.Player) models.TeamProjection {
	var proj models.TeamProjection
	var fgMakes, fgAttempts, ftMakes, ftAttempts float64

	for _, p := range roster {
		s := p.Stats
		proj[models.CatPoints] += s.Points
		proj[models.CatRebounds] += s.Rebounds
		proj[models.CatAssists] += s.Assists
		proj[models.CatSteals] += s.Steals
		proj[models.CatBlocks] += s.Blocks
		proj[models.CatThreesMade] += s.ThreesMade
		proj[models.CatTurnovers] += s.Turnovers

		if s.FieldGoalPct.Valid && s.FieldGoalPct.Value > 0 {
			att := s.FieldGoalAttempts
			if att <= 0 {
				att = estFieldGoalAttempts
			}
			fgMakes += s.FieldGoalPct.Value * att
			fgAttempts += att
		}
		if s.FreeThrowPct.Valid && s.FreeThrowPct.Value > 0 {
			att := s.FreeThrowAttempts
			if att <= 0 {
				att = estFreeThrowAttempts
			}
			ftMakes += s.FreeThrowPct.Value * att
			ftAttempts += att
		}
	}

	if fgAttempts > 0 {
		proj[models.CatFieldGoalPct] = fgMakes / fgAttempts
	}
	if ftAttempts > 0 {
		proj[models.CatFreeThrowPct] = ftMakes / ftAttempts
	}
	return proj
}

// BlockTotals sums counting stats and shooting volumes across a block of
// players, for side-by-side comparison of multi-player moves. The returned
// CategoryStats carries derived team percentages with summed attempts.
func BlockTotals(players []models.Player) models.CategoryStats {
	proj := TeamProjection(players)
	var total models.CategoryStats
	total.Points = proj[models.CatPoints]
	total.Rebounds = proj[models.CatRebounds]
	total.Assists = proj[models.CatAssists]
	total.Steals = proj[models.CatSteals]
	total.Blocks = proj[models.CatBlocks]
	total.ThreesMade = proj[models.CatThreesMade]
	total.Turnovers = proj[models.CatTurnovers]
	if v := proj[models.CatFieldGoalPct]; v > 0 {
		total.FieldGoalPct = models.KnownRatio(v)
	}
	if v := proj[models.CatFreeThrowPct]; v > 0 {
		total.FreeThrowPct = models.KnownRatio(v)
	}
	return total
}
