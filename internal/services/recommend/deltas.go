package recommend

import (
	"fmt"
	"math"

	"CourtIQ/internal/domain/models"
	"CourtIQ/internal/services/stats"
)

// noChange marks a category a move leaves untouched.
const noChange = "—"

// Differences below this are treated as no change.
const changeEpsilon = 0.01

// compareBlocks reports the per-category effect of dropping one block of
// players and adding another. Every one of the nine categories appears in
// the result, changed or not. Deltas are oriented so positive always means
// improvement: add-minus-drop everywhere except turnovers, which flip to
// drop-minus-add because lower is better. The same comparison applies
// whether a block holds one player or several; percentages always come
// from summed makes over summed attempts.
func compareBlocks(drop, add []models.Player) (deltas []models.CategoryDelta, improvements, declines []string) {
	dropTotals := stats.BlockTotals(drop)
	addTotals := stats.BlockTotals(add)

	deltas = make([]models.CategoryDelta, 0, models.NumCategories)
	for _, c := range models.Categories {
		var diff float64
		switch {
		case c.IsPercentage():
			dropPct, addPct := blockRatio(dropTotals, c), blockRatio(addTotals, c)
			diff = (addPct - dropPct) * 100 // percentage points
		case c.LowerIsBetter():
			diff = dropTotals.Counting(c) - addTotals.Counting(c)
		default:
			diff = addTotals.Counting(c) - dropTotals.Counting(c)
		}

		d := models.CategoryDelta{
			Category: c.String(),
			Display:  c.Display(),
			Delta:    round1(diff),
		}
		if math.Abs(diff) <= changeEpsilon {
			d.Label = c.Display() + " " + noChange
			deltas = append(deltas, d)
			continue
		}

		d.Changed = true
		d.Label = formatDelta(c, d.Delta)
		deltas = append(deltas, d)
		if diff > 0 {
			improvements = append(improvements, d.Label)
		} else {
			declines = append(declines, d.Label)
		}
	}
	return deltas, improvements, declines
}

func blockRatio(totals models.CategoryStats, c models.Category) float64 {
	if c == models.CatFieldGoalPct {
		return totals.FieldGoalPct.Or(0)
	}
	return totals.FreeThrowPct.Or(0)
}

func formatDelta(c models.Category, delta float64) string {
	sign := "+"
	if delta < 0 {
		sign = "-"
	}
	suffix := ""
	if c.IsPercentage() {
		suffix = "%"
	}
	return fmt.Sprintf("%s %s%.1f%s", c.Display(), sign, math.Abs(delta), suffix)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
