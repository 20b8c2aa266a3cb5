// Package draft builds the preseason draft board: multi-season weighted
// stat lines, fantasy value, auction credits, per-minute production,
// season-over-season trends, and an availability-based injury risk flag.
package draft

import (
	"math"
	"sort"

	"github.com/creasty/defaults"

	"CourtIQ/internal/domain/models"
	domsvc "CourtIQ/internal/domain/service"
	"CourtIQ/internal/services/value"
)

// Config tunes the draft board. SeasonWeights apply most recent season
// first and are renormalized per player over the seasons they actually
// appeared in, so a rookie is not penalized for missing history.
type Config struct {
	SeasonWeights []float64 `yaml:"season_weights" default:"[0.6,0.3,0.1]"`
	TopN          int       `yaml:"top_n" default:"200"`
}

// Trend thresholds in percent. Movement inside the band reads as stable.
const (
	improvingAbove = 5.0
	decliningBelow = -5.0
)

// Games-played floors for the injury risk flag.
const (
	lowRiskGames    = 70
	mediumRiskGames = 50
)

type Assistant struct {
	cfg Config
}

func New(cfg Config) *Assistant {
	_ = defaults.Set(&cfg)
	return &Assistant{cfg: cfg}
}

// seasonEntry is one player's appearance in one season, paired with that
// season's weight.
type seasonEntry struct {
	player models.Player
	weight float64
}

// Rankings builds the draft board from the given season pools, ordered
// most recent season first. Identity (name, team, position) comes from the
// most recent appearance; credits and injury risk come from the most
// recent season only.
func (a *Assistant) Rankings(seasons []string, pools map[string][]models.Player, topN int) []models.DraftRanking {
	if topN <= 0 {
		topN = a.cfg.TopN
	}

	history := make(map[string][]seasonEntry)
	var order []string
	for i, season := range seasons {
		if i >= len(a.cfg.SeasonWeights) {
			break
		}
		for _, p := range pools[season] {
			if _, known := history[p.ID]; !known {
				order = append(order, p.ID)
			}
			history[p.ID] = append(history[p.ID], seasonEntry{player: p, weight: a.cfg.SeasonWeights[i]})
		}
	}

	rankings := make([]models.DraftRanking, 0, len(order))
	for _, id := range order {
		entries := history[id]
		latest := entries[0].player
		weighted := weightedStats(entries)

		rankings = append(rankings, models.DraftRanking{
			PlayerID:       latest.ID,
			Name:           latest.Name,
			Position:       latest.Position,
			Team:           latest.Team,
			FantasyValue:   round1(value.DraftWeights.Score(weighted)),
			Credit:         value.Credit(latest.Stats, latest.Minutes),
			WeightedStats:  weighted,
			PerMinuteStats: perMinute(weighted, latest.Minutes),
			Trends:         trends(entries),
			GamesPlayed:    latest.GamesPlayed,
			MinutesPerGame: round1(latest.Minutes),
			InjuryRisk:     injuryRisk(latest.GamesPlayed),
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].FantasyValue != rankings[j].FantasyValue {
			return rankings[i].FantasyValue > rankings[j].FantasyValue
		}
		return rankings[i].Name < rankings[j].Name
	})
	for i := range rankings {
		rankings[i].DraftRank = i + 1
	}
	if len(rankings) > topN {
		rankings = rankings[:topN]
	}
	return rankings
}

// weightedStats blends a player's seasons into one line. Weights are
// renormalized over the seasons present; percentage categories average
// only the seasons where the percentage is known.
func weightedStats(entries []seasonEntry) models.CategoryStats {
	var out models.CategoryStats
	var total float64
	for _, e := range entries {
		total += e.weight
	}
	if total <= 0 {
		return out
	}

	for _, e := range entries {
		w := e.weight / total
		s := e.player.Stats
		out.Points += s.Points * w
		out.Rebounds += s.Rebounds * w
		out.Assists += s.Assists * w
		out.Steals += s.Steals * w
		out.Blocks += s.Blocks * w
		out.ThreesMade += s.ThreesMade * w
		out.Turnovers += s.Turnovers * w
		out.FieldGoalAttempts += s.FieldGoalAttempts * w
		out.FreeThrowAttempts += s.FreeThrowAttempts * w
	}

	out.FieldGoalPct = weightedRatio(entries, func(s models.CategoryStats) models.Ratio { return s.FieldGoalPct })
	out.FreeThrowPct = weightedRatio(entries, func(s models.CategoryStats) models.Ratio { return s.FreeThrowPct })
	return out
}

func weightedRatio(entries []seasonEntry, get func(models.CategoryStats) models.Ratio) models.Ratio {
	var sum, total float64
	for _, e := range entries {
		r := get(e.player.Stats)
		if !r.Valid {
			continue
		}
		sum += r.Value * e.weight
		total += e.weight
	}
	if total <= 0 {
		return models.Ratio{}
	}
	return models.KnownRatio(sum / total)
}

func perMinute(s models.CategoryStats, minutes float64) map[string]float64 {
	if minutes <= 0 {
		return nil
	}
	out := make(map[string]float64, 5)
	for _, c := range []models.Category{
		models.CatPoints, models.CatRebounds, models.CatAssists,
		models.CatSteals, models.CatBlocks,
	} {
		out[c.String()] = math.Round(s.Counting(c)/minutes*1000) / 1000
	}
	return out
}

// trends compares the two most recent seasons the player appeared in.
// Percent change per category, and an overall call from their average.
func trends(entries []seasonEntry) models.Trends {
	if len(entries) < 2 {
		return models.Trends{Overall: "insufficient_data"}
	}
	recent, prior := entries[0].player.Stats, entries[1].player.Stats

	t := models.Trends{
		PointsTrend:   pctChange(prior.Points, recent.Points),
		ReboundsTrend: pctChange(prior.Rebounds, recent.Rebounds),
		AssistsTrend:  pctChange(prior.Assists, recent.Assists),
	}

	avg := (t.PointsTrend + t.ReboundsTrend + t.AssistsTrend) / 3
	switch {
	case avg > improvingAbove:
		t.Overall = "improving"
	case avg < decliningBelow:
		t.Overall = "declining"
	default:
		t.Overall = "stable"
	}
	return t
}

func pctChange(prior, recent float64) float64 {
	if prior <= 0 {
		return 0
	}
	return round1((recent - prior) / prior * 100)
}

func injuryRisk(gamesPlayed int) string {
	switch {
	case gamesPlayed >= lowRiskGames:
		return "low"
	case gamesPlayed >= mediumRiskGames:
		return "medium"
	default:
		return "high"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

var _ domsvc.DraftRanker = (*Assistant)(nil)
