// Package sim implements the Monte Carlo matchup engine. Each run draws N
// independent weekly outcomes for both teams, perturbing every category
// with noise proportional to how volatile that category is week to week,
// and tallies category and matchup results.
package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"CourtIQ/internal/domain/models"
	domsvc "CourtIQ/internal/domain/service"
	"CourtIQ/internal/services/stats"
)

// ErrEmptyRoster is returned when either side of a matchup has no players.
// The simulator never fabricates players for an empty roster.
var ErrEmptyRoster = errors.New("sim: empty roster")

// Config holds the tunable simulation parameters. Trials defaults to
// 10,000, enough to hold win-probability estimates stable to roughly
// ±1 percentage point.
type Config struct {
	Trials       int   `yaml:"trials" default:"10000"`
	DetailTrials int   `yaml:"detail_trials" default:"100"`
	Seed         int64 `yaml:"seed"`
}

// Relative standard deviation per category. Low-frequency counting stats
// (steals, blocks) swing far more week to week than volume stats, and the
// percentage categories barely move.
var volatility = models.StatLine{
	models.CatPoints:       0.25,
	models.CatRebounds:     0.30,
	models.CatAssists:      0.35,
	models.CatSteals:       0.50,
	models.CatBlocks:       0.60,
	models.CatThreesMade:   0.40,
	models.CatFieldGoalPct: 0.15,
	models.CatFreeThrowPct: 0.10,
	models.CatTurnovers:    0.30,
}

// MonteCarlo is a stateless simulation engine. Every run operates on its
// own RNG and tallies, so concurrent calls for different matchups are safe.
type MonteCarlo struct {
	cfg Config
}

func New(cfg Config) *MonteCarlo {
	if cfg.Trials <= 0 {
		cfg.Trials = 10000
	}
	if cfg.DetailTrials < 0 {
		cfg.DetailTrials = 0
	}
	return &MonteCarlo{cfg: cfg}
}

// SimulateMatchup runs the head-to-head category simulation between two
// rosters and aggregates the result into a report.
func (m *MonteCarlo) SimulateMatchup(myRoster, opponentRoster []models.Player, opts models.SimOptions) (models.SimulationReport, error) {
	if len(myRoster) == 0 || len(opponentRoster) == 0 {
		return models.SimulationReport{}, ErrEmptyRoster
	}

	trials := opts.Trials
	if trials <= 0 {
		trials = m.cfg.Trials
	}
	rng := m.newRand(opts.Seed)

	myProj := stats.TeamProjection(myRoster)
	oppProj := stats.TeamProjection(opponentRoster)

	detailCap := 0
	if opts.IncludeDetails {
		detailCap = m.cfg.DetailTrials
	}

	var winCredits float64
	var catWins, catLosses, catTies [models.NumCategories]int
	details := make([]models.TrialDetail, 0, detailCap)

	for trial := 0; trial < trials; trial++ {
		mine := sampleLine(rng, models.StatLine(myProj))
		theirs := sampleLine(rng, models.StatLine(oppProj))

		won, lost := 0, 0
		for _, c := range models.Categories {
			switch compare(c, mine[c], theirs[c]) {
			case 1:
				won++
				catWins[c]++
			case -1:
				lost++
				catLosses[c]++
			default:
				catTies[c]++
			}
		}

		winner := "tie"
		switch {
		case won > lost:
			winCredits++
			winner = "me"
		case lost > won:
			winner = "opponent"
		default:
			// A category-count tie is half a win for each side, not a
			// discarded trial.
			winCredits += 0.5
		}

		if trial < detailCap {
			details = append(details, models.TrialDetail{
				Trial:          trial + 1,
				Mine:           roundLine(mine),
				Theirs:         roundLine(theirs),
				CategoriesWon:  won,
				CategoriesLost: lost,
				Winner:         winner,
			})
		}
	}

	report := models.SimulationReport{
		WinProbability: round1(winCredits / float64(trials) * 100),
		MyProjection:   myProj,
		OppProjection:  oppProj,
		Trials:         trials,
		Details:        details,
	}

	for _, c := range models.Categories {
		winPct := round1(float64(catWins[c]) / float64(trials) * 100)
		outcome := models.CategoryOutcome{
			Category: c.String(),
			Display:  c.Display(),
			WinPct:   winPct,
			LossPct:  round1(float64(catLosses[c]) / float64(trials) * 100),
			TiePct:   round1(float64(catTies[c]) / float64(trials) * 100),
			Strength: strength(winPct),
		}
		report.Categories = append(report.Categories, outcome)

		switch {
		case winPct > 50:
			report.ExpectedWon++
		case winPct < 50:
			report.ExpectedLost++
		default:
			report.ExpectedTied++
		}
	}

	report.Advice = advise(report.Categories)
	return report, nil
}

// SimulatePointsLeague decides each trial by total fantasy points under
// the given scoring settings instead of category counts.
func (m *MonteCarlo) SimulatePointsLeague(myRoster, opponentRoster []models.Player, scoring map[string]float64, opts models.SimOptions) (models.PointsLeagueReport, error) {
	if len(myRoster) == 0 || len(opponentRoster) == 0 {
		return models.PointsLeagueReport{}, ErrEmptyRoster
	}
	if len(scoring) == 0 {
		return models.PointsLeagueReport{}, fmt.Errorf("sim: no scoring settings")
	}

	trials := opts.Trials
	if trials <= 0 {
		trials = m.cfg.Trials
	}
	rng := m.newRand(opts.Seed)

	myProj := models.StatLine(stats.TeamProjection(myRoster))
	oppProj := models.StatLine(stats.TeamProjection(opponentRoster))

	wins := 0
	for trial := 0; trial < trials; trial++ {
		mine := fantasyPoints(sampleLine(rng, myProj), scoring)
		theirs := fantasyPoints(sampleLine(rng, oppProj), scoring)
		if mine > theirs {
			wins++
		}
	}

	return models.PointsLeagueReport{
		WinProbability:     round1(float64(wins) / float64(trials) * 100),
		ProjectedPoints:    fantasyPoints(myProj, scoring),
		OppProjectedPoints: fantasyPoints(oppProj, scoring),
	}, nil
}

// sampleLine draws one simulated week for a team. Every category is
// perturbed independently with a normal draw around its projection;
// zero projections stay zero.
func sampleLine(rng *rand.Rand, proj models.StatLine) models.StatLine {
	var out models.StatLine
	for _, c := range models.Categories {
		mean := proj[c]
		if mean <= 0 {
			continue
		}
		v := rng.NormFloat64()*(mean*volatility[c]) + mean
		if c.IsPercentage() {
			// A team cannot realistically shoot below 20% or above 100%
			// over a week.
			v = math.Max(0.2, math.Min(1.0, v))
		} else if v < 0 {
			v = 0
		}
		out[c] = v
	}
	return out
}

// compare reports 1 when mine wins the category, -1 when it loses, and 0
// on an exact tie. Turnovers invert: lower wins.
func compare(c models.Category, mine, theirs float64) int {
	if mine == theirs {
		return 0
	}
	better := mine > theirs
	if c.LowerIsBetter() {
		better = !better
	}
	if better {
		return 1
	}
	return -1
}

func strength(winPct float64) string {
	switch {
	case winPct > 60:
		return "strong"
	case winPct < 40:
		return "weak"
	default:
		return "even"
	}
}

// advise turns the category breakdown into strategic guidance: shore up
// the categories projected to lose badly, lean on the locked-in ones.
func advise(outcomes []models.CategoryOutcome) []models.MatchupAdvice {
	var weak, strong []string
	for _, o := range outcomes {
		switch {
		case o.WinPct < 40:
			weak = append(weak, o.Category)
		case o.WinPct > 60:
			strong = append(strong, o.Category)
		}
	}

	var advice []models.MatchupAdvice
	if len(weak) > 0 {
		advice = append(advice, models.MatchupAdvice{
			Type:       "improve_weakness",
			Message:    "Consider targeting players who excel in: " + strings.Join(weak, ", "),
			Categories: weak,
			Priority:   "high",
		})
	}
	if len(strong) > 0 {
		advice = append(advice, models.MatchupAdvice{
			Type:       "leverage_strength",
			Message:    "You have strong advantages in: " + strings.Join(strong, ", "),
			Categories: strong,
			Priority:   "medium",
		})
	}
	return advice
}

func fantasyPoints(line models.StatLine, scoring map[string]float64) float64 {
	keys := make([]string, 0, len(scoring))
	for k := range scoring {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	total := 0.0
	for _, k := range keys {
		if c, ok := categoryByKey(k); ok {
			total += line[c] * scoring[k]
		}
	}
	return total
}

func categoryByKey(key string) (models.Category, bool) {
	for _, c := range models.Categories {
		if c.String() == key {
			return c, true
		}
	}
	return 0, false
}

func (m *MonteCarlo) newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = m.cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func roundLine(line models.StatLine) models.StatLine {
	for i := range line {
		line[i] = math.Round(line[i]*1000) / 1000
	}
	return line
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

var _ domsvc.Simulator = (*MonteCarlo)(nil)
