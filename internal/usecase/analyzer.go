// Package usecase wires the domain engines to storage: it resolves player
// ids against cached season pools and hands fully materialized rosters to
// the simulator, the recommendation search, and the draft board.
package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"CourtIQ/internal/domain/models"
	"CourtIQ/internal/domain/repository"
	domsvc "CourtIQ/internal/domain/service"
	icache "CourtIQ/internal/service/cache"
	applogger "CourtIQ/pkg/logger"
)

// NotFoundError marks lookups that failed because the request referenced
// players or seasons the store does not have. Handlers map it to 404.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

func notFoundf(format string, a ...interface{}) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf(format, a...)}
}

// Analyzer is the application service behind every API operation.
type Analyzer struct {
	store    repository.PlayerStore
	pools    *icache.PoolCache
	sim      domsvc.Simulator
	search   domsvc.Recommender
	ranker   domsvc.DraftRanker
	metrics  repository.Metrics
	log      *applogger.Logger
	seasons  []string // league seasons, most recent first
	minGames int
}

func NewAnalyzer(
	store repository.PlayerStore,
	pools *icache.PoolCache,
	sim domsvc.Simulator,
	search domsvc.Recommender,
	ranker domsvc.DraftRanker,
	metrics repository.Metrics,
	log *applogger.Logger,
	seasons []string,
	minGames int,
) *Analyzer {
	return &Analyzer{
		store:    store,
		pools:    pools,
		sim:      sim,
		search:   search,
		ranker:   ranker,
		metrics:  metrics,
		log:      log,
		seasons:  seasons,
		minGames: minGames,
	}
}

// Simulate resolves both rosters in the season pool and runs the category
// matchup simulation.
func (a *Analyzer) Simulate(ctx context.Context, req models.SimulateRequest) (models.SimulationReport, error) {
	pool, err := a.Pool(ctx, req.Season, a.minGames)
	if err != nil {
		return models.SimulationReport{}, err
	}
	index := indexByID(pool)

	mine, err := resolveRoster(index, req.MyRoster)
	if err != nil {
		return models.SimulationReport{}, err
	}
	theirs, err := resolveRoster(index, req.OpponentRoster)
	if err != nil {
		return models.SimulationReport{}, err
	}

	start := time.Now()
	report, err := a.sim.SimulateMatchup(mine, theirs, models.SimOptions{
		Trials:         req.Trials,
		Seed:           req.Seed,
		IncludeDetails: req.IncludeDetails,
	})
	if err != nil {
		a.metrics.RecordError("simulate")
		return models.SimulationReport{}, err
	}
	a.metrics.RecordSimulation(report.Trials, time.Since(start).Seconds())

	a.log.Info("matchup simulated",
		applogger.String("season", req.Season),
		applogger.Int("trials", report.Trials),
		applogger.Float64("win_probability", report.WinProbability),
	)
	return report, nil
}

// SimulatePoints runs the points-league variant with explicit scoring
// settings.
func (a *Analyzer) SimulatePoints(ctx context.Context, req models.PointsLeagueRequest) (models.PointsLeagueReport, error) {
	pool, err := a.Pool(ctx, req.Season, a.minGames)
	if err != nil {
		return models.PointsLeagueReport{}, err
	}
	index := indexByID(pool)

	mine, err := resolveRoster(index, req.MyRoster)
	if err != nil {
		return models.PointsLeagueReport{}, err
	}
	theirs, err := resolveRoster(index, req.OpponentRoster)
	if err != nil {
		return models.PointsLeagueReport{}, err
	}

	start := time.Now()
	report, err := a.sim.SimulatePointsLeague(mine, theirs, req.Scoring, models.SimOptions{
		Trials: req.Trials,
		Seed:   req.Seed,
	})
	if err != nil {
		a.metrics.RecordError("simulate_points")
		return models.PointsLeagueReport{}, err
	}
	a.metrics.RecordLatency("simulate_points", time.Since(start).Seconds())
	return report, nil
}

// Recommendations resolves the roster, derives the free-agent pool, and
// runs the move search. Other teams' rosters are optional and unlock the
// trade strategies.
func (a *Analyzer) Recommendations(ctx context.Context, req models.RecommendationsRequest) ([]models.RosterMove, error) {
	pool, err := a.Pool(ctx, req.Season, a.minGames)
	if err != nil {
		return nil, err
	}
	index := indexByID(pool)

	roster, err := resolveRoster(index, req.Roster)
	if err != nil {
		return nil, err
	}

	rostered := make(map[string]bool, len(req.Roster))
	for _, id := range req.Roster {
		rostered[id] = true
	}
	var freeAgents []models.Player
	for _, p := range pool {
		if p.FantasyTeam == "" && !rostered[p.ID] {
			freeAgents = append(freeAgents, p)
		}
	}

	otherTeams := make([]models.TeamRoster, 0, len(req.OtherTeams))
	for _, ref := range req.OtherTeams {
		teamRoster, err := resolveRoster(index, ref.Roster)
		if err != nil {
			return nil, err
		}
		otherTeams = append(otherTeams, models.TeamRoster{TeamName: ref.TeamName, Roster: teamRoster})
	}

	start := time.Now()
	moves := a.search.Recommendations(roster, freeAgents, pool, req.MaxResults, otherTeams)
	a.metrics.RecordLatency("recommendations", time.Since(start).Seconds())
	for strategy, count := range countByType(moves) {
		a.metrics.RecordRecommendations(strategy, count)
	}

	a.log.Info("recommendations produced",
		applogger.String("season", req.Season),
		applogger.Int("free_agents", len(freeAgents)),
		applogger.Int("moves", len(moves)),
	)
	return moves, nil
}

// DraftRankings builds the multi-season draft board and applies the
// optional position filter.
func (a *Analyzer) DraftRankings(ctx context.Context, req models.RankingsRequest) ([]models.DraftRanking, error) {
	pools := make(map[string][]models.Player, len(a.seasons))
	for _, season := range a.seasons {
		// Draft evaluation wants the full pool, including players below the
		// in-season games filter.
		pool, err := a.Pool(ctx, season, 0)
		if err != nil {
			return nil, err
		}
		pools[season] = pool
	}

	start := time.Now()
	rankings := a.ranker.Rankings(a.seasons, pools, req.TopN)
	a.metrics.RecordLatency("draft_rankings", time.Since(start).Seconds())

	if req.Position != "" {
		rankings = filterByPosition(rankings, req.Position)
	}
	return rankings, nil
}

// Players returns one season's pool for browsing.
func (a *Analyzer) Players(ctx context.Context, req models.PlayersRequest) ([]models.Player, error) {
	return a.Pool(ctx, req.Season, req.MinGames)
}

// Seasons lists the seasons available in the store.
func (a *Analyzer) Seasons(ctx context.Context) ([]string, error) {
	return a.store.Seasons(ctx)
}

// Health reports store reachability.
func (a *Analyzer) Health(ctx context.Context) error {
	return a.store.Health(ctx)
}

// Pool reads a season pool through the cache.
func (a *Analyzer) Pool(ctx context.Context, season string, minGames int) ([]models.Player, error) {
	if players, ok := a.pools.Get(ctx, season, minGames); ok {
		return players, nil
	}

	players, err := a.store.Players(ctx, season, minGames)
	if err != nil {
		a.metrics.RecordError("pool_load")
		return nil, fmt.Errorf("load season %s: %w", season, err)
	}
	if len(players) == 0 {
		return nil, notFoundf("no players found for season %s", season)
	}

	a.pools.Put(ctx, season, minGames, players)
	a.metrics.RecordPoolSize(season, len(players))
	return players, nil
}

func indexByID(players []models.Player) map[string]models.Player {
	index := make(map[string]models.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}
	return index
}

func resolveRoster(index map[string]models.Player, ids []string) ([]models.Player, error) {
	roster := make([]models.Player, 0, len(ids))
	var missing []string
	for _, id := range ids {
		p, ok := index[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		roster = append(roster, p)
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, notFoundf("unknown players: %s", strings.Join(missing, ", "))
	}
	return roster, nil
}

func countByType(moves []models.RosterMove) map[string]int {
	counts := make(map[string]int)
	for _, m := range moves {
		counts[m.Type]++
	}
	return counts
}

func filterByPosition(rankings []models.DraftRanking, position string) []models.DraftRanking {
	want := strings.ToUpper(strings.TrimSpace(position))
	out := make([]models.DraftRanking, 0, len(rankings))
	for _, r := range rankings {
		if strings.Contains(strings.ToUpper(r.Position), want) {
			out = append(out, r)
		}
	}
	return out
}
