package service

import (
	"CourtIQ/internal/domain/models"
)

// Simulator runs head-to-head matchup simulations. Calls are independent
// and safe to run concurrently for different roster pairs.
type Simulator interface {
	SimulateMatchup(myRoster, opponentRoster []models.Player, opts models.SimOptions) (models.SimulationReport, error)
	SimulatePointsLeague(myRoster, opponentRoster []models.Player, scoring map[string]float64, opts models.SimOptions) (models.PointsLeagueReport, error)
}

// Recommender searches for roster moves. An empty result list is a valid
// outcome, never an error.
type Recommender interface {
	Recommendations(roster, freeAgents, allPlayers []models.Player, maxResults int, otherTeams []models.TeamRoster) []models.RosterMove
}

// DraftRanker builds the multi-season weighted draft board from the
// season pools it is given, most recent season first.
type DraftRanker interface {
	Rankings(seasons []string, pools map[string][]models.Player, topN int) []models.DraftRanking
}
