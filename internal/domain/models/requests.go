package models

// RosterRef names another fantasy team's roster by player id.
type RosterRef struct {
	TeamName string   `json:"team_name" validate:"required"`
	Roster   []string `json:"roster" validate:"required,min=1"`
}

// SimulateRequest asks for a Monte Carlo simulation between two rosters,
// referenced by player id within a season's player pool.
type SimulateRequest struct {
	Season         string   `json:"season" validate:"required"`
	MyRoster       []string `json:"my_roster" validate:"required,min=1"`
	OpponentRoster []string `json:"opponent_roster" validate:"required,min=1"`
	Trials         int      `json:"trials" default:"10000" validate:"gte=100,lte=200000"`
	Seed           int64    `json:"seed"`
	IncludeDetails bool     `json:"include_details"`
}

// PointsLeagueRequest asks for a points-league simulation with explicit
// per-stat scoring settings (stat key -> fantasy points per unit).
type PointsLeagueRequest struct {
	Season         string             `json:"season" validate:"required"`
	MyRoster       []string           `json:"my_roster" validate:"required,min=1"`
	OpponentRoster []string           `json:"opponent_roster" validate:"required,min=1"`
	Scoring        map[string]float64 `json:"scoring_settings" validate:"required,min=1"`
	Trials         int                `json:"trials" default:"10000" validate:"gte=100,lte=200000"`
	Seed           int64              `json:"seed"`
}

// RecommendationsRequest asks for ranked roster move suggestions.
type RecommendationsRequest struct {
	Season     string      `json:"season" validate:"required"`
	Roster     []string    `json:"roster" validate:"required,min=1"`
	MaxResults int         `json:"max_results" default:"100" validate:"gte=1,lte=500"`
	OtherTeams []RosterRef `json:"other_teams,omitempty" validate:"dive"`
}

// RankingsRequest filters the draft board.
type RankingsRequest struct {
	Position string `query:"position"`
	TopN     int    `query:"top_n" default:"200" validate:"gte=1,lte=1000"`
}

// PlayersRequest selects a season's player pool.
type PlayersRequest struct {
	Season   string `query:"season" validate:"required"`
	MinGames int    `query:"min_games" validate:"gte=0"`
}
