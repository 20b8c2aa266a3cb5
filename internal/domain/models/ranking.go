package models

// DraftRanking is one entry of the multi-season weighted draft board.
type DraftRanking struct {
	PlayerID       string             `json:"player_id"`
	Name           string             `json:"name"`
	Position       string             `json:"position"`
	Team           string             `json:"team"`
	FantasyValue   float64            `json:"fantasy_value"`
	Credit         int                `json:"credit"`
	DraftRank      int                `json:"draft_rank"`
	WeightedStats  CategoryStats      `json:"weighted_stats"`
	PerMinuteStats map[string]float64 `json:"per_minute_stats,omitempty"`
	Trends         Trends             `json:"trends"`
	GamesPlayed    int                `json:"games_played"`
	MinutesPerGame float64            `json:"minutes_per_game"`
	InjuryRisk     string             `json:"injury_risk"`
}

// Trends captures per-category season-over-season movement in percent,
// plus an overall assessment.
type Trends struct {
	PointsTrend   float64 `json:"points_trend,omitempty"`
	ReboundsTrend float64 `json:"rebounds_trend,omitempty"`
	AssistsTrend  float64 `json:"assists_trend,omitempty"`
	Overall       string  `json:"overall_trend"` // improving, declining, stable, insufficient_data
}
