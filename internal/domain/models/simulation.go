package models

import "encoding/json"

// SimOptions tunes one simulation run. Zero values fall back to the
// simulator's configured defaults.
type SimOptions struct {
	Trials         int
	Seed           int64
	IncludeDetails bool
}

// TeamProjection is a roster-level projection across all nine categories.
// Percentage categories are derived from summed makes and attempts, never
// from averaging individual percentages.
type TeamProjection StatLine

// Value returns the projected value of one category.
func (p TeamProjection) Value(c Category) float64 { return p[c] }

// MarshalJSON renders the projection as a category-keyed object instead of
// a bare array.
func (p TeamProjection) MarshalJSON() ([]byte, error) {
	out := make(map[string]float64, NumCategories)
	for _, c := range Categories {
		out[c.String()] = p[c]
	}
	return json.Marshal(out)
}

// CategoryOutcome summarizes one category across all simulation trials.
// WinPct+LossPct+TiePct is 100 within rounding.
type CategoryOutcome struct {
	Category string  `json:"category"`
	Display  string  `json:"display"`
	WinPct   float64 `json:"win_pct"`
	LossPct  float64 `json:"loss_pct"`
	TiePct   float64 `json:"tie_pct"`
	Strength string  `json:"strength"` // strong, even, weak
}

// TrialDetail is one retained simulation trial. Only a bounded prefix of
// trials is kept on the report for inspection.
type TrialDetail struct {
	Trial          int      `json:"trial"`
	Mine           StatLine `json:"mine"`
	Theirs         StatLine `json:"theirs"`
	CategoriesWon  int      `json:"categories_won"`
	CategoriesLost int      `json:"categories_lost"`
	Winner         string   `json:"winner"` // me, opponent, tie
}

// MatchupAdvice is a strategic recommendation derived from the category
// breakdown.
type MatchupAdvice struct {
	Type       string   `json:"type"` // improve_weakness, leverage_strength
	Message    string   `json:"message"`
	Categories []string `json:"categories"`
	Priority   string   `json:"priority"`
}

// SimulationReport is the aggregate outcome of a Monte Carlo matchup run.
type SimulationReport struct {
	WinProbability float64           `json:"win_probability"`
	Categories     []CategoryOutcome `json:"category_breakdown"`
	ExpectedWon    int               `json:"expected_categories_won"`
	ExpectedLost   int               `json:"expected_categories_lost"`
	ExpectedTied   int               `json:"expected_categories_tied"`
	MyProjection   TeamProjection    `json:"my_team_projections"`
	OppProjection  TeamProjection    `json:"opponent_projections"`
	Trials         int               `json:"trials"`
	Details        []TrialDetail     `json:"simulation_details,omitempty"`
	Advice         []MatchupAdvice   `json:"recommendations"`
}

// PointsLeagueReport is the outcome of a points-league simulation, where
// the matchup is decided by total fantasy points instead of categories.
type PointsLeagueReport struct {
	WinProbability    float64 `json:"win_probability"`
	ProjectedPoints   float64 `json:"projected_points"`
	OppProjectedPoints float64 `json:"opponent_projected_points"`
}
