package models

import "encoding/json"

// Category identifies one of the nine head-to-head fantasy categories.
type Category int

const (
	CatPoints Category = iota
	CatRebounds
	CatAssists
	CatSteals
	CatBlocks
	CatThreesMade
	CatFieldGoalPct
	CatFreeThrowPct
	CatTurnovers

	NumCategories
)

// Categories lists all nine categories in canonical display order.
var Categories = [NumCategories]Category{
	CatPoints, CatRebounds, CatAssists, CatSteals, CatBlocks,
	CatThreesMade, CatFieldGoalPct, CatFreeThrowPct, CatTurnovers,
}

var categoryKeys = [NumCategories]string{
	"points", "rebounds", "assists", "steals", "blocks",
	"three_pointers_made", "fg_percentage", "ft_percentage", "turnovers",
}

var categoryDisplay = [NumCategories]string{
	"PTS", "REB", "AST", "STL", "BLK", "3PM", "FG%", "FT%", "TO",
}

// String returns the stat-mapping key for the category.
func (c Category) String() string { return categoryKeys[c] }

// Display returns the short label used in reports ("PTS", "FG%", ...).
func (c Category) Display() string { return categoryDisplay[c] }

// LowerIsBetter reports whether a smaller value wins the category.
// Turnovers are the only inverted category.
func (c Category) LowerIsBetter() bool { return c == CatTurnovers }

// IsPercentage reports whether the category is a [0,1] ratio stat.
func (c Category) IsPercentage() bool {
	return c == CatFieldGoalPct || c == CatFreeThrowPct
}

// StatLine holds one value per category, indexed by Category.
// Team projections and simulation samples both use this shape.
type StatLine [NumCategories]float64

// Ratio is a shooting percentage that may be unknown. A player who took no
// free throws has FreeThrowPct.Valid == false; that is not the same as 0%.
// On the wire an unknown ratio is null, never 0.
type Ratio struct {
	Value float64
	Valid bool
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio{}
		return nil
	}
	if err := json.Unmarshal(data, &r.Value); err != nil {
		return err
	}
	r.Valid = true
	return nil
}

// KnownRatio builds a defined ratio.
func KnownRatio(v float64) Ratio { return Ratio{Value: v, Valid: true} }

// Or returns the ratio value, or fallback when the ratio is unknown.
func (r Ratio) Or(fallback float64) float64 {
	if r.Valid {
		return r.Value
	}
	return fallback
}

// CategoryStats is a per-game seasonal stat projection for one player.
// Counting stats are per-game rates. Attempt counts back the weighted
// aggregation of the two ratio categories; zero attempts means unknown.
type CategoryStats struct {
	Points     float64 `json:"points"`
	Rebounds   float64 `json:"rebounds"`
	Assists    float64 `json:"assists"`
	Steals     float64 `json:"steals"`
	Blocks     float64 `json:"blocks"`
	ThreesMade float64 `json:"three_pointers_made"`
	Turnovers  float64 `json:"turnovers"`

	FieldGoalPct Ratio `json:"fg_percentage"`
	FreeThrowPct Ratio `json:"ft_percentage"`

	FieldGoalAttempts float64 `json:"field_goals_attempted,omitempty"`
	FreeThrowAttempts float64 `json:"free_throws_attempted,omitempty"`
}

// Counting returns the value of a counting (non-percentage) category.
func (s CategoryStats) Counting(c Category) float64 {
	switch c {
	case CatPoints:
		return s.Points
	case CatRebounds:
		return s.Rebounds
	case CatAssists:
		return s.Assists
	case CatSteals:
		return s.Steals
	case CatBlocks:
		return s.Blocks
	case CatThreesMade:
		return s.ThreesMade
	case CatTurnovers:
		return s.Turnovers
	}
	return 0
}

// RawStats is the loosely keyed stat payload supplied by the data layer.
// Keys are the category names plus attempt counts where available; nil
// entries mark stats the source could not provide.
type RawStats map[string]*float64

// Player is one season record for one NBA player. Records are built once
// per season load and treated as immutable by the simulation and search
// subsystems.
type Player struct {
	ID          string        `json:"player_id"`
	Name        string        `json:"name"`
	Team        string        `json:"team"`
	Position    string        `json:"position"`
	FantasyTeam string        `json:"fantasy_team,omitempty"`
	GamesPlayed int           `json:"games_played"`
	Minutes     float64       `json:"minutes"`
	Stats       CategoryStats `json:"stats"`
}

// TeamRoster is another fantasy team's roster, used for trade search.
type TeamRoster struct {
	TeamName string   `json:"team_name"`
	Roster   []Player `json:"roster"`
}
