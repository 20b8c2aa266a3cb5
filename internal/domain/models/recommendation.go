package models

import (
	"sort"
	"strings"
)

// MovePlayer is a player referenced by a roster move, annotated with the
// value the search assigned to it.
type MovePlayer struct {
	ID          string        `json:"player_id,omitempty"`
	Name        string        `json:"name"`
	Team        string        `json:"team"`
	Position    string        `json:"position"`
	FantasyTeam string        `json:"fantasy_team"`
	Stats       CategoryStats `json:"stats"`
	Value       float64       `json:"value"`
}

// CategoryDelta is the signed change one move produces in one category.
// Delta is oriented so positive always means improvement: add-minus-drop
// for eight categories, drop-minus-add for turnovers.
type CategoryDelta struct {
	Category string  `json:"category"`
	Display  string  `json:"display"`
	Delta    float64 `json:"delta"`
	Changed  bool    `json:"changed"`
	Label    string  `json:"label"` // "PTS +15.0", "FG% +2.1%", "AST —"
}

// RosterMove is one proposed transaction: drop a set of rostered players,
// add a set from the free-agent pool or a trade partner's roster.
type RosterMove struct {
	Type         string          `json:"type"`      // single_swap, multi_swap, budget_upgrade, trade
	SwapType     string          `json:"swap_type"` // "1-for-1", "2-for-2", "trade-3-for-3", "value-play"
	TradePartner string          `json:"trade_partner,omitempty"`
	Drop         []MovePlayer    `json:"drop_players"`
	Add          []MovePlayer    `json:"add_players"`
	ImpactScore  float64         `json:"impact_score"`
	Deltas       []CategoryDelta `json:"all_categories"`
	Improvements []string        `json:"category_improvements"`
	Declines     []string        `json:"category_declines"`
	Reasoning    string          `json:"reasoning"`
	Priority     string          `json:"priority"`
}

// Key is the move's deduplication identity: the same (drop-set, add-set)
// pair must never be reported twice, whatever strategy produced it.
func (m RosterMove) Key() string {
	return joinSortedNames(m.Drop) + "=>" + joinSortedNames(m.Add)
}

func joinSortedNames(players []MovePlayer) string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
