// Package recommend implements the roster-move search: single swaps,
// bounded multi-player swaps, value plays against the free-agent pool,
// and trade opportunities against other teams' rosters. The searches are
// deliberately sampled rather than exhaustive; every enumeration is capped
// by explicit configuration so runtime stays bounded on large pools.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/creasty/defaults"

	"CourtIQ/internal/domain/models"
	domsvc "CourtIQ/internal/domain/service"
	"CourtIQ/internal/services/value"
)

// Config bounds the combinatorial search. Zero fields take the defaults.
type Config struct {
	MaxResults int `yaml:"max_results" default:"100"`

	// 1-for-1 swaps against the free-agent pool.
	MaxFreeAgents  int     `yaml:"max_free_agents" default:"80"`
	MinImprovement float64 `yaml:"min_improvement" default:"0.5"`
	MaxSingleSwaps int     `yaml:"max_single_swaps" default:"60"`

	// Multi-player swaps (2-for-2, 3-for-3).
	MultiPoolSize   int     `yaml:"multi_pool_size" default:"50"`
	MaxPairCombos   int     `yaml:"max_pair_combos" default:"50"`
	MaxTripleCombos int     `yaml:"max_triple_combos" default:"30"`
	PairThreshold   float64 `yaml:"pair_threshold" default:"0.5"`
	TripleThreshold float64 `yaml:"triple_threshold" default:"1.0"`
	MaxMultiSwaps   int     `yaml:"max_multi_swaps" default:"30"`

	// Value plays: free agents clearly outperforming a rostered player.
	ValuePlayRatio float64 `yaml:"value_play_ratio" default:"1.05"`
	MaxValuePlays  int     `yaml:"max_value_plays" default:"20"`

	// Trades with other teams. The ratio bands keep suggestions realistic:
	// nobody trades a bench player for a superstar.
	TradeMinRatio       float64 `yaml:"trade_min_ratio" default:"1.10"`
	TradeMaxRatio       float64 `yaml:"trade_max_ratio" default:"1.25"`
	TradesPerPlayer     int     `yaml:"trades_per_player" default:"3"`
	MaxSingleTrades     int     `yaml:"max_single_trades" default:"20"`
	PairTradeMinRatio   float64 `yaml:"pair_trade_min_ratio" default:"1.10"`
	PairTradeMaxRatio   float64 `yaml:"pair_trade_max_ratio" default:"1.30"`
	PairTradesPerTeam   int     `yaml:"pair_trades_per_team" default:"3"`
	TripleTradeMinRatio float64 `yaml:"triple_trade_min_ratio" default:"1.15"`
	TripleTradeMaxRatio float64 `yaml:"triple_trade_max_ratio" default:"1.35"`
	TripleTradesPerTeam int     `yaml:"triple_trades_per_team" default:"2"`
	TradeComboSlice     int     `yaml:"trade_combo_slice" default:"15"`
	MaxMultiTrades      int     `yaml:"max_multi_trades" default:"20"`
	MaxTrades           int     `yaml:"max_trades" default:"40"`
}

// DefaultConfig returns the production search bounds.
func DefaultConfig() Config {
	var c Config
	_ = defaults.Set(&c)
	return c
}

// Engine is the recommendation search. It is stateless and safe for
// concurrent use; callers must not mutate player slices mid-call.
type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	_ = defaults.Set(&cfg) // fill unset bounds
	return &Engine{cfg: cfg}
}

// Recommendations runs all search strategies, deduplicates by the
// (drop-set, add-set) identity key, and returns moves ranked by impact.
// Empty pools yield an empty list, never an error.
func (e *Engine) Recommendations(roster, freeAgents, allPlayers []models.Player, maxResults int, otherTeams []models.TeamRoster) []models.RosterMove {
	if maxResults <= 0 {
		maxResults = e.cfg.MaxResults
	}

	moves := make([]models.RosterMove, 0, 64)
	seen := make(map[string]struct{})
	merge := func(batch []models.RosterMove) {
		for _, m := range batch {
			key := m.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			moves = append(moves, m)
		}
	}

	merge(e.singleSwaps(roster, freeAgents))
	merge(e.multiSwaps(roster, freeAgents))
	merge(e.valuePlays(roster, freeAgents))
	if len(otherTeams) > 0 {
		merge(e.tradeOpportunities(roster, otherTeams))
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].ImpactScore > moves[j].ImpactScore
	})
	if len(moves) > maxResults {
		moves = moves[:maxResults]
	}
	return moves
}

// singleSwaps proposes dropping one rostered player for one better free
// agent. The free-agent pool is cut to a top-value slice and the search
// stops at a global cap so runtime stays bounded.
func (e *Engine) singleSwaps(roster, freeAgents []models.Player) []models.RosterMove {
	sortedRoster := scoreSorted(roster, false)
	pool := scoreSorted(freeAgents, true)
	if len(pool) > e.cfg.MaxFreeAgents {
		pool = pool[:e.cfg.MaxFreeAgents]
	}

	var moves []models.RosterMove
	for _, rp := range sortedRoster {
		for _, fa := range pool {
			improvement := fa.value - rp.value
			if improvement <= e.cfg.MinImprovement {
				continue
			}
			if !compatible(rp.player.Position, fa.player.Position) {
				continue
			}

			drop := []models.Player{rp.player}
			add := []models.Player{fa.player}
			deltas, ups, downs := compareBlocks(drop, add)
			moves = append(moves, models.RosterMove{
				Type:         "single_swap",
				SwapType:     "1-for-1",
				Drop:         []models.MovePlayer{moveFrom(rp.player, "My Team", rp.value)},
				Add:          []models.MovePlayer{moveFrom(fa.player, "Free Agent", fa.value)},
				ImpactScore:  round1(improvement),
				Deltas:       deltas,
				Improvements: ups,
				Declines:     downs,
				Reasoning:    swapReasoning(drop, add, improvement, ups, downs),
				Priority:     priorityAbove(improvement, 10.0),
			})
			if len(moves) >= e.cfg.MaxSingleSwaps {
				return moves
			}
		}
	}
	return moves
}

// multiSwaps proposes same-size blocks (2-for-2, 3-for-3) between the
// roster and a capped free-agent slice. A combination qualifies only when
// the total value gain clears the size threshold and the position mix
// stays balanced.
func (e *Engine) multiSwaps(roster, freeAgents []models.Player) []models.RosterMove {
	pool := scoreSorted(freeAgents, true)
	if len(pool) > e.cfg.MultiPoolSize {
		pool = pool[:e.cfg.MultiPoolSize]
	}
	rostered := scorePlayers(roster)

	sizes := []struct {
		size      int
		maxCombos int
		threshold float64
	}{
		{2, e.cfg.MaxPairCombos, e.cfg.PairThreshold},
		{3, e.cfg.MaxTripleCombos, e.cfg.TripleThreshold},
	}

	var moves []models.RosterMove
	for _, sz := range sizes {
		dropCombos := combinations(len(rostered), sz.size, sz.maxCombos)
		addCombos := combinations(len(pool), sz.size, sz.maxCombos)

		for _, dc := range dropCombos {
			dropPlayers, dropValue, dropPositions := pick(rostered, dc)
			for _, ac := range addCombos {
				addPlayers, addValue, addPositions := pick(pool, ac)

				gain := addValue - dropValue
				if gain <= sz.threshold {
					continue
				}
				if !balanced(dropPositions, addPositions) {
					continue
				}

				deltas, ups, downs := compareBlocks(dropPlayers, addPlayers)
				swapType := fmt.Sprintf("%d-for-%d", sz.size, sz.size)
				moves = append(moves, models.RosterMove{
					Type:         "multi_swap",
					SwapType:     swapType,
					Drop:         movesFrom(dropPlayers, "My Team"),
					Add:          movesFrom(addPlayers, "Free Agent"),
					ImpactScore:  round1(gain),
					Deltas:       deltas,
					Improvements: ups,
					Declines:     downs,
					Reasoning:    swapReasoning(dropPlayers, addPlayers, gain, ups, downs),
					Priority:     priorityAbove(gain, sz.threshold*2),
				})
				if len(moves) >= e.cfg.MaxMultiSwaps {
					return moves
				}
			}
		}
	}
	return moves
}

// valuePlays surfaces free agents clearly outperforming a rostered player
// at the same position.
func (e *Engine) valuePlays(roster, freeAgents []models.Player) []models.RosterMove {
	var moves []models.RosterMove
	for _, rp := range scorePlayers(roster) {
		for _, fa := range scorePlayers(freeAgents) {
			if fa.value <= rp.value*e.cfg.ValuePlayRatio {
				continue
			}
			if !compatible(rp.player.Position, fa.player.Position) {
				continue
			}

			improvement := fa.value - rp.value
			deltas, ups, downs := compareBlocks([]models.Player{rp.player}, []models.Player{fa.player})

			gainStr := "overall value"
			if len(ups) > 0 {
				gainStr = strings.Join(head(ups, 3), ", ")
			}
			reason := fmt.Sprintf("Value pick: %s (%s)", fa.player.Name, gainStr)
			if rp.value > 0 {
				pct := int((fa.value/rp.value - 1) * 100)
				reason = fmt.Sprintf("Value pick: %s is %d%% better (%s)", fa.player.Name, pct, gainStr)
			}

			moves = append(moves, models.RosterMove{
				Type:         "budget_upgrade",
				SwapType:     "value-play",
				Drop:         []models.MovePlayer{moveFrom(rp.player, "My Team", rp.value)},
				Add:          []models.MovePlayer{moveFrom(fa.player, "Free Agent", fa.value)},
				ImpactScore:  round1(improvement),
				Deltas:       deltas,
				Improvements: ups,
				Declines:     downs,
				Reasoning:    reason,
				Priority:     "high",
			})
		}
	}
	if len(moves) > e.cfg.MaxValuePlays {
		moves = moves[:e.cfg.MaxValuePlays]
	}
	return moves
}

// scored pairs a player with its swap value so sorts and combination
// sums don't rescore repeatedly.
type scored struct {
	player models.Player
	value  float64
}

func scorePlayers(players []models.Player) []scored {
	out := make([]scored, len(players))
	for i, p := range players {
		out[i] = scored{player: p, value: value.Swap(p)}
	}
	return out
}

func scoreSorted(players []models.Player, desc bool) []scored {
	out := scorePlayers(players)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].value != out[j].value {
			if desc {
				return out[i].value > out[j].value
			}
			return out[i].value < out[j].value
		}
		return out[i].player.Name < out[j].player.Name
	})
	return out
}

func pick(pool []scored, idx []int) (players []models.Player, total float64, positions []string) {
	players = make([]models.Player, len(idx))
	positions = make([]string, len(idx))
	for i, j := range idx {
		players[i] = pool[j].player
		positions[i] = pool[j].player.Position
		total += pool[j].value
	}
	return
}

// combinations yields up to limit k-combinations of [0,n) in lexicographic
// order. The cap makes multi-player searches sampled, not exhaustive.
func combinations(n, k, limit int) [][]int {
	if k <= 0 || k > n || limit <= 0 {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	for {
		out = append(out, append([]int(nil), idx...))
		if len(out) >= limit {
			return out
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func moveFrom(p models.Player, fallbackTeam string, val float64) models.MovePlayer {
	fantasyTeam := p.FantasyTeam
	if fantasyTeam == "" {
		fantasyTeam = fallbackTeam
	}
	return models.MovePlayer{
		ID:          p.ID,
		Name:        p.Name,
		Team:        p.Team,
		Position:    p.Position,
		FantasyTeam: fantasyTeam,
		Stats:       p.Stats,
		Value:       round1(val),
	}
}

func movesFrom(players []models.Player, fallbackTeam string) []models.MovePlayer {
	out := make([]models.MovePlayer, len(players))
	for i, p := range players {
		out[i] = moveFrom(p, fallbackTeam, value.Swap(p))
	}
	return out
}

func swapReasoning(drop, add []models.Player, improvement float64, ups, downs []string) string {
	var action string
	if len(drop) == 1 && len(add) == 1 {
		action = fmt.Sprintf("Upgrade %s -> %s", drop[0].Name, add[0].Name)
	} else {
		action = fmt.Sprintf("Swap %s for %s", joinNames(drop), joinNames(add))
	}

	if len(ups) == 0 {
		return fmt.Sprintf("%s: +%.1f overall value", action, improvement)
	}
	reason := action + ": " + strings.Join(head(ups, 3), ", ")
	if len(downs) > 0 {
		reason += " | Loses: " + strings.Join(head(downs, 2), ", ")
	}
	return reason
}

func joinNames(players []models.Player) string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

func head(xs []string, n int) []string {
	if len(xs) > n {
		return xs[:n]
	}
	return xs
}

func priorityAbove(v, threshold float64) string {
	if v > threshold {
		return "high"
	}
	return "medium"
}

var _ domsvc.Recommender = (*Engine)(nil)
