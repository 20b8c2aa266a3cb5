package recommend

import (
	"fmt"
	"sort"
	"strings"

	"CourtIQ/internal/domain/models"
)

// tradeOpportunities proposes trades against other teams' rosters: 1-for-1
// deals first, then same-size 2-for-2 and 3-for-3 packages. A trade
// qualifies only when the incoming value sits inside a realistic band above
// the outgoing value; lopsided offers the other manager would never accept
// are filtered out at the source.
func (e *Engine) tradeOpportunities(roster []models.Player, otherTeams []models.TeamRoster) []models.RosterMove {
	trades := e.singleTrades(roster, otherTeams)
	trades = append(trades, e.multiTrades(roster, otherTeams)...)
	if len(trades) > e.cfg.MaxTrades {
		trades = trades[:e.cfg.MaxTrades]
	}
	return trades
}

func (e *Engine) singleTrades(roster []models.Player, otherTeams []models.TeamRoster) []models.RosterMove {
	rostered := scorePlayers(roster)

	var trades []models.RosterMove
	perPlayer := make(map[string]int)
	for _, team := range otherTeams {
		for _, mine := range rostered {
			if perPlayer[mine.player.Name] >= e.cfg.TradesPerPlayer {
				continue
			}
			if mine.value <= 0 {
				continue
			}
			for _, theirs := range scorePlayers(team.Roster) {
				ratio := theirs.value / mine.value
				if ratio < e.cfg.TradeMinRatio || ratio > e.cfg.TradeMaxRatio {
					continue
				}
				if !compatible(mine.player.Position, theirs.player.Position) {
					continue
				}

				improvement := theirs.value - mine.value
				drop := []models.Player{mine.player}
				add := []models.Player{theirs.player}
				deltas, ups, downs := compareBlocks(drop, add)
				trades = append(trades, models.RosterMove{
					Type:         "trade",
					SwapType:     "trade-1-for-1",
					TradePartner: team.TeamName,
					Drop:         []models.MovePlayer{moveFrom(mine.player, "My Team", mine.value)},
					Add:          []models.MovePlayer{moveFrom(theirs.player, team.TeamName, theirs.value)},
					ImpactScore:  round1(improvement),
					Deltas:       deltas,
					Improvements: ups,
					Declines:     downs,
					Reasoning:    tradeReasoning(team.TeamName, drop, add, ups),
					Priority:     priorityAbove(improvement, 5.0),
				})

				perPlayer[mine.player.Name]++
				if perPlayer[mine.player.Name] >= e.cfg.TradesPerPlayer {
					break
				}
			}
			if len(trades) >= e.cfg.MaxSingleTrades {
				return trades
			}
		}
	}
	return trades
}

// multiTrades searches same-size packages against each partner team. The
// combination space is sliced hard: only the first TradeComboSlice
// lexicographic combinations per side are considered, and each partner team
// contributes a handful of deals at most.
func (e *Engine) multiTrades(roster []models.Player, otherTeams []models.TeamRoster) []models.RosterMove {
	rostered := scorePlayers(roster)

	sizes := []struct {
		size     int
		minRatio float64
		maxRatio float64
		perTeam  int
	}{
		{2, e.cfg.PairTradeMinRatio, e.cfg.PairTradeMaxRatio, e.cfg.PairTradesPerTeam},
		{3, e.cfg.TripleTradeMinRatio, e.cfg.TripleTradeMaxRatio, e.cfg.TripleTradesPerTeam},
	}

	var trades []models.RosterMove
	for _, team := range otherTeams {
		theirRoster := scorePlayers(team.Roster)
		for _, sz := range sizes {
			myCombos := combinations(len(rostered), sz.size, e.cfg.TradeComboSlice)
			theirCombos := combinations(len(theirRoster), sz.size, e.cfg.TradeComboSlice)

			count := 0
		comboSearch:
			for _, mc := range myCombos {
				myPlayers, myValue, myPositions := pick(rostered, mc)
				if myValue <= 0 {
					continue
				}
				for _, tc := range theirCombos {
					theirPlayers, theirValue, theirPositions := pick(theirRoster, tc)

					ratio := theirValue / myValue
					if ratio < sz.minRatio || ratio > sz.maxRatio {
						continue
					}
					if !balanced(myPositions, theirPositions) {
						continue
					}

					gain := theirValue - myValue
					deltas, ups, downs := compareBlocks(myPlayers, theirPlayers)
					trades = append(trades, models.RosterMove{
						Type:         "trade",
						SwapType:     fmt.Sprintf("trade-%d-for-%d", sz.size, sz.size),
						TradePartner: team.TeamName,
						Drop:         movesFrom(myPlayers, "My Team"),
						Add:          movesFrom(theirPlayers, team.TeamName),
						ImpactScore:  round1(gain),
						Deltas:       deltas,
						Improvements: ups,
						Declines:     downs,
						Reasoning:    tradeReasoning(team.TeamName, myPlayers, theirPlayers, ups),
						Priority:     priorityAbove(gain, 5.0),
					})

					count++
					if count >= sz.perTeam {
						break comboSearch
					}
				}
			}
		}
	}

	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].ImpactScore > trades[j].ImpactScore
	})
	if len(trades) > e.cfg.MaxMultiTrades {
		trades = trades[:e.cfg.MaxMultiTrades]
	}
	return trades
}

func tradeReasoning(partner string, drop, add []models.Player, ups []string) string {
	offer := fmt.Sprintf("Trade with %s: %s for %s", partner, joinNames(drop), joinNames(add))
	if len(ups) == 0 {
		return offer
	}
	return offer + " (" + strings.Join(head(ups, 3), ", ") + ")"
}
