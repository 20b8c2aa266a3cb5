package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"CourtIQ/internal/domain/models"
	"CourtIQ/internal/domain/repository"
	icache "CourtIQ/internal/service/cache"
	"CourtIQ/internal/services/stats"
	applogger "CourtIQ/pkg/logger"
)

// StatUpdate is one player-season refresh from the stats feed. The stats
// payload is loosely keyed; nil entries mean the provider had no value.
type StatUpdate struct {
	Season      string          `json:"season"`
	PlayerID    string          `json:"player_id"`
	Name        string          `json:"name"`
	Team        string          `json:"team"`
	Position    string          `json:"position"`
	FantasyTeam string          `json:"fantasy_team"`
	GamesPlayed int             `json:"games_played"`
	Minutes     float64         `json:"minutes"`
	Stats       models.RawStats `json:"stats"`
}

// StatUpdatesHandler consumes player stat updates from Kafka, normalizes
// them through the projector, and persists them. Cached pools for the
// touched season are invalidated so the next request sees fresh numbers.
type StatUpdatesHandler struct {
	topic   string
	store   repository.PlayerStore
	pools   *icache.PoolCache
	metrics repository.Metrics
	log     *applogger.Logger
}

func NewStatUpdatesHandler(
	topic string,
	store repository.PlayerStore,
	pools *icache.PoolCache,
	metrics repository.Metrics,
	log *applogger.Logger,
) *StatUpdatesHandler {
	return &StatUpdatesHandler{
		topic:   topic,
		store:   store,
		pools:   pools,
		metrics: metrics,
		log:     log,
	}
}

func (h *StatUpdatesHandler) Topic() string { return h.topic }

// Handle accepts either a single update object or a batch array.
// Malformed payloads are permanent failures: the error bubbles up so the
// consumer retries and eventually routes the message to the DLQ.
func (h *StatUpdatesHandler) Handle(ctx context.Context, data []byte) error {
	updates, err := decodeUpdates(data)
	if err != nil {
		h.metrics.RecordError("stat_update_decode")
		return err
	}

	bySeason := make(map[string][]models.Player)
	for _, u := range updates {
		if u.Season == "" || u.PlayerID == "" {
			h.metrics.RecordError("stat_update_invalid")
			return fmt.Errorf("stat update missing season or player_id")
		}
		bySeason[u.Season] = append(bySeason[u.Season], models.Player{
			ID:          u.PlayerID,
			Name:        u.Name,
			Team:        u.Team,
			Position:    u.Position,
			FantasyTeam: u.FantasyTeam,
			GamesPlayed: u.GamesPlayed,
			Minutes:     u.Minutes,
			Stats:       stats.Project(u.Stats),
		})
	}

	for season, players := range bySeason {
		if err := h.store.Upsert(ctx, season, players); err != nil {
			h.metrics.RecordError("stat_update_store")
			return fmt.Errorf("upsert %d players for season %s: %w", len(players), season, err)
		}
		if err := h.pools.Invalidate(ctx, season); err != nil {
			// Stale cache self-heals at TTL; log and move on.
			h.log.Warn("pool cache invalidation failed",
				applogger.String("season", season),
				applogger.Error(err),
			)
		}
		h.log.Info("stat updates applied",
			applogger.String("season", season),
			applogger.Int("players", len(players)),
		)
	}
	return nil
}

func decodeUpdates(data []byte) ([]StatUpdate, error) {
	trimmed := firstNonSpace(data)
	if trimmed == '[' {
		var batch []StatUpdate
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("decode stat update batch: %w", err)
		}
		return batch, nil
	}

	var single StatUpdate
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("decode stat update: %w", err)
	}
	return []StatUpdate{single}, nil
}

func firstNonSpace(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
