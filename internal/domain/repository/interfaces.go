package repository

import (
	"context"

	"CourtIQ/internal/domain/models"
)

// PlayerStore provides access to the season player statistics table.
// Implementations own persistence; the simulation and search subsystems
// never touch the store directly and receive resolved player slices.
type PlayerStore interface {
	Init(ctx context.Context) error // ensure tables exist
	Players(ctx context.Context, season string, minGames int) ([]models.Player, error)
	Seasons(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, season string, players []models.Player) error
	Health(ctx context.Context) error
	Close() error
}

// Metrics records operational measurements for the analysis pipeline.
type Metrics interface {
	RecordSimulation(trials int, seconds float64)
	RecordRecommendations(strategy string, count int)
	RecordPoolSize(season string, size int)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
