package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"CourtIQ/internal/domain/models"
	"CourtIQ/internal/domain/repository"
	pkgch "CourtIQ/pkg/clickhouse"
)

// schemaStatements create the analytics database and the season stats
// table. ReplacingMergeTree keyed by (season, player_id) makes stat
// refreshes idempotent: the latest row for a player-season wins.
var schemaStatements = []string{
	`CREATE DATABASE IF NOT EXISTS fantasy`,
	`CREATE TABLE IF NOT EXISTS fantasy.player_season_stats (
		season        String,
		player_id     String,
		name          String,
		team          String,
		position      String,
		fantasy_team  String,
		games_played  UInt16,
		minutes       Float64,
		points        Float64,
		rebounds      Float64,
		assists       Float64,
		steals        Float64,
		blocks        Float64,
		threes_made   Float64,
		turnovers     Float64,
		fg_pct        Nullable(Float64),
		ft_pct        Nullable(Float64),
		fg_attempts   Float64,
		ft_attempts   Float64,
		updated_at    DateTime DEFAULT now()
	) ENGINE = ReplacingMergeTree(updated_at)
	ORDER BY (season, player_id)`,
}

// ClickHousePlayerStore implements repository.PlayerStore over the
// fantasy.player_season_stats table.
type ClickHousePlayerStore struct {
	client *pkgch.Client
}

func NewClickHousePlayerStore(client *pkgch.Client) *ClickHousePlayerStore {
	return &ClickHousePlayerStore{client: client}
}

// Init ensures the database and table exist. Idempotent.
func (s *ClickHousePlayerStore) Init(ctx context.Context) error {
	return s.client.InitSchema(ctx, schemaStatements)
}

// Players loads one season's pool, filtered to players with at least
// minGames appearances. FINAL collapses replaced rows so a refreshed
// player never shows up twice.
func (s *ClickHousePlayerStore) Players(ctx context.Context, season string, minGames int) ([]models.Player, error) {
	const query = `
		SELECT player_id, name, team, position, fantasy_team,
		       games_played, minutes,
		       points, rebounds, assists, steals, blocks, threes_made, turnovers,
		       fg_pct, ft_pct, fg_attempts, ft_attempts
		FROM fantasy.player_season_stats FINAL
		WHERE season = ? AND games_played >= ?
		ORDER BY player_id`

	rows, err := s.client.DB().QueryContext(ctx, query, season, minGames)
	if err != nil {
		return nil, fmt.Errorf("query players season=%s: %w", season, err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var (
			p            models.Player
			games        uint16
			fgPct, ftPct sql.NullFloat64
		)
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Team, &p.Position, &p.FantasyTeam,
			&games, &p.Minutes,
			&p.Stats.Points, &p.Stats.Rebounds, &p.Stats.Assists,
			&p.Stats.Steals, &p.Stats.Blocks, &p.Stats.ThreesMade, &p.Stats.Turnovers,
			&fgPct, &ftPct, &p.Stats.FieldGoalAttempts, &p.Stats.FreeThrowAttempts,
		); err != nil {
			return nil, fmt.Errorf("scan player row: %w", err)
		}
		p.GamesPlayed = int(games)
		if fgPct.Valid {
			p.Stats.FieldGoalPct = models.KnownRatio(fgPct.Float64)
		}
		if ftPct.Valid {
			p.Stats.FreeThrowPct = models.KnownRatio(ftPct.Float64)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate player rows: %w", err)
	}
	return players, nil
}

// Seasons lists the distinct seasons present, most recent first.
func (s *ClickHousePlayerStore) Seasons(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT season
		FROM fantasy.player_season_stats
		ORDER BY season DESC`

	rows, err := s.client.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query seasons: %w", err)
	}
	defer rows.Close()

	var seasons []string
	for rows.Next() {
		var season string
		if err := rows.Scan(&season); err != nil {
			return nil, fmt.Errorf("scan season row: %w", err)
		}
		seasons = append(seasons, season)
	}
	return seasons, rows.Err()
}

// Upsert writes player-season rows. With ReplacingMergeTree a plain batch
// insert is the upsert: newer updated_at versions shadow the old rows.
func (s *ClickHousePlayerStore) Upsert(ctx context.Context, season string, players []models.Player) error {
	if len(players) == 0 {
		return nil
	}

	tx, err := s.client.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert batch: %w", err)
	}

	const insert = `
		INSERT INTO fantasy.player_season_stats (
			season, player_id, name, team, position, fantasy_team,
			games_played, minutes,
			points, rebounds, assists, steals, blocks, threes_made, turnovers,
			fg_pct, ft_pct, fg_attempts, ft_attempts, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, p := range players {
		if _, err := stmt.ExecContext(ctx,
			season, p.ID, p.Name, p.Team, p.Position, p.FantasyTeam,
			uint16(p.GamesPlayed), p.Minutes,
			p.Stats.Points, p.Stats.Rebounds, p.Stats.Assists,
			p.Stats.Steals, p.Stats.Blocks, p.Stats.ThreesMade, p.Stats.Turnovers,
			nullableRatio(p.Stats.FieldGoalPct), nullableRatio(p.Stats.FreeThrowPct),
			p.Stats.FieldGoalAttempts, p.Stats.FreeThrowAttempts, now,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert batch: %w", err)
	}
	return nil
}

func (s *ClickHousePlayerStore) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}

func (s *ClickHousePlayerStore) Close() error {
	return s.client.Close()
}

func nullableRatio(r models.Ratio) interface{} {
	if !r.Valid {
		return nil
	}
	return r.Value
}

var _ repository.PlayerStore = (*ClickHousePlayerStore)(nil)
