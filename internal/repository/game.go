package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gridiron-tracker/internal/constants"
	"gridiron-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type GameRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewGameRepository(db *sql.DB, logger zerolog.Logger) *GameRepository {
	return &GameRepository{db: db, logger: logger}
}

const gameColumns = `game_id, year, week, home_team_id, away_team_id,
	is_divisional, is_conference, is_rivalry, time_slot,
	is_complete, home_score, away_score, winner_id, created_at, updated_at`

// ReplaceSeason stores a freshly generated schedule, replacing any previous
// schedule for the same year in one transaction.
func (r *GameRepository) ReplaceSeason(ctx context.Context, sched *domain.SeasonSchedule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM games WHERE year = ?`, sched.Year); err != nil {
		return fmt.Errorf("failed to clear games for %d: %w", sched.Year, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM byes WHERE year = ?`, sched.Year); err != nil {
		return fmt.Errorf("failed to clear byes for %d: %w", sched.Year, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO games (`+gameColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare game insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for i := 0; i < len(sched.Games); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(sched.Games) {
			end = len(sched.Games)
		}
		for _, g := range sched.Games[i:end] {
			if _, err := stmt.ExecContext(ctx,
				g.GameID, g.Year, g.Week, g.HomeTeamID, g.AwayTeamID,
				g.IsDivisional, g.IsConference, g.IsRivalry, string(g.TimeSlot),
				g.IsComplete, g.HomeScore, g.AwayScore, g.WinnerID, now, now,
			); err != nil {
				return fmt.Errorf("failed to insert game %s: %w", g.GameID, err)
			}
		}
	}

	byeStmt, err := tx.PrepareContext(ctx, `INSERT INTO byes (year, team_id, week) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare bye insert: %w", err)
	}
	defer byeStmt.Close()

	for team, week := range sched.ByeWeeks {
		if _, err := byeStmt.ExecContext(ctx, sched.Year, team, week); err != nil {
			return fmt.Errorf("failed to insert bye for %s: %w", team, err)
		}
	}

	return tx.Commit()
}

// GetSeason loads the stored schedule for a year, games ordered by week then id.
func (r *GameRepository) GetSeason(ctx context.Context, year int) (*domain.SeasonSchedule, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+gameColumns+`
		FROM games
		WHERE year = ?
		ORDER BY week, game_id`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []domain.ScheduledGame
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrSeasonNotFound, year)
	}

	byes, err := r.byeWeeks(ctx, year)
	if err != nil {
		return nil, err
	}

	return &domain.SeasonSchedule{Year: year, Games: games, ByeWeeks: byes}, nil
}

func (r *GameRepository) byeWeeks(ctx context.Context, year int) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT team_id, week FROM byes WHERE year = ?`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byes := make(map[string]int)
	for rows.Next() {
		var team string
		var week int
		if err := rows.Scan(&team, &week); err != nil {
			return nil, err
		}
		byes[team] = week
	}
	return byes, rows.Err()
}

// Get looks up one game by id.
func (r *GameRepository) Get(ctx context.Context, gameID string) (*domain.ScheduledGame, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+gameColumns+`
		FROM games
		WHERE game_id = ?`, gameID)
	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// RecordResult applies a final score exactly once. Results are write-once: a
// second attempt fails with ErrResultAlreadyRecorded rather than overwriting.
func (r *GameRepository) RecordResult(ctx context.Context, gameID string, homeScore, awayScore int, winnerID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE games
		SET is_complete = TRUE, home_score = ?, away_score = ?, winner_id = ?, updated_at = ?
		WHERE game_id = ? AND is_complete = FALSE`,
		homeScore, awayScore, winnerID, time.Now(), gameID)
	if err != nil {
		return fmt.Errorf("failed to record result for %s: %w", gameID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := r.Get(ctx, gameID); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", ErrResultAlreadyRecorded, gameID)
	}

	r.logger.Info().
		Str("game_id", gameID).
		Int("home_score", homeScore).
		Int("away_score", awayScore).
		Str("winner_id", winnerID).
		Msg("result recorded")
	return nil
}

// ListByWeek returns a week's games ordered by id.
func (r *GameRepository) ListByWeek(ctx context.Context, year, week int) ([]domain.ScheduledGame, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+gameColumns+`
		FROM games
		WHERE year = ? AND week = ?
		ORDER BY game_id`, year, week)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGames(rows)
}

// ListByTeam returns a team's season ordered by week.
func (r *GameRepository) ListByTeam(ctx context.Context, year int, teamID string) ([]domain.ScheduledGame, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+gameColumns+`
		FROM games
		WHERE year = ? AND (home_team_id = ? OR away_team_id = ?)
		ORDER BY week, game_id`, year, teamID, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGames(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*domain.ScheduledGame, error) {
	var g domain.ScheduledGame
	var slot string
	err := row.Scan(
		&g.GameID, &g.Year, &g.Week, &g.HomeTeamID, &g.AwayTeamID,
		&g.IsDivisional, &g.IsConference, &g.IsRivalry, &slot,
		&g.IsComplete, &g.HomeScore, &g.AwayScore, &g.WinnerID, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.TimeSlot = domain.TimeSlot(slot)
	return &g, nil
}

func collectGames(rows *sql.Rows) ([]domain.ScheduledGame, error) {
	var games []domain.ScheduledGame
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *g)
	}
	return games, rows.Err()
}
