package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// ResultEvent is one accepted result submission, kept as an audit trail
// alongside the write-once game row.
type ResultEvent struct {
	ID         string
	GameID     string
	HomeScore  int
	AwayScore  int
	Source     string
	RecordedAt time.Time
}

type ResultEventRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewResultEventRepository(db *sql.DB, logger zerolog.Logger) *ResultEventRepository {
	return &ResultEventRepository{db: db, logger: logger}
}

func (r *ResultEventRepository) Append(ctx context.Context, event ResultEvent) error {
	if event.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		event.ID = id
	}
	if event.RecordedAt.IsZero() {
		event.RecordedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO result_events (id, game_id, home_score, away_score, source, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID, event.GameID, event.HomeScore, event.AwayScore, event.Source, event.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to append result event: %w", err)
	}

	r.logger.Debug().
		Str("event_id", event.ID).
		Str("game_id", event.GameID).
		Str("source", event.Source).
		Msg("result event appended")
	return nil
}

// ListByGame returns a game's audit trail oldest first.
func (r *ResultEventRepository) ListByGame(ctx context.Context, gameID string) ([]ResultEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, game_id, home_score, away_score, source, recorded_at
		FROM result_events
		WHERE game_id = ?
		ORDER BY recorded_at`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []ResultEvent
	for rows.Next() {
		var e ResultEvent
		if err := rows.Scan(&e.ID, &e.GameID, &e.HomeScore, &e.AwayScore, &e.Source, &e.RecordedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
