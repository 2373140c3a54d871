package repository

import (
	"context"
	"database/sql"

	"gridiron-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type TeamRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewTeamRepository(db *sql.DB, logger zerolog.Logger) *TeamRepository {
	return &TeamRepository{db: db, logger: logger}
}

// List returns the full team directory ordered by id.
func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, city, conference, division, created_at, updated_at
		FROM teams
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var t domain.Team
		var conference, division string
		if err := rows.Scan(&t.ID, &t.Name, &t.City, &conference, &division, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Conference = domain.Conference(conference)
		t.Division = domain.Division(division)
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// Get looks up one team by id.
func (r *TeamRepository) Get(ctx context.Context, id string) (*domain.Team, error) {
	var t domain.Team
	var conference, division string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, city, conference, division, created_at, updated_at
		FROM teams
		WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.City, &conference, &division, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Conference = domain.Conference(conference)
	t.Division = domain.Division(division)
	return &t, nil
}
