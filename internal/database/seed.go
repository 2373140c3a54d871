package database

import (
	"context"
	"database/sql"

	"gridiron-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type seedTeam struct {
	id         string
	name       string
	city       string
	conference domain.Conference
	division   domain.Division
}

// leagueTeams is the full 32-team directory: two conferences of four
// four-team divisions.
var leagueTeams = []seedTeam{
	// AFC East
	{"BUF", "Bills", "Buffalo", domain.ConferenceAFC, domain.DivisionEast},
	{"MIA", "Dolphins", "Miami", domain.ConferenceAFC, domain.DivisionEast},
	{"NE", "Patriots", "New England", domain.ConferenceAFC, domain.DivisionEast},
	{"NYJ", "Jets", "New York", domain.ConferenceAFC, domain.DivisionEast},
	// AFC North
	{"BAL", "Ravens", "Baltimore", domain.ConferenceAFC, domain.DivisionNorth},
	{"CIN", "Bengals", "Cincinnati", domain.ConferenceAFC, domain.DivisionNorth},
	{"CLE", "Browns", "Cleveland", domain.ConferenceAFC, domain.DivisionNorth},
	{"PIT", "Steelers", "Pittsburgh", domain.ConferenceAFC, domain.DivisionNorth},
	// AFC South
	{"HOU", "Texans", "Houston", domain.ConferenceAFC, domain.DivisionSouth},
	{"IND", "Colts", "Indianapolis", domain.ConferenceAFC, domain.DivisionSouth},
	{"JAX", "Jaguars", "Jacksonville", domain.ConferenceAFC, domain.DivisionSouth},
	{"TEN", "Titans", "Nashville", domain.ConferenceAFC, domain.DivisionSouth},
	// AFC West
	{"DEN", "Broncos", "Denver", domain.ConferenceAFC, domain.DivisionWest},
	{"KC", "Chiefs", "Kansas City", domain.ConferenceAFC, domain.DivisionWest},
	{"LAC", "Chargers", "Los Angeles", domain.ConferenceAFC, domain.DivisionWest},
	{"LV", "Raiders", "Las Vegas", domain.ConferenceAFC, domain.DivisionWest},
	// NFC East
	{"DAL", "Cowboys", "Dallas", domain.ConferenceNFC, domain.DivisionEast},
	{"NYG", "Giants", "New York", domain.ConferenceNFC, domain.DivisionEast},
	{"PHI", "Eagles", "Philadelphia", domain.ConferenceNFC, domain.DivisionEast},
	{"WAS", "Commanders", "Washington", domain.ConferenceNFC, domain.DivisionEast},
	// NFC North
	{"CHI", "Bears", "Chicago", domain.ConferenceNFC, domain.DivisionNorth},
	{"DET", "Lions", "Detroit", domain.ConferenceNFC, domain.DivisionNorth},
	{"GB", "Packers", "Green Bay", domain.ConferenceNFC, domain.DivisionNorth},
	{"MIN", "Vikings", "Minneapolis", domain.ConferenceNFC, domain.DivisionNorth},
	// NFC South
	{"ATL", "Falcons", "Atlanta", domain.ConferenceNFC, domain.DivisionSouth},
	{"CAR", "Panthers", "Charlotte", domain.ConferenceNFC, domain.DivisionSouth},
	{"NO", "Saints", "New Orleans", domain.ConferenceNFC, domain.DivisionSouth},
	{"TB", "Buccaneers", "Tampa Bay", domain.ConferenceNFC, domain.DivisionSouth},
	// NFC West
	{"ARI", "Cardinals", "Arizona", domain.ConferenceNFC, domain.DivisionWest},
	{"LAR", "Rams", "Los Angeles", domain.ConferenceNFC, domain.DivisionWest},
	{"SEA", "Seahawks", "Seattle", domain.ConferenceNFC, domain.DivisionWest},
	{"SF", "49ers", "San Francisco", domain.ConferenceNFC, domain.DivisionWest},
}

// SeedTeams inserts the 32-team directory when the table is empty. Safe to
// call repeatedly.
func SeedTeams(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logger.Debug().Int("teams", count).Msg("team directory already seeded")
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO teams (id, name, city, conference, division)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range leagueTeams {
		if _, err := stmt.ExecContext(ctx, t.id, t.name, t.city, string(t.conference), string(t.division)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.Info().Int("teams", len(leagueTeams)).Msg("team directory seeded")
	return nil
}
