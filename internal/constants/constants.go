package constants

import "time"

// League structure.
const (
	ConferenceCount        = 2
	DivisionsPerConference = 4
	TeamsPerDivision       = 4
	LeagueTeamCount        = ConferenceCount * DivisionsPerConference * TeamsPerDivision

	RegularSeasonWeeks = 18
	GamesPerTeam       = 17

	// Byes land inside this inclusive window.
	ByeWindowStart = 5
	ByeWindowEnd   = 14

	// Divisional games left over after the final week backfill into this many
	// weeks immediately preceding it.
	DivisionalBackfillWeeks = 4

	// Intra-conference opponents rotate on a 3-year cycle, inter-conference on
	// a 4-year cycle.
	IntraRotationCycle = 3
	InterRotationCycle = 4

	EarliestSeasonYear = 1920
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)
