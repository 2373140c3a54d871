package domain

import (
	"time"
)

type Conference string

const (
	ConferenceAFC Conference = "AFC"
	ConferenceNFC Conference = "NFC"
)

type Division string

const (
	DivisionEast  Division = "East"
	DivisionNorth Division = "North"
	DivisionSouth Division = "South"
	DivisionWest  Division = "West"
)

// Conferences and Divisions give the fixed league structure in a stable order.
var (
	Conferences = []Conference{ConferenceAFC, ConferenceNFC}
	Divisions   = []Division{DivisionEast, DivisionNorth, DivisionSouth, DivisionWest}
)

func (c Conference) Opposite() Conference {
	if c == ConferenceAFC {
		return ConferenceNFC
	}
	return ConferenceAFC
}

type Team struct {
	ID         string // abbreviation, e.g. "PHI"
	Name       string
	City       string
	Conference Conference
	Division   Division
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type TimeSlot string

const (
	TimeSlotSunday   TimeSlot = "SUN"
	TimeSlotThursday TimeSlot = "THU"
	TimeSlotMonday   TimeSlot = "MON"
)

// ScheduledGame is created by the assembler with Week unset (0), placed into a
// week by the assigner, and completed exactly once by a recorded result.
type ScheduledGame struct {
	GameID       string
	Year         int
	Week         int // 1..RegularSeasonWeeks, 0 while unassigned
	HomeTeamID   string
	AwayTeamID   string
	IsDivisional bool
	IsConference bool
	IsRivalry    bool
	TimeSlot     TimeSlot
	IsComplete   bool
	HomeScore    int
	AwayScore    int
	WinnerID     string // empty until complete, and on ties
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (g *ScheduledGame) Involves(teamID string) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

func (g *ScheduledGame) Opponent(teamID string) string {
	if g.HomeTeamID == teamID {
		return g.AwayTeamID
	}
	if g.AwayTeamID == teamID {
		return g.HomeTeamID
	}
	return ""
}

// SeasonSchedule is the schedule skeleton plus per-game completion state.
// ByeWeeks maps team id to its single bye week.
type SeasonSchedule struct {
	Year     int
	Games    []ScheduledGame
	ByeWeeks map[string]int
}

// PreviousYearStandings lists team ids best-to-worst per division, used only as
// a finish-position lookup for same-place matchups.
type PreviousYearStandings map[Conference]map[Division][]string

type HeadToHeadRecord struct {
	Wins   int
	Losses int
	Ties   int
}

type TeamStanding struct {
	TeamID             string
	Wins               int
	Losses             int
	Ties               int
	DivisionWins       int
	DivisionLosses     int
	DivisionTies       int
	ConferenceWins     int
	ConferenceLosses   int
	ConferenceTies     int
	PointsFor          int
	PointsAgainst      int
	HeadToHead         map[string]HeadToHeadRecord
	StrengthOfVictory  float64
	StrengthOfSchedule float64
	NetTouchdowns      int
	Streak             int // positive = winning, negative = losing, 0 after a tie
	DivisionRank       int
	ConferenceRank     int
	GamesBehind        float64
}

func (s *TeamStanding) GamesPlayed() int {
	return s.Wins + s.Losses + s.Ties
}

func (s *TeamStanding) WinPct() float64 {
	return winPct(s.Wins, s.Losses, s.Ties)
}

func (s *TeamStanding) DivisionWinPct() float64 {
	return winPct(s.DivisionWins, s.DivisionLosses, s.DivisionTies)
}

func (s *TeamStanding) ConferenceWinPct() float64 {
	return winPct(s.ConferenceWins, s.ConferenceLosses, s.ConferenceTies)
}

func (s *TeamStanding) PointDifferential() int {
	return s.PointsFor - s.PointsAgainst
}

func winPct(wins, losses, ties int) float64 {
	games := wins + losses + ties
	if games == 0 {
		return 0
	}
	return (float64(wins) + 0.5*float64(ties)) / float64(games)
}

type SeasonState string

const (
	SeasonNotStarted SeasonState = "NOT_STARTED"
	SeasonInProgress SeasonState = "IN_PROGRESS"
	SeasonComplete   SeasonState = "SEASON_COMPLETE"
)
