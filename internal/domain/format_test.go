package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordStrings(t *testing.T) {
	s := &TeamStanding{
		Wins: 11, Losses: 5, Ties: 1,
		DivisionWins: 4, DivisionLosses: 2,
		ConferenceWins: 8, ConferenceLosses: 4, ConferenceTies: 1,
	}
	assert.Equal(t, "11-5-1", s.Record())
	assert.Equal(t, "4-2-0", s.DivisionRecord())
	assert.Equal(t, "8-4-1", s.ConferenceRecord())
}

func TestStreakString(t *testing.T) {
	assert.Equal(t, "W3", (&TeamStanding{Streak: 3}).StreakString())
	assert.Equal(t, "L1", (&TeamStanding{Streak: -1}).StreakString())
	assert.Equal(t, "-", (&TeamStanding{}).StreakString())
}

func TestWinPct(t *testing.T) {
	assert.Equal(t, 0.0, (&TeamStanding{}).WinPct(), "no games played")
	assert.Equal(t, 0.75, (&TeamStanding{Wins: 1, Ties: 1}).WinPct(), "ties count half")
	assert.InDelta(t, 0.647, (&TeamStanding{Wins: 11, Losses: 6}).WinPct(), 0.001)
}

func TestGameHelpers(t *testing.T) {
	g := &ScheduledGame{HomeTeamID: "PHI", AwayTeamID: "DAL"}
	assert.True(t, g.Involves("PHI"))
	assert.True(t, g.Involves("DAL"))
	assert.False(t, g.Involves("NYG"))
	assert.Equal(t, "DAL", g.Opponent("PHI"))
	assert.Equal(t, "PHI", g.Opponent("DAL"))
	assert.Equal(t, "", g.Opponent("NYG"))
}

func TestConferenceOpposite(t *testing.T) {
	assert.Equal(t, ConferenceNFC, ConferenceAFC.Opposite())
	assert.Equal(t, ConferenceAFC, ConferenceNFC.Opposite())
}
