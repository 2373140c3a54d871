package standings

import (
	"testing"

	"gridiron-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func divisionFixture() []domain.Team {
	return []domain.Team{
		{ID: "BUF", Conference: domain.ConferenceAFC, Division: domain.DivisionEast},
		{ID: "MIA", Conference: domain.ConferenceAFC, Division: domain.DivisionEast},
		{ID: "NE", Conference: domain.ConferenceAFC, Division: domain.DivisionEast},
		{ID: "NYJ", Conference: domain.ConferenceAFC, Division: domain.DivisionEast},
	}
}

func completedGame(id string, week int, home, away string, homeScore, awayScore int, divisional bool) domain.ScheduledGame {
	winner := ""
	switch {
	case homeScore > awayScore:
		winner = home
	case awayScore > homeScore:
		winner = away
	}
	return domain.ScheduledGame{
		GameID:       id,
		Week:         week,
		HomeTeamID:   home,
		AwayTeamID:   away,
		HomeScore:    homeScore,
		AwayScore:    awayScore,
		WinnerID:     winner,
		IsComplete:   true,
		IsDivisional: divisional,
		IsConference: divisional,
	}
}

func TestComputeFoldsSingleGame(t *testing.T) {
	teams := divisionFixture()
	games := []domain.ScheduledGame{
		completedGame("g1", 1, "BUF", "MIA", 24, 17, true),
	}

	table := Compute(teams, games)

	buf := table["BUF"]
	require.NotNil(t, buf)
	assert.Equal(t, 1, buf.Wins)
	assert.Equal(t, 0, buf.Losses)
	assert.Equal(t, 24, buf.PointsFor)
	assert.Equal(t, 17, buf.PointsAgainst)
	assert.Equal(t, 1, buf.DivisionWins)
	assert.Equal(t, 1, buf.ConferenceWins)
	assert.Equal(t, 1, buf.Streak)
	assert.Equal(t, 1, buf.NetTouchdowns)
	assert.Equal(t, domain.HeadToHeadRecord{Wins: 1}, buf.HeadToHead["MIA"])
	assert.Equal(t, 1.0, buf.WinPct())

	mia := table["MIA"]
	assert.Equal(t, 1, mia.Losses)
	assert.Equal(t, -1, mia.Streak)
	assert.Equal(t, 0.0, mia.WinPct())
	assert.Equal(t, domain.HeadToHeadRecord{Losses: 1}, mia.HeadToHead["BUF"])

	// BUF beat a winless team; MIA faced an unbeaten one.
	assert.Equal(t, 0.0, buf.StrengthOfVictory)
	assert.Equal(t, 0.0, buf.StrengthOfSchedule)
	assert.Equal(t, 1.0, mia.StrengthOfSchedule)
}

func TestComputeIsRecomputable(t *testing.T) {
	teams := divisionFixture()
	games := []domain.ScheduledGame{
		completedGame("g1", 1, "BUF", "MIA", 24, 17, true),
		completedGame("g2", 2, "NE", "NYJ", 10, 10, true),
		completedGame("g3", 3, "BUF", "NE", 31, 3, true),
	}

	first := Compute(teams, games)
	second := Compute(teams, games)
	require.Equal(t, first, second)

	// Incomplete games contribute nothing.
	pending := domain.ScheduledGame{GameID: "g4", Week: 4, HomeTeamID: "MIA", AwayTeamID: "NYJ"}
	third := Compute(teams, append(games, pending))
	require.Equal(t, first, third)
}

func TestComputeStreaksFollowWeekOrder(t *testing.T) {
	teams := divisionFixture()
	// Deliberately out of order: the fold must sort by week first.
	games := []domain.ScheduledGame{
		completedGame("g3", 3, "BUF", "NE", 10, 20, true),
		completedGame("g1", 1, "BUF", "MIA", 24, 17, true),
		completedGame("g2", 2, "BUF", "NYJ", 30, 7, true),
	}

	table := Compute(teams, games)
	buf := table["BUF"]
	assert.Equal(t, 2, buf.Wins)
	assert.Equal(t, 1, buf.Losses)
	assert.Equal(t, -1, buf.Streak, "the week 3 loss ends the streak")
	assert.Equal(t, "L1", buf.StreakString())
}

func TestComputeTieResetsStreak(t *testing.T) {
	teams := divisionFixture()
	games := []domain.ScheduledGame{
		completedGame("g1", 1, "BUF", "MIA", 24, 17, true),
		completedGame("g2", 2, "BUF", "NYJ", 13, 13, true),
	}

	buf := Compute(teams, games)["BUF"]
	assert.Equal(t, 1, buf.Wins)
	assert.Equal(t, 1, buf.Ties)
	assert.Equal(t, 0, buf.Streak)
	assert.Equal(t, "-", buf.StreakString())
	assert.Equal(t, 0.75, buf.WinPct())
}

func TestDivisionStandingsRoundRobin(t *testing.T) {
	teams := divisionFixture()
	// BUF sweeps, MIA beats the two below, NE beats NYJ.
	games := []domain.ScheduledGame{
		completedGame("g1", 1, "BUF", "MIA", 20, 10, true),
		completedGame("g2", 1, "NE", "NYJ", 20, 10, true),
		completedGame("g3", 2, "BUF", "NE", 20, 10, true),
		completedGame("g4", 2, "MIA", "NYJ", 20, 10, true),
		completedGame("g5", 3, "BUF", "NYJ", 20, 10, true),
		completedGame("g6", 3, "MIA", "NE", 20, 10, true),
	}

	table := Compute(teams, games)
	group := DivisionStandings(teams, table, domain.ConferenceAFC, domain.DivisionEast)
	require.Len(t, group, 4)

	order := make([]string, len(group))
	for i, s := range group {
		order[i] = s.TeamID
	}
	assert.Equal(t, []string{"BUF", "MIA", "NE", "NYJ"}, order)

	for i, s := range group {
		assert.Equal(t, i+1, s.DivisionRank)
	}
	assert.Equal(t, 0.0, group[0].GamesBehind)
	assert.Equal(t, 1.0, group[1].GamesBehind)
	assert.Equal(t, 2.0, group[2].GamesBehind)
	assert.Equal(t, 3.0, group[3].GamesBehind)
}

func conferenceFixture() []domain.Team {
	return []domain.Team{
		{ID: "E1", Conference: domain.ConferenceAFC, Division: domain.DivisionEast},
		{ID: "E2", Conference: domain.ConferenceAFC, Division: domain.DivisionEast},
		{ID: "N1", Conference: domain.ConferenceAFC, Division: domain.DivisionNorth},
		{ID: "N2", Conference: domain.ConferenceAFC, Division: domain.DivisionNorth},
		{ID: "S1", Conference: domain.ConferenceAFC, Division: domain.DivisionSouth},
		{ID: "S2", Conference: domain.ConferenceAFC, Division: domain.DivisionSouth},
		{ID: "W1", Conference: domain.ConferenceAFC, Division: domain.DivisionWest},
		{ID: "W2", Conference: domain.ConferenceAFC, Division: domain.DivisionWest},
	}
}

func TestPlayoffPictureSeedsDivisionWinnersFirst(t *testing.T) {
	teams := conferenceFixture()
	// One game per division; distinct margins order the winners and losers by
	// point differential once the earlier criteria wash out.
	games := []domain.ScheduledGame{
		completedGame("g1", 1, "E1", "E2", 28, 0, true),
		completedGame("g2", 1, "N1", "N2", 21, 0, true),
		completedGame("g3", 1, "S1", "S2", 14, 0, true),
		completedGame("g4", 1, "W1", "W2", 7, 0, true),
	}

	table := Compute(teams, games)
	picture := PlayoffPicture(teams, table, domain.ConferenceAFC)
	require.Len(t, picture, 8)

	order := make([]string, len(picture))
	for i, s := range picture {
		order[i] = s.TeamID
	}
	assert.Equal(t, []string{"E1", "N1", "S1", "W1", "W2", "S2", "N2", "E2"}, order)
}

func TestConferenceStandingsAssignRanks(t *testing.T) {
	teams := conferenceFixture()
	games := []domain.ScheduledGame{
		completedGame("g1", 1, "E1", "E2", 28, 0, true),
		completedGame("g2", 1, "N1", "N2", 21, 0, true),
	}

	table := Compute(teams, games)
	group := ConferenceStandings(teams, table, domain.ConferenceAFC)
	require.Len(t, group, 8)
	for i, s := range group {
		assert.Equal(t, i+1, s.ConferenceRank)
	}
	assert.Equal(t, "E1", group[0].TeamID)
	assert.Equal(t, "N1", group[1].TeamID)
}
