package service

import (
	"testing"

	"gridiron-tracker/internal/constants"
	"gridiron-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultByeAllocation(t *testing.T) {
	teams := make([]domain.Team, 0, constants.LeagueTeamCount)
	for _, conf := range domain.Conferences {
		for _, div := range domain.Divisions {
			for i := 0; i < constants.TeamsPerDivision; i++ {
				teams = append(teams, domain.Team{
					ID:         string(conf)[:1] + string(div)[:1] + string(rune('A'+i)),
					Conference: conf,
					Division:   div,
				})
			}
		}
	}

	byes := DefaultByeAllocation(teams)
	require.Len(t, byes, len(teams))

	perWeek := make(map[int]int)
	for id, wk := range byes {
		assert.GreaterOrEqual(t, wk, constants.ByeWindowStart, "team %s", id)
		assert.LessOrEqual(t, wk, constants.ByeWindowEnd, "team %s", id)
		perWeek[wk]++
	}

	// Even per-week counts keep the game grid packable.
	for wk, n := range perWeek {
		assert.Equal(t, 4, n, "week %d", wk)
	}
}

func TestDefaultByeAllocationDeterministic(t *testing.T) {
	teams := []domain.Team{
		{ID: "BUF"}, {ID: "MIA"}, {ID: "NE"}, {ID: "NYJ"},
		{ID: "BAL"}, {ID: "CIN"}, {ID: "CLE"}, {ID: "PIT"},
	}
	first := DefaultByeAllocation(teams)
	second := DefaultByeAllocation(teams)
	require.Equal(t, first, second)

	// Allocation follows sorted id order, not input order.
	assert.Equal(t, constants.ByeWindowStart, first["BAL"])
	assert.Equal(t, constants.ByeWindowStart, first["BUF"])
	assert.Equal(t, constants.ByeWindowStart+1, first["NE"])
}

func TestFilterGames(t *testing.T) {
	games := []domain.ScheduledGame{
		{GameID: "g1", IsComplete: true},
		{GameID: "g2"},
		{GameID: "g3", IsComplete: true},
	}

	done := filterGames(games, func(g *domain.ScheduledGame) bool { return g.IsComplete })
	require.Len(t, done, 2)
	assert.Equal(t, "g1", done[0].GameID)
	assert.Equal(t, "g3", done[1].GameID)

	pending := filterGames(games, func(g *domain.ScheduledGame) bool { return !g.IsComplete })
	require.Len(t, pending, 1)
	assert.Equal(t, "g2", pending[0].GameID)
}
