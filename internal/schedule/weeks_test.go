package schedule

import (
	"testing"

	"gridiron-tracker/internal/constants"
	"gridiron-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignPacksEveryGame(t *testing.T) {
	teams := leagueFixture()
	byes := fixtureByes(teams)
	sets := buildAllSets(t, teams, nil, 2025)
	games := NewGameAssembler(2025, teams).Assemble(sets)

	placed, dropped := NewWeekAssigner(constants.RegularSeasonWeeks, byes).Assign(games)
	require.Empty(t, dropped)
	require.Len(t, placed, len(games))

	commitments := make(map[string]map[int]int)
	note := func(team string, week int) {
		if commitments[team] == nil {
			commitments[team] = make(map[int]int)
		}
		commitments[team][week]++
	}

	for i := range placed {
		g := &placed[i]
		require.GreaterOrEqual(t, g.Week, 1)
		require.LessOrEqual(t, g.Week, constants.RegularSeasonWeeks)
		note(g.HomeTeamID, g.Week)
		note(g.AwayTeamID, g.Week)
	}

	for _, team := range teams {
		weeks := commitments[team.ID]
		assert.Len(t, weeks, constants.GamesPerTeam, "team %s", team.ID)
		for wk, n := range weeks {
			assert.Equal(t, 1, n, "team %s week %d", team.ID, wk)
			assert.NotEqual(t, byes[team.ID], wk, "team %s plays through its bye", team.ID)
		}
	}
}

func TestAssignOutputOrderedByWeekThenID(t *testing.T) {
	teams := leagueFixture()
	sets := buildAllSets(t, teams, nil, 2025)
	games := NewGameAssembler(2025, teams).Assemble(sets)

	placed, _ := NewWeekAssigner(constants.RegularSeasonWeeks, fixtureByes(teams)).Assign(games)
	for i := 1; i < len(placed); i++ {
		prev, cur := &placed[i-1], &placed[i]
		if prev.Week == cur.Week {
			assert.Less(t, prev.GameID, cur.GameID)
		} else {
			assert.Less(t, prev.Week, cur.Week)
		}
	}
}

func TestAssignLeavesInputUntouched(t *testing.T) {
	teams := leagueFixture()
	sets := buildAllSets(t, teams, nil, 2025)
	games := NewGameAssembler(2025, teams).Assemble(sets)

	_, _ = NewWeekAssigner(constants.RegularSeasonWeeks, fixtureByes(teams)).Assign(games)
	for i := range games {
		assert.Zero(t, games[i].Week)
	}
}

func TestAssignRespectsByeOpenings(t *testing.T) {
	byes := map[string]int{"C": 1}
	assigner := NewWeekAssigner(2, byes)

	games := []domain.ScheduledGame{
		{GameID: "g-A-B", HomeTeamID: "A", AwayTeamID: "B"},
		{GameID: "g-B-C", HomeTeamID: "B", AwayTeamID: "C"},
	}
	placed, dropped := assigner.Assign(games)
	require.Empty(t, dropped)
	require.Len(t, placed, 2)

	weekOf := make(map[string]int)
	for i := range placed {
		weekOf[placed[i].GameID] = placed[i].Week
	}
	assert.NotEqual(t, weekOf["g-A-B"], weekOf["g-B-C"])
	assert.NotEqual(t, 1, weekOf["g-B-C"], "C is on bye in week 1")
}

func TestRepairDisplacesBlockingGame(t *testing.T) {
	// A is only open in week 1, B only in week 2: the stranded A-B game fits
	// nowhere directly. The repair lifts B's week 1 game out of the way and
	// rehomes it in week 2.
	assigner := NewWeekAssigner(2, map[string]int{})

	blockA := &domain.ScheduledGame{GameID: "g-A-D", HomeTeamID: "A", AwayTeamID: "D"}
	blockB := &domain.ScheduledGame{GameID: "g-B-C", HomeTeamID: "B", AwayTeamID: "C"}
	assigner.place(blockA, 2)
	assigner.place(blockB, 1)

	stranded := &domain.ScheduledGame{GameID: "g-A-B", HomeTeamID: "A", AwayTeamID: "B"}
	require.True(t, assigner.repairOne(stranded))

	assert.Equal(t, 1, stranded.Week)
	assert.Equal(t, 2, blockB.Week, "blocking game rehomed to B's other open week")
	assert.Equal(t, 2, blockA.Week)
}

func TestRepairCascadesAcrossGames(t *testing.T) {
	// Rehoming B's blocker collides with C's week 2 game, which in turn must
	// cascade into week 1. D's week 1 game pins A's blocker in place, so no
	// single displacement can solve this grid.
	assigner := NewWeekAssigner(2, map[string]int{})

	blockA := &domain.ScheduledGame{GameID: "g-A-D", HomeTeamID: "A", AwayTeamID: "D"}
	blockB := &domain.ScheduledGame{GameID: "g-B-C", HomeTeamID: "B", AwayTeamID: "C"}
	blockC := &domain.ScheduledGame{GameID: "g-C-E", HomeTeamID: "C", AwayTeamID: "E"}
	blockD := &domain.ScheduledGame{GameID: "g-D-F", HomeTeamID: "D", AwayTeamID: "F"}
	assigner.place(blockA, 2)
	assigner.place(blockB, 1)
	assigner.place(blockC, 2)
	assigner.place(blockD, 1)

	stranded := &domain.ScheduledGame{GameID: "g-A-B", HomeTeamID: "A", AwayTeamID: "B"}
	require.True(t, assigner.repairOne(stranded))

	assert.Equal(t, 1, stranded.Week)
	assert.Equal(t, 2, blockB.Week)
	assert.Equal(t, 1, blockC.Week)
	assert.Equal(t, 2, blockA.Week)
	assert.Equal(t, 1, blockD.Week)
}

func TestRepairRefusesByeCollision(t *testing.T) {
	// Every displacement cascade dead-ends on a team whose bye occupies the
	// only alternative week, so the stranded game stays unplaced and the
	// grid is untouched.
	assigner := NewWeekAssigner(2, map[string]int{"D": 1, "E": 1})

	blockA := &domain.ScheduledGame{GameID: "g-A-D", HomeTeamID: "A", AwayTeamID: "D"}
	blockB := &domain.ScheduledGame{GameID: "g-B-C", HomeTeamID: "B", AwayTeamID: "C"}
	blockC := &domain.ScheduledGame{GameID: "g-C-E", HomeTeamID: "C", AwayTeamID: "E"}
	assigner.place(blockA, 2)
	assigner.place(blockB, 1)
	assigner.place(blockC, 2)

	stranded := &domain.ScheduledGame{GameID: "g-A-B", HomeTeamID: "A", AwayTeamID: "B"}
	require.False(t, assigner.repairOne(stranded))
	assert.Equal(t, 2, blockA.Week, "failed swap must not mutate the grid")
	assert.Equal(t, 1, blockB.Week)
	assert.Equal(t, 2, blockC.Week)
	assert.Zero(t, stranded.Week)
}
