package schedule

import (
	"testing"

	"gridiron-tracker/internal/constants"
	"gridiron-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAllSets(t *testing.T, teams []domain.Team, prev domain.PreviousYearStandings, year int) map[string]OpponentSets {
	t.Helper()
	builder := NewOpponentSetBuilder(teams, prev, year)
	sets := make(map[string]OpponentSets, len(teams))
	for _, team := range teams {
		sets[team.ID] = builder.Build(team)
	}
	return sets
}

func TestOpponentSetShape(t *testing.T) {
	teams := leagueFixture()

	for year := 2024; year < 2024+12; year++ {
		sets := buildAllSets(t, teams, nil, year)
		for id, s := range sets {
			assert.Len(t, s.Divisional, 3, "year %d team %s", year, id)
			assert.Len(t, s.IntraRotation, 4, "year %d team %s", year, id)
			assert.Len(t, s.InterRotation, 4, "year %d team %s", year, id)
			assert.Len(t, s.SamePlace, 2, "year %d team %s", year, id)
			assert.Len(t, s.ExtraCross, 1, "year %d team %s", year, id)
		}
	}
}

func TestOpponentSetsAreSymmetric(t *testing.T) {
	teams := leagueFixture()
	sets := buildAllSets(t, teams, nil, 2025)

	groups := func(s OpponentSets) map[string][]string {
		return map[string][]string{
			"divisional": s.Divisional,
			"intra":      s.IntraRotation,
			"inter":      s.InterRotation,
			"same-place": s.SamePlace,
			"extra":      s.ExtraCross,
		}
	}

	for id, s := range sets {
		for name, opponents := range groups(s) {
			for _, opp := range opponents {
				assert.Contains(t, groups(sets[opp])[name], id,
					"%s lists %s in %s but not vice versa", id, opp, name)
			}
		}
	}
}

func TestIntraRotationIsInvolution(t *testing.T) {
	for year := 0; year < constants.IntraRotationCycle; year++ {
		for _, div := range domain.Divisions {
			target := intraTargetDivision(div, year)
			assert.NotEqual(t, div, target, "cycle %d", year)
			assert.Equal(t, div, intraTargetDivision(target, year), "cycle %d", year)
		}
	}
}

func TestInterRotationAvoidsMirrorDivision(t *testing.T) {
	for year := 0; year < constants.InterRotationCycle; year++ {
		seen := make(map[domain.Division]bool)
		for _, div := range domain.Divisions {
			target := interTargetDivision(domain.ConferenceAFC, div, year)
			// The mirror pairing is reserved for the extra cross-conference game.
			assert.NotEqual(t, div, target, "cycle %d", year)
			assert.False(t, seen[target], "cycle %d maps two divisions to %s", year, target)
			seen[target] = true

			// The NFC side resolves the same pairing from its end.
			assert.Equal(t, div, interTargetDivision(domain.ConferenceNFC, target, year), "cycle %d", year)
		}
	}
}

func TestFinishPositionFallsBackToDirectoryOrder(t *testing.T) {
	teams := leagueFixture()
	builder := NewOpponentSetBuilder(teams, nil, 2025)

	// AFC East sorts to BUF, MIA, NE, NYJ.
	for i, id := range []string{"BUF", "MIA", "NE", "NYJ"} {
		var team domain.Team
		for _, t := range teams {
			if t.ID == id {
				team = t
			}
		}
		assert.Equal(t, i, builder.finishPosition(team))
	}
}

func TestFinishPositionUsesPreviousStandings(t *testing.T) {
	teams := leagueFixture()
	prev := domain.PreviousYearStandings{
		domain.ConferenceAFC: {
			domain.DivisionEast: []string{"NYJ", "NE", "MIA", "BUF"},
		},
	}
	builder := NewOpponentSetBuilder(teams, prev, 2025)

	buf := domain.Team{ID: "BUF", Conference: domain.ConferenceAFC, Division: domain.DivisionEast}
	require.Equal(t, 3, builder.finishPosition(buf))

	// An id missing from an existing list counts as position 0.
	newcomer := domain.Team{ID: "XXX", Conference: domain.ConferenceAFC, Division: domain.DivisionEast}
	require.Equal(t, 0, builder.finishPosition(newcomer))
}
