package schedule

import (
	"fmt"
	"sort"

	"gridiron-tracker/internal/constants"
	"gridiron-tracker/internal/domain"

	"github.com/rs/zerolog"
)

// Generate builds the full season schedule from the team directory, the
// previous season's final standings and the externally allocated bye weeks.
// The same inputs always produce the identical schedule. Generation fails
// loudly: bad inputs are rejected up front, and a post-generation validation
// gate turns any constraint shortfall into an itemized hard error.
func Generate(year int, teams []domain.Team, prev domain.PreviousYearStandings, byes map[string]int, logger zerolog.Logger) (*domain.SeasonSchedule, error) {
	if err := validateInputs(year, teams, byes); err != nil {
		return nil, err
	}

	builder := NewOpponentSetBuilder(teams, prev, year)
	sets := make(map[string]OpponentSets, len(teams))
	for _, t := range teams {
		sets[t.ID] = builder.Build(t)
	}

	games := NewGameAssembler(year, teams).Assemble(sets)
	logger.Debug().Int("year", year).Int("assembled", len(games)).Msg("games assembled")

	assigner := NewWeekAssigner(constants.RegularSeasonWeeks, byes)
	placed, dropped := assigner.Assign(games)

	logger.Info().
		Int("year", year).
		Int("placed", len(placed)).
		Int("dropped", len(dropped)).
		Msg("week assignment finished")

	byeCopy := make(map[string]int, len(byes))
	for id, wk := range byes {
		byeCopy[id] = wk
	}
	sched := &domain.SeasonSchedule{Year: year, Games: placed, ByeWeeks: byeCopy}

	violations := Validate(sched, teams)
	for _, d := range dropped {
		violations = append(violations, Violation{
			Code:   "game-dropped",
			Detail: fmt.Sprintf("game %s exhausted every offered week", d.GameID),
			Fatal:  true,
		})
	}

	var fatal []Violation
	for _, v := range violations {
		if v.Fatal {
			fatal = append(fatal, v)
		} else {
			logger.Warn().Str("code", v.Code).Str("detail", v.Detail).Msg("schedule advisory")
		}
	}
	if len(fatal) > 0 {
		return nil, &ValidationError{Violations: fatal}
	}

	return sched, nil
}

func validateInputs(year int, teams []domain.Team, byes map[string]int) error {
	if len(teams) == 0 {
		return ErrNoTeams
	}
	if year < constants.EarliestSeasonYear {
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	counts := make(map[domain.Conference]map[domain.Division]int)
	for _, t := range teams {
		if counts[t.Conference] == nil {
			counts[t.Conference] = make(map[domain.Division]int)
		}
		counts[t.Conference][t.Division]++
	}
	for _, conf := range domain.Conferences {
		for _, div := range domain.Divisions {
			if counts[conf][div] != constants.TeamsPerDivision {
				return fmt.Errorf("%w: %s %s has %d", ErrUnevenStructure, conf, div, counts[conf][div])
			}
		}
	}

	sorted := make([]domain.Team, len(teams))
	copy(sorted, teams)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for _, t := range sorted {
		wk, ok := byes[t.ID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingBye, t.ID)
		}
		if wk < constants.ByeWindowStart || wk > constants.ByeWindowEnd {
			return fmt.Errorf("%w: %s in week %d", ErrByeOutOfWindow, t.ID, wk)
		}
	}
	return nil
}
