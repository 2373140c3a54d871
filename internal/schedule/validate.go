package schedule

import (
	"fmt"
	"sort"

	"gridiron-tracker/internal/constants"
	"gridiron-tracker/internal/domain"
)

// Validate runs the post-generation health checks and returns every violated
// invariant. An empty result means the schedule is sound. Home/away balance is
// advisory; everything else is fatal.
func Validate(s *domain.SeasonSchedule, teams []domain.Team) []Violation {
	var violations []Violation

	ids := make([]string, 0, len(teams))
	divisionOf := make(map[string]string, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
		divisionOf[t.ID] = fmt.Sprintf("%s-%s", t.Conference, t.Division)
	}
	sort.Strings(ids)

	gameCount := make(map[string]int)
	homeCount := make(map[string]int)
	weekGames := make(map[string]map[int]int)
	pairCount := make(map[pairKey]int)

	for i := range s.Games {
		g := &s.Games[i]
		if g.Week < 1 || g.Week > constants.RegularSeasonWeeks {
			violations = append(violations, Violation{
				Code:   "unassigned-week",
				Detail: fmt.Sprintf("game %s has week %d", g.GameID, g.Week),
				Fatal:  true,
			})
		}
		gameCount[g.HomeTeamID]++
		gameCount[g.AwayTeamID]++
		homeCount[g.HomeTeamID]++
		pairCount[canonicalKey(g.HomeTeamID, g.AwayTeamID)]++
		for _, team := range []string{g.HomeTeamID, g.AwayTeamID} {
			if weekGames[team] == nil {
				weekGames[team] = make(map[int]int)
			}
			weekGames[team][g.Week]++
		}
	}

	for _, id := range ids {
		if gameCount[id] != constants.GamesPerTeam {
			violations = append(violations, Violation{
				Code:   "game-count-team",
				Detail: fmt.Sprintf("%s has %d games, want %d", id, gameCount[id], constants.GamesPerTeam),
				Fatal:  true,
			})
		}
	}

	expectedTotal := len(teams) * constants.GamesPerTeam / 2
	if len(s.Games) != expectedTotal {
		violations = append(violations, Violation{
			Code:   "game-count-league",
			Detail: fmt.Sprintf("league has %d games, want %d", len(s.Games), expectedTotal),
			Fatal:  true,
		})
	}

	for _, id := range ids {
		for wk, n := range weekGames[id] {
			if n > 1 {
				violations = append(violations, Violation{
					Code:   "week-conflict",
					Detail: fmt.Sprintf("%s has %d games in week %d", id, n, wk),
					Fatal:  true,
				})
			}
		}
		bye, ok := s.ByeWeeks[id]
		if !ok {
			violations = append(violations, Violation{
				Code:   "bye-missing",
				Detail: fmt.Sprintf("%s has no bye week", id),
				Fatal:  true,
			})
			continue
		}
		if bye < constants.ByeWindowStart || bye > constants.ByeWindowEnd {
			violations = append(violations, Violation{
				Code:   "bye-window",
				Detail: fmt.Sprintf("%s bye in week %d, window is %d-%d", id, bye, constants.ByeWindowStart, constants.ByeWindowEnd),
				Fatal:  true,
			})
		}
		if weekGames[id][bye] > 0 {
			violations = append(violations, Violation{
				Code:   "bye-conflict",
				Detail: fmt.Sprintf("%s plays during its week %d bye", id, bye),
				Fatal:  true,
			})
		}
	}

	// Divisional pairs meet exactly twice, all other pairs at most once.
	pairs := make([]pairKey, 0, len(pairCount))
	for key := range pairCount {
		pairs = append(pairs, key)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})
	for _, key := range pairs {
		n := pairCount[key]
		sameDivision := divisionOf[key.a] == divisionOf[key.b]
		if sameDivision && n != 2 {
			violations = append(violations, Violation{
				Code:   "divisional-pair-count",
				Detail: fmt.Sprintf("%s-%s met %d times, want 2", key.a, key.b, n),
				Fatal:  true,
			})
		}
		if !sameDivision && n > 1 {
			violations = append(violations, Violation{
				Code:   "duplicate-pair",
				Detail: fmt.Sprintf("%s-%s met %d times, want at most 1", key.a, key.b, n),
				Fatal:  true,
			})
		}
	}

	// Advisory: the category hash should keep home slates near even. A team
	// with no games at all already failed the count check above.
	for _, id := range ids {
		if gameCount[id] == 0 {
			continue
		}
		if homeCount[id] < 6 || homeCount[id] > 11 {
			violations = append(violations, Violation{
				Code:   "home-away-balance",
				Detail: fmt.Sprintf("%s has %d home games", id, homeCount[id]),
				Fatal:  false,
			})
		}
	}

	return violations
}
