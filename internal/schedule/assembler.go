package schedule

import (
	"fmt"
	"hash/fnv"
	"sort"

	"gridiron-tracker/internal/domain"
)

type pairKey struct {
	a string
	b string
}

// canonicalKey sorts the two ids so a pairing dedupes the same way no matter
// which side discovered it.
func canonicalKey(x, y string) pairKey {
	if x < y {
		return pairKey{x, y}
	}
	return pairKey{y, x}
}

// GameAssembler turns opponent pairs into deduplicated, home/away-assigned
// game records with the week left unset.
type GameAssembler struct {
	year  int
	teams map[string]domain.Team
}

func NewGameAssembler(year int, teams []domain.Team) *GameAssembler {
	byID := make(map[string]domain.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}
	return &GameAssembler{year: year, teams: byID}
}

// Assemble walks every team's opponent sets and emits one record per
// non-divisional pairing and two (home-and-away) per divisional pairing.
// Output order is fixed by game id so downstream assignment is deterministic.
func (a *GameAssembler) Assemble(sets map[string]OpponentSets) []domain.ScheduledGame {
	ids := make([]string, 0, len(sets))
	for id := range sets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	seen := make(map[pairKey]bool)
	var games []domain.ScheduledGame

	for _, id := range ids {
		s := sets[id]

		// Divisional rivals meet home-and-away, keyed by the ordered tuple so
		// each direction is created exactly once.
		for _, rival := range s.Divisional {
			key := pairKey{id, rival}
			if seen[key] {
				continue
			}
			seen[key] = true
			games = append(games, a.newGame(id, rival, categoryDivisional))
		}

		for _, opp := range s.IntraRotation {
			games = a.appendSingle(games, seen, id, opp, categoryIntra)
		}
		for _, opp := range s.InterRotation {
			games = a.appendSingle(games, seen, id, opp, categoryInter)
		}
		for _, opp := range s.SamePlace {
			games = a.appendSingle(games, seen, id, opp, categorySamePlace)
		}
		for _, opp := range s.ExtraCross {
			games = a.appendSingle(games, seen, id, opp, categoryExtraCross)
		}
	}

	sort.Slice(games, func(i, j int) bool { return games[i].GameID < games[j].GameID })
	return games
}

func (a *GameAssembler) appendSingle(games []domain.ScheduledGame, seen map[pairKey]bool, x, y, category string) []domain.ScheduledGame {
	key := canonicalKey(x, y)
	if seen[key] {
		return games
	}
	seen[key] = true
	home := key.a
	away := key.b
	if !hashPrefersFirst(category, key.a, key.b) {
		home, away = key.b, key.a
	}
	return append(games, a.newGame(home, away, category))
}

// hashPrefersFirst decides the home side of a single-game pairing from the
// category label and the sorted ids alone, so assignment is reproducible and
// alternates fairly across categories without randomness.
func hashPrefersFirst(category, a, b string) bool {
	h := fnv.New32a()
	h.Write([]byte(category))
	h.Write([]byte{0})
	h.Write([]byte(a))
	h.Write([]byte{0})
	h.Write([]byte(b))
	return h.Sum32()%2 == 0
}

func (a *GameAssembler) newGame(homeID, awayID, category string) domain.ScheduledGame {
	home := a.teams[homeID]
	away := a.teams[awayID]
	divisional := home.Conference == away.Conference && home.Division == away.Division
	return domain.ScheduledGame{
		GameID:       fmt.Sprintf("%d-%s-%s", a.year, homeID, awayID),
		Year:         a.year,
		HomeTeamID:   homeID,
		AwayTeamID:   awayID,
		IsDivisional: divisional,
		IsConference: home.Conference == away.Conference,
		IsRivalry:    divisional || category == categoryExtraCross,
		TimeSlot:     domain.TimeSlotSunday,
	}
}
