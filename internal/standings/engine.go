package standings

import (
	"math"
	"sort"

	"gridiron-tracker/internal/domain"
)

// Compute folds every completed game into one TeamStanding per team. It is a
// pure function of (teams, games): standings are always rebuilt from the full
// result history rather than patched incrementally, so recomputing at any
// point yields identical values.
func Compute(teams []domain.Team, games []domain.ScheduledGame) map[string]*domain.TeamStanding {
	table := make(map[string]*domain.TeamStanding, len(teams))
	for _, t := range teams {
		table[t.ID] = &domain.TeamStanding{
			TeamID:     t.ID,
			HeadToHead: make(map[string]domain.HeadToHeadRecord),
		}
	}

	completed := make([]domain.ScheduledGame, 0, len(games))
	for _, g := range games {
		if g.IsComplete {
			completed = append(completed, g)
		}
	}
	// Week order fixes the streak computation; game id breaks same-week ties.
	sort.Slice(completed, func(i, j int) bool {
		if completed[i].Week != completed[j].Week {
			return completed[i].Week < completed[j].Week
		}
		return completed[i].GameID < completed[j].GameID
	})

	faced := make(map[string][]string)
	beaten := make(map[string][]string)

	for i := range completed {
		g := &completed[i]
		home := table[g.HomeTeamID]
		away := table[g.AwayTeamID]
		if home == nil || away == nil {
			continue
		}
		foldGame(home, g, g.HomeScore, g.AwayScore, g.AwayTeamID)
		foldGame(away, g, g.AwayScore, g.HomeScore, g.HomeTeamID)

		faced[g.HomeTeamID] = append(faced[g.HomeTeamID], g.AwayTeamID)
		faced[g.AwayTeamID] = append(faced[g.AwayTeamID], g.HomeTeamID)
		switch g.WinnerID {
		case g.HomeTeamID:
			beaten[g.HomeTeamID] = append(beaten[g.HomeTeamID], g.AwayTeamID)
		case g.AwayTeamID:
			beaten[g.AwayTeamID] = append(beaten[g.AwayTeamID], g.HomeTeamID)
		}
	}

	// Second pass over the now-complete records. This is a single-pass
	// approximation: opponent records are taken as-is, with no fixed-point
	// resolution of circular strength dependencies.
	for id, s := range table {
		s.StrengthOfVictory = aggregateWinPct(table, beaten[id])
		s.StrengthOfSchedule = aggregateWinPct(table, faced[id])
	}

	return table
}

// foldGame applies one completed game to one side's running totals.
func foldGame(s *domain.TeamStanding, g *domain.ScheduledGame, pointsFor, pointsAgainst int, opponent string) {
	h2h := s.HeadToHead[opponent]

	switch {
	case pointsFor > pointsAgainst:
		s.Wins++
		h2h.Wins++
		if s.Streak > 0 {
			s.Streak++
		} else {
			s.Streak = 1
		}
	case pointsFor < pointsAgainst:
		s.Losses++
		h2h.Losses++
		if s.Streak < 0 {
			s.Streak--
		} else {
			s.Streak = -1
		}
	default:
		s.Ties++
		h2h.Ties++
		s.Streak = 0
	}

	if g.IsDivisional {
		switch {
		case pointsFor > pointsAgainst:
			s.DivisionWins++
		case pointsFor < pointsAgainst:
			s.DivisionLosses++
		default:
			s.DivisionTies++
		}
	}
	if g.IsConference {
		switch {
		case pointsFor > pointsAgainst:
			s.ConferenceWins++
		case pointsFor < pointsAgainst:
			s.ConferenceLosses++
		default:
			s.ConferenceTies++
		}
	}

	s.PointsFor += pointsFor
	s.PointsAgainst += pointsAgainst
	s.HeadToHead[opponent] = h2h
	s.NetTouchdowns = int(math.Round(float64(s.PointsFor-s.PointsAgainst) / 7))
}

// aggregateWinPct pools the listed opponents' records game-for-game (an
// opponent faced twice counts twice) and returns the pooled win percentage.
func aggregateWinPct(table map[string]*domain.TeamStanding, opponents []string) float64 {
	var wins, losses, ties int
	for _, id := range opponents {
		opp := table[id]
		if opp == nil {
			continue
		}
		wins += opp.Wins
		losses += opp.Losses
		ties += opp.Ties
	}
	games := wins + losses + ties
	if games == 0 {
		return 0
	}
	return (float64(wins) + 0.5*float64(ties)) / float64(games)
}

// DivisionStandings returns the division's teams in tiebroken order with
// DivisionRank and GamesBehind filled in.
func DivisionStandings(teams []domain.Team, table map[string]*domain.TeamStanding, conf domain.Conference, div domain.Division) []*domain.TeamStanding {
	group := collect(teams, table, func(t domain.Team) bool {
		return t.Conference == conf && t.Division == div
	})
	SortDivision(group)
	for i, s := range group {
		s.DivisionRank = i + 1
		s.GamesBehind = gamesBehind(group[0], s)
	}
	return group
}

// ConferenceStandings returns the conference's teams in wildcard-cascade order
// with ConferenceRank filled in.
func ConferenceStandings(teams []domain.Team, table map[string]*domain.TeamStanding, conf domain.Conference) []*domain.TeamStanding {
	group := collect(teams, table, func(t domain.Team) bool {
		return t.Conference == conf
	})
	SortConference(group)
	for i, s := range group {
		s.ConferenceRank = i + 1
	}
	return group
}

// PlayoffPicture orders one conference for seeding: the four division winners
// first, then everyone else, each block in wildcard-cascade order.
func PlayoffPicture(teams []domain.Team, table map[string]*domain.TeamStanding, conf domain.Conference) []*domain.TeamStanding {
	winners := make(map[string]bool)
	for _, div := range domain.Divisions {
		group := DivisionStandings(teams, table, conf, div)
		if len(group) > 0 {
			winners[group[0].TeamID] = true
		}
	}

	var leaders, chasers []*domain.TeamStanding
	for _, s := range ConferenceStandings(teams, table, conf) {
		if winners[s.TeamID] {
			leaders = append(leaders, s)
		} else {
			chasers = append(chasers, s)
		}
	}
	return append(leaders, chasers...)
}

func collect(teams []domain.Team, table map[string]*domain.TeamStanding, keep func(domain.Team) bool) []*domain.TeamStanding {
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		if keep(t) {
			ids = append(ids, t.ID)
		}
	}
	sort.Strings(ids)

	group := make([]*domain.TeamStanding, 0, len(ids))
	for _, id := range ids {
		if s := table[id]; s != nil {
			group = append(group, s)
		}
	}
	return group
}

func gamesBehind(leader, s *domain.TeamStanding) float64 {
	return (float64(leader.Wins-s.Wins) + float64(s.Losses-leader.Losses)) / 2
}
