package standings

import (
	"sort"

	"gridiron-tracker/internal/domain"
)

// A criterion compares two standings: positive means a ranks ahead of b,
// negative the reverse, zero means it does not discriminate and the cascade
// falls through to the next criterion.
type criterion func(a, b *domain.TeamStanding) float64

// divisionCascade orders teams that share a division.
var divisionCascade = []criterion{
	byWinPct,
	byHeadToHead,
	byDivisionWinPct,
	byConferenceWinPct,
	byStrengthOfVictory,
	byStrengthOfSchedule,
	byPointDifferential,
	byNetTouchdowns,
	byTeamID,
}

// conferenceCascade orders teams that may span divisions (wildcard seeding),
// so the division sub-record is skipped.
var conferenceCascade = []criterion{
	byWinPct,
	byHeadToHead,
	byConferenceWinPct,
	byStrengthOfVictory,
	byStrengthOfSchedule,
	byPointDifferential,
	byNetTouchdowns,
	byTeamID,
}

// SortDivision orders the group in place by the division cascade. The sort is
// stable so equal inputs keep a deterministic relative order across runs.
func SortDivision(group []*domain.TeamStanding) {
	sortByCascade(group, divisionCascade)
}

// SortConference orders the group in place by the wildcard cascade.
func SortConference(group []*domain.TeamStanding) {
	sortByCascade(group, conferenceCascade)
}

func sortByCascade(group []*domain.TeamStanding, cascade []criterion) {
	sort.SliceStable(group, func(i, j int) bool {
		return compare(cascade, group[i], group[j]) > 0
	})
}

func compare(cascade []criterion, a, b *domain.TeamStanding) float64 {
	for _, c := range cascade {
		if d := c(a, b); d != 0 {
			return d
		}
	}
	return 0
}

func byWinPct(a, b *domain.TeamStanding) float64 {
	return a.WinPct() - b.WinPct()
}

// byHeadToHead only discriminates when the pair has actually met.
func byHeadToHead(a, b *domain.TeamStanding) float64 {
	rec := a.HeadToHead[b.TeamID]
	games := rec.Wins + rec.Losses + rec.Ties
	if games == 0 {
		return 0
	}
	aPct := (float64(rec.Wins) + 0.5*float64(rec.Ties)) / float64(games)
	bPct := (float64(rec.Losses) + 0.5*float64(rec.Ties)) / float64(games)
	return aPct - bPct
}

func byDivisionWinPct(a, b *domain.TeamStanding) float64 {
	return a.DivisionWinPct() - b.DivisionWinPct()
}

func byConferenceWinPct(a, b *domain.TeamStanding) float64 {
	return a.ConferenceWinPct() - b.ConferenceWinPct()
}

func byStrengthOfVictory(a, b *domain.TeamStanding) float64 {
	return a.StrengthOfVictory - b.StrengthOfVictory
}

func byStrengthOfSchedule(a, b *domain.TeamStanding) float64 {
	return a.StrengthOfSchedule - b.StrengthOfSchedule
}

func byPointDifferential(a, b *domain.TeamStanding) float64 {
	return float64(a.PointDifferential() - b.PointDifferential())
}

func byNetTouchdowns(a, b *domain.TeamStanding) float64 {
	return float64(a.NetTouchdowns - b.NetTouchdowns)
}

// byTeamID is the explicit deterministic stand-in for a coin flip; it always
// discriminates, so the cascade can never exhaust.
func byTeamID(a, b *domain.TeamStanding) float64 {
	if a.TeamID < b.TeamID {
		return 1
	}
	return -1
}

