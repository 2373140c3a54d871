package schedule

import (
	"sort"

	"gridiron-tracker/internal/constants"
	"gridiron-tracker/internal/domain"
)

// Category labels identify the structural slot a pairing came from and feed the
// home-side hash in the assembler.
const (
	categoryDivisional = "divisional"
	categoryIntra      = "intra-rotation"
	categoryInter      = "inter-rotation"
	categorySamePlace  = "same-place"
	categoryExtraCross = "extra-cross"
)

// OpponentSets holds the five structural opponent groups for one team.
// Divisional rivals are played home-and-away; every other group contributes a
// single game per opponent.
type OpponentSets struct {
	Divisional    []string
	IntraRotation []string
	InterRotation []string
	SamePlace     []string
	ExtraCross    []string
}

var divisionIndex = map[domain.Division]int{
	domain.DivisionEast:  0,
	domain.DivisionNorth: 1,
	domain.DivisionSouth: 2,
	domain.DivisionWest:  3,
}

// intraRotation pairs each division with one other division of its own
// conference on a three-year cycle. Every row is a fixed-point-free involution
// so both sides of a pairing agree on it.
var intraRotation = [constants.IntraRotationCycle][4]int{
	{1, 0, 3, 2}, // East-North, South-West
	{2, 3, 0, 1}, // East-South, North-West
	{3, 2, 1, 0}, // East-West, North-South
}

// interRotation maps an AFC division index to the NFC division it plays on a
// four-year cycle. No row ever maps a division onto its same-named opposite:
// that mirror pairing stays reserved for the extra cross-conference game.
var interRotation = [constants.InterRotationCycle][4]int{
	{1, 0, 3, 2},
	{1, 2, 3, 0},
	{2, 3, 0, 1},
	{3, 0, 1, 2},
}

// extraCrossPairing fixes, per division, the opposite-conference division that
// supplies the seventeenth game. The mirror pairing is deliberately disjoint
// from every interRotation row.
var extraCrossPairing = map[domain.Division]domain.Division{
	domain.DivisionEast:  domain.DivisionEast,
	domain.DivisionNorth: domain.DivisionNorth,
	domain.DivisionSouth: domain.DivisionSouth,
	domain.DivisionWest:  domain.DivisionWest,
}

func intraTargetDivision(div domain.Division, year int) domain.Division {
	cycle := year % constants.IntraRotationCycle
	return domain.Divisions[intraRotation[cycle][divisionIndex[div]]]
}

func interTargetDivision(conf domain.Conference, div domain.Division, year int) domain.Division {
	cycle := year % constants.InterRotationCycle
	i := divisionIndex[div]
	if conf == domain.ConferenceAFC {
		return domain.Divisions[interRotation[cycle][i]]
	}
	// NFC side uses the inverse of the AFC mapping.
	for afc, nfc := range interRotation[cycle] {
		if nfc == i {
			return domain.Divisions[afc]
		}
	}
	return div // unreachable: every row is a bijection
}

// OpponentSetBuilder derives the structural opponent groups from the team
// directory, the rotation tables and the previous season's final standings.
type OpponentSetBuilder struct {
	divisions map[domain.Conference]map[domain.Division][]domain.Team
	prev      domain.PreviousYearStandings
	year      int
}

func NewOpponentSetBuilder(teams []domain.Team, prev domain.PreviousYearStandings, year int) *OpponentSetBuilder {
	divisions := make(map[domain.Conference]map[domain.Division][]domain.Team)
	for _, t := range teams {
		if divisions[t.Conference] == nil {
			divisions[t.Conference] = make(map[domain.Division][]domain.Team)
		}
		divisions[t.Conference][t.Division] = append(divisions[t.Conference][t.Division], t)
	}
	for _, byDiv := range divisions {
		for div := range byDiv {
			teams := byDiv[div]
			sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
		}
	}
	return &OpponentSetBuilder{divisions: divisions, prev: prev, year: year}
}

// Build produces the five opponent groups for one team. A lookup miss in a
// finish-position category yields no opponent for that slot; the generation
// validation gate catches the resulting shortfall.
func (b *OpponentSetBuilder) Build(team domain.Team) OpponentSets {
	var sets OpponentSets

	for _, rival := range b.division(team.Conference, team.Division) {
		if rival.ID != team.ID {
			sets.Divisional = append(sets.Divisional, rival.ID)
		}
	}

	intraTarget := intraTargetDivision(team.Division, b.year)
	for _, opp := range b.division(team.Conference, intraTarget) {
		sets.IntraRotation = append(sets.IntraRotation, opp.ID)
	}

	interTarget := interTargetDivision(team.Conference, team.Division, b.year)
	for _, opp := range b.division(team.Conference.Opposite(), interTarget) {
		sets.InterRotation = append(sets.InterRotation, opp.ID)
	}

	pos := b.finishPosition(team)
	for _, div := range domain.Divisions {
		if div == team.Division || div == intraTarget {
			continue
		}
		if id, ok := b.opponentAt(team.Conference, div, pos); ok {
			sets.SamePlace = append(sets.SamePlace, id)
		}
	}

	if id, ok := b.opponentAt(team.Conference.Opposite(), extraCrossPairing[team.Division], pos); ok {
		sets.ExtraCross = append(sets.ExtraCross, id)
	}

	return sets
}

func (b *OpponentSetBuilder) division(conf domain.Conference, div domain.Division) []domain.Team {
	return b.divisions[conf][div]
}

// finishPosition locates the team in its division's previous standings.
// With no history the lexicographic directory order stands in; a team absent
// from an existing list (expansion, relocation) counts as position 0 by policy.
func (b *OpponentSetBuilder) finishPosition(team domain.Team) int {
	order := b.prev[team.Conference][team.Division]
	if len(order) == 0 {
		for i, t := range b.division(team.Conference, team.Division) {
			if t.ID == team.ID {
				return i
			}
		}
		return 0
	}
	for i, id := range order {
		if id == team.ID {
			return i
		}
	}
	return 0
}

// opponentAt resolves the team holding a finish position in a division. With
// no history the lexicographic directory order stands in for the standings.
func (b *OpponentSetBuilder) opponentAt(conf domain.Conference, div domain.Division, pos int) (string, bool) {
	order := b.prev[conf][div]
	if len(order) == 0 {
		for _, t := range b.division(conf, div) {
			order = append(order, t.ID)
		}
	}
	if pos < 0 || pos >= len(order) {
		return "", false
	}
	id := order[pos]
	for _, t := range b.division(conf, div) {
		if t.ID == id {
			return id, true
		}
	}
	return "", false
}
