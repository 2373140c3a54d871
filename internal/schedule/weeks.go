package schedule

import (
	"sort"

	"gridiron-tracker/internal/constants"
	"gridiron-tracker/internal/domain"
)

// WeekAssigner places assembled games into weeks while maintaining the
// one-commitment-per-team-per-week invariant (a game or the bye counts as the
// week's commitment).
type WeekAssigner struct {
	weeks int
	byes  map[string]int
	slots map[string]map[int]*domain.ScheduledGame
}

func NewWeekAssigner(weeks int, byes map[string]int) *WeekAssigner {
	return &WeekAssigner{
		weeks: weeks,
		byes:  byes,
		slots: make(map[string]map[int]*domain.ScheduledGame),
	}
}

// Assign runs the phased placement over a copy of the input games and returns
// the placed games (week set, ordered by week then id) plus any games that
// exhausted every offer. Dropped games are the caller's problem: the
// validation gate turns them into a hard error.
func (w *WeekAssigner) Assign(games []domain.ScheduledGame) (placed, dropped []domain.ScheduledGame) {
	all := make([]*domain.ScheduledGame, len(games))
	for i := range games {
		g := games[i]
		g.Week = 0
		all[i] = &g
	}

	var divisional, rest []*domain.ScheduledGame
	for _, g := range all {
		if g.IsDivisional {
			divisional = append(divisional, g)
		} else {
			rest = append(rest, g)
		}
	}

	final := w.weeks

	// Phase 1: the final week is offered first, and only to divisional games.
	for _, g := range divisional {
		if g.Week == 0 {
			w.offer(g, final)
		}
	}

	// Phase 2: divisional backfill across the late window, latest week first.
	lateStart := final - constants.DivisionalBackfillWeeks
	for _, g := range divisional {
		for wk := final - 1; g.Week == 0 && wk >= lateStart; wk-- {
			w.offer(g, wk)
		}
	}

	// Phase 3: divisional catch-all over every earlier week, latest first.
	for _, g := range divisional {
		for wk := lateStart - 1; g.Week == 0 && wk >= 1; wk-- {
			w.offer(g, wk)
		}
	}

	// Phase 4: non-divisional games sorted tightest first, offered ascending.
	// The final week stays divisional-only here.
	sort.SliceStable(rest, func(i, j int) bool {
		return w.tightness(rest[i]) < w.tightness(rest[j])
	})
	for _, g := range rest {
		for wk := 1; g.Week == 0 && wk < final; wk++ {
			w.offer(g, wk)
		}
	}

	// Phase 5: final catch-all, every week, no category restriction.
	for _, g := range all {
		for wk := 1; g.Week == 0 && wk <= final; wk++ {
			w.offer(g, wk)
		}
	}

	w.repair(all)

	for _, g := range all {
		if g.Week == 0 {
			dropped = append(dropped, *g)
		} else {
			placed = append(placed, *g)
		}
	}
	sort.Slice(placed, func(i, j int) bool {
		if placed[i].Week != placed[j].Week {
			return placed[i].Week < placed[j].Week
		}
		return placed[i].GameID < placed[j].GameID
	})
	return placed, dropped
}

// tightness is the scarcer team's count of open weeks; scarce games must be
// placed before flexible ones.
func (w *WeekAssigner) tightness(g *domain.ScheduledGame) int {
	home := len(w.freeWeeks(g.HomeTeamID))
	away := len(w.freeWeeks(g.AwayTeamID))
	if away < home {
		return away
	}
	return home
}

func (w *WeekAssigner) busy(team string, week int) bool {
	if w.byes[team] == week {
		return true
	}
	return w.slots[team][week] != nil
}

func (w *WeekAssigner) offer(g *domain.ScheduledGame, week int) bool {
	if w.busy(g.HomeTeamID, week) || w.busy(g.AwayTeamID, week) {
		return false
	}
	w.place(g, week)
	return true
}

func (w *WeekAssigner) place(g *domain.ScheduledGame, week int) {
	g.Week = week
	for _, team := range []string{g.HomeTeamID, g.AwayTeamID} {
		if w.slots[team] == nil {
			w.slots[team] = make(map[int]*domain.ScheduledGame)
		}
		w.slots[team][week] = g
	}
}

func (w *WeekAssigner) freeWeeks(team string) []int {
	var free []int
	for wk := 1; wk <= w.weeks; wk++ {
		if !w.busy(team, wk) {
			free = append(free, wk)
		}
	}
	return free
}

// The displacement search is bounded two ways: repairDepth caps how deep a
// cascade may displace, and repairBudget caps the placement attempts per
// claimed week so a dense grid cannot blow up.
const (
	repairDepth  = 20
	repairBudget = 50000
)

// gridOp is one grid mutation on the repair trail, replayed in reverse to
// undo a failed cascade.
type gridOp struct {
	game   *domain.ScheduledGame
	week   int
	placed bool
}

// repair rescues stranded games. With one bye and a full slate per team the
// week grid packs exactly, so a game left over after phase 5 means its two
// teams' open weeks are disjoint. repairOne claims a week by displacing the
// games occupying it and recursively rehoming the displaced games, undoing
// the whole cascade when it dead-ends.
func (w *WeekAssigner) repair(all []*domain.ScheduledGame) {
	for progress := true; progress; {
		progress = false
		for _, g := range all {
			if g.Week == 0 && w.repairOne(g) {
				progress = true
			}
		}
	}
}

// repairOne deepens the displacement limit one level at a time. Starting deep
// would let the search sink its whole budget into hopeless subtrees before it
// ever tries the short cascades that resolve most strandings.
func (w *WeekAssigner) repairOne(g *domain.ScheduledGame) bool {
	for depth := 1; depth <= repairDepth; depth++ {
		for wk := 1; wk <= w.weeks; wk++ {
			budget := repairBudget
			var trail []gridOp
			if w.placeDisplacing(g, wk, make(map[string]bool), depth, &budget, &trail) {
				return true
			}
		}
	}
	return false
}

// placeDisplacing puts g into week wk, lifting out whatever games its two
// teams already hold there and recursively finding the lifted games new
// weeks. moving holds the games already claimed by this cascade so it can
// never displace one of its own placements. A failed call restores the grid
// and the trail to their state on entry.
func (w *WeekAssigner) placeDisplacing(g *domain.ScheduledGame, wk int, moving map[string]bool, depth int, budget *int, trail *[]gridOp) bool {
	if *budget <= 0 {
		return false
	}
	*budget--

	if w.byes[g.HomeTeamID] == wk || w.byes[g.AwayTeamID] == wk {
		return false
	}

	var blockers []*domain.ScheduledGame
	for _, team := range []string{g.HomeTeamID, g.AwayTeamID} {
		b := w.slots[team][wk]
		if b == nil {
			continue
		}
		if moving[b.GameID] {
			return false
		}
		if len(blockers) == 0 || blockers[0] != b {
			blockers = append(blockers, b)
		}
	}
	if len(blockers) > 0 && depth == 0 {
		return false
	}

	mark := len(*trail)
	moving[g.GameID] = true
	for _, b := range blockers {
		w.unplace(b)
		*trail = append(*trail, gridOp{game: b, week: wk})
	}
	w.place(g, wk)
	*trail = append(*trail, gridOp{game: g, week: wk, placed: true})

	for _, b := range blockers {
		if !w.rehome(b, moving, depth-1, budget, trail) {
			w.rollback((*trail)[mark:], moving)
			*trail = (*trail)[:mark]
			return false
		}
	}
	return true
}

func (w *WeekAssigner) rehome(g *domain.ScheduledGame, moving map[string]bool, depth int, budget *int, trail *[]gridOp) bool {
	for wk := 1; wk <= w.weeks; wk++ {
		if w.placeDisplacing(g, wk, moving, depth, budget, trail) {
			return true
		}
	}
	return false
}

func (w *WeekAssigner) unplace(g *domain.ScheduledGame) {
	delete(w.slots[g.HomeTeamID], g.Week)
	delete(w.slots[g.AwayTeamID], g.Week)
	g.Week = 0
}

func (w *WeekAssigner) rollback(ops []gridOp, moving map[string]bool) {
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		if op.placed {
			w.unplace(op.game)
			delete(moving, op.game.GameID)
		} else {
			w.place(op.game, op.week)
		}
	}
}
