package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gridiron-tracker/internal/constants"
	"gridiron-tracker/internal/domain"
	"gridiron-tracker/internal/repository"
	"gridiron-tracker/internal/schedule"
	"gridiron-tracker/internal/standings"

	"github.com/rs/zerolog"
)

var ErrInvalidScore = errors.New("service: scores must be non-negative")

// TeamScheduleScope selects which slice of a team's season to return.
type TeamScheduleScope string

const (
	ScopeAll       TeamScheduleScope = "all"
	ScopeRemaining TeamScheduleScope = "remaining"
	ScopeCompleted TeamScheduleScope = "completed"
)

// SeasonService orchestrates the season lifecycle: schedule generation,
// result recording and standings queries. The engines underneath are pure;
// this layer adds persistence and logging.
type SeasonService struct {
	teamRepo  *repository.TeamRepository
	gameRepo  *repository.GameRepository
	eventRepo *repository.ResultEventRepository
	logger    zerolog.Logger
}

func NewSeasonService(teamRepo *repository.TeamRepository, gameRepo *repository.GameRepository, eventRepo *repository.ResultEventRepository, logger zerolog.Logger) *SeasonService {
	return &SeasonService{teamRepo: teamRepo, gameRepo: gameRepo, eventRepo: eventRepo, logger: logger}
}

// GenerateSchedule builds and stores the season schedule. Byes normally come
// from the external allocator; a nil map falls back to a deterministic
// default allocation so a season can be spun up without one.
func (s *SeasonService) GenerateSchedule(ctx context.Context, year int, prev domain.PreviousYearStandings, byes map[string]int) (*domain.SeasonSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load team directory: %w", err)
	}

	if byes == nil {
		byes = DefaultByeAllocation(teams)
		s.logger.Info().Int("year", year).Msg("no bye allocation supplied, using default")
	}

	sched, err := schedule.Generate(year, teams, prev, byes, s.logger)
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.ReplaceSeason(ctx, sched); err != nil {
		return nil, fmt.Errorf("failed to store schedule: %w", err)
	}

	s.logger.Info().
		Int("year", year).
		Int("games", len(sched.Games)).
		Msg("season schedule generated")
	return sched, nil
}

// DefaultByeAllocation spreads byes over the allowed window, four teams per
// week in directory order. It stands in for the external allocator and keeps
// every bye week's team count even, which the week grid needs to pack fully.
func DefaultByeAllocation(teams []domain.Team) map[string]int {
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)

	byes := make(map[string]int, len(ids))
	for i, id := range ids {
		byes[id] = constants.ByeWindowStart + i/4
	}
	return byes
}

// Schedule returns the stored season schedule.
func (s *SeasonService) Schedule(ctx context.Context, year int) (*domain.SeasonSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.gameRepo.GetSeason(ctx, year)
}

// WeekGames returns one week's games.
func (s *SeasonService) WeekGames(ctx context.Context, year, week int) ([]domain.ScheduledGame, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.gameRepo.ListByWeek(ctx, year, week)
}

// TeamSchedule returns a team's games filtered by scope.
func (s *SeasonService) TeamSchedule(ctx context.Context, year int, teamID string, scope TeamScheduleScope) ([]domain.ScheduledGame, error) {
	games, err := s.gameRepo.ListByTeam(ctx, year, teamID)
	if err != nil {
		return nil, err
	}
	switch scope {
	case ScopeRemaining:
		return filterGames(games, func(g *domain.ScheduledGame) bool { return !g.IsComplete }), nil
	case ScopeCompleted:
		return filterGames(games, func(g *domain.ScheduledGame) bool { return g.IsComplete }), nil
	default:
		return games, nil
	}
}

// HeadToHead returns every scheduled meeting between two teams this season.
func (s *SeasonService) HeadToHead(ctx context.Context, year int, teamA, teamB string) ([]domain.ScheduledGame, error) {
	games, err := s.gameRepo.ListByTeam(ctx, year, teamA)
	if err != nil {
		return nil, err
	}
	return filterGames(games, func(g *domain.ScheduledGame) bool { return g.Involves(teamB) }), nil
}

// RecordResult is the core's only mutation entry point: it applies an
// external final score to a game exactly once, deriving the winner from the
// score comparison (equal scores produce a tie and no winner).
func (s *SeasonService) RecordResult(ctx context.Context, gameID string, homeScore, awayScore int, source string) (*domain.ScheduledGame, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if homeScore < 0 || awayScore < 0 {
		return nil, ErrInvalidScore
	}

	game, err := s.gameRepo.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}

	winnerID := ""
	switch {
	case homeScore > awayScore:
		winnerID = game.HomeTeamID
	case awayScore > homeScore:
		winnerID = game.AwayTeamID
	}

	if err := s.gameRepo.RecordResult(ctx, gameID, homeScore, awayScore, winnerID); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Append(ctx, repository.ResultEvent{
		GameID:    gameID,
		HomeScore: homeScore,
		AwayScore: awayScore,
		Source:    source,
	}); err != nil {
		s.logger.Warn().Err(err).Str("game_id", gameID).Msg("failed to append result event")
	}

	return s.gameRepo.Get(ctx, gameID)
}

// Standings recomputes the full standings table from stored results.
func (s *SeasonService) Standings(ctx context.Context, year int) (map[string]*domain.TeamStanding, []domain.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load team directory: %w", err)
	}
	sched, err := s.gameRepo.GetSeason(ctx, year)
	if err != nil {
		return nil, nil, err
	}
	return standings.Compute(teams, sched.Games), teams, nil
}

// DivisionStandings returns one division in tiebroken order.
func (s *SeasonService) DivisionStandings(ctx context.Context, year int, conf domain.Conference, div domain.Division) ([]*domain.TeamStanding, error) {
	table, teams, err := s.Standings(ctx, year)
	if err != nil {
		return nil, err
	}
	return standings.DivisionStandings(teams, table, conf, div), nil
}

// ConferenceStandings returns one conference in wildcard-cascade order.
func (s *SeasonService) ConferenceStandings(ctx context.Context, year int, conf domain.Conference) ([]*domain.TeamStanding, error) {
	table, teams, err := s.Standings(ctx, year)
	if err != nil {
		return nil, err
	}
	return standings.ConferenceStandings(teams, table, conf), nil
}

// PlayoffPicture returns one conference's seeding order: division winners
// first, then the chasing pack.
func (s *SeasonService) PlayoffPicture(ctx context.Context, year int, conf domain.Conference) ([]*domain.TeamStanding, error) {
	table, teams, err := s.Standings(ctx, year)
	if err != nil {
		return nil, err
	}
	return standings.PlayoffPicture(teams, table, conf), nil
}

// State derives the season's lifecycle stage from stored results; there is no
// hidden state machine object to keep in sync.
func (s *SeasonService) State(ctx context.Context, year int) (domain.SeasonState, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	sched, err := s.gameRepo.GetSeason(ctx, year)
	if errors.Is(err, repository.ErrSeasonNotFound) {
		return domain.SeasonNotStarted, nil
	}
	if err != nil {
		return "", err
	}

	completed := 0
	for i := range sched.Games {
		if sched.Games[i].IsComplete {
			completed++
		}
	}
	switch {
	case completed == 0:
		return domain.SeasonNotStarted, nil
	case completed == len(sched.Games):
		return domain.SeasonComplete, nil
	default:
		return domain.SeasonInProgress, nil
	}
}

// ValidateSchedule reruns the post-generation health checks against the
// stored schedule.
func (s *SeasonService) ValidateSchedule(ctx context.Context, year int) ([]schedule.Violation, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load team directory: %w", err)
	}
	sched, err := s.gameRepo.GetSeason(ctx, year)
	if err != nil {
		return nil, err
	}
	return schedule.Validate(sched, teams), nil
}

func filterGames(games []domain.ScheduledGame, keep func(*domain.ScheduledGame) bool) []domain.ScheduledGame {
	var out []domain.ScheduledGame
	for i := range games {
		if keep(&games[i]) {
			out = append(out, games[i])
		}
	}
	return out
}
