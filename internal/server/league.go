package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gridiron-tracker/internal/config"
	"gridiron-tracker/internal/domain"
	"gridiron-tracker/internal/repository"
	"gridiron-tracker/internal/schedule"
	"gridiron-tracker/internal/service"

	"github.com/rs/zerolog"
)

// SeasonAPI is the slice of the season service the HTTP layer needs.
type SeasonAPI interface {
	GenerateSchedule(ctx context.Context, year int, prev domain.PreviousYearStandings, byes map[string]int) (*domain.SeasonSchedule, error)
	Schedule(ctx context.Context, year int) (*domain.SeasonSchedule, error)
	WeekGames(ctx context.Context, year, week int) ([]domain.ScheduledGame, error)
	TeamSchedule(ctx context.Context, year int, teamID string, scope service.TeamScheduleScope) ([]domain.ScheduledGame, error)
	HeadToHead(ctx context.Context, year int, teamA, teamB string) ([]domain.ScheduledGame, error)
	RecordResult(ctx context.Context, gameID string, homeScore, awayScore int, source string) (*domain.ScheduledGame, error)
	DivisionStandings(ctx context.Context, year int, conf domain.Conference, div domain.Division) ([]*domain.TeamStanding, error)
	ConferenceStandings(ctx context.Context, year int, conf domain.Conference) ([]*domain.TeamStanding, error)
	PlayoffPicture(ctx context.Context, year int, conf domain.Conference) ([]*domain.TeamStanding, error)
	State(ctx context.Context, year int) (domain.SeasonState, error)
	ValidateSchedule(ctx context.Context, year int) ([]schedule.Violation, error)
}

// ResultSyncAPI triggers pulls from the external score feed.
type ResultSyncAPI interface {
	SyncWeeks(ctx context.Context, year, fromWeek, toWeek int) (int, error)
}

type LeagueServer struct {
	seasons SeasonAPI
	sync    ResultSyncAPI
	cfg     *config.Config
	logger  zerolog.Logger
}

func NewLeagueServer(seasons SeasonAPI, sync ResultSyncAPI, cfg *config.Config, logger zerolog.Logger) *LeagueServer {
	return &LeagueServer{seasons: seasons, sync: sync, cfg: cfg, logger: logger}
}

// Register wires every route onto the mux.
func (s *LeagueServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/schedule/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/v1/schedule", s.handleSchedule)
	mux.HandleFunc("GET /api/v1/schedule/validate", s.handleValidate)
	mux.HandleFunc("GET /api/v1/schedule/weeks/{week}", s.handleWeek)
	mux.HandleFunc("GET /api/v1/teams/{id}/schedule", s.handleTeamSchedule)
	mux.HandleFunc("GET /api/v1/teams/{a}/head-to-head/{b}", s.handleHeadToHead)
	mux.HandleFunc("POST /api/v1/games/{id}/result", s.handleRecordResult)
	mux.HandleFunc("GET /api/v1/standings/divisions/{conference}/{division}", s.handleDivisionStandings)
	mux.HandleFunc("GET /api/v1/standings/conferences/{conference}", s.handleConferenceStandings)
	mux.HandleFunc("GET /api/v1/standings/conferences/{conference}/playoff-picture", s.handlePlayoffPicture)
	mux.HandleFunc("GET /api/v1/season/state", s.handleState)
	mux.HandleFunc("POST /api/v1/results/sync", s.handleSyncResults)
}

type generateRequest struct {
	Year              int                          `json:"year"`
	ByeWeeks          map[string]int               `json:"bye_weeks,omitempty"`
	PreviousStandings domain.PreviousYearStandings `json:"previous_standings,omitempty"`
}

func (s *LeagueServer) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Year == 0 {
		req.Year = s.cfg.SeasonYear
	}

	sched, err := s.seasons.GenerateSchedule(r.Context(), req.Year, req.PreviousStandings, req.ByeWeeks)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toScheduleDTO(sched))
}

func (s *LeagueServer) handleSchedule(w http.ResponseWriter, r *http.Request) {
	sched, err := s.seasons.Schedule(r.Context(), s.year(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toScheduleDTO(sched))
}

func (s *LeagueServer) handleValidate(w http.ResponseWriter, r *http.Request) {
	violations, err := s.seasons.ValidateSchedule(r.Context(), s.year(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toValidationDTO(violations))
}

func (s *LeagueServer) handleWeek(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "week must be an integer")
		return
	}
	games, err := s.seasons.WeekGames(r.Context(), s.year(r), week)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toGameDTOs(games))
}

func (s *LeagueServer) handleTeamSchedule(w http.ResponseWriter, r *http.Request) {
	scope := service.TeamScheduleScope(r.URL.Query().Get("scope"))
	if scope == "" {
		scope = service.ScopeAll
	}
	games, err := s.seasons.TeamSchedule(r.Context(), s.year(r), r.PathValue("id"), scope)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toGameDTOs(games))
}

func (s *LeagueServer) handleHeadToHead(w http.ResponseWriter, r *http.Request) {
	games, err := s.seasons.HeadToHead(r.Context(), s.year(r), r.PathValue("a"), r.PathValue("b"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toGameDTOs(games))
}

type recordResultRequest struct {
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Source    string `json:"source,omitempty"`
}

func (s *LeagueServer) handleRecordResult(w http.ResponseWriter, r *http.Request) {
	var req recordResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Source == "" {
		req.Source = "api"
	}

	game, err := s.seasons.RecordResult(r.Context(), r.PathValue("id"), req.HomeScore, req.AwayScore, req.Source)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toGameDTO(game))
}

func (s *LeagueServer) handleDivisionStandings(w http.ResponseWriter, r *http.Request) {
	group, err := s.seasons.DivisionStandings(r.Context(), s.year(r),
		domain.Conference(r.PathValue("conference")), domain.Division(r.PathValue("division")))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toStandingDTOs(group))
}

func (s *LeagueServer) handleConferenceStandings(w http.ResponseWriter, r *http.Request) {
	group, err := s.seasons.ConferenceStandings(r.Context(), s.year(r), domain.Conference(r.PathValue("conference")))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toStandingDTOs(group))
}

func (s *LeagueServer) handlePlayoffPicture(w http.ResponseWriter, r *http.Request) {
	group, err := s.seasons.PlayoffPicture(r.Context(), s.year(r), domain.Conference(r.PathValue("conference")))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toStandingDTOs(group))
}

func (s *LeagueServer) handleState(w http.ResponseWriter, r *http.Request) {
	state, err := s.seasons.State(r.Context(), s.year(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"state": string(state)})
}

type syncRequest struct {
	FromWeek int `json:"from_week"`
	ToWeek   int `json:"to_week"`
}

func (s *LeagueServer) handleSyncResults(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	applied, err := s.sync.SyncWeeks(r.Context(), s.year(r), req.FromWeek, req.ToWeek)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"applied": applied})
}

func (s *LeagueServer) year(r *http.Request) int {
	if raw := r.URL.Query().Get("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			return year
		}
	}
	return s.cfg.SeasonYear
}

func (s *LeagueServer) writeServiceError(w http.ResponseWriter, err error) {
	var validation *schedule.ValidationError
	switch {
	case errors.Is(err, repository.ErrGameNotFound), errors.Is(err, repository.ErrSeasonNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrResultAlreadyRecorded):
		s.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, schedule.ErrNoTeams),
		errors.Is(err, schedule.ErrInvalidYear),
		errors.Is(err, schedule.ErrUnevenStructure),
		errors.Is(err, schedule.ErrMissingBye),
		errors.Is(err, schedule.ErrByeOutOfWindow):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &validation):
		s.writeJSON(w, http.StatusUnprocessableEntity, toValidationDTO(validation.Violations))
	default:
		s.logger.Error().Err(err).Msg("request failed")
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *LeagueServer) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *LeagueServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
