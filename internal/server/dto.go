package server

import (
	"gridiron-tracker/internal/domain"
	"gridiron-tracker/internal/schedule"
)

type gameDTO struct {
	GameID       string `json:"game_id"`
	Year         int    `json:"year"`
	Week         int    `json:"week"`
	HomeTeamID   string `json:"home_team_id"`
	AwayTeamID   string `json:"away_team_id"`
	IsDivisional bool   `json:"is_divisional"`
	IsConference bool   `json:"is_conference"`
	IsRivalry    bool   `json:"is_rivalry"`
	TimeSlot     string `json:"time_slot"`
	IsComplete   bool   `json:"is_complete"`
	HomeScore    int    `json:"home_score"`
	AwayScore    int    `json:"away_score"`
	WinnerID     string `json:"winner_id,omitempty"`
}

type scheduleDTO struct {
	Year     int            `json:"year"`
	Games    []gameDTO      `json:"games"`
	ByeWeeks map[string]int `json:"bye_weeks"`
}

type standingDTO struct {
	TeamID             string  `json:"team_id"`
	Record             string  `json:"record"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	Ties               int     `json:"ties"`
	WinPct             float64 `json:"win_pct"`
	DivisionRecord     string  `json:"division_record"`
	ConferenceRecord   string  `json:"conference_record"`
	PointsFor          int     `json:"points_for"`
	PointsAgainst      int     `json:"points_against"`
	PointDifferential  int     `json:"point_differential"`
	NetTouchdowns      int     `json:"net_touchdowns"`
	StrengthOfVictory  float64 `json:"strength_of_victory"`
	StrengthOfSchedule float64 `json:"strength_of_schedule"`
	Streak             string  `json:"streak"`
	DivisionRank       int     `json:"division_rank,omitempty"`
	ConferenceRank     int     `json:"conference_rank,omitempty"`
	GamesBehind        float64 `json:"games_behind"`
}

type violationDTO struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Fatal  bool   `json:"fatal"`
}

type validationDTO struct {
	Valid      bool           `json:"valid"`
	Violations []violationDTO `json:"violations"`
}

func toGameDTO(g *domain.ScheduledGame) gameDTO {
	return gameDTO{
		GameID:       g.GameID,
		Year:         g.Year,
		Week:         g.Week,
		HomeTeamID:   g.HomeTeamID,
		AwayTeamID:   g.AwayTeamID,
		IsDivisional: g.IsDivisional,
		IsConference: g.IsConference,
		IsRivalry:    g.IsRivalry,
		TimeSlot:     string(g.TimeSlot),
		IsComplete:   g.IsComplete,
		HomeScore:    g.HomeScore,
		AwayScore:    g.AwayScore,
		WinnerID:     g.WinnerID,
	}
}

func toGameDTOs(games []domain.ScheduledGame) []gameDTO {
	out := make([]gameDTO, len(games))
	for i := range games {
		out[i] = toGameDTO(&games[i])
	}
	return out
}

func toScheduleDTO(s *domain.SeasonSchedule) scheduleDTO {
	return scheduleDTO{
		Year:     s.Year,
		Games:    toGameDTOs(s.Games),
		ByeWeeks: s.ByeWeeks,
	}
}

func toStandingDTO(s *domain.TeamStanding) standingDTO {
	return standingDTO{
		TeamID:             s.TeamID,
		Record:             s.Record(),
		Wins:               s.Wins,
		Losses:             s.Losses,
		Ties:               s.Ties,
		WinPct:             s.WinPct(),
		DivisionRecord:     s.DivisionRecord(),
		ConferenceRecord:   s.ConferenceRecord(),
		PointsFor:          s.PointsFor,
		PointsAgainst:      s.PointsAgainst,
		PointDifferential:  s.PointDifferential(),
		NetTouchdowns:      s.NetTouchdowns,
		StrengthOfVictory:  s.StrengthOfVictory,
		StrengthOfSchedule: s.StrengthOfSchedule,
		Streak:             s.StreakString(),
		DivisionRank:       s.DivisionRank,
		ConferenceRank:     s.ConferenceRank,
		GamesBehind:        s.GamesBehind,
	}
}

func toStandingDTOs(group []*domain.TeamStanding) []standingDTO {
	out := make([]standingDTO, len(group))
	for i, s := range group {
		out[i] = toStandingDTO(s)
	}
	return out
}

func toValidationDTO(violations []schedule.Violation) validationDTO {
	dto := validationDTO{Valid: len(violations) == 0, Violations: []violationDTO{}}
	for _, v := range violations {
		dto.Violations = append(dto.Violations, violationDTO{Code: v.Code, Detail: v.Detail, Fatal: v.Fatal})
	}
	return dto
}
