package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"gridiron-tracker/internal/api"
	"gridiron-tracker/internal/constants"
	"gridiron-tracker/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const resultSourceFeed = "score-feed"

// ResultSyncService pulls final scores from the external feed and applies
// them through the season service's write-once entry point. Re-syncing a week
// is safe: already-recorded games are skipped.
type ResultSyncService struct {
	feed      *api.ScoreFeedClient
	seasonSvc *SeasonService
	logger    zerolog.Logger
}

func NewResultSyncService(feed *api.ScoreFeedClient, seasonSvc *SeasonService, logger zerolog.Logger) *ResultSyncService {
	return &ResultSyncService{feed: feed, seasonSvc: seasonSvc, logger: logger}
}

// SyncWeek applies every final score the feed holds for one week and returns
// how many new results were recorded.
func (s *ResultSyncService) SyncWeek(ctx context.Context, year, week int) (int, error) {
	if !s.feed.Configured() {
		return 0, fmt.Errorf("score feed is not configured")
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.feed.GetWeekScores(apiCtx, year, week)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch week %d scores: %w", week, err)
	}

	applied := 0
	for _, score := range resp.Data {
		if !score.Final {
			continue
		}
		_, err := s.seasonSvc.RecordResult(ctx, score.GameID, score.HomeScore, score.AwayScore, resultSourceFeed)
		if errors.Is(err, repository.ErrResultAlreadyRecorded) {
			s.logger.Debug().Str("game_id", score.GameID).Msg("result already recorded, skipping")
			continue
		}
		if err != nil {
			return applied, fmt.Errorf("failed to apply result for %s: %w", score.GameID, err)
		}
		applied++
	}

	s.logger.Info().
		Int("year", year).
		Int("week", week).
		Int("applied", applied).
		Msg("week results synced")
	return applied, nil
}

// SyncWeeks fans the per-week fetches out concurrently and returns the total
// number of newly recorded results.
func (s *ResultSyncService) SyncWeeks(ctx context.Context, year, fromWeek, toWeek int) (int, error) {
	if fromWeek < 1 || toWeek > constants.RegularSeasonWeeks || fromWeek > toWeek {
		return 0, fmt.Errorf("invalid week range %d-%d", fromWeek, toWeek)
	}

	g, gCtx := errgroup.WithContext(ctx)
	var total atomic.Int64

	for week := fromWeek; week <= toWeek; week++ {
		g.Go(func() error {
			applied, err := s.SyncWeek(gCtx, year, week)
			if err != nil {
				return err
			}
			total.Add(int64(applied))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(total.Load()), err
	}
	return int(total.Load()), nil
}
