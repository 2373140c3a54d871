package fx

import (
	"gridiron-tracker/internal/api"
	"gridiron-tracker/internal/config"
	"gridiron-tracker/internal/database"
	"gridiron-tracker/internal/logger"
	"gridiron-tracker/internal/repository"
	"gridiron-tracker/internal/server"
	"gridiron-tracker/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewTeamRepository),
	fx.Provide(repository.NewGameRepository),
	fx.Provide(repository.NewResultEventRepository),
	// score feed client
	fx.Provide(api.NewScoreFeedClient),
	// svc
	fx.Provide(service.NewSeasonService),
	fx.Provide(service.NewResultSyncService),
	fx.Provide(func(s *service.SeasonService) server.SeasonAPI { return s }),
	fx.Provide(func(s *service.ResultSyncService) server.ResultSyncAPI { return s }),
	// server
	fx.Provide(server.NewLeagueServer),
)
