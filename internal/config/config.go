package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath          string
	ServerPort      string
	LogLevel        string
	SeasonYear      int
	ScoreFeedURL    string
	ScoreFeedAPIKey string
	SyncTimeout     time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	year, err := strconv.Atoi(getEnv("SEASON_YEAR", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return nil, fmt.Errorf("SEASON_YEAR must be an integer: %w", err)
	}

	cfg := &Config{
		DBPath:          getEnv("DB_PATH", "gridiron.db"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		SeasonYear:      year,
		ScoreFeedURL:    getEnv("SCORE_FEED_URL", ""),
		ScoreFeedAPIKey: getEnv("SCORE_FEED_API_KEY", ""),
		SyncTimeout:     30 * time.Second,
	}

	if cfg.ScoreFeedURL != "" && cfg.ScoreFeedAPIKey == "" {
		return nil, fmt.Errorf("SCORE_FEED_API_KEY is required when SCORE_FEED_URL is set")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int("season_year", cfg.SeasonYear).
		Str("score_feed_url", cfg.ScoreFeedURL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
