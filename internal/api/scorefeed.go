package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gridiron-tracker/internal/config"

	"github.com/valyala/fasthttp"
)

// ScoreFeedClient pulls final scores from the external game-simulation feed.
// This service never simulates outcomes itself; the feed is the only source
// of completed results.
type ScoreFeedClient struct {
	baseURL string
	apiKey  string
	client  *fasthttp.Client
}

func NewScoreFeedClient(cfg *config.Config) *ScoreFeedClient {
	return &ScoreFeedClient{
		baseURL: cfg.ScoreFeedURL,
		apiKey:  cfg.ScoreFeedAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// Configured reports whether a feed endpoint was provided at all.
func (c *ScoreFeedClient) Configured() bool {
	return c.baseURL != ""
}

// GetWeekScores fetches every final score the feed holds for one week.
func (c *ScoreFeedClient) GetWeekScores(ctx context.Context, year, week int) (*WeekScoresResponse, error) {
	url := fmt.Sprintf("%s/v1/seasons/%d/weeks/%d/scores", c.baseURL, year, week)
	return doRequest[WeekScoresResponse](ctx, c, url)
}

// GetGameScore fetches the final score for a single game, if available.
func (c *ScoreFeedClient) GetGameScore(ctx context.Context, gameID string) (*GameScoreResponse, error) {
	url := fmt.Sprintf("%s/v1/games/%s/score", c.baseURL, gameID)
	return doRequest[GameScoreResponse](ctx, c, url)
}

func doRequest[T any](ctx context.Context, client *ScoreFeedClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("score feed error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type WeekScoresResponse struct {
	Status int          `json:"status"`
	Data   []FinalScore `json:"data"`
}

type GameScoreResponse struct {
	Status int        `json:"status"`
	Data   FinalScore `json:"data"`
}

type FinalScore struct {
	GameID    string `json:"game_id"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Final     bool   `json:"final"`
}
