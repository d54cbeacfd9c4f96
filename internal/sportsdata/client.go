package sportsdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/sawdustofmind/nba-scores-relay/internal/log"
	"github.com/sawdustofmind/nba-scores-relay/internal/models"
)

const gamesByDatePath = "/v3/nba/scores/json/GamesByDate/"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient returns a SportsData.io NBA client. The HTTP client carries no
// timeout of its own; the caller's context deadline is the only bound.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// GamesByDate fetches every game scheduled on date (YYYY-MM-DD).
func (c *Client) GamesByDate(ctx context.Context, date string) ([]models.Game, error) {
	endpoint := c.baseURL + gamesByDatePath + url.PathEscape(date) + "?key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", c.redact(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", c.redact(err))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("Failed to close games response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if err != nil {
			return nil, fmt.Errorf("games request returned status %d and failed to read body", resp.StatusCode)
		}
		return nil, fmt.Errorf("games request returned status %d: %s", resp.StatusCode, string(body))
	}

	var games []models.Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("failed to decode games: %w", err)
	}

	log.Debug("Fetched games", zap.String("date", date), zap.Int("game_count", len(games)))
	return games, nil
}

// redact strips the API key from URL errors so it never reaches the logs.
func (c *Client) redact(err error) error {
	var urlErr *url.Error
	if c.apiKey == "" || !errors.As(err, &urlErr) {
		return err
	}
	masked := *urlErr
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		q := u.Query()
		q.Set("key", "[MASKED]")
		u.RawQuery = q.Encode()
		masked.URL = u.String()
	} else {
		masked.URL = "[MASKED]"
	}
	return &masked
}
