package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// HTTPLeaderboard calls a leaderboard service over HTTP, grounded in
// original_source/solitaire/process_centric's calls to
// LEADERBOARD_URL: POST {baseURL}/new_game/{user_id}, POST
// {baseURL}/won_game/{user_id}, GET {baseURL}/leaderboard.
type HTTPLeaderboard struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPLeaderboard returns a Leaderboard backed by the given base URL.
func NewHTTPLeaderboard(baseURL string, client *http.Client) *HTTPLeaderboard {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPLeaderboard{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

func (l *HTTPLeaderboard) GameStarted(ctx context.Context, userID string) error {
	_, err := l.post(ctx, "/new_game/"+userID)
	return err
}

func (l *HTTPLeaderboard) GameWon(ctx context.Context, userID string) error {
	_, err := l.post(ctx, "/won_game/"+userID)
	if err != nil && strings.Contains(err.Error(), "status 404") {
		return UnknownUser
	}
	return err
}

func (l *HTTPLeaderboard) post(ctx context.Context, path string) (Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.BaseURL+path, nil)
	if err != nil {
		return Row{}, fmt.Errorf("%w: %v", Unavailable, err)
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return Row{}, fmt.Errorf("%w: %v", Unavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Row{}, fmt.Errorf("%w: status %d", Unavailable, resp.StatusCode)
	}

	var row Row
	if err := json.NewDecoder(resp.Body).Decode(&row); err != nil {
		return Row{}, fmt.Errorf("%w: %v", Unavailable, err)
	}
	return row, nil
}

func (l *HTTPLeaderboard) Rows(ctx context.Context) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.BaseURL+"/leaderboard", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", Unavailable, err)
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", Unavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", Unavailable, resp.StatusCode)
	}

	var rows []Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %v", Unavailable, err)
	}
	return rows, nil
}
