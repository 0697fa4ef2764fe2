package leaderboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPLeaderboardGameStarted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/new_game/alice" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"user_id":"alice","played_games":1,"games_won":0}`))
	}))
	defer srv.Close()

	l := NewHTTPLeaderboard(srv.URL, nil)
	if err := l.GameStarted(context.Background(), "alice"); err != nil {
		t.Fatalf("GameStarted failed: %v", err)
	}
}

func TestHTTPLeaderboardGameWonNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	l := NewHTTPLeaderboard(srv.URL, nil)
	if err := l.GameWon(context.Background(), "nobody"); err != UnknownUser {
		t.Errorf("got %v, want UnknownUser", err)
	}
}

func TestHTTPLeaderboardRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"user_id":"alice","played_games":3,"games_won":1}]`))
	}))
	defer srv.Close()

	l := NewHTTPLeaderboard(srv.URL, nil)
	rows, err := l.Rows(context.Background())
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != "alice" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}
