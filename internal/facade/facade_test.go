package facade

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/sde-casino/solitaire/internal/auth"
	"github.com/sde-casino/solitaire/internal/deck"
	"github.com/sde-casino/solitaire/internal/engine"
	"github.com/sde-casino/solitaire/internal/leaderboard"
	"github.com/sde-casino/solitaire/internal/session"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	verifier, err := auth.NewJWTVerifier([]byte(testSecret), "HS256")
	if err != nil {
		t.Fatalf("NewJWTVerifier failed: %v", err)
	}
	return NewServer(
		session.NewRegistry(),
		engine.New(),
		deck.NewMemorySource(nil),
		leaderboard.NewMemoryLeaderboard(),
		verifier,
		zerolog.New(io.Discard),
	)
}

func validToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "player-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func doRequest(t *testing.T, s *Server, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	if bearer != "" {
		r.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

func TestEveryRouteRequiresAuth(t *testing.T) {
	s := newTestServer(t)
	routes := []struct {
		method, path string
	}{
		{http.MethodPost, "/games"},
		{http.MethodPost, "/games/abc/draw"},
		{http.MethodPost, "/games/abc/reset-stock"},
		{http.MethodPost, "/games/abc/moves"},
		{http.MethodGet, "/leaderboard"},
	}
	for _, rt := range routes {
		w := doRequest(t, s, rt.method, rt.path, "", "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: got %d, want 401", rt.method, rt.path, w.Code)
		}
	}
}

func TestCreateGameThenDrawThenMove(t *testing.T) {
	s := newTestServer(t)
	tok := validToken(t)

	w := doRequest(t, s, http.MethodPost, "/games", "", tok)
	if w.Code != http.StatusCreated {
		t.Fatalf("create game: got %d, body %s", w.Code, w.Body.String())
	}
	var created gameResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.SessionID == "" {
		t.Fatal("expected a non-empty session id")
	}

	w = doRequest(t, s, http.MethodPost, "/games/"+created.SessionID+"/draw", "", tok)
	if w.Code != http.StatusOK {
		t.Fatalf("draw: got %d, body %s", w.Code, w.Body.String())
	}

	w = doRequest(t, s, http.MethodPost, "/games/"+created.SessionID+"/moves",
		`{"kind":"tableau_to_tableau","from":0,"to":1,"count":1}`, tok)
	if w.Code != http.StatusConflict && w.Code != http.StatusOK {
		t.Fatalf("move: got unexpected status %d, body %s", w.Code, w.Body.String())
	}
}

func TestUnknownSessionReturns404(t *testing.T) {
	s := newTestServer(t)
	tok := validToken(t)

	w := doRequest(t, s, http.MethodPost, "/games/does-not-exist/draw", "", tok)
	if w.Code != http.StatusNotFound {
		t.Errorf("got %d, want 404", w.Code)
	}
}

func TestLeaderboardRoute(t *testing.T) {
	s := newTestServer(t)
	tok := validToken(t)

	doRequest(t, s, http.MethodPost, "/games", "", tok)

	w := doRequest(t, s, http.MethodGet, "/leaderboard", "", tok)
	if w.Code != http.StatusOK {
		t.Fatalf("leaderboard: got %d, body %s", w.Code, w.Body.String())
	}
	var rows []leaderboard.Row
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode leaderboard response: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != "player-1" {
		t.Errorf("unexpected leaderboard rows: %+v", rows)
	}
}

func TestMoveWithUnknownKindIsBadRequest(t *testing.T) {
	s := newTestServer(t)
	tok := validToken(t)

	w := doRequest(t, s, http.MethodPost, "/games", "", tok)
	var created gameResponse
	json.Unmarshal(w.Body.Bytes(), &created)

	w = doRequest(t, s, http.MethodPost, "/games/"+created.SessionID+"/moves", `{"kind":"not_a_real_move"}`, tok)
	if w.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", w.Code)
	}
}
