// Package facade is the external HTTP surface described in spec.md
// §6, grounded in original_source/solitaire/process_centric: it
// authenticates the bearer token, resolves the session, and dispatches
// to exactly one engine operation per request. Unlike the original,
// which proxies to a separate logic-layer service over HTTP, this
// façade calls the engine in-process — LogicLayerURL in Config is kept
// only for compatibility with split deployments and is otherwise
// unused.
package facade

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/sde-casino/solitaire/internal/auth"
	"github.com/sde-casino/solitaire/internal/card"
	"github.com/sde-casino/solitaire/internal/deal"
	"github.com/sde-casino/solitaire/internal/deck"
	"github.com/sde-casino/solitaire/internal/engine"
	"github.com/sde-casino/solitaire/internal/game"
	"github.com/sde-casino/solitaire/internal/leaderboard"
	"github.com/sde-casino/solitaire/internal/session"
)

// Server wires the engine, the session registry, and the external
// collaborators (deck source, leaderboard, token verifier) behind a
// chi router.
type Server struct {
	Sessions    *session.Registry
	Engine      *engine.Engine
	Decks       deck.Source
	Leaderboard leaderboard.Leaderboard
	Verifier    auth.Verifier
	Log         zerolog.Logger

	router chi.Router
}

// NewServer builds a Server with its routes and middleware attached.
func NewServer(sessions *session.Registry, eng *engine.Engine, decks deck.Source, lb leaderboard.Leaderboard, verifier auth.Verifier, log zerolog.Logger) *Server {
	s := &Server{
		Sessions:    sessions,
		Engine:      eng,
		Decks:       decks,
		Leaderboard: lb,
		Verifier:    verifier,
		Log:         log,
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/games", s.handleCreateGame)
		r.Post("/games/{session_id}/draw", s.handleDraw)
		r.Post("/games/{session_id}/reset-stock", s.handleResetStock)
		r.Post("/games/{session_id}/moves", s.handleMove)
		r.Get("/leaderboard", s.handleLeaderboard)
	})

	s.router = r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Log.Info().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}

type userIDKey struct{}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.Verifier.Verify(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := userIDFromContext(ctx)

	deckID, cards, err := s.Decks.NewDeck(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	g, err := deal.Build(deckID, cards[:])
	if err != nil {
		writeError(w, err)
		return
	}

	sessionID := uuid.NewString()
	s.Sessions.Create(sessionID, g)

	if userID != "" {
		if err := s.Leaderboard.GameStarted(ctx, userID); err != nil {
			s.Log.Error().Err(err).Str("session_id", sessionID).Str("user_id", userID).
				Msg("leaderboard game-started notification failed")
		}
	}

	writeJSON(w, http.StatusCreated, newGameResponse(sessionID, g))
}

func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	s.runMove(w, r, func(g *game.Game) (*game.Game, error) {
		return s.Engine.DrawFromStock(g)
	})
}

func (s *Server) handleResetStock(w http.ResponseWriter, r *http.Request) {
	s.runMove(w, r, func(g *game.Game) (*game.Game, error) {
		return s.Engine.ResetStock(g)
	})
}

type moveRequest struct {
	Kind  string `json:"kind"`
	From  int    `json:"from"`
	To    int    `json:"to"`
	Count int    `json:"count"`
	Suit  string `json:"suit"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errBadRequest{err})
		return
	}

	var suit card.Suit
	var err error
	if req.Kind == "tableau_to_foundation" || req.Kind == "talon_to_foundation" {
		suit, err = card.ParseSuit(req.Suit)
		if err != nil {
			writeError(w, errBadRequest{err})
			return
		}
	}

	s.runMove(w, r, func(g *game.Game) (*game.Game, error) {
		switch req.Kind {
		case "tableau_to_tableau":
			count := req.Count
			if count == 0 {
				count = 1
			}
			return s.Engine.TableauToTableau(g, req.From, req.To, count)
		case "tableau_to_foundation":
			return s.Engine.TableauToFoundation(g, req.From, suit)
		case "talon_to_foundation":
			return s.Engine.TalonToFoundation(g, suit)
		case "talon_to_tableau":
			return s.Engine.TalonToTableau(g, req.To)
		default:
			return nil, errBadRequest{errors.New("facade: unknown move kind")}
		}
	})
}

// runMove resolves the session named in the URL, applies fn through
// the registry (which serialises it against that session), records a
// win with the leaderboard if the move completed the game, and writes
// the resulting snapshot or the mapped error. The leaderboard
// notification is fire-and-forget: the move already mutated the
// authoritative session state, so a collaborator failure is logged,
// not propagated to the caller.
func (s *Server) runMove(w http.ResponseWriter, r *http.Request, fn func(g *game.Game) (*game.Game, error)) {
	sessionID := chi.URLParam(r, "session_id")
	userID := userIDFromContext(r.Context())

	wasWon := false
	next, err := s.Sessions.With(sessionID, func(g *game.Game) (*game.Game, error) {
		wasWon = g.Won
		return fn(g)
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if !wasWon && next.Won && userID != "" {
		if err := s.Leaderboard.GameWon(r.Context(), userID); err != nil {
			s.Log.Error().Err(err).Str("session_id", sessionID).Str("user_id", userID).
				Msg("leaderboard game-won notification failed")
		}
	}

	writeJSON(w, http.StatusOK, next.Snapshot())
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	rows, err := s.Leaderboard.Rows(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type gameResponse struct {
	SessionID string        `json:"session_id"`
	State     game.Snapshot `json:"state"`
}

func newGameResponse(sessionID string, g *game.Game) gameResponse {
	return gameResponse{SessionID: sessionID, State: g.Snapshot()}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
