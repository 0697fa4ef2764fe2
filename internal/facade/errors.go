package facade

import (
	"errors"
	"net/http"

	"github.com/sde-casino/solitaire/internal/auth"
	"github.com/sde-casino/solitaire/internal/deck"
	"github.com/sde-casino/solitaire/internal/engine"
	"github.com/sde-casino/solitaire/internal/game"
	"github.com/sde-casino/solitaire/internal/leaderboard"
	"github.com/sde-casino/solitaire/internal/session"
)

// errBadRequest marks a request-shape error (unparseable body,
// unknown move kind) distinct from a rule violation raised by the
// engine against an otherwise well-formed request.
type errBadRequest struct{ err error }

func (e errBadRequest) Error() string { return e.err.Error() }
func (e errBadRequest) Unwrap() error { return e.err }

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeError maps an error from the engine or an external
// collaborator to an HTTP status: rule violations are 409, a corrupt
// snapshot is 500, a missing session or leaderboard user is 404, an
// unverifiable token is 401, a failing collaborator is 502, a
// malformed request is 400, and anything else is 500.
func writeError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeJSON(w, status, errorBody{Error: err.Error(), Code: code})
}

func classify(err error) (int, string) {
	var ruleErr *engine.RuleError
	switch {
	case errors.As(err, &ruleErr):
		return http.StatusConflict, ruleErr.Code()
	case errors.Is(err, session.UnknownSession):
		return http.StatusNotFound, "UnknownSession"
	case errors.Is(err, auth.Unauthenticated):
		return http.StatusUnauthorized, "Unauthenticated"
	case errors.Is(err, game.CorruptSnapshot):
		return http.StatusInternalServerError, "CorruptSnapshot"
	case errors.Is(err, deck.Unavailable):
		return http.StatusBadGateway, "DeckSourceUnavailable"
	case errors.Is(err, leaderboard.Unavailable):
		return http.StatusBadGateway, "LeaderboardUnavailable"
	case errors.Is(err, leaderboard.UnknownUser):
		return http.StatusNotFound, "UnknownUser"
	case isBadRequest(err):
		return http.StatusBadRequest, "BadRequest"
	default:
		return http.StatusInternalServerError, "Internal"
	}
}

func isBadRequest(err error) bool {
	var br errBadRequest
	return errors.As(err, &br)
}
