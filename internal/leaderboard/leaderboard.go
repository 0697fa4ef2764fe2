// Package leaderboard records per-user play counts, grounded in
// original_source/solitaire/leaderboard: a row per user id tracking
// played_games and games_won, incremented by "new game started" and
// "game won" events (spec §6).
package leaderboard

import (
	"context"
	"errors"
)

// Unavailable wraps any transport or storage failure talking to the
// leaderboard collaborator, surfaced to the façade as
// LeaderboardUnavailable (spec §7).
var Unavailable = errors.New("leaderboard: unavailable")

// Row is one user's leaderboard record, mirroring the leaderboard
// table's three columns exactly (spec §6).
type Row struct {
	UserID      string `json:"user_id"`
	PlayedGames int    `json:"played_games"`
	GamesWon    int    `json:"games_won"`
}

// Leaderboard is the external leaderboard collaborator, consumed but
// not owned by the engine (spec §6).
type Leaderboard interface {
	// GameStarted records that userID has begun a new game,
	// incrementing played_games (creating the row on first use).
	GameStarted(ctx context.Context, userID string) error

	// GameWon records that userID has just won a game, incrementing
	// games_won. It is called only after CheckWin reports a win.
	GameWon(ctx context.Context, userID string) error

	// Rows returns every user's current standing.
	Rows(ctx context.Context) ([]Row, error)
}

// UnknownUser is returned by GameWon when the user has no existing
// row (a win reported for a user that never started a game).
var UnknownUser = errors.New("leaderboard: unknown user")
