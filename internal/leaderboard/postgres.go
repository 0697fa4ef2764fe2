package leaderboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLeaderboard is a pgx-backed implementation against the
// table described in original_source/solitaire/leaderboard/models,
// ported column-for-column: leaderboard(user_id primary key,
// played_games, games_won), with 0 <= games_won <= played_games
// always holding (spec §6).
type PostgresLeaderboard struct {
	pool *pgxpool.Pool
}

// NewPostgresLeaderboard wraps an already-connected pool. The caller
// owns the pool's lifecycle.
func NewPostgresLeaderboard(pool *pgxpool.Pool) *PostgresLeaderboard {
	return &PostgresLeaderboard{pool: pool}
}

// Schema is the DDL the table must satisfy. This package does not
// apply it; cmd/solitaired executes it at startup when a database URL
// is configured.
const Schema = `
CREATE TABLE IF NOT EXISTS leaderboard (
	user_id      TEXT PRIMARY KEY,
	played_games INTEGER NOT NULL DEFAULT 0,
	games_won    INTEGER NOT NULL DEFAULT 0,
	CHECK (games_won >= 0 AND games_won <= played_games)
);
`

func (l *PostgresLeaderboard) GameStarted(ctx context.Context, userID string) error {
	const q = `
		INSERT INTO leaderboard (user_id, played_games, games_won)
		VALUES ($1, 1, 0)
		ON CONFLICT (user_id) DO UPDATE
			SET played_games = leaderboard.played_games + 1
	`
	if _, err := l.pool.Exec(ctx, q, userID); err != nil {
		return fmt.Errorf("%w: %v", Unavailable, err)
	}
	return nil
}

func (l *PostgresLeaderboard) GameWon(ctx context.Context, userID string) error {
	const q = `
		UPDATE leaderboard
		SET games_won = games_won + 1
		WHERE user_id = $1
	`
	tag, err := l.pool.Exec(ctx, q, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", Unavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return UnknownUser
	}
	return nil
}

func (l *PostgresLeaderboard) Rows(ctx context.Context) ([]Row, error) {
	const q = `SELECT user_id, played_games, games_won FROM leaderboard ORDER BY games_won DESC, played_games DESC`
	rows, err := l.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", Unavailable, err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.UserID, &r.PlayedGames, &r.GamesWon); err != nil {
			return nil, fmt.Errorf("%w: %v", Unavailable, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", Unavailable, err)
	}
	return out, nil
}
