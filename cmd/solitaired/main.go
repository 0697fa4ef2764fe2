// Command solitaired runs the external HTTP façade described in
// spec.md §6: authentication, session resolution, and dispatch to the
// in-process rules engine, backed by a configured deck source and
// leaderboard.
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sde-casino/solitaire/internal/auth"
	"github.com/sde-casino/solitaire/internal/config"
	"github.com/sde-casino/solitaire/internal/deck"
	"github.com/sde-casino/solitaire/internal/engine"
	"github.com/sde-casino/solitaire/internal/facade"
	"github.com/sde-casino/solitaire/internal/leaderboard"
	"github.com/sde-casino/solitaire/internal/session"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	decks := deck.NewHTTPSource(cfg.DeckSourceURL, nil)

	lb, err := newLeaderboard(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire leaderboard")
	}

	verifier, err := auth.NewJWTVerifier([]byte(cfg.SigningSecret), cfg.SigningAlgorithm)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build token verifier")
	}

	srv := facade.NewServer(session.NewRegistry(), engine.New(), decks, lb, verifier, log)

	log.Info().Str("addr", cfg.ListenAddr).Msg("starting solitaire façade")
	if err := http.ListenAndServe(cfg.ListenAddr, srv); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func newLeaderboard(cfg config.Config, log zerolog.Logger) (leaderboard.Leaderboard, error) {
	if cfg.DatabaseURL == "" {
		return leaderboard.NewHTTPLeaderboard(cfg.LeaderboardURL, nil), nil
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(context.Background(), leaderboard.Schema); err != nil {
		return nil, err
	}
	log.Info().Msg("leaderboard backed by local Postgres instance")
	return leaderboard.NewPostgresLeaderboard(pool), nil
}
