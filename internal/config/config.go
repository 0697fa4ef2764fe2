// Package config loads process configuration the way
// original_source/solitaire/process_centric/main.py does: an optional
// .env file loaded first, then the process environment, with every
// mandatory value checked before the server starts (spec §6).
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Config holds every value the façade, the session engine's external
// collaborators, and the leaderboard storage need at startup.
type Config struct {
	SigningSecret    string
	SigningAlgorithm string
	DeckSourceURL    string
	LeaderboardURL   string

	// LogicLayerURL is reserved for deployments that split the façade
	// from the rules engine over HTTP, as the original system does.
	// This implementation dispatches to the engine in-process and
	// never reads it.
	LogicLayerURL string

	AccessTokenMinutes  int
	RefreshTokenMinutes int
	DatabaseURL         string
	ListenAddr          string
}

// Load reads an optional .env file at path (a missing file is not an
// error, matching python-dotenv's load_dotenv() semantics), then
// layers the process environment over it, and validates that every
// mandatory field is present.
func Load(envFilePath string) (Config, error) {
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: reading %s: %w", envFilePath, err)
		}
	}

	cfg := Config{
		SigningSecret:       os.Getenv("JWT_SECRET_KEY"),
		SigningAlgorithm:    os.Getenv("JWT_ALGORITHM"),
		DeckSourceURL:       os.Getenv("DECK_SOURCE_URL"),
		LeaderboardURL:      os.Getenv("LEADERBOARD_URL"),
		LogicLayerURL:       os.Getenv("LOGIC_LAYER_SERVICE_URL"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		ListenAddr:          envOr("LISTEN_ADDR", ":8080"),
		AccessTokenMinutes:  envInt("ACCESS_TOKEN_MINUTES", 15),
		RefreshTokenMinutes: envInt("REFRESH_TOKEN_MINUTES", 60*24*7),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	missing := []string{}
	if c.SigningSecret == "" {
		missing = append(missing, "JWT_SECRET_KEY")
	}
	if c.SigningAlgorithm == "" {
		missing = append(missing, "JWT_ALGORITHM")
	}
	if c.DeckSourceURL == "" {
		missing = append(missing, "DECK_SOURCE_URL")
	}
	if c.LeaderboardURL == "" {
		missing = append(missing, "LEADERBOARD_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing required environment variables: %v", missing)
	}
	if c.SigningAlgorithm != "" && jwt.GetSigningMethod(c.SigningAlgorithm) == nil {
		return fmt.Errorf("config: unsupported JWT_ALGORITHM %q", c.SigningAlgorithm)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
