package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"JWT_SECRET_KEY", "JWT_ALGORITHM", "DECK_SOURCE_URL", "LEADERBOARD_URL",
		"LOGIC_LAYER_SERVICE_URL", "DATABASE_URL", "LISTEN_ADDR",
		"ACCESS_TOKEN_MINUTES", "REFRESH_TOKEN_MINUTES",
	} {
		os.Unsetenv(k)
	}
}

func TestLoadFailsFastOnMissingMandatoryValues(t *testing.T) {
	clearEnv(t)
	_, err := Load("")
	require.Error(t, err, "expected an error when mandatory config is missing")
}

func TestLoadSucceedsWithMandatoryValuesSet(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("JWT_ALGORITHM", "HS256")
	t.Setenv("DECK_SOURCE_URL", "http://deck.local")
	t.Setenv("LEADERBOARD_URL", "http://leaderboard.local")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr, "expected default listen addr")
	assert.Equal(t, 15, cfg.AccessTokenMinutes, "expected default access token minutes")
}

func TestLoadUsesOverriddenListenAddr(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("JWT_ALGORITHM", "HS256")
	t.Setenv("DECK_SOURCE_URL", "http://deck.local")
	t.Setenv("LEADERBOARD_URL", "http://leaderboard.local")
	t.Setenv("LISTEN_ADDR", ":9090")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
}
