package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/tracker")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "tracker-test")
	t.Setenv("AUTH_TOKEN_DURATION", "45m")
	t.Setenv("SERVER_ADDRESS", "localhost:9999")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "postgres://u:p@localhost:5432/tracker", cfg.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "tracker-test", cfg.Auth.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
}

func TestParseEnv_EmptyEnvironmentIsNotAnError(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
