package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergesSourcesInPriorityOrder(t *testing.T) {
	b := newConfigBuilder()
	// a higher-priority source with a sign key and custom DSN
	b.configs = append(b.configs, &StructuredConfig{
		Auth:    Auth{TokenSignKey: "from-env"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/tracker"}},
	})
	b = b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	// explicit value wins over the default
	assert.Equal(t, "postgres://localhost/tracker", cfg.Storage.DB.DSN)
	// defaults fill what no other source set
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.Auth.TokenDuration)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestBuild_DefaultsAloneFailValidation(t *testing.T) {
	// no source supplies a token sign key
	_, err := newConfigBuilder().withDefaults().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTokenSignKey)
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: StructuredConfig{
				Auth:    Auth{TokenSignKey: "k", TokenDuration: time.Minute},
				Storage: Storage{DB: DB{DSN: "tracker.db"}},
			},
			wantErr: nil,
		},
		{
			name: "missing sign key",
			cfg: StructuredConfig{
				Auth:    Auth{TokenDuration: time.Minute},
				Storage: Storage{DB: DB{DSN: "tracker.db"}},
			},
			wantErr: ErrMissingTokenSignKey,
		},
		{
			name: "zero duration",
			cfg: StructuredConfig{
				Auth:    Auth{TokenSignKey: "k"},
				Storage: Storage{DB: DB{DSN: "tracker.db"}},
			},
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name: "empty dsn",
			cfg: StructuredConfig{
				Auth: Auth{TokenSignKey: "k", TokenDuration: time.Minute},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
