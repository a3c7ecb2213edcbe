package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, "data/shoplite.db", cfg.Database.Path)
	assert.Empty(t, cfg.Auth.JWTSecret)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHOPLITE_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("SHOPLITE_AUTH_JWTSECRET", "s3cret")
	t.Setenv("SHOPLITE_AUTH_TOKENTTLHOURS", "48")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 48, cfg.Auth.TokenTTLHours)
}
