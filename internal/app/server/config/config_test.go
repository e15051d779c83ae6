package config

import (
	"testing"
	"time"

	"securenest/internal/app/server/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "8f1c2a6d4e0b3f5a7c9e1d2b4a6f8c0e2d4b6a8f0c1e3d5b7a9f1c3e5d7b9a0f"

func TestLoad(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", testKey)
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("DATABASE_URI", "postgres://u:p@localhost:5432/securenest?sslmode=disable")
	t.Setenv("RUN_ADDRESS", ":8080")
	t.Setenv("QUERY_TIMEOUT", "2s")
	t.Setenv("IDENTITY_HMAC_SECRET", "dev-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, ":8080", cfg.Server.RunAddress)
	assert.Equal(t, "postgres://u:p@localhost:5432/securenest?sslmode=disable", cfg.DB.DatabaseURI)
	assert.Equal(t, 2*time.Second, cfg.DB.QueryTimeout)
	assert.Equal(t, "dev-secret", cfg.Identity.HMACSecret)
	assert.Equal(t, testKey, cfg.Crypto.Key.Hex())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", testKey)
	for _, name := range []string{"APP_ENV", "RUN_ADDRESS", "CLIENT_ORIGIN", "QUERY_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, ":5000", cfg.Server.RunAddress)
	assert.Equal(t, "http://localhost:5173", cfg.Server.ClientOrigin)
	assert.Equal(t, 5*time.Second, cfg.DB.QueryTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_MissingKey(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "")

	_, err := Load()
	assert.ErrorIs(t, err, crypto.ErrKeyUnavailable)
}

func TestLoad_InvalidKey(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "too-short")

	_, err := Load()
	require.ErrorIs(t, err, crypto.ErrKeyUnavailable)
	assert.NotContains(t, err.Error(), "too-short")
}

func TestLoad_UnknownEnv(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", testKey)
	t.Setenv("APP_ENV", "staging")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDB(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "")
	t.Setenv("DATABASE_URI", "postgres://localhost/securenest")
	t.Setenv("QUERY_TIMEOUT", "")

	db, err := LoadDB()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/securenest", db.DatabaseURI)
	assert.Equal(t, 5*time.Second, db.QueryTimeout)

	t.Setenv("DATABASE_URI", "")
	_, err = LoadDB()
	assert.Error(t, err)
}

func TestLoadIdentity(t *testing.T) {
	t.Setenv("IDENTITY_ISSUER", "https://issuer.example.com")
	t.Setenv("IDENTITY_HMAC_SECRET", "s3cret")
	t.Setenv("IDENTITY_LEEWAY", "")

	id := LoadIdentity()
	assert.Equal(t, "https://issuer.example.com", id.Issuer)
	assert.Equal(t, "s3cret", id.HMACSecret)
	assert.Equal(t, 30*time.Second, id.Leeway)
}
