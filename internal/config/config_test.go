package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tragkas/portfolio/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("BCRYPT_COST", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":3001", cfg.Addr)
	require.Equal(t, "portfolio.db", cfg.DBPath)
	require.Empty(t, cfg.JWTSecret)
	require.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "/tmp/test.db", cfg.DBPath)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, 4, cfg.BcryptCost)
}

func TestLoadBadBcryptCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")

	_, err := config.Load()
	require.Error(t, err)
}
