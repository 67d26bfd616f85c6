package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings, read from the environment
type Config struct {
	Addr       string
	DBPath     string
	JWTSecret  string
	BcryptCost int
}

// Load reads configuration from a .env file (if present) and the environment
func Load() (Config, error) {
	// Missing .env is fine in production
	_ = godotenv.Load()

	cfg := Config{
		Addr:       getenv("ADDR", ":3001"),
		DBPath:     getenv("DB_PATH", "portfolio.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		BcryptCost: bcrypt.DefaultCost,
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = cost
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
