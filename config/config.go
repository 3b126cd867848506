package config

import (
	"log"
	"os"
	"time"
)

// Config is process-wide configuration, loaded once at startup and passed
// explicitly to the components that need it.
type Config struct {
	DatabaseDSN    string
	JWTSecret      []byte
	Port           string
	AccessTokenTTL time.Duration
}

func Load() *Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	cfg := &Config{
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		JWTSecret:      []byte(secret),
		Port:           os.Getenv("PORT"),
		AccessTokenTTL: 20 * time.Minute,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}
