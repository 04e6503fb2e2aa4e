// Package config loads server settings from the environment.
//
// An optional .env file is loaded first; variables already set in the
// environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mmynk/ludus/internal/models"
)

// DevJWTSecret signs session tokens when JWT_SECRET is unset. It must not
// be used outside local development.
const DevJWTSecret = "ludus-dev-secret-change-me"

// Config holds the server settings.
type Config struct {
	Port       int
	DBPath     string
	StaticPath string

	JWTSecret string
	TokenTTL  time.Duration

	// AdminEmail, AdminPassword and AdminName bootstrap the first admin account.
	AdminEmail    string
	AdminPassword string
	AdminName     string

	LockedScope models.LockedScope
	LogLevel    string
}

// Load reads the configuration. dotEnvPath may name a .env file; a missing
// file is not an error.
func Load(dotEnvPath string) (*Config, error) {
	if dotEnvPath != "" {
		if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", dotEnvPath, err)
		}
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("PORT", 8080)
	v.SetDefault("DB_PATH", "./data/ludus.db")
	v.SetDefault("STATIC_PATH", "../frontend/static")
	v.SetDefault("JWT_SECRET", DevJWTSecret)
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_NAME", "Administrador")
	v.SetDefault("DASHBOARD_LOCKED_SCOPE", string(models.LockedScopeAll))
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	cfg := &Config{
		Port:          v.GetInt("PORT"),
		DBPath:        v.GetString("DB_PATH"),
		StaticPath:    v.GetString("STATIC_PATH"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		TokenTTL:      v.GetDuration("TOKEN_TTL"),
		AdminEmail:    v.GetString("ADMIN_EMAIL"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		AdminName:     v.GetString("ADMIN_NAME"),
		LockedScope:   models.LockedScope(v.GetString("DASHBOARD_LOCKED_SCOPE")),
		LogLevel:      v.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("invalid TOKEN_TTL %s", c.TokenTTL)
	}
	switch c.LockedScope {
	case models.LockedScopeAll, models.LockedScopeMonth:
	default:
		return fmt.Errorf("invalid DASHBOARD_LOCKED_SCOPE %q: expected %q or %q",
			c.LockedScope, models.LockedScopeAll, models.LockedScopeMonth)
	}
	if c.AdminEmail != "" && c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
	}
	return nil
}
