package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/ludus/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port: expected 8080, got %d", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL: expected 24h, got %s", cfg.TokenTTL)
	}
	if cfg.LockedScope != models.LockedScopeAll {
		t.Errorf("LockedScope: expected %q, got %q", models.LockedScopeAll, cfg.LockedScope)
	}
	if cfg.JWTSecret != DevJWTSecret {
		t.Errorf("JWTSecret: expected dev secret, got %q", cfg.JWTSecret)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("DASHBOARD_LOCKED_SCOPE", "month")
	t.Setenv("ADMIN_EMAIL", "admin@escola.com")
	t.Setenv("ADMIN_PASSWORD", "supersecret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port: expected 9090, got %d", cfg.Port)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("TokenTTL: expected 2h, got %s", cfg.TokenTTL)
	}
	if cfg.LockedScope != models.LockedScopeMonth {
		t.Errorf("LockedScope: expected month, got %q", cfg.LockedScope)
	}
	if cfg.AdminEmail != "admin@escola.com" {
		t.Errorf("AdminEmail: got %q", cfg.AdminEmail)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DB_PATH=/tmp/from-dotenv.db\n"), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	// godotenv sets the variable for the process; clear it afterwards.
	t.Setenv("DB_PATH", "")
	os.Unsetenv("DB_PATH")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "/tmp/from-dotenv.db" {
		t.Errorf("DBPath: expected value from .env, got %q", cfg.DBPath)
	}
}

func TestLoadMissingDotEnv(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"locked scope", "DASHBOARD_LOCKED_SCOPE", "week"},
		{"port", "PORT", "0"},
		{"admin without password", "ADMIN_EMAIL", "admin@escola.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(""); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.val)
			}
		})
	}
}
