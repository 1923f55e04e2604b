package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Stats.CopyRatio != 6 {
		t.Errorf("Stats.CopyRatio = %d, want 6", cfg.Stats.CopyRatio)
	}
	if cfg.Database.DBName != "unilib" {
		t.Errorf("Database.DBName = %q, want unilib", cfg.Database.DBName)
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadConfig succeeded without a JWT secret")
	}
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
database:
  dbname: library
stats:
  copy_ratio: 4
jwt:
  secret: file-secret
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("STATS_COPY_RATIO", "8")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	// Env wins over file, file wins over defaults.
	if cfg.Server.Port != "7070" {
		t.Errorf("Server.Port = %q, want 7070", cfg.Server.Port)
	}
	if cfg.Stats.CopyRatio != 8 {
		t.Errorf("Stats.CopyRatio = %d, want 8", cfg.Stats.CopyRatio)
	}
	if cfg.Database.DBName != "library" {
		t.Errorf("Database.DBName = %q, want library", cfg.Database.DBName)
	}
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "not-a-duration")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadConfig accepted a malformed duration")
	}
}

func TestLoadConfigRejectsNonPositiveCopyRatio(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STATS_COPY_RATIO", "0")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadConfig accepted a zero copy ratio")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "secret"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "unilib"

	got := cfg.GetPostgresConnectionString()
	want := "postgres://app:secret@db:5433/unilib?sslmode=disable"
	if got != want {
		t.Errorf("GetPostgresConnectionString() = %q, want %q", got, want)
	}
}
