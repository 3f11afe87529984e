package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.Storage != StorageMemory {
		t.Fatalf("unexpected default storage: %q", cfg.Storage)
	}
	if cfg.PredictionCreateCutoff != time.Hour || cfg.PredictionCancelCutoff != time.Hour {
		t.Fatalf("unexpected cutoffs: create=%s cancel=%s", cfg.PredictionCreateCutoff, cfg.PredictionCancelCutoff)
	}
	if !cfg.AutoCompleteEnabled {
		t.Fatalf("auto-complete must default on")
	}
	if cfg.FootballAPIEnabled {
		t.Fatalf("feed must default off")
	}
	if cfg.FootballAPIDailyLimit != 95 || cfg.FootballAPILeagueID != 6 || cfg.FootballAPISeason != 2024 {
		t.Fatalf("unexpected feed defaults: limit=%d league=%d season=%d",
			cfg.FootballAPIDailyLimit, cfg.FootballAPILeagueID, cfg.FootballAPISeason)
	}
	if cfg.SyncJobInterval != 2*time.Minute {
		t.Fatalf("unexpected sync interval: %s", cfg.SyncJobInterval)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_PostgresRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE", StoragePostgres)
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STORAGE=postgres without DB_URL")
	}
}

func TestLoad_InvalidStorage(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE", "redis")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown STORAGE")
	}
}

func TestLoad_FeedRequiresKeyWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FOOTBALL_API_ENABLED", "true")
	t.Setenv("FOOTBALL_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when FOOTBALL_API_ENABLED=true without FOOTBALL_API_KEY")
	}
}

func TestLoad_NegativeCutoffRejected(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PREDICTION_CREATE_CUTOFF", "-5m")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative PREDICTION_CREATE_CUTOFF")
	}
}

func TestLoad_CORSParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://a.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}
