package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	Storage string
	DBURL   string

	CacheEnabled bool
	CacheTTL     time.Duration

	CORSAllowedOrigins []string

	AdminAPIToken string
	CronSecret    string

	PredictionCreateCutoff time.Duration
	PredictionCancelCutoff time.Duration

	AutoCompleteEnabled bool

	FootballAPIEnabled               bool
	FootballAPIBaseURL               string
	FootballAPIKey                   string
	FootballAPITimeout               time.Duration
	FootballAPIMaxRetries            int
	FootballAPIDailyLimit            int
	FootballAPILeagueID              int
	FootballAPISeason                int
	FootballAPICircuitEnabled        bool
	FootballAPICircuitFailureCount   int
	FootballAPICircuitOpenTimeout    time.Duration
	FootballAPICircuitHalfOpenMaxReq int

	SyncJobEnabled  bool
	SyncJobInterval time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	storage := strings.ToLower(strings.TrimSpace(getEnv("STORAGE", StorageMemory)))
	switch storage {
	case StorageMemory, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("invalid STORAGE %q: valid values are %s, %s", storage, StorageMemory, StoragePostgres)
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storage == StoragePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORAGE=postgres")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	createCutoff, err := time.ParseDuration(getEnv("PREDICTION_CREATE_CUTOFF", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PREDICTION_CREATE_CUTOFF: %w", err)
	}
	if createCutoff < 0 {
		return Config{}, fmt.Errorf("PREDICTION_CREATE_CUTOFF must be >= 0")
	}
	cancelCutoff, err := time.ParseDuration(getEnv("PREDICTION_CANCEL_CUTOFF", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PREDICTION_CANCEL_CUTOFF: %w", err)
	}
	if cancelCutoff < 0 {
		return Config{}, fmt.Errorf("PREDICTION_CANCEL_CUTOFF must be >= 0")
	}

	autoCompleteEnabled, err := strconv.ParseBool(getEnv("AUTO_COMPLETE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTO_COMPLETE_ENABLED: %w", err)
	}

	footballEnabled, err := strconv.ParseBool(getEnv("FOOTBALL_API_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_ENABLED: %w", err)
	}
	footballKey := strings.TrimSpace(getEnv("FOOTBALL_API_KEY", ""))
	if footballEnabled && footballKey == "" {
		return Config{}, fmt.Errorf("FOOTBALL_API_KEY is required when FOOTBALL_API_ENABLED=true")
	}
	footballTimeout, err := time.ParseDuration(getEnv("FOOTBALL_API_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_TIMEOUT: %w", err)
	}
	if footballTimeout <= 0 {
		return Config{}, fmt.Errorf("FOOTBALL_API_TIMEOUT must be > 0")
	}
	footballMaxRetries, err := getEnvAsInt("FOOTBALL_API_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_MAX_RETRIES: %w", err)
	}
	if footballMaxRetries < 0 {
		return Config{}, fmt.Errorf("FOOTBALL_API_MAX_RETRIES must be >= 0")
	}
	footballDailyLimit, err := getEnvAsInt("FOOTBALL_API_DAILY_LIMIT", 95)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_DAILY_LIMIT: %w", err)
	}
	if footballDailyLimit < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_API_DAILY_LIMIT must be >= 1")
	}
	footballLeagueID, err := getEnvAsInt("FOOTBALL_API_LEAGUE_ID", 6)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_LEAGUE_ID: %w", err)
	}
	if footballLeagueID < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_API_LEAGUE_ID must be >= 1")
	}
	footballSeason, err := getEnvAsInt("FOOTBALL_API_SEASON", 2024)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_SEASON: %w", err)
	}
	if footballSeason < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_API_SEASON must be >= 1")
	}
	footballCircuitEnabled, err := strconv.ParseBool(getEnv("FOOTBALL_API_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_CIRCUIT_ENABLED: %w", err)
	}
	footballCircuitFailureCount, err := getEnvAsInt("FOOTBALL_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if footballCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	footballCircuitOpenTimeout, err := time.ParseDuration(getEnv("FOOTBALL_API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if footballCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("FOOTBALL_API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	footballCircuitHalfOpenMaxReq, err := getEnvAsInt("FOOTBALL_API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if footballCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	syncJobEnabled, err := strconv.ParseBool(getEnv("SYNC_JOB_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_JOB_ENABLED: %w", err)
	}
	syncJobInterval, err := time.ParseDuration(getEnv("SYNC_JOB_INTERVAL", "2m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_JOB_INTERVAL: %w", err)
	}
	if syncJobInterval <= 0 {
		return Config{}, fmt.Errorf("SYNC_JOB_INTERVAL must be > 0")
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "afcon-predictor-api"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		Storage: storage,
		DBURL:   dbURL,

		CacheEnabled: cacheEnabled,
		CacheTTL:     cacheTTL,

		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		AdminAPIToken: strings.TrimSpace(getEnv("ADMIN_API_TOKEN", "")),
		CronSecret:    strings.TrimSpace(getEnv("CRON_SECRET", "")),

		PredictionCreateCutoff: createCutoff,
		PredictionCancelCutoff: cancelCutoff,

		AutoCompleteEnabled: autoCompleteEnabled,

		FootballAPIEnabled:               footballEnabled,
		FootballAPIBaseURL:               strings.TrimSpace(getEnv("FOOTBALL_API_BASE_URL", "https://v3.football.api-sports.io")),
		FootballAPIKey:                   footballKey,
		FootballAPITimeout:               footballTimeout,
		FootballAPIMaxRetries:            footballMaxRetries,
		FootballAPIDailyLimit:            footballDailyLimit,
		FootballAPILeagueID:              footballLeagueID,
		FootballAPISeason:                footballSeason,
		FootballAPICircuitEnabled:        footballCircuitEnabled,
		FootballAPICircuitFailureCount:   footballCircuitFailureCount,
		FootballAPICircuitOpenTimeout:    footballCircuitOpenTimeout,
		FootballAPICircuitHalfOpenMaxReq: footballCircuitHalfOpenMaxReq,

		SyncJobEnabled:  syncJobEnabled,
		SyncJobInterval: syncJobInterval,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
