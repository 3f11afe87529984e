package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/HoussemHfasa/afcon-2025-predictor/external/footballdata"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/config"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/prediction"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/team"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/user"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/infrastructure/repository/memory"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/infrastructure/repository/postgres"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/interfaces/httpapi"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/cache"
	idgen "github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/id"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/resilience"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/scheduler"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/usecase"
)

// App bundles the wired HTTP server and the background sync scheduler.
type App struct {
	Server    *http.Server
	Scheduler *scheduler.Scheduler

	db *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		teamRepo       team.Repository
		matchRepo      match.Repository
		predictionRepo prediction.Repository
		userRepo       user.Repository
		scoreStore     usecase.ScoreCommitter
		db             *sqlx.DB
	)
	switch cfg.Storage {
	case config.StoragePostgres:
		var err error
		db, err = sqlx.ConnectContext(ctx, "postgres", cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		teamRepo = postgres.NewTeamRepository(db)
		matchRepo = postgres.NewMatchRepository(db)
		predictionRepo = postgres.NewPredictionRepository(db)
		userRepo = postgres.NewUserRepository(db)
		scoreStore = postgres.NewScoreStore(db)
	default:
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		matchRepo = memory.NewMatchRepository(memory.SeedMatches())
		memPredictions := memory.NewPredictionRepository(nil)
		memUsers := memory.NewUserRepository(memory.SeedUsers())
		predictionRepo = memPredictions
		userRepo = memUsers
		scoreStore = memory.NewScoreStore(memPredictions, memUsers)
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	feed := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:    cfg.FootballAPIBaseURL,
		APIKey:     cfg.FootballAPIKey,
		LeagueID:   cfg.FootballAPILeagueID,
		Season:     cfg.FootballAPISeason,
		Timeout:    cfg.FootballAPITimeout,
		MaxRetries: cfg.FootballAPIMaxRetries,
		DailyLimit: cfg.FootballAPIDailyLimit,
		Logger:     logger,
		Breaker: resilience.BreakerConfig{
			Enabled:          cfg.FootballAPICircuitEnabled,
			FailureThreshold: cfg.FootballAPICircuitFailureCount,
			OpenTimeout:      cfg.FootballAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FootballAPICircuitHalfOpenMaxReq,
		},
	})

	gate := prediction.Gate{
		CreateCutoff: cfg.PredictionCreateCutoff,
		CancelCutoff: cfg.PredictionCancelCutoff,
	}

	teamSvc := usecase.NewTeamService(teamRepo, logger)
	scoringSvc := usecase.NewScoringService(matchRepo, predictionRepo, userRepo, scoreStore, logger)
	leaderboardSvc := usecase.NewLeaderboardService(userRepo, store, logger)
	predictionSvc := usecase.NewPredictionService(
		predictionRepo, matchRepo, userRepo, gate, idgen.NewRandomGenerator("pred"), logger)
	matchSvc := usecase.NewMatchService(matchRepo, scoringSvc, leaderboardSvc, cfg.AutoCompleteEnabled, logger)
	syncSvc := usecase.NewSyncService(
		feed, matchRepo, usecase.NewTeamNameMatcher(), scoringSvc, leaderboardSvc, logger)

	handler := httpapi.NewHandler(
		teamSvc, matchSvc, predictionSvc, leaderboardSvc, syncSvc, scoringSvc, feed, logger)
	router := httpapi.NewRouter(
		handler, logger, cfg.CORSAllowedOrigins, cfg.AdminAPIToken, cfg.CronSecret)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var sched *scheduler.Scheduler
	if cfg.SyncJobEnabled && cfg.FootballAPIEnabled {
		var err error
		sched, err = scheduler.New(syncSvc, feed, cfg.SyncJobInterval, logger)
		if err != nil {
			if db != nil {
				_ = db.Close()
			}
			return nil, fmt.Errorf("create sync scheduler: %w", err)
		}
	}

	return &App{
		Server:    server,
		Scheduler: sched,
		db:        db,
	}, nil
}

// Close releases resources that outlive the HTTP server.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
