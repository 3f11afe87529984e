package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/usecase"
)

const maxRequestBody = 1 << 20

type Handler struct {
	teamService        *usecase.TeamService
	matchService       *usecase.MatchService
	predictionService  *usecase.PredictionService
	leaderboardService *usecase.LeaderboardService
	syncService        *usecase.SyncService
	scoringService     *usecase.ScoringService
	feed               usecase.FeedClient
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	predictionService *usecase.PredictionService,
	leaderboardService *usecase.LeaderboardService,
	syncService *usecase.SyncService,
	scoringService *usecase.ScoringService,
	feed usecase.FeedClient,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:        teamService,
		matchService:       matchService,
		predictionService:  predictionService,
		leaderboardService: leaderboardService,
		syncService:        syncService,
		scoringService:     scoringService,
		feed:               feed,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeBody reads, decodes, and validates a JSON request body into dst.
func (h *Handler) decodeBody(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validator.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
