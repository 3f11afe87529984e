package httpapi

import (
	"fmt"
	"net/http"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/usecase"
)

func (h *Handler) UpsertPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertPrediction")
	defer span.End()

	var req upsertPredictionRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.predictionService.Upsert(ctx, usecase.UpsertPredictionInput{
		UserID:          req.UserID,
		MatchID:         req.MatchID,
		PredictedWinner: req.PredictedWinner,
		PredictedScoreA: req.PredictedScoreA,
		PredictedScoreB: req.PredictedScoreB,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert prediction failed",
			"user_id", req.UserID, "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(p))
}

func (h *Handler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPredictions")
	defer span.End()

	userID := r.URL.Query().Get("userId")
	predictions, err := h.predictionService.ListByUser(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list predictions failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]predictionDTO, 0, len(predictions))
	for _, p := range predictions {
		items = append(items, predictionToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) DeletePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePrediction")
	defer span.End()

	predictionID := r.PathValue("predictionID")
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(ctx, w, fmt.Errorf("%w: userId query parameter is required", usecase.ErrInvalidInput))
		return
	}

	if err := h.predictionService.Delete(ctx, userID, predictionID); err != nil {
		h.logger.WarnContext(ctx, "delete prediction failed",
			"user_id", userID, "prediction_id", predictionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
