package httpapi

import "net/http"

func (h *Handler) RunAdminSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAdminSync")
	defer span.End()

	var req adminSyncRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.syncService.Run(ctx, req.Mode)
	if err != nil {
		h.logger.WarnContext(ctx, "admin sync failed", "mode", req.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) GetSyncStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSyncStatus")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, syncStatusDTO{
		Usage:   h.feed.Usage(),
		CanSync: h.feed.CanCall(),
	})
}

func (h *Handler) RecalculateAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateAll")
	defer span.End()

	processed, err := h.scoringService.RecalculateAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "full recalculation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	if err := h.leaderboardService.RecomputeRanks(ctx); err != nil {
		h.logger.ErrorContext(ctx, "rank recompute after recalculation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recalculateResultDTO{PredictionsProcessed: processed})
}

func (h *Handler) CalculateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CalculateMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	processed, err := h.scoringService.ScoreMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "calculate match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	if err := h.leaderboardService.RecomputeRanks(ctx); err != nil {
		h.logger.ErrorContext(ctx, "rank recompute after calculate failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, calculateResultDTO{
		MatchID:              matchID,
		PredictionsProcessed: processed,
	})
}
