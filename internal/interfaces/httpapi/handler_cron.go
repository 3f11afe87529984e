package httpapi

import "net/http"

// RunCronSync is the endpoint external schedulers hit. It reconciles live
// fixtures first and falls back to today's schedule when nothing is live.
// A spent daily budget is not an error for a periodic caller; the run is
// skipped with a success body so the scheduler does not retry.
func (h *Handler) RunCronSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunCronSync")
	defer span.End()

	if !h.feed.CanCall() {
		h.logger.WarnContext(ctx, "cron sync skipped, daily budget spent")
		writeSuccess(ctx, w, http.StatusOK, cronSkippedDTO{
			Skipped: true,
			Reason:  "budgetExhausted",
			Usage:   h.feed.Usage(),
		})
		return
	}

	result, err := h.syncService.RunScheduled(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "cron sync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
