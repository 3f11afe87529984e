package httpapi

import "net/http"

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	status := r.URL.Query().Get("status")
	group := r.URL.Query().Get("group")

	views, err := h.matchService.List(ctx, status, group)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "status", status, "group", group, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(views))
	for _, view := range views {
		items = append(items, matchToDTO(view))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	view, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(view))
}

func (h *Handler) AutoCompleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AutoCompleteMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	view, err := h.matchService.AutoComplete(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "auto-complete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(view))
}
