package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/auto-complete", handler.AutoCompleteMatch)
	mux.HandleFunc("POST /v1/predictions", handler.UpsertPrediction)
	mux.HandleFunc("GET /v1/predictions", handler.ListPredictions)
	mux.HandleFunc("DELETE /v1/predictions/{predictionID}", handler.DeletePrediction)
	mux.HandleFunc("GET /v1/leaderboard", handler.GetLeaderboard)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/admin/sync", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunAdminSync)))
	mux.Handle("GET /v1/admin/sync", RequireAdminToken(adminToken, http.HandlerFunc(handler.GetSyncStatus)))
	mux.Handle("POST /v1/admin/recalculate", RequireAdminToken(adminToken, http.HandlerFunc(handler.RecalculateAll)))
	mux.Handle("POST /v1/admin/matches/{matchID}/calculate", RequireAdminToken(adminToken, http.HandlerFunc(handler.CalculateMatch)))
}

func registerCronRoutes(mux *http.ServeMux, handler *Handler, cronSecret string) {
	mux.Handle("GET /v1/cron/sync", RequireCronSecret(cronSecret, http.HandlerFunc(handler.RunCronSync)))
}
