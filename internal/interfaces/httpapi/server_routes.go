package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/metrics", handler.ListMetrics)
}

// League routes accept either the display name or the short id in {league}.
func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{league}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{league}/metrics", handler.ListMetricSummaries)
	mux.HandleFunc("GET /v1/leagues/{league}/metrics/{metric}", handler.GetMetricSummary)
	mux.HandleFunc("GET /v1/leagues/{league}/matches", handler.FindMatches)
}
