package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("PUT /v1/teams/{teamID}/power", handler.UpdateTeamPower)
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/predictions", handler.GetPredictions)
}

func registerSimulationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/games/generate", handler.GenerateSchedule)
	mux.HandleFunc("DELETE /v1/games", handler.ClearSchedule)
	mux.HandleFunc("POST /v1/games/reset", handler.ResetResults)
	mux.HandleFunc("POST /v1/games/{gameID}/result", handler.RecordResult)
	mux.HandleFunc("POST /v1/simulate/next-week", handler.PlayNextWeek)
	mux.HandleFunc("POST /v1/simulate/week/{week}", handler.PlayWeek)
	mux.HandleFunc("POST /v1/simulate/all", handler.PlayAllRemaining)
}
