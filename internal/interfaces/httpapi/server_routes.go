package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/projected-overall", handler.GetProjectedOverall)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetCareerStats)
	mux.HandleFunc("GET /v1/players/{playerID}/achievements", handler.ListAchievements)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/matches/{matchID}/champion", handler.GetChampion)
	mux.HandleFunc("GET /v1/hall-of-fame", handler.ListHallOfFame)
	mux.HandleFunc("GET /v1/dashboard", handler.GetDashboard)
	mux.HandleFunc("GET /v1/presets", handler.ListPresets)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminToken(adminToken, h)
	}

	mux.Handle("POST /v1/players", admin(handler.CreatePlayer))
	mux.Handle("PUT /v1/players/{playerID}", admin(handler.UpdatePlayer))
	mux.Handle("POST /v1/players/{playerID}/onboarding", admin(handler.CompleteOnboarding))
	mux.Handle("POST /v1/players/{playerID}/achievements/{achievementID}", admin(handler.GrantAchievement))
	mux.Handle("DELETE /v1/players/{playerID}/achievements/{achievementID}", admin(handler.RevokeAchievement))

	mux.Handle("POST /v1/drafts/preview", admin(handler.PreviewDraft))
	mux.Handle("POST /v1/matches", admin(handler.CreateDraft))
	mux.Handle("PUT /v1/matches/{matchID}/players", admin(handler.MoveDraftPlayer))
	mux.Handle("POST /v1/matches/{matchID}/publish", admin(handler.PublishMatch))
	mux.Handle("POST /v1/matches/{matchID}/cancel", admin(handler.CancelMatch))
	mux.Handle("POST /v1/matches/{matchID}/finish", admin(handler.FinishMatch))
	mux.Handle("POST /v1/matches/{matchID}/tie-break", admin(handler.CreateTieBreakGame))
	mux.Handle("PUT /v1/matches/{matchID}/champion-photo", admin(handler.SetChampionPhoto))
	mux.Handle("POST /v1/matches/{matchID}/games/{gameID}/start", admin(handler.StartGame))
	mux.Handle("POST /v1/matches/{matchID}/games/{gameID}/end", admin(handler.EndGame))
	mux.Handle("POST /v1/matches/{matchID}/games/{gameID}/goals", admin(handler.RegisterGoal))
	mux.Handle("PUT /v1/matches/{matchID}/goals/{goalID}", admin(handler.EditGoal))
	mux.Handle("POST /v1/matches/{matchID}/games/{gameID}/penalties", admin(handler.RegisterPenaltyKick))
	mux.Handle("DELETE /v1/matches/{matchID}/games/{gameID}/penalties/last", admin(handler.UndoPenaltyKick))

	mux.Handle("POST /v1/settlements/preview", admin(handler.PreviewSettlement))
	mux.Handle("POST /v1/settlements/commit", admin(handler.CommitSettlement))

	mux.Handle("POST /v1/presets", admin(handler.CreatePreset))
	mux.Handle("PUT /v1/presets/{presetID}", admin(handler.UpdatePreset))
	mux.Handle("DELETE /v1/presets/{presetID}", admin(handler.DeletePreset))
}
