package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"

	"github.com/furk4ng99/fenerbahce-squad-builder/handlers"
)

func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	playerHandler *handlers.PlayerHandler,
	duelHandler *handlers.DuelHandler,
	tournamentHandler *handlers.TournamentHandler,
	squadHandler *handlers.SquadHandler,
	webSocketHandler *handlers.WebsocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/players", func(r chi.Router) {
		r.Get("/search", playerHandler.Search)
		r.Get("/{id}", playerHandler.Get)
		r.Put("/{id}/portrait", playerHandler.UploadPortrait)
		r.Delete("/{id}/portrait", playerHandler.RemovePortrait)
	})

	router.Route("/duels", func(r chi.Router) {
		r.Get("/next", duelHandler.NextPair)
		r.Post("/picks", duelHandler.RecordPick)
		r.Get("/stats", duelHandler.Stats)
		r.Get("/leaderboard", duelHandler.Leaderboard)
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Post("/", tournamentHandler.Start)
		r.Get("/{id}", tournamentHandler.Get)
		r.Post("/{id}/winner", tournamentHandler.SelectWinner)
		r.Post("/{id}/restart", tournamentHandler.Restart)
	})

	router.Route("/formations", func(r chi.Router) {
		r.Get("/", squadHandler.ListFormations)
		r.Get("/{name}", squadHandler.GetFormation)
	})

	router.Post("/squads/summary", squadHandler.Summary)

	router.Route("/ws", func(r chi.Router) {
		r.Get("/duels", webSocketHandler.DuelStats)
		r.Get("/tournaments/{id}", webSocketHandler.Tournament)
	})
}
