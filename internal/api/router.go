package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spirewatch/spire-companion/internal/api/handlers"
	"github.com/spirewatch/spire-companion/internal/api/response"
	"github.com/spirewatch/spire-companion/internal/version"
)

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check endpoint (no versioning)
	s.router.Get("/health", s.healthCheck)

	// WebSocket endpoint (no JSON content-type requirement)
	s.router.Get("/ws", s.wsHub.ServeWs)

	// API v1 routes
	s.router.Route("/api/v1", func(r chi.Router) {
		runHandler := handlers.NewRunHandler(s.catalog, s.source)
		r.Route("/run", func(r chi.Router) {
			r.Get("/", runHandler.GetRun)
			r.Put("/", s.putRun)
			r.Get("/health", runHandler.GetHealth)
			r.Get("/archetypes", runHandler.GetArchetypes)
		})

		adviceHandler := handlers.NewAdviceHandler(s.catalog, s.source)
		r.Route("/advice", func(r chi.Router) {
			r.Get("/card/{cardID}", adviceHandler.EvaluateCard)
			r.Get("/relic/{relicID}", adviceHandler.EvaluateRelic)
			r.Get("/boss-relic/{relicID}", adviceHandler.EvaluateBossRelic)
			r.Get("/combat/{monsterID}", adviceHandler.AssessCombat)
			r.Get("/boss", adviceHandler.PrepareForBoss)
			r.Get("/event/{eventID}", adviceHandler.AdviseEvent)
			r.Get("/removal", adviceHandler.AdviseRemoval)
			r.Post("/path", adviceHandler.AdvisePath)
			r.Get("/blessings", adviceHandler.AdviseBlessings)
		})

		catalogHandler := handlers.NewCatalogHandler(s.catalog)
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/cards/{cardID}", catalogHandler.GetCard)
			r.Get("/relics/{relicID}", catalogHandler.GetRelic)
			r.Get("/monsters", catalogHandler.ListMonsters)
			r.Get("/monsters/{monsterID}", catalogHandler.GetMonster)
			r.Get("/events/{eventID}", catalogHandler.GetEvent)
		})

		historyHandler := handlers.NewHistoryHandler(s.store)
		r.Route("/runs", func(r chi.Router) {
			r.Get("/", historyHandler.ListRuns)
			r.Get("/{runID}", historyHandler.GetRun)
			r.Get("/{runID}/advice", historyHandler.ListAdvice)
		})
	})
}

// putRun replaces the current run state and fans it out to websocket
// clients, the same path the file watcher uses.
func (s *Server) putRun(w http.ResponseWriter, r *http.Request) {
	st, err := handlers.DecodeRunState(r)
	if err != nil {
		response.BadRequest(w, err)
		return
	}
	s.PublishRunState(st)
	response.Success(w, st)
}

// healthCheck returns server health status.
func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "spire-companion-api",
		"version": version.GetVersion(),
	})
}
