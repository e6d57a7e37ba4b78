package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/learnlog/learnlog-api/internal/api"
	apiMiddleware "github.com/learnlog/learnlog-api/internal/api/middleware"
	"github.com/learnlog/learnlog-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	entryHandler := api.NewEntryHandler(app.entryStore, app.logger)
	statsHandler := api.NewStatsHandler(app.entryStore, app.logger)

	// Liveness marker
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, api.MessageResponse{
			Message: "learnlog API is running",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/entries", entryHandler.ListEntries)
		r.Post("/entries", entryHandler.CreateEntry)
		r.Get("/entries/{id}", entryHandler.GetEntry)
		r.Put("/entries/{id}", entryHandler.UpdateEntry)
		r.Delete("/entries/{id}", entryHandler.DeleteEntry)

		r.Get("/stats", statsHandler.GetStats)
	})

	return r
}
