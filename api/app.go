// Package api exposes the analysis core as a headless JSON service. It
// carries no templates and no session notion; every endpoint is a pure
// request/response computation over the uploaded files.
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ifcdash/internal/config"
	"ifcdash/ports"
)

// App is the JSON API application.
type App struct {
	router  *chi.Mux
	cfg     *config.Config
	parser  ports.ModelParser
	tabular ports.TabularReader
}

// NewApp wires the API routes.
func NewApp(cfg *config.Config, parser ports.ModelParser, tabular ports.TabularReader) *App {
	app := &App{
		router:  chi.NewRouter(),
		cfg:     cfg,
		parser:  parser,
		tabular: tabular,
	}

	app.router.Use(middleware.RequestID)
	app.router.Use(middleware.Logger)
	app.router.Use(middleware.Recoverer)

	app.router.Get("/v1/health", app.handleHealth)
	app.router.Post("/v1/ifc/counts", app.handleIFCCounts)
	app.router.Post("/v1/ifc/grouped", app.handleIFCGrouped)
	app.router.Post("/v1/ifc/compare", app.handleIFCCompare)
	app.router.Post("/v1/excel/profile", app.handleExcelProfile)
	app.router.Post("/v1/excel/compare", app.handleExcelCompare)

	return app
}

// Router exposes the handler for serving and for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the API server (blocking)
func (a *App) Start(addr string) error {
	log.Printf("[api] Starting JSON API on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[api] failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
