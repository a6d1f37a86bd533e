// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/KpmgFuture-Academy/fa01-fin-Edo/cliparse"
	"github.com/KpmgFuture-Academy/fa01-fin-Edo/handlers"
	"github.com/KpmgFuture-Academy/fa01-fin-Edo/middleware"
	"github.com/KpmgFuture-Academy/fa01-fin-Edo/render"
	"github.com/KpmgFuture-Academy/fa01-fin-Edo/store"
)

// NewRouter wires every route to its handler and wraps the mux in CORS
func NewRouter(rs *store.ResponseStore, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	renderer := render.New(cfg.PagesDir, render.WithReload(cfg.ReloadTemplates))
	pageHandler := handlers.NewPageHandler(renderer)
	surveyHandler := handlers.NewSurveyHandler(rs)
	healthHandler := handlers.NewHealthHandler(rs)

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Dashboard))
	mux.HandleFunc("GET /review", middleware.WithLogging(pageHandler.Review))

	// Survey API
	mux.HandleFunc("POST /submit-survey", middleware.WithLogging(surveyHandler.SubmitSurvey))
	mux.HandleFunc("GET /get-responses", middleware.WithLogging(surveyHandler.GetResponses))

	return middleware.CORS(mux)
}
