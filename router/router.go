// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/pageclub/bookvote/cliparse"
	"github.com/pageclub/bookvote/engine"
	"github.com/pageclub/bookvote/handlers"
	"github.com/pageclub/bookvote/middleware"
	"github.com/pageclub/bookvote/store"
)

func NewRouter(eng *engine.Engine, st store.Store, enricher handlers.Enricher, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	bookHandler := handlers.NewBookHandler(eng, st, enricher, cfg)
	ballotHandler := handlers.NewBallotHandler(eng, st, cfg)
	resultsHandler := handlers.NewResultsHandler(eng, cfg)
	adminHandler := handlers.NewAdminHandler(eng, st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Nominations
	mux.HandleFunc("POST /books", middleware.WithLogging(bookHandler.Submit))
	mux.HandleFunc("GET /books", middleware.WithLogging(bookHandler.List))
	mux.HandleFunc("DELETE /books/{id}", middleware.WithLogging(bookHandler.Delete))

	// Voting
	mux.HandleFunc("POST /ballots", middleware.WithLogging(ballotHandler.Submit))

	// Results
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.Get))

	// Admin operations
	mux.HandleFunc("POST /admin/clear", middleware.WithLogging(adminHandler.Clear))
	mux.HandleFunc("GET /admin/export", middleware.WithLogging(adminHandler.Export))
	mux.HandleFunc("POST /admin/import", middleware.WithLogging(adminHandler.Import))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bookvote API v1"))
	})

	return mux
}
