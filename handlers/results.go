// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/pageclub/bookvote/cliparse"
	"github.com/pageclub/bookvote/engine"
	"github.com/pageclub/bookvote/middleware"
	"github.com/pageclub/bookvote/models"
)

type ResultsHandler struct {
	eng *engine.Engine
	cfg cliparse.Config
}

func NewResultsHandler(eng *engine.Engine, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{eng: eng, cfg: cfg}
}

// Get handles GET /results. The ?top=n parameter truncates the ranking
// only; the no-votes partition is always complete.
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	top := h.cfg.TopDisplay
	if s := r.URL.Query().Get("top"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "top must be a positive integer")
			return
		}
		top = n
	}

	books, ballots := h.eng.Snapshot()
	scores := engine.Aggregate(books, ballots)
	ranked, noVotes := engine.Rank(books, scores)
	ranked = engine.Top(ranked, top)

	byID := make(map[string]models.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	rankings := make([]models.RankedResult, len(ranked))
	for i, entry := range ranked {
		score := scores[entry.BookID]
		rankings[i] = models.RankedResult{
			Rank:        i + 1,
			Book:        byID[entry.BookID],
			TotalPoints: entry.TotalPoints,
			Voters:      score.Voters,
		}
	}
	if noVotes == nil {
		noVotes = []models.Book{}
	}

	activeBooks := 0
	for _, b := range books {
		if b.Active() {
			activeBooks++
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Rankings:     rankings,
		NoVotes:      noVotes,
		TotalBooks:   activeBooks,
		TotalBallots: len(ballots),
	})
}
