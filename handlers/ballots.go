// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pageclub/bookvote/cliparse"
	"github.com/pageclub/bookvote/engine"
	"github.com/pageclub/bookvote/middleware"
	"github.com/pageclub/bookvote/models"
	"github.com/pageclub/bookvote/store"
)

type BallotHandler struct {
	eng   *engine.Engine
	store store.Store
	cfg   cliparse.Config
}

func NewBallotHandler(eng *engine.Engine, st store.Store, cfg cliparse.Config) *BallotHandler {
	return &BallotHandler{eng: eng, store: st, cfg: cfg}
}

// Submit handles POST /ballots
func (h *BallotHandler) Submit(w http.ResponseWriter, r *http.Request) {
	voter := memberName(r)
	if voter == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, MemberNameHeader+" header required")
		return
	}

	var req models.SubmitBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ballot, err := h.eng.SubmitBallot(voter, req.Allocations)
	if err != nil {
		engineError(w, err)
		return
	}

	persist(h.store, h.eng)

	slog.Info("ballot accepted", "voter", ballot.Voter, "choices", len(ballot.Allocations))
	middleware.JSONResponse(w, http.StatusCreated, models.SubmitBallotResponse{
		Voter:   ballot.Voter,
		Message: "Your vote has been recorded",
	})
}
