// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pageclub/bookvote/cliparse"
	"github.com/pageclub/bookvote/engine"
	"github.com/pageclub/bookvote/middleware"
	"github.com/pageclub/bookvote/models"
	"github.com/pageclub/bookvote/store"
)

type AdminHandler struct {
	eng   *engine.Engine
	store store.Store
	cfg   cliparse.Config
}

func NewAdminHandler(eng *engine.Engine, st store.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{eng: eng, store: st, cfg: cfg}
}

func (h *AdminHandler) require(w http.ResponseWriter, r *http.Request) bool {
	if !isAdmin(r, h.cfg) {
		middleware.ErrorResponse(w, http.StatusForbidden, "valid "+AdminKeyHeader+" header required")
		return false
	}
	return true
}

// Clear handles POST /admin/clear: season rollover, removes every ballot.
func (h *AdminHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if !h.require(w, r) {
		return
	}

	removed := h.eng.ClearBallots()
	persist(h.store, h.eng)

	slog.Info("ballots cleared", "removed", removed)
	middleware.JSONResponse(w, http.StatusOK, models.ClearResponse{BallotsRemoved: removed})
}

// Export handles GET /admin/export
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !h.require(w, r) {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, h.eng.Export())
}

// Import handles POST /admin/import. The replacement is all-or-nothing: a
// document that fails to decode or validate leaves the current state
// untouched.
func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	if !h.require(w, r) {
		return
	}

	var doc models.ExportDocument
	if err := middleware.ParseJSONBody(r, &doc); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, engine.ErrImportFormat.Error())
		return
	}

	if err := h.eng.Import(doc); err != nil {
		if errors.Is(err, engine.ErrImportFormat) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		engineError(w, err)
		return
	}

	persist(h.store, h.eng)

	slog.Info("data imported", "books", len(doc.Books), "ballots", len(doc.Ballots))
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Data imported successfully"})
}
