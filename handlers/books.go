// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/pageclub/bookvote/cliparse"
	"github.com/pageclub/bookvote/engine"
	"github.com/pageclub/bookvote/enrich"
	"github.com/pageclub/bookvote/middleware"
	"github.com/pageclub/bookvote/models"
	"github.com/pageclub/bookvote/store"
)

// Enricher looks up display metadata for a submitted book.
type Enricher interface {
	Lookup(title, author string) (models.Metadata, error)
}

type BookHandler struct {
	eng      *engine.Engine
	store    store.Store
	enricher Enricher // nil disables enrichment
	cfg      cliparse.Config
}

func NewBookHandler(eng *engine.Engine, st store.Store, enricher Enricher, cfg cliparse.Config) *BookHandler {
	return &BookHandler{eng: eng, store: st, enricher: enricher, cfg: cfg}
}

// Submit handles POST /books
func (h *BookHandler) Submit(w http.ResponseWriter, r *http.Request) {
	submitter := memberName(r)
	if submitter == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, MemberNameHeader+" header required")
		return
	}

	var req models.SubmitBookRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Author) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title and author are required")
		return
	}

	book, err := h.eng.SubmitBook(req.Title, req.Author, submitter)
	if err != nil {
		engineError(w, err)
		return
	}

	// Enrichment is best-effort; the nomination stands either way.
	if h.enricher != nil {
		md, err := h.enricher.Lookup(book.Title, book.Author)
		if err != nil {
			slog.Warn("metadata lookup failed", "title", book.Title, "error", err)
			md = enrich.Default()
		}
		if err := h.eng.SetMetadata(book.ID, md); err == nil {
			book.Metadata = md
		}
	}

	persist(h.store, h.eng)

	slog.Info("book submitted", "book_id", book.ID, "title", book.Title, "submitter", submitter)
	middleware.JSONResponse(w, http.StatusCreated, book)
}

// List handles GET /books with an optional ?submitter= filter
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books := h.eng.Books(r.URL.Query().Get("submitter"))
	middleware.JSONResponse(w, http.StatusOK, books)
}

// Delete handles DELETE /books/{id}
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "book id is required")
		return
	}

	requester := memberName(r)
	admin := isAdmin(r, h.cfg)
	if requester == "" && !admin {
		middleware.ErrorResponse(w, http.StatusUnauthorized, MemberNameHeader+" or "+AdminKeyHeader+" header required")
		return
	}

	if err := h.eng.RemoveBook(id, requester, admin); err != nil {
		engineError(w, err)
		return
	}

	persist(h.store, h.eng)

	slog.Info("book removed", "book_id", id, "requester", requester, "admin", admin)
	w.WriteHeader(http.StatusNoContent)
}
