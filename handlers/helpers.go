// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pageclub/bookvote/auth"
	"github.com/pageclub/bookvote/cliparse"
	"github.com/pageclub/bookvote/engine"
	"github.com/pageclub/bookvote/middleware"
	"github.com/pageclub/bookvote/store"
)

// MemberNameHeader carries the requesting member's name. The club uses
// plain name-based identity, matched case-insensitively by the engine.
const MemberNameHeader = "X-Member-Name"

// AdminKeyHeader carries the administrator capability.
const AdminKeyHeader = "X-Admin-Key"

func memberName(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(MemberNameHeader))
}

func isAdmin(r *http.Request, cfg cliparse.Config) bool {
	key := r.Header.Get(AdminKeyHeader)
	if key == "" {
		return false
	}
	return auth.ValidateAdminKey(cfg.ClubName, key, cfg.AdminKeySalt) == nil
}

// engineError maps an engine error kind to a status code and writes the
// JSON error body. Each kind keeps its own message so the UI can show a
// specific reason.
func engineError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, engine.ErrUnknownBook):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, engine.ErrDuplicateBook),
		errors.Is(err, engine.ErrAlreadyVoted),
		errors.Is(err, engine.ErrQuotaExceeded):
		status = http.StatusConflict
	}
	middleware.ErrorResponse(w, status, err.Error())
}

// persist saves the current engine snapshot. The in-memory mutation has
// already committed, so a save failure is logged and reported nowhere
// else: persistence is advisory until it succeeds.
func persist(s store.Store, e *engine.Engine) {
	books, ballots := e.Snapshot()
	if err := s.Save(books, ballots); err != nil {
		slog.Warn("snapshot save failed", "error", err)
	}
}
