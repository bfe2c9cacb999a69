// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "errors"

// Engine error kinds. Every registry and validator operation fails with
// exactly one of these, so callers can render a specific message; none of
// them is fatal to the process.
var (
	// Registry errors
	ErrDuplicateBook    = errors.New("book with this title and author already submitted")
	ErrQuotaExceeded    = errors.New("submission limit reached")
	ErrPermissionDenied = errors.New("only the submitter or an admin can do that")
	ErrUnknownBook      = errors.New("book does not exist")

	// Ballot errors
	ErrEmptyVoter          = errors.New("voter name required")
	ErrAlreadyVoted        = errors.New("voter has already submitted a ballot")
	ErrSelfVote            = errors.New("voting for your own submission is not allowed")
	ErrInvalidPoints       = errors.New("every choice needs at least 1 point")
	ErrTooManyChoices      = errors.New("too many choices on ballot")
	ErrDuplicateChoice     = errors.New("ballot lists the same book twice")
	ErrPointBudgetMismatch = errors.New("points must sum to the exact budget")

	// Import errors
	ErrImportFormat = errors.New("import document is malformed")
)
