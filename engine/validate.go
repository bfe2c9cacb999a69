// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"time"

	"github.com/pageclub/bookvote/models"
)

// BallotDraft is a candidate ballot before validation.
type BallotDraft struct {
	Voter       string
	Allocations []models.Allocation
}

// ValidateBallot checks a draft against snapshots of the registry and the
// vote store. It is a pure function with no side effects; checks run in a
// fixed order and fail fast on the first violation so the caller can show
// one specific message.
//
// A zero-point allocation is rejected with ErrInvalidPoints rather than
// silently dropped: omitting a book and giving it zero points mean the same
// thing, and the stricter rule is applied uniformly.
func ValidateBallot(draft BallotDraft, books []models.Book, ballots []models.Ballot, cfg Config) (models.Ballot, error) {
	if draft.Voter == "" {
		return models.Ballot{}, ErrEmptyVoter
	}

	for _, b := range ballots {
		if sameMember(b.Voter, draft.Voter) {
			return models.Ballot{}, ErrAlreadyVoted
		}
	}

	// Linear scans are fine at club scale (tens of entries).
	byID := make(map[string]models.Book, len(books))
	for _, b := range books {
		if b.Active() {
			byID[b.ID] = b
		}
	}

	for _, a := range draft.Allocations {
		if _, ok := byID[a.BookID]; !ok {
			return models.Ballot{}, ErrUnknownBook
		}
	}

	for _, a := range draft.Allocations {
		if sameMember(byID[a.BookID].Submitter, draft.Voter) {
			return models.Ballot{}, ErrSelfVote
		}
	}

	for _, a := range draft.Allocations {
		if a.Points <= 0 {
			return models.Ballot{}, ErrInvalidPoints
		}
	}

	if len(draft.Allocations) > cfg.MaxChoices {
		return models.Ballot{}, ErrTooManyChoices
	}

	seen := make(map[string]bool, len(draft.Allocations))
	for _, a := range draft.Allocations {
		if seen[a.BookID] {
			return models.Ballot{}, ErrDuplicateChoice
		}
		seen[a.BookID] = true
	}

	total := 0
	for _, a := range draft.Allocations {
		total += a.Points
	}
	if total != cfg.PointBudget {
		return models.Ballot{}, ErrPointBudgetMismatch
	}

	return models.Ballot{
		Voter:       draft.Voter,
		Allocations: append([]models.Allocation(nil), draft.Allocations...),
		CreatedAt:   time.Now(),
	}, nil
}

// SubmitBallot validates a draft against the current state and appends it.
// Validation and insert happen inside one critical section, so two
// concurrent submissions for the same voter can never both pass the
// "already voted" check against a stale snapshot.
func (e *Engine) SubmitBallot(voter string, allocations []models.Allocation) (models.Ballot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ballot, err := ValidateBallot(BallotDraft{Voter: voter, Allocations: allocations}, e.books, e.ballots, e.cfg)
	if err != nil {
		return models.Ballot{}, err
	}
	e.ballots = append(e.ballots, ballot)
	return ballot, nil
}

// Ballots returns a snapshot of the accepted ballots in acceptance order.
func (e *Engine) Ballots() []models.Ballot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Ballot(nil), e.ballots...)
}

// ClearBallots removes every ballot (season rollover). It returns the
// number removed. Admin gating is the caller's concern.
func (e *Engine) ClearBallots() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := len(e.ballots)
	e.ballots = nil
	return n
}
