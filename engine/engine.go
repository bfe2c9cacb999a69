// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"strings"
	"sync"

	"github.com/pageclub/bookvote/models"
)

// Config holds the voting rules. All of them are club policy, not code:
// the defaults match the original club settings.
type Config struct {
	// PointBudget is the exact total each ballot must allocate.
	PointBudget int
	// MaxChoices is the maximum number of distinct books per ballot.
	MaxChoices int
	// MaxBooksPerMember is the active-submission quota per member.
	MaxBooksPerMember int
}

// DefaultConfig returns the standard club rules: 100 points spread over at
// most 5 choices, 5 active submissions per member.
func DefaultConfig() Config {
	return Config{
		PointBudget:       100,
		MaxChoices:        5,
		MaxBooksPerMember: 5,
	}
}

// Engine owns the book registry and the vote store. A single mutex guards
// the pair: ballot validation reads a snapshot ("does this book exist",
// "have they voted") that must not be invalidated mid-check by a concurrent
// writer, so every mutation and every snapshot read takes the same lock.
type Engine struct {
	mu      sync.Mutex
	cfg     Config
	books   []models.Book
	ballots []models.Ballot
}

// New creates an engine seeded with previously persisted state. Both slices
// may be nil for a fresh club.
func New(cfg Config, books []models.Book, ballots []models.Ballot) *Engine {
	if cfg.PointBudget <= 0 {
		cfg = DefaultConfig()
	}
	return &Engine{
		cfg:     cfg,
		books:   append([]models.Book(nil), books...),
		ballots: append([]models.Ballot(nil), ballots...),
	}
}

// Config returns the voting rules the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Snapshot returns copies of both sequences for persistence. The copies are
// taken under the lock so a concurrent mutation can never produce a torn
// snapshot.
func (e *Engine) Snapshot() ([]models.Book, []models.Ballot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Book(nil), e.books...), append([]models.Ballot(nil), e.ballots...)
}

// sameMember is the single identity-equality rule for the whole engine.
// Identity is a case-insensitive name match; if the club ever grows a real
// identity system, this is the one place to change.
func sameMember(a, b string) bool {
	return strings.EqualFold(a, b)
}
