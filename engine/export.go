// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"time"

	"github.com/pageclub/bookvote/models"
)

// Export produces a single backup document holding both sequences and the
// export timestamp, order preserved.
func (e *Engine) Export() models.ExportDocument {
	books, ballots := e.Snapshot()
	return models.ExportDocument{
		Books:      books,
		Ballots:    ballots,
		ExportedAt: time.Now(),
	}
}

// Import atomically replaces both sequences with the document's contents.
// The document is checked first; a malformed one leaves the existing state
// untouched and reports ErrImportFormat. Missing sequences are treated as
// empty, matching the export of a fresh club.
func (e *Engine) Import(doc models.ExportDocument) error {
	seen := make(map[string]bool, len(doc.Books))
	for i, b := range doc.Books {
		if b.ID == "" || b.Title == "" || b.Author == "" || b.Submitter == "" {
			return fmt.Errorf("%w: book %d is missing required fields", ErrImportFormat, i)
		}
		if seen[b.ID] {
			return fmt.Errorf("%w: duplicate book id %q", ErrImportFormat, b.ID)
		}
		seen[b.ID] = true
	}
	voters := make(map[string]bool, len(doc.Ballots))
	for i, b := range doc.Ballots {
		if b.Voter == "" {
			return fmt.Errorf("%w: ballot %d has no voter", ErrImportFormat, i)
		}
		if voters[b.Voter] {
			return fmt.Errorf("%w: duplicate ballot for voter %q", ErrImportFormat, b.Voter)
		}
		voters[b.Voter] = true
		for _, a := range b.Allocations {
			if a.BookID == "" || a.Points <= 0 {
				return fmt.Errorf("%w: ballot for %q has an invalid allocation", ErrImportFormat, b.Voter)
			}
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.books = append([]models.Book(nil), doc.Books...)
	e.ballots = append([]models.Ballot(nil), doc.Ballots...)
	return nil
}
