// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pageclub/bookvote/models"
)

// SubmitBook registers a new nomination. It fails with ErrDuplicateBook if
// an active book already has the same title and author (case-insensitive on
// both fields jointly), or ErrQuotaExceeded if the submitter is at the
// per-member limit.
func (e *Engine) SubmitBook(title, author, submitter string) (models.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	e.mu.Lock()
	defer e.mu.Unlock()

	active := 0
	for _, b := range e.books {
		if !b.Active() {
			continue
		}
		if strings.EqualFold(b.Title, title) && strings.EqualFold(b.Author, author) {
			return models.Book{}, ErrDuplicateBook
		}
		if sameMember(b.Submitter, submitter) {
			active++
		}
	}
	if active >= e.cfg.MaxBooksPerMember {
		return models.Book{}, ErrQuotaExceeded
	}

	book := models.Book{
		ID:        uuid.NewString(),
		Title:     title,
		Author:    author,
		Submitter: submitter,
		CreatedAt: time.Now(),
	}
	e.books = append(e.books, book)
	return book, nil
}

// RemoveBook marks a book deleted. Only the submitter or an admin may
// remove it. The deletion is logical: other books keep their identifiers,
// and ballots referencing the removed book stay structurally valid but the
// book vanishes from listing, scoring and ranking.
func (e *Engine) RemoveBook(id, requester string, admin bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.books {
		b := &e.books[i]
		if b.ID != id || !b.Active() {
			continue
		}
		if !admin && !sameMember(b.Submitter, requester) {
			return ErrPermissionDenied
		}
		now := time.Now()
		b.DeletedAt = &now
		return nil
	}
	return ErrUnknownBook
}

// SetMetadata attaches enrichment fields to an active book. Metadata is
// opaque to validation and scoring.
func (e *Engine) SetMetadata(id string, md models.Metadata) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.books {
		if e.books[i].ID == id && e.books[i].Active() {
			e.books[i].Metadata = md
			return nil
		}
	}
	return ErrUnknownBook
}

// Books returns the active books in registration order, optionally filtered
// by submitter. An empty submitter returns every active book.
func (e *Engine) Books(submitter string) []models.Book {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Book, 0, len(e.books))
	for _, b := range e.books {
		if !b.Active() {
			continue
		}
		if submitter != "" && !sameMember(b.Submitter, submitter) {
			continue
		}
		out = append(out, b)
	}
	return out
}
