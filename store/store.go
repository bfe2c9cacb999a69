// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "github.com/pageclub/bookvote/models"

// Store persists snapshots of the two authoritative sequences. The engine
// never calls it: handlers load once at startup and save after each
// accepted mutation. A save failure is an I/O problem to report, never a
// reason to roll back the in-memory state.
type Store interface {
	Load() (books []models.Book, ballots []models.Ballot, err error)
	Save(books []models.Book, ballots []models.Ballot) error
}
