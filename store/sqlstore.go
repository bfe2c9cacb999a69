// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pageclub/bookvote/models"
)

// SQLStore persists snapshots in a relational database via database/sql.
// It works against sqlite (modernc.org/sqlite driver, driver name
// "sqlite") and PostgreSQL (lib/pq, driver name "postgres"); queries stick
// to $N placeholders, which both drivers accept.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore opens the database and creates the schema if needed.
func NewSQLStore(driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	if err := createSchema(db); err != nil {
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Load reads both sequences in their original insertion order. The
// position columns exist because registration order is the ranking
// tie-break and must survive a round trip.
func (s *SQLStore) Load() ([]models.Book, []models.Ballot, error) {
	rows, err := s.db.Query(`
		SELECT id, title, author, submitter, summary, genres, pages, image_url, created_at, deleted_at
		FROM book ORDER BY position
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var b models.Book
		var deletedAt sql.NullTime
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Submitter,
			&b.Metadata.Summary, &b.Metadata.Genres, &b.Metadata.Pages, &b.Metadata.ImageURL,
			&b.CreatedAt, &deletedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan book: %w", err)
		}
		if deletedAt.Valid {
			t := deletedAt.Time
			b.DeletedAt = &t
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read books: %w", err)
	}

	ballots, err := s.loadBallots()
	if err != nil {
		return nil, nil, err
	}
	return books, ballots, nil
}

func (s *SQLStore) loadBallots() ([]models.Ballot, error) {
	rows, err := s.db.Query(`
		SELECT voter, created_at FROM ballot ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ballots: %w", err)
	}
	defer rows.Close()

	var ballots []models.Ballot
	for rows.Next() {
		var b models.Ballot
		if err := rows.Scan(&b.Voter, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ballot: %w", err)
		}
		ballots = append(ballots, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ballots: %w", err)
	}

	for i := range ballots {
		allocRows, err := s.db.Query(`
			SELECT book_id, points FROM allocation WHERE voter = $1 ORDER BY position
		`, ballots[i].Voter)
		if err != nil {
			return nil, fmt.Errorf("failed to query allocations: %w", err)
		}
		for allocRows.Next() {
			var a models.Allocation
			if err := allocRows.Scan(&a.BookID, &a.Points); err != nil {
				allocRows.Close()
				return nil, fmt.Errorf("failed to scan allocation: %w", err)
			}
			ballots[i].Allocations = append(ballots[i].Allocations, a)
		}
		if err := allocRows.Err(); err != nil {
			allocRows.Close()
			return nil, fmt.Errorf("failed to read allocations: %w", err)
		}
		allocRows.Close()
	}
	return ballots, nil
}

// Save rewrites both sequences in one transaction. At club scale a full
// rewrite is simpler and safer than diffing.
func (s *SQLStore) Save(books []models.Book, ballots []models.Ballot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"allocation", "ballot", "book"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, b := range books {
		var deletedAt *time.Time = b.DeletedAt
		_, err := tx.Exec(`
			INSERT INTO book (id, position, title, author, submitter, summary, genres, pages, image_url, created_at, deleted_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, b.ID, i, b.Title, b.Author, b.Submitter,
			b.Metadata.Summary, b.Metadata.Genres, b.Metadata.Pages, b.Metadata.ImageURL,
			b.CreatedAt, deletedAt)
		if err != nil {
			return fmt.Errorf("failed to insert book: %w", err)
		}
	}

	for i, ballot := range ballots {
		_, err := tx.Exec(`
			INSERT INTO ballot (voter, position, created_at)
			VALUES ($1, $2, $3)
		`, ballot.Voter, i, ballot.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert ballot: %w", err)
		}
		for j, a := range ballot.Allocations {
			_, err := tx.Exec(`
				INSERT INTO allocation (voter, position, book_id, points)
				VALUES ($1, $2, $3, $4)
			`, ballot.Voter, j, a.BookID, a.Points)
			if err != nil {
				return fmt.Errorf("failed to insert allocation: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// createSchema creates all tables needed for snapshots.
// Safe to call multiple times - uses IF NOT EXISTS.
func createSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
-- Books (registration order preserved via position)
CREATE TABLE IF NOT EXISTS book (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    submitter TEXT NOT NULL,
    summary TEXT NOT NULL DEFAULT '',
    genres TEXT NOT NULL DEFAULT '',
    pages TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    deleted_at TIMESTAMP
);

-- Ballots (one per voter)
CREATE TABLE IF NOT EXISTS ballot (
    voter TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Allocations (ordered within a ballot)
CREATE TABLE IF NOT EXISTS allocation (
    voter TEXT NOT NULL REFERENCES ballot(voter) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    book_id TEXT NOT NULL,
    points INTEGER NOT NULL CHECK (points > 0),
    PRIMARY KEY (voter, book_id)
);
`
