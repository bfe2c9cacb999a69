// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type SubmitBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

type SubmitBallotRequest struct {
	Allocations []Allocation `json:"allocations"`
}

// Response types

type SubmitBallotResponse struct {
	Voter   string `json:"voter"`
	Message string `json:"message"`
}

type ClearResponse struct {
	BallotsRemoved int `json:"ballots_removed"`
}

// RankedResult is one row of the voting results, with full attribution.
type RankedResult struct {
	Rank        int           `json:"rank"`
	Book        Book          `json:"book"`
	TotalPoints int           `json:"total_points"`
	Voters      []VoterPoints `json:"voters"`
}

type ResultsResponse struct {
	Rankings     []RankedResult `json:"rankings"`
	NoVotes      []Book         `json:"no_votes"`
	TotalBooks   int            `json:"total_books"`
	TotalBallots int            `json:"total_ballots"`
}

// Domain types

// Metadata holds enrichment fields fetched from external bibliographic
// sources. It is display-only: validation and scoring never read it.
type Metadata struct {
	Summary  string `json:"summary,omitempty"`
	Genres   string `json:"genres,omitempty"`
	Pages    string `json:"pages,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type Book struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Submitter string     `json:"submitter"`
	Metadata  Metadata   `json:"metadata,omitzero"`
	CreatedAt time.Time  `json:"timestamp"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Active reports whether the book counts for listing, voting and scoring.
// Removal is a logical delete so stored ballot references stay resolvable.
func (b Book) Active() bool {
	return b.DeletedAt == nil
}

// Allocation assigns points to one book within a ballot.
type Allocation struct {
	BookID string `json:"book_id"`
	Points int    `json:"points"`
}

// Ballot is one voter's accepted point allocation. Immutable once stored.
type Ballot struct {
	Voter       string       `json:"voter"`
	Allocations []Allocation `json:"votes"`
	CreatedAt   time.Time    `json:"timestamp"`
}

// VoterPoints records one voter's contribution to a book's total.
type VoterPoints struct {
	Voter  string `json:"voter"`
	Points int    `json:"points"`
}

// BookScore is the aggregate for one book: exact integer total plus the
// contributing voters in ballot-processing order.
type BookScore struct {
	Total  int           `json:"total"`
	Voters []VoterPoints `json:"voters"`
}

// RankEntry is one position in the ranked ordering.
type RankEntry struct {
	BookID      string `json:"book_id"`
	TotalPoints int    `json:"total_points"`
}

// ExportDocument is the bulk export/import format: both sequences plus the
// export timestamp, in one JSON document.
type ExportDocument struct {
	Books      []Book    `json:"books"`
	Ballots    []Ballot  `json:"votes"`
	ExportedAt time.Time `json:"exported_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
