// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "github.com/pageclub/bookvote/models"

// Aggregate reduces the ballot collection into per-book totals and voter
// attribution. Every active book gets an entry, even with zero votes.
// Allocations pointing at removed books are silently skipped: a deleted
// book's received votes do not count and are not visible.
//
// Voter lists are in ballot-processing order; sorting them for display is
// a presentation concern.
func Aggregate(books []models.Book, ballots []models.Ballot) map[string]models.BookScore {
	scores := make(map[string]models.BookScore, len(books))
	for _, b := range books {
		if b.Active() {
			scores[b.ID] = models.BookScore{}
		}
	}

	for _, ballot := range ballots {
		for _, a := range ballot.Allocations {
			score, ok := scores[a.BookID]
			if !ok {
				continue
			}
			score.Total += a.Points
			score.Voters = append(score.Voters, models.VoterPoints{Voter: ballot.Voter, Points: a.Points})
			scores[a.BookID] = score
		}
	}
	return scores
}

// Aggregate recomputes the per-book scores from the full vote store. The
// result is derived state: it is never cached, so it always matches a
// fresh recomputation.
func (e *Engine) Aggregate() map[string]models.BookScore {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Aggregate(e.books, e.ballots)
}
