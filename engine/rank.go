// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"sort"

	"github.com/pageclub/bookvote/models"
)

// Rank orders the books with votes by descending total and partitions out
// the books nobody voted for. The tie-break is explicit and deterministic:
// equal totals keep registration order (first registered, first listed),
// compared directly rather than relying on sort stability alone.
func Rank(books []models.Book, scores map[string]models.BookScore) (ranked []models.RankEntry, noVotes []models.Book) {
	type entry struct {
		id    string
		total int
		seq   int // position in registration order
	}

	var entries []entry
	seq := 0
	for _, b := range books {
		if !b.Active() {
			continue
		}
		if s, ok := scores[b.ID]; ok && s.Total > 0 {
			entries = append(entries, entry{id: b.ID, total: s.Total, seq: seq})
		} else {
			noVotes = append(noVotes, b)
		}
		seq++
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].total != entries[j].total {
			return entries[i].total > entries[j].total
		}
		return entries[i].seq < entries[j].seq
	})

	ranked = make([]models.RankEntry, len(entries))
	for i, en := range entries {
		ranked[i] = models.RankEntry{BookID: en.id, TotalPoints: en.total}
	}
	return ranked, noVotes
}

// Top returns the first n entries of a ranking. It does not touch the
// zero-vote partition, which is never truncated.
func Top(ranked []models.RankEntry, n int) []models.RankEntry {
	if n < 0 || n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// Rankings recomputes the full ranking from the current state.
func (e *Engine) Rankings() (ranked []models.RankEntry, noVotes []models.Book) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Rank(e.books, Aggregate(e.books, e.ballots))
}
