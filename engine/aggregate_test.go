package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pageclub/bookvote/models"
)

func TestAggregate(t *testing.T) {
	eng := newTestEngine()
	bookA, _ := eng.SubmitBook("A", "X", "Val")
	bookB, _ := eng.SubmitBook("B", "Y", "Silvia")

	// Aggregate is a pure function, so ballots can be built by hand here
	// without going through budget validation.
	books, _ := eng.Snapshot()
	ballots := []models.Ballot{
		{Voter: "Gab", Allocations: []models.Allocation{
			{BookID: bookA.ID, Points: 60},
			{BookID: bookB.ID, Points: 40},
		}},
		{Voter: "Phil", Allocations: []models.Allocation{
			{BookID: bookA.ID, Points: 30},
		}},
	}

	got := Aggregate(books, ballots)
	want := map[string]models.BookScore{
		bookA.ID: {
			Total: 90,
			Voters: []models.VoterPoints{
				{Voter: "Gab", Points: 60},
				{Voter: "Phil", Points: 30},
			},
		},
		bookB.ID: {
			Total: 40,
			Voters: []models.VoterPoints{
				{Voter: "Gab", Points: 40},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateZeroVoteBooks(t *testing.T) {
	eng := newTestEngine()
	bookA, _ := eng.SubmitBook("A", "X", "Val")
	bookB, _ := eng.SubmitBook("B", "Y", "Silvia")

	eng.SubmitBallot("Gab", []models.Allocation{{BookID: bookA.ID, Points: 100}})

	got := eng.Aggregate()
	if got[bookB.ID].Total != 0 {
		t.Errorf("Expected zero total for unvoted book, got %d", got[bookB.ID].Total)
	}
	if len(got) != 2 {
		t.Errorf("Expected every active book in the aggregate, got %d entries", len(got))
	}
}

func TestAggregateExcludesOrphans(t *testing.T) {
	eng := newTestEngine()
	bookA, _ := eng.SubmitBook("A", "X", "Val")
	bookB, _ := eng.SubmitBook("B", "Y", "Silvia")

	eng.SubmitBallot("Gab", []models.Allocation{
		{BookID: bookA.ID, Points: 60},
		{BookID: bookB.ID, Points: 40},
	})
	eng.SubmitBallot("Phil", []models.Allocation{
		{BookID: bookB.ID, Points: 100},
	})

	if err := eng.RemoveBook(bookB.ID, "Silvia", false); err != nil {
		t.Fatalf("RemoveBook failed: %v", err)
	}

	got := eng.Aggregate()
	if _, present := got[bookB.ID]; present {
		t.Error("Deleted book must disappear from the aggregate, not appear zero-filled")
	}
	if got[bookA.ID].Total != 60 {
		t.Errorf("Surviving book total changed: want 60, got %d", got[bookA.ID].Total)
	}
	// Phil's whole ballot pointed at the deleted book; his attribution is gone
	for _, vp := range got[bookA.ID].Voters {
		if vp.Voter == "Phil" {
			t.Error("Phil's orphaned allocation must not leak into another book")
		}
	}
}

func TestAggregateMatchesRecomputation(t *testing.T) {
	eng := newTestEngine()
	bookA, _ := eng.SubmitBook("A", "X", "Val")
	eng.SubmitBallot("Gab", []models.Allocation{{BookID: bookA.ID, Points: 100}})

	first := eng.Aggregate()
	second := eng.Aggregate()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Aggregate is not deterministic (-first +second):\n%s", diff)
	}
}
