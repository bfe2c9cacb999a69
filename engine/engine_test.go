package engine

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/pageclub/bookvote/models"
)

func TestConcurrentSameVoterBallots(t *testing.T) {
	eng := newTestEngine()
	book, _ := eng.SubmitBook("Dune", "Frank Herbert", "Val")

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := eng.SubmitBallot("Kathy", []models.Allocation{{BookID: book.ID, Points: 100}})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	accepted, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			accepted++
		case errors.Is(err, ErrAlreadyVoted):
			rejected++
		default:
			t.Errorf("Unexpected error: %v", err)
		}
	}

	if accepted != 1 {
		t.Errorf("Expected exactly 1 accepted ballot, got %d", accepted)
	}
	if rejected != attempts-1 {
		t.Errorf("Expected %d rejections, got %d", attempts-1, rejected)
	}
	if got := len(eng.Ballots()); got != 1 {
		t.Errorf("Expected 1 stored ballot, got %d", got)
	}
}

func TestConcurrentQuota(t *testing.T) {
	eng := newTestEngine()

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := eng.SubmitBook(fmt.Sprintf("Book %d", i), "Author", "Gab")
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	accepted := 0
	for err := range results {
		if err == nil {
			accepted++
		} else if !errors.Is(err, ErrQuotaExceeded) {
			t.Errorf("Unexpected error: %v", err)
		}
	}

	if accepted != DefaultConfig().MaxBooksPerMember {
		t.Errorf("Expected exactly %d accepted submissions, got %d",
			DefaultConfig().MaxBooksPerMember, accepted)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	eng := newTestEngine()
	eng.SubmitBook("Dune", "Frank Herbert", "Val")

	books, _ := eng.Snapshot()
	books[0].Title = "Mutated"

	if got := eng.Books("")[0].Title; got != "Dune" {
		t.Errorf("Snapshot mutation leaked into the engine: %q", got)
	}
}

func TestNewFallsBackToDefaults(t *testing.T) {
	eng := New(Config{}, nil, nil)
	if eng.Config() != DefaultConfig() {
		t.Errorf("Expected default rules for zero config, got %+v", eng.Config())
	}
}
