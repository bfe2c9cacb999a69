// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/pageclub/bookvote/models"
	"github.com/pageclub/bookvote/testutil"
)

// TestConcurrentBallotSubmission fires many simultaneous ballots for the
// same voter and checks that exactly one is accepted.
func TestConcurrentBallotSubmission(t *testing.T) {
	eng := testutil.NewTestEngine(t)
	handler := NewBallotHandler(eng, testutil.NewTestStore(t), testutil.GetTestConfig())
	books := seedHandlerBooks(t, eng)

	const numRequests = 20
	var wg sync.WaitGroup
	results := make([]int, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/ballots",
				models.SubmitBallotRequest{Allocations: []models.Allocation{
					{BookID: books[0].ID, Points: 100},
				}},
				map[string]string{MemberNameHeader: "Kathy"})
			w := httptest.NewRecorder()
			handler.Submit(w, req)
			results[idx] = w.Code
		}(i)
	}
	wg.Wait()

	created, conflicts := 0, 0
	for _, code := range results {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		default:
			t.Errorf("Unexpected status code %d", code)
		}
	}

	if created != 1 {
		t.Errorf("Expected exactly 1 accepted ballot, got %d", created)
	}
	if conflicts != numRequests-1 {
		t.Errorf("Expected %d conflicts, got %d", numRequests-1, conflicts)
	}
	if got := len(eng.Ballots()); got != 1 {
		t.Errorf("Expected 1 stored ballot, got %d", got)
	}
}

// TestConcurrentDuplicateBookSubmission races the same title from many
// members; the duplicate check must admit only one copy.
func TestConcurrentDuplicateBookSubmission(t *testing.T) {
	eng := testutil.NewTestEngine(t)
	handler := NewBookHandler(eng, testutil.NewTestStore(t), nil, testutil.GetTestConfig())

	const numRequests = 10
	var wg sync.WaitGroup
	results := make([]int, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/books",
				models.SubmitBookRequest{Title: "Dune", Author: "Frank Herbert"},
				map[string]string{MemberNameHeader: fmt.Sprintf("member-%d", idx)})
			w := httptest.NewRecorder()
			handler.Submit(w, req)
			results[idx] = w.Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range results {
		if code == http.StatusCreated {
			created++
		}
	}
	if created != 1 {
		t.Errorf("Expected exactly 1 accepted submission, got %d", created)
	}
	if got := len(eng.Books("")); got != 1 {
		t.Errorf("Expected 1 book on the shelf, got %d", got)
	}
}

// TestConcurrentQuotaEnforcement races one member's submissions against
// the per-member limit.
func TestConcurrentQuotaEnforcement(t *testing.T) {
	cfg := testutil.GetTestConfig()
	eng := testutil.NewTestEngine(t)
	handler := NewBookHandler(eng, testutil.NewTestStore(t), nil, cfg)

	const numRequests = 15
	var wg sync.WaitGroup
	results := make([]int, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/books",
				models.SubmitBookRequest{
					Title:  fmt.Sprintf("Book %d", idx),
					Author: "Author",
				},
				map[string]string{MemberNameHeader: "Gab"})
			w := httptest.NewRecorder()
			handler.Submit(w, req)
			results[idx] = w.Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range results {
		if code == http.StatusCreated {
			created++
		}
	}
	if created != cfg.MaxBooksPerMember {
		t.Errorf("Expected %d accepted submissions, got %d", cfg.MaxBooksPerMember, created)
	}
	if got := len(eng.Books("Gab")); got != cfg.MaxBooksPerMember {
		t.Errorf("Expected %d books for Gab, got %d", cfg.MaxBooksPerMember, got)
	}
}
