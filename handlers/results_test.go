// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pageclub/bookvote/models"
	"github.com/pageclub/bookvote/testutil"
)

func TestGetResults(t *testing.T) {
	eng := testutil.NewTestEngine(t)
	handler := NewResultsHandler(eng, testutil.GetTestConfig())
	books := seedHandlerBooks(t, eng)

	// Dune 60+100=160, Hyperion 40, Solaris untouched.
	testutil.SubmitTestBallot(t, eng, "Kathy", []models.Allocation{
		{BookID: books[0].ID, Points: 60},
		{BookID: books[1].ID, Points: 40},
	})
	testutil.SubmitTestBallot(t, eng, "Nonna", []models.Allocation{
		{BookID: books[0].ID, Points: 100},
	})

	req := testutil.MakeRequest("GET", "/results", nil, nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Rankings) != 2 {
		t.Fatalf("Expected 2 ranked books, got %d", len(resp.Rankings))
	}
	if resp.Rankings[0].Book.ID != books[0].ID || resp.Rankings[0].TotalPoints != 160 {
		t.Errorf("Expected Dune first with 160 points, got %+v", resp.Rankings[0])
	}
	if resp.Rankings[0].Rank != 1 || resp.Rankings[1].Rank != 2 {
		t.Errorf("Expected ranks 1 and 2, got %d and %d", resp.Rankings[0].Rank, resp.Rankings[1].Rank)
	}
	if len(resp.Rankings[0].Voters) != 2 {
		t.Errorf("Expected 2 voters for Dune, got %v", resp.Rankings[0].Voters)
	}
	if len(resp.NoVotes) != 1 || resp.NoVotes[0].ID != books[2].ID {
		t.Errorf("Expected Solaris in the no-votes partition, got %+v", resp.NoVotes)
	}
	if resp.TotalBooks != 3 || resp.TotalBallots != 2 {
		t.Errorf("Expected 3 books and 2 ballots, got %d and %d", resp.TotalBooks, resp.TotalBallots)
	}
}

func TestGetResultsTopParameter(t *testing.T) {
	eng := testutil.NewTestEngine(t)
	handler := NewResultsHandler(eng, testutil.GetTestConfig())
	books := seedHandlerBooks(t, eng)

	testutil.SubmitTestBallot(t, eng, "Kathy", []models.Allocation{
		{BookID: books[0].ID, Points: 50},
		{BookID: books[1].ID, Points: 30},
		{BookID: books[2].ID, Points: 20},
	})

	req := testutil.MakeRequest("GET", "/results?top=1", nil, nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Rankings) != 1 {
		t.Errorf("Expected ranking truncated to 1 entry, got %d", len(resp.Rankings))
	}
	// Truncation never hides books from the no-votes partition.
	if len(resp.NoVotes) != 0 {
		t.Errorf("Expected empty no-votes partition, got %+v", resp.NoVotes)
	}
	if resp.TotalBooks != 3 {
		t.Errorf("Expected TotalBooks to stay 3, got %d", resp.TotalBooks)
	}
}

func TestGetResultsBadTop(t *testing.T) {
	eng := testutil.NewTestEngine(t)
	handler := NewResultsHandler(eng, testutil.GetTestConfig())

	for _, top := range []string{"0", "-3", "six"} {
		req := testutil.MakeRequest("GET", "/results?top="+top, nil, nil)
		w := httptest.NewRecorder()
		handler.Get(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	}
}

func TestGetResultsEmpty(t *testing.T) {
	eng := testutil.NewTestEngine(t)
	handler := NewResultsHandler(eng, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/results", nil, nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Rankings) != 0 || len(resp.NoVotes) != 0 {
		t.Errorf("Expected empty results, got %+v", resp)
	}
	if resp.TotalBooks != 0 || resp.TotalBallots != 0 {
		t.Errorf("Expected zero counts, got %d books and %d ballots", resp.TotalBooks, resp.TotalBallots)
	}
}

func TestGetResultsExcludesRemovedBooks(t *testing.T) {
	eng := testutil.NewTestEngine(t)
	handler := NewResultsHandler(eng, testutil.GetTestConfig())
	books := seedHandlerBooks(t, eng)

	testutil.SubmitTestBallot(t, eng, "Kathy", []models.Allocation{
		{BookID: books[0].ID, Points: 100},
	})
	if err := eng.RemoveBook(books[0].ID, "Val", false); err != nil {
		t.Fatalf("Failed to remove book: %v", err)
	}

	req := testutil.MakeRequest("GET", "/results", nil, nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	for _, entry := range resp.Rankings {
		if entry.Book.ID == books[0].ID {
			t.Error("Removed book should not appear in rankings")
		}
	}
	for _, b := range resp.NoVotes {
		if b.ID == books[0].ID {
			t.Error("Removed book should not appear in the no-votes partition")
		}
	}
	if resp.TotalBooks != 2 {
		t.Errorf("Expected 2 active books, got %d", resp.TotalBooks)
	}
	// Kathy's ballot still counts toward the total even though its target
	// is gone.
	if resp.TotalBallots != 1 {
		t.Errorf("Expected 1 ballot, got %d", resp.TotalBallots)
	}
}
