// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pageclub/bookvote/auth"
	"github.com/pageclub/bookvote/cliparse"
	"github.com/pageclub/bookvote/engine"
	"github.com/pageclub/bookvote/models"
	"github.com/pageclub/bookvote/store"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3319,
		ClubName:          "test-club",
		StoreType:         "json",
		PointBudget:       100,
		MaxChoices:        5,
		MaxBooksPerMember: 5,
		TopDisplay:        6,
		AdminKeySalt:      "test-admin-salt",
	}
}

// AdminKey returns the admin key matching GetTestConfig.
func AdminKey() string {
	cfg := GetTestConfig()
	return auth.GenerateAdminKey(cfg.ClubName, cfg.AdminKeySalt)
}

// NewTestEngine builds an empty engine with the standard test rules.
func NewTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cfg := GetTestConfig()
	return engine.New(engine.Config{
		PointBudget:       cfg.PointBudget,
		MaxChoices:        cfg.MaxChoices,
		MaxBooksPerMember: cfg.MaxBooksPerMember,
	}, nil, nil)
}

// NewTestStore returns a JSON store rooted in a temp directory.
func NewTestStore(t *testing.T) *store.JSONStore {
	t.Helper()
	return store.NewJSONStore(t.TempDir())
}

// SubmitTestBook registers a book and fails the test on error.
func SubmitTestBook(t *testing.T, eng *engine.Engine, title, author, submitter string) models.Book {
	t.Helper()
	book, err := eng.SubmitBook(title, author, submitter)
	if err != nil {
		t.Fatalf("Failed to submit test book %q: %v", title, err)
	}
	return book
}

// SubmitTestBallot casts a full-budget ballot and fails the test on error.
func SubmitTestBallot(t *testing.T, eng *engine.Engine, voter string, allocations []models.Allocation) models.Ballot {
	t.Helper()
	ballot, err := eng.SubmitBallot(voter, allocations)
	if err != nil {
		t.Fatalf("Failed to submit test ballot for %q: %v", voter, err)
	}
	return ballot
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
