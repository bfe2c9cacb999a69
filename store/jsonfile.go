// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pageclub/bookvote/models"
)

const (
	booksFile   = "books.json"
	ballotsFile = "votes.json"
)

// JSONStore keeps the two sequences as pretty-printed JSON files in a
// directory, the same on-disk layout the club has always used
// (data/books.json and data/votes.json).
type JSONStore struct {
	dir    string
	mirror *GitHubMirror
}

func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

// WithMirror enables best-effort mirroring of every saved file to a GitHub
// repository. Mirror failures are logged, never returned.
func (s *JSONStore) WithMirror(m *GitHubMirror) *JSONStore {
	s.mirror = m
	return s
}

// Load reads both files. A missing file means an empty sequence; a file
// that exists but does not parse is an error, because silently starting
// from scratch would lose the club's data on the next save.
func (s *JSONStore) Load() ([]models.Book, []models.Ballot, error) {
	var books []models.Book
	if err := s.loadFile(booksFile, &books); err != nil {
		return nil, nil, err
	}
	var ballots []models.Ballot
	if err := s.loadFile(ballotsFile, &ballots); err != nil {
		return nil, nil, err
	}
	return books, ballots, nil
}

// Save writes both files, creating the directory if needed, then pushes
// them to the mirror if one is configured.
func (s *JSONStore) Save(books []models.Book, ballots []models.Ballot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := s.saveFile(booksFile, books); err != nil {
		return err
	}
	if err := s.saveFile(ballotsFile, ballots); err != nil {
		return err
	}
	return nil
}

func (s *JSONStore) loadFile(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func (s *JSONStore) saveFile(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if s.mirror != nil {
		if err := s.mirror.Push(filepath.ToSlash(filepath.Join(s.dir, name)), data); err != nil {
			slog.Warn("mirror push failed", "file", name, "error", err)
		}
	}
	return nil
}
