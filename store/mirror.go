// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GitHubMirror pushes saved snapshot files to a GitHub repository through
// the contents API, so the club's data survives the hosting box. Mirroring
// is strictly best-effort: the JSON files on disk stay authoritative.
type GitHubMirror struct {
	apiBase string
	repo    string // owner/name
	branch  string
	token   string
	client  *http.Client
}

func NewGitHubMirror(repo, branch, token string) *GitHubMirror {
	return &GitHubMirror{
		apiBase: "https://api.github.com",
		repo:    repo,
		branch:  branch,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type contentsResponse struct {
	SHA string `json:"sha"`
}

type putContentsRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

// Push creates or updates one file in the repository. Updating requires
// the current blob SHA, so a lookup runs first; 404 there means the file
// is new.
func (m *GitHubMirror) Push(path string, content []byte) error {
	url := fmt.Sprintf("%s/repos/%s/contents/%s", m.apiBase, m.repo, path)

	sha, err := m.currentSHA(url)
	if err != nil {
		return err
	}

	body, err := json.Marshal(putContentsRequest{
		Message: fmt.Sprintf("Update %s - %s", path, time.Now().Format("2006-01-02 15:04")),
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  m.branch,
		SHA:     sha,
	})
	if err != nil {
		return fmt.Errorf("could not encode mirror request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not build mirror request: %w", err)
	}
	m.setHeaders(req)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mirror push failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mirror push rejected with %d: %s", resp.StatusCode, msg)
	}
	return nil
}

func (m *GitHubMirror) currentSHA(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("could not build mirror lookup: %w", err)
	}
	m.setHeaders(req)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mirror lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("mirror lookup rejected with %d: %s", resp.StatusCode, msg)
	}

	var data contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("could not parse mirror lookup response: %w", err)
	}
	return data.SHA, nil
}

func (m *GitHubMirror) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "token "+m.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
}
