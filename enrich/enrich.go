// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package enrich

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/pageclub/bookvote/models"
)

// ErrNotFound means the lookup ran but no matching page exists.
var ErrNotFound = errors.New("no matching page found")

// Client fetches book metadata from the Wikipedia API. Lookups are
// best-effort display enrichment; the voting engine never reads the
// result.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		endpoint: "https://en.wikipedia.org/w/api.php",
		http:     &http.Client{Timeout: timeout},
	}
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type pageResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract   string `json:"extract"`
			Thumbnail struct {
				Source string `json:"source"`
			} `json:"thumbnail"`
			Revisions []struct {
				Content string `json:"*"`
			} `json:"revisions"`
		} `json:"pages"`
	} `json:"query"`
}

var (
	pagesRe    = regexp.MustCompile(`(?i)pages\s*=\s*(\d+)`)
	genreRe    = regexp.MustCompile(`(?i)genre\s*=\s*(.*)`)
	wikiLinkRe = regexp.MustCompile(`\[\[(?:[^|\]]*\|)?([^\]]*)\]\]`)
	refRe      = regexp.MustCompile(`\[.*?\]`)
)

// Lookup searches for the book's page and extracts summary, cover
// thumbnail, and page-count/genre hints from the infobox source.
func (c *Client) Lookup(title, author string) (models.Metadata, error) {
	page, err := c.search(title + " " + author)
	if err != nil {
		return models.Metadata{}, err
	}
	return c.fetchPage(page)
}

func (c *Client) search(query string) (string, error) {
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
		"format":   {"json"},
		"srlimit":  {"1"},
	}
	var data searchResponse
	if err := c.get(params, &data); err != nil {
		return "", err
	}
	if len(data.Query.Search) == 0 {
		return "", ErrNotFound
	}
	return data.Query.Search[0].Title, nil
}

func (c *Client) fetchPage(pageTitle string) (models.Metadata, error) {
	params := url.Values{
		"action":      {"query"},
		"prop":        {"extracts|pageimages|revisions"},
		"exintro":     {"1"},
		"explaintext": {"1"},
		"titles":      {pageTitle},
		"format":      {"json"},
		"pithumbsize": {"500"},
		"rvprop":      {"content"},
	}
	var data pageResponse
	if err := c.get(params, &data); err != nil {
		return models.Metadata{}, err
	}

	md := Default()
	for _, page := range data.Query.Pages {
		if page.Extract != "" {
			md.Summary = page.Extract
		}
		md.ImageURL = page.Thumbnail.Source

		if len(page.Revisions) > 0 {
			source := page.Revisions[0].Content
			if m := pagesRe.FindStringSubmatch(source); m != nil {
				md.Pages = m[1]
			}
			if m := genreRe.FindStringSubmatch(source); m != nil {
				// Unwrap [[link|label]] markup, then drop leftover refs
				genre := wikiLinkRe.ReplaceAllString(firstLine(m[1]), "$1")
				genre = refRe.ReplaceAllString(genre, "")
				md.Genres = trimInfobox(genre)
			}
		}
		break
	}
	return md, nil
}

func (c *Client) get(params url.Values, v interface{}) error {
	resp, err := c.http.Get(c.endpoint + "?" + params.Encode())
	if err != nil {
		return fmt.Errorf("could not GET Wikipedia API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error response %d from Wikipedia API", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal API response: %w", err)
	}
	return nil
}

// Default returns the metadata used when no lookup result is available.
func Default() models.Metadata {
	return models.Metadata{
		Summary: "No summary available",
		Genres:  "N/A",
		Pages:   "N/A",
	}
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}

func trimInfobox(s string) string {
	// Infobox values often trail a | before the next field
	for len(s) > 0 && (s[len(s)-1] == '|' || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	for len(s) > 0 && (s[0] == '|' || s[0] == ' ') {
		s = s[1:]
	}
	return s
}
