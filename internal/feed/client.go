// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed fetches article feeds from the arXiv search API and
// normalizes them into ordered records.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/arxiv-summarizer/internal/httputil"
	"github.com/pdiddy/arxiv-summarizer/pkg/types"
)

// apiBase is the arXiv search endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// Result-count bounds for one request.
const (
	DefaultMaxResults = 10
	MaxResultsCap     = 100
)

// FetchErrorKind classifies a fetch failure.
type FetchErrorKind string

const (
	// ErrTransport covers network, DNS, and timeout failures.
	ErrTransport FetchErrorKind = "transport"

	// ErrStatus covers non-200 HTTP responses.
	ErrStatus FetchErrorKind = "status"
)

// FetchError reports a failed feed fetch. Callers branch on Kind instead of
// matching substrings in the payload.
type FetchError struct {
	Kind   FetchErrorKind
	Status int // HTTP status code, set for ErrStatus
	Err    error
}

func (e *FetchError) Error() string {
	if e.Kind == ErrStatus {
		return fmt.Sprintf("arXiv API returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("arXiv API request: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client issues search requests against the arXiv API.
type Client struct {
	HTTP *http.Client
}

// NewClient builds a Client from shared HTTP settings.
func NewClient(cfg types.FeedConfig) *Client {
	return &Client{HTTP: httputil.NewClient(cfg.HTTPConfig)}
}

// Fetch performs one synchronous search request and returns the response body
// verbatim. The query covers all fields ("all:" + term); start below zero is
// clamped to zero and maxResults is clamped into [1, 100], defaulting to 10
// when unset. Failures are reported as *FetchError; there are no retries.
func (c *Client) Fetch(ctx context.Context, term string, start, maxResults int) (string, error) {
	if term == "" {
		return "", fmt.Errorf("empty search term")
	}
	if start < 0 {
		start = 0
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if maxResults > MaxResultsCap {
		maxResults = MaxResultsCap
	}

	params := url.Values{
		"search_query": {"all:" + term},
		"start":        {strconv.Itoa(start)},
		"max_results":  {strconv.Itoa(maxResults)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", &FetchError{Kind: ErrTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{Kind: ErrStatus, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{Kind: ErrTransport, Err: err}
	}
	return string(body), nil
}
