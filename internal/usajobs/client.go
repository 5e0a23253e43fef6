package usajobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dpatel512/jobdeck/internal/model"
)

const defaultBaseURL = "https://data.usajobs.gov/api/Search"

// Page-size bounds accepted by Search.
const (
	MinResultsPerPage = 1
	MaxResultsPerPage = 20
)

// Client queries the USAJobs Search API and normalizes the results. It holds
// no mutable state; installing results into a catalog is the caller's job.
type Client struct {
	baseURL   string
	userAgent string
	apiKey    string
	client    *http.Client
}

// NewClient creates a client with the given identification headers. Both are
// required by the API; Search refuses to send an unauthenticated request.
func NewClient(userAgent, apiKey string, client *http.Client) *Client {
	return &Client{
		baseURL:   defaultBaseURL,
		userAgent: userAgent,
		apiKey:    apiKey,
		client:    client,
	}
}

// Search fetches postings matching keyword and returns them normalized, in
// response order. Records without a title are dropped; if nothing survives
// the result is model.ErrNoResults so callers can tell "no jobs" apart from
// "fetch failed".
func (c *Client) Search(ctx context.Context, keyword string, resultsPerPage int) ([]model.JobRecord, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("search keyword is empty: %w", model.ErrInvalidInput)
	}
	if resultsPerPage < MinResultsPerPage || resultsPerPage > MaxResultsPerPage {
		return nil, fmt.Errorf("results per page %d out of range %d..%d: %w",
			resultsPerPage, MinResultsPerPage, MaxResultsPerPage, model.ErrInvalidInput)
	}
	if c.userAgent == "" || c.apiKey == "" {
		return nil, model.ErrMissingCredentials
	}

	q := url.Values{}
	q.Set("Keyword", keyword)
	q.Set("ResultsPerPage", strconv.Itoa(resultsPerPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("usajobs search for %q: %w", keyword, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Authorization-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &model.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.UpstreamError{StatusCode: resp.StatusCode}
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, &model.UpstreamError{Err: fmt.Errorf("decode response: %w", err)}
	}

	items := sr.SearchResult.SearchResultItems
	records := make([]model.JobRecord, 0, len(items))
	for _, item := range items {
		rec, ok := normalize(item.MatchedObjectDescriptor)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, model.ErrNoResults
	}
	return records, nil
}
