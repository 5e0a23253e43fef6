// Package ollama talks to a locally running Ollama instance. The service
// being down is a routine condition here, not a fatal one: every failure
// resolves to a *model.BackendError.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dpatel512/jobdeck/internal/model"
)

const (
	defaultBaseURL = "http://localhost:11434"

	// probeTimeout bounds the advisory availability check only; Generate
	// uses the injected client's own timeout.
	probeTimeout = 3 * time.Second

	// noResponsePlaceholder stands in when the backend answers 200 but the
	// response field is absent.
	noResponsePlaceholder = "No analysis returned."
)

// Client posts prompts to Ollama's generate endpoint with streaming disabled.
type Client struct {
	baseURL string
	modelID string
	client  *http.Client
}

// NewClient creates a client for the Ollama instance at baseURL (the standard
// localhost address when empty) generating with modelID.
func NewClient(baseURL, modelID string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		modelID: modelID,
		client:  client,
	}
}

// generateRequest mirrors the Ollama /api/generate request body.
type generateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Stream      bool    `json:"stream"`
	Temperature float64 `json:"temperature,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// tagsResponse mirrors the relevant part of /api/tags.
type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// CheckAvailable probes the tags endpoint with a short timeout. Advisory
// only: a false result never blocks a later Generate attempt.
func (c *Client) CheckAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

// ListModels returns the names of the models installed on the backend.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, &model.BackendError{Err: err}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &model.BackendError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.BackendError{StatusCode: resp.StatusCode}
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, &model.BackendError{Err: fmt.Errorf("decode tags: %w", err)}
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Generate posts prompt and returns the backend's text. temperature zero is
// omitted from the request so the backend default applies. A 200 with no
// response field yields a placeholder rather than an error.
func (c *Client) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:       c.modelID,
		Prompt:      prompt,
		Stream:      false,
		Temperature: temperature,
	})
	if err != nil {
		return "", &model.BackendError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", &model.BackendError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &model.BackendError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &model.BackendError{StatusCode: resp.StatusCode}
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", &model.BackendError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if gr.Response == "" {
		return noResponsePlaceholder, nil
	}
	return gr.Response, nil
}
