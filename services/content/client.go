// Package content talks to the content store's read-only query API. Queries
// are parameterized GROQ strings; responses arrive in a {"result": ...}
// envelope where a missing document is a null result, not an error.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"billettlyst/config"
)

// Client issues queries against the content store.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient builds a client from settings. When no explicit base URL is
// configured it is derived from the project, API version and dataset.
func NewClient(cfg config.ContentSettings) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.api.sanity.io/v%s/data/query/%s",
			cfg.ProjectID, cfg.APIVersion, cfg.Dataset)
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// Query runs a parameterized query and unmarshals the result into out. Params
// are passed as $-prefixed, JSON-encoded values the way the query API expects.
// A null result leaves out untouched so callers detect "not found" by the
// zero value.
func (c *Client) Query(ctx context.Context, query string, params map[string]string, out any) error {
	values := url.Values{}
	values.Set("query", query)
	for key, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode param %q: %w", key, err)
		}
		values.Set("$"+key, string(encoded))
	}

	requestURL := c.baseURL + "?" + values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("content store request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("content store status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var envelope queryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}
