package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"billettlyst/config"
	"billettlyst/models"
)

// DefaultPageSize bounds every collection fetch; the catalog is never paged
// past its first page.
const DefaultPageSize = 20

// Client handles requests against the ticketing catalog's discovery API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	pageSize   int
}

// SearchParams are the supported catalog query parameters. Zero values are
// omitted from the request.
type SearchParams struct {
	Keyword      string
	City         string
	CountryCode  string
	AttractionID string
	Size         int
}

// NewClient creates a catalog client from settings, falling back to sane
// defaults for base URL and page size.
func NewClient(cfg config.CatalogSettings) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://app.ticketmaster.com/discovery/v2"
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		pageSize:   pageSize,
	}
}

// PageSize returns the configured collection page size.
func (c *Client) PageSize() int {
	return c.pageSize
}

func (c *Client) collectionURL(resource string, p SearchParams) string {
	v := url.Values{}
	v.Set("apikey", c.apiKey)
	size := p.Size
	if size <= 0 {
		size = c.pageSize
	}
	v.Set("size", strconv.Itoa(size))
	if p.Keyword != "" {
		v.Set("keyword", p.Keyword)
	}
	if p.City != "" {
		v.Set("city", p.City)
	}
	if p.CountryCode != "" {
		v.Set("countryCode", p.CountryCode)
	}
	if p.AttractionID != "" {
		v.Set("attractionId", p.AttractionID)
	}
	return fmt.Sprintf("%s/%s.json?%s", c.baseURL, resource, v.Encode())
}

func (c *Client) getJSON(ctx context.Context, requestURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("catalog api status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// The discovery API wraps every collection in an _embedded envelope which is
// absent entirely when there are no results.

type eventsEnvelope struct {
	Embedded struct {
		Events []models.Event `json:"events"`
	} `json:"_embedded"`
}

type attractionsEnvelope struct {
	Embedded struct {
		Attractions []models.Attraction `json:"attractions"`
	} `json:"_embedded"`
}

type venuesEnvelope struct {
	Embedded struct {
		Venues []models.Venue `json:"venues"`
	} `json:"_embedded"`
}

// SearchEvents fetches one page of events matching the params. An empty result
// is a nil slice, not an error.
func (c *Client) SearchEvents(ctx context.Context, p SearchParams) ([]models.Event, error) {
	var envelope eventsEnvelope
	if err := c.getJSON(ctx, c.collectionURL("events", p), &envelope); err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return envelope.Embedded.Events, nil
}

// SearchAttractions fetches one page of attractions matching the params.
func (c *Client) SearchAttractions(ctx context.Context, p SearchParams) ([]models.Attraction, error) {
	var envelope attractionsEnvelope
	if err := c.getJSON(ctx, c.collectionURL("attractions", p), &envelope); err != nil {
		return nil, fmt.Errorf("search attractions: %w", err)
	}
	return envelope.Embedded.Attractions, nil
}

// SearchVenues fetches one page of venues matching the params.
func (c *Client) SearchVenues(ctx context.Context, p SearchParams) ([]models.Venue, error) {
	var envelope venuesEnvelope
	if err := c.getJSON(ctx, c.collectionURL("venues", p), &envelope); err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	return envelope.Embedded.Venues, nil
}

// GetEvent fetches a single event by its catalog identifier. Returns
// ErrNotFound when the catalog has no such event.
func (c *Client) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	v := url.Values{}
	v.Set("apikey", c.apiKey)
	requestURL := fmt.Sprintf("%s/events/%s.json?%s", c.baseURL, url.PathEscape(id), v.Encode())

	var event models.Event
	if err := c.getJSON(ctx, requestURL, &event); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event %s: %w", id, err)
	}
	return &event, nil
}
