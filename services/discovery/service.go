// Package discovery aggregates catalog data for the browse surfaces:
// category pages, the festival spotlight, city listings and event details.
package discovery

import (
	"context"
	"log"
	"sync"

	"billettlyst/models"
	"billettlyst/services/catalog"
	"billettlyst/utils/filter"
)

// catalogAPI is the slice of the catalog client the service needs.
type catalogAPI interface {
	SearchEvents(ctx context.Context, p catalog.SearchParams) ([]models.Event, error)
	SearchAttractions(ctx context.Context, p catalog.SearchParams) ([]models.Attraction, error)
	SearchVenues(ctx context.Context, p catalog.SearchParams) ([]models.Venue, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
}

var _ catalogAPI = (*catalog.Client)(nil)

// CategoryData is the raw aggregate for one category: the three fetched
// collections (attractions already enriched) plus the facet values derived
// from the events.
type CategoryData struct {
	Slug        string              `json:"slug"`
	Keyword     string              `json:"keyword"`
	Events      []models.Event      `json:"events"`
	Attractions []models.Attraction `json:"attractions"`
	Venues      []models.Venue      `json:"venues"`
	Countries   []string            `json:"countries"`
	Cities      []string            `json:"cities"`
}

// Service fetches and caches category aggregates. The cache holds the most
// recently requested category, the server-side analogue of the category view's
// state.
type Service struct {
	catalog catalogAPI
	cache   *SessionCache

	mu         sync.Mutex
	generation uint64
	current    *CategoryData
}

// NewService returns a discovery service over the catalog API. cache may be
// nil to disable festival caching.
func NewService(api catalogAPI, cache *SessionCache) *Service {
	return &Service{catalog: api, cache: cache}
}

// Category fetches the three collections for slug, enriches the attractions
// and derives facet values. The three fetches run concurrently and fail
// independently: a failed kind degrades to an empty collection and the others
// still render.
//
// Each call takes a fresh generation; a slow fetch whose category has since
// been superseded still returns its data to its caller but no longer commits
// it to the service cache.
func (s *Service) Category(ctx context.Context, slug string) *CategoryData {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	keyword := KeywordForSlug(slug)
	data := &CategoryData{Slug: slug, Keyword: keyword}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		events, err := s.catalog.SearchEvents(ctx, catalog.SearchParams{Keyword: keyword})
		if err != nil {
			log.Printf("[discovery] category %q events: %v", slug, err)
			return
		}
		data.Events = events
	}()

	go func() {
		defer wg.Done()
		attractions, err := s.catalog.SearchAttractions(ctx, catalog.SearchParams{Keyword: keyword})
		if err != nil {
			log.Printf("[discovery] category %q attractions: %v", slug, err)
			return
		}
		data.Attractions = attractions
	}()

	go func() {
		defer wg.Done()
		venues, err := s.catalog.SearchVenues(ctx, catalog.SearchParams{Keyword: keyword})
		if err != nil {
			log.Printf("[discovery] category %q venues: %v", slug, err)
			return
		}
		data.Venues = venues
	}()

	wg.Wait()

	data.Attractions = EnrichAttractions(ctx, s.catalog, data.Attractions)
	data.Countries, data.Cities = filter.Facets(data.Events)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.generation {
		s.current = data
	} else {
		log.Printf("[discovery] dropping stale fetch for category %q (generation %d < %d)", slug, gen, s.generation)
	}
	return data
}

// CachedCategory returns the most recently committed category aggregate, if
// any.
func (s *Service) CachedCategory() (*CategoryData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current != nil
}
