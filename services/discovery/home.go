package discovery

import (
	"context"
	"log"

	"billettlyst/models"
	"billettlyst/services/catalog"
)

// festivalNames are the spotlighted festivals on the front page, looked up by
// keyword in Norway.
var festivalNames = []string{"Findings", "Neon", "Skeikampenfestivalen", "Tons of Rock"}

const festivalCacheKey = "specific_festivals"

// FestivalSpotlight returns one event per configured festival name. Results
// are cached so revisiting the front page does not re-query the catalog; a
// festival with no match or a failed lookup is simply omitted.
func (s *Service) FestivalSpotlight(ctx context.Context) []models.Event {
	if s.cache != nil {
		var cached []models.Event
		if s.cache.Get(festivalCacheKey, &cached) {
			return cached
		}
	}

	festivals := make([]models.Event, 0, len(festivalNames))
	for _, name := range festivalNames {
		events, err := s.catalog.SearchEvents(ctx, catalog.SearchParams{
			Keyword:     name,
			CountryCode: "NO",
			Size:        1,
		})
		if err != nil {
			log.Printf("[discovery] festival %q: %v", name, err)
			continue
		}
		if len(events) > 0 {
			festivals = append(festivals, events[0])
		}
	}

	if s.cache != nil {
		s.cache.Put(festivalCacheKey, festivals)
	}
	return festivals
}

// CityEvents returns up to ten events in the given city.
func (s *Service) CityEvents(ctx context.Context, city string) ([]models.Event, error) {
	return s.catalog.SearchEvents(ctx, catalog.SearchParams{City: city, Size: 10})
}
