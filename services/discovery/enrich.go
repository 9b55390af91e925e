package discovery

import (
	"context"
	"log"

	"github.com/sourcegraph/conc/pool"

	"billettlyst/models"
	"billettlyst/services/catalog"
)

// enrichWorkers bounds the number of in-flight per-attraction lookups.
const enrichWorkers = 8

type eventLookup interface {
	SearchEvents(ctx context.Context, p catalog.SearchParams) ([]models.Event, error)
}

// EnrichAttractions attaches a {city, country, date} triple to each attraction
// by looking up its first related event. The policy is "first result", not
// "most relevant": the catalog offers no disambiguation and neither do we.
//
// Lookups run concurrently but the returned slice matches the input in length
// and order. A failed or empty lookup leaves that attraction's derived fields
// as empty strings and never aborts the batch; the call returns only once
// every lookup has settled.
func EnrichAttractions(ctx context.Context, lookup eventLookup, raw []models.Attraction) []models.Attraction {
	enriched := make([]models.Attraction, len(raw))
	copy(enriched, raw)

	p := pool.New().WithMaxGoroutines(enrichWorkers)
	for i := range enriched {
		a := &enriched[i]
		p.Go(func() {
			a.City, a.Country, a.Date = "", "", ""

			events, err := lookup.SearchEvents(ctx, catalog.SearchParams{
				AttractionID: a.ID,
				Size:         1,
			})
			if err != nil {
				log.Printf("[discovery] enrich attraction %s: %v", a.ID, err)
				return
			}
			if len(events) == 0 {
				return
			}

			event := events[0]
			a.City = event.CityName()
			a.Country = event.CountryName()
			a.Date = event.LocalDate()
		})
	}
	p.Wait()

	return enriched
}
