package filter

import (
	"reflect"
	"testing"

	"billettlyst/models"
)

func eventAt(id, name, city, country, date string) models.Event {
	return models.Event{
		ID:    id,
		Name:  name,
		Dates: models.EventDates{Start: models.StartDate{LocalDate: date}},
		Embedded: &models.EventEmbedded{
			Venues: []models.Venue{{
				City:    models.City{Name: city},
				Country: models.Country{Name: country},
			}},
		},
	}
}

func TestEmptyCriteriaKeepsEverything(t *testing.T) {
	events := []models.Event{
		eventAt("e1", "Findings", "Oslo", "Norway", "2026-08-14"),
		eventAt("e2", "Tons of Rock", "Oslo", "Norway", "2026-06-24"),
		{ID: "e3", Name: "No venue at all"},
	}

	filtered := Events(events, Criteria{})
	if !reflect.DeepEqual(filtered, events) {
		t.Fatalf("empty criteria should return the input unchanged, got %v", filtered)
	}
}

func TestFreeTextMatchIsCaseInsensitive(t *testing.T) {
	events := []models.Event{
		eventAt("e1", "Findings Festival", "Oslo", "Norway", ""),
		eventAt("e2", "Neon", "Oslo", "Norway", ""),
	}

	filtered := Events(events, Criteria{Text: "fIndInGs"})
	if len(filtered) != 1 || filtered[0].ID != "e1" {
		t.Fatalf("expected only e1 to match, got %v", filtered)
	}
}

func TestFreeTextMatchFoldsAccents(t *testing.T) {
	events := []models.Event{
		eventAt("e1", "Café del Mar", "Oslo", "Norway", ""),
	}

	if got := Events(events, Criteria{Text: "cafe"}); len(got) != 1 {
		t.Fatalf("expected accent-folded match, got %v", got)
	}
}

func TestCountryMatchIsExactAndCaseSensitive(t *testing.T) {
	events := []models.Event{
		eventAt("e1", "A", "Oslo", "Norway", ""),
		eventAt("e2", "B", "Stockholm", "Sweden", ""),
	}

	if got := Events(events, Criteria{Country: "Norway"}); len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("expected only the Norwegian event, got %v", got)
	}
	if got := Events(events, Criteria{Country: "norway"}); len(got) != 0 {
		t.Fatalf("country match must be case-sensitive, got %v", got)
	}
}

func TestEventWithoutVenueFailsLocationFacets(t *testing.T) {
	events := []models.Event{{ID: "e1", Name: "Venueless"}}

	if got := Events(events, Criteria{City: "Oslo"}); len(got) != 0 {
		t.Fatalf("venueless event should not match a city facet, got %v", got)
	}
}

func TestAttractionsUseDerivedFields(t *testing.T) {
	attractions := []models.Attraction{
		{ID: "a1", Name: "Band One", City: "Oslo", Country: "Norway", Date: "2026-07-01"},
		{ID: "a2", Name: "Band Two"}, // enrichment failed, fields empty
	}

	if got := Attractions(attractions, Criteria{Date: "2026-07-01"}); len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("expected only the enriched attraction, got %v", got)
	}
	if got := Attractions(attractions, Criteria{}); len(got) != 2 {
		t.Fatalf("empty criteria must keep unenriched attractions, got %v", got)
	}
}

func TestDateFacetIsVacuousForVenues(t *testing.T) {
	venues := []models.Venue{
		{ID: "v1", Name: "Oslo Spektrum", City: models.City{Name: "Oslo"}, Country: models.Country{Name: "Norway"}},
	}

	if got := Venues(venues, Criteria{Date: "2026-07-01"}); len(got) != 1 {
		t.Fatalf("a date facet must never exclude a venue, got %v", got)
	}
	if got := Venues(venues, Criteria{City: "Bergen"}); len(got) != 0 {
		t.Fatalf("city facet should still apply to venues, got %v", got)
	}
}

func TestFacetsAreDistinctAndSorted(t *testing.T) {
	events := []models.Event{
		eventAt("e1", "A", "Oslo", "Norway", ""),
		eventAt("e2", "B", "Bergen", "Norway", ""),
		eventAt("e3", "C", "Oslo", "Norway", ""),
		{ID: "e4", Name: "D"},
	}

	countries, cities := Facets(events)
	if !reflect.DeepEqual(countries, []string{"Norway"}) {
		t.Fatalf("unexpected countries: %v", countries)
	}
	if !reflect.DeepEqual(cities, []string{"Bergen", "Oslo"}) {
		t.Fatalf("unexpected cities: %v", cities)
	}
}
