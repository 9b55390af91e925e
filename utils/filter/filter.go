package filter

import (
	"sort"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"

	"billettlyst/models"
)

// Criteria holds the four independent facet inputs. An empty field is
// satisfied by every item.
type Criteria struct {
	Text    string
	Country string
	City    string
	Date    string
}

// Empty reports whether no facet is active.
func (c Criteria) Empty() bool {
	return c.Text == "" && c.Country == "" && c.City == "" && c.Date == ""
}

var fold = cases.Fold()

// normalize prepares a string for free-text comparison: transliterate to
// ASCII, then case-fold, so "Café" matches "cafe".
func normalize(s string) string {
	return fold.String(unidecode.Unidecode(s))
}

// matches applies the facet predicate to one item's resolved fields. The text
// facet is a case-insensitive substring match on the name; country, city and
// date compare exactly. Kinds without a date field pass hasDate=false and the
// date facet is vacuously true for them.
func matches(name, country, city, date string, c Criteria, hasDate bool) bool {
	if !strings.Contains(normalize(name), normalize(c.Text)) {
		return false
	}
	if c.Country != "" && country != c.Country {
		return false
	}
	if c.City != "" && city != c.City {
		return false
	}
	if hasDate && c.Date != "" && date != c.Date {
		return false
	}
	return true
}

// Events filters events, resolving location through the first embedded venue.
func Events(items []models.Event, c Criteria) []models.Event {
	if c.Empty() {
		return items
	}
	out := make([]models.Event, 0, len(items))
	for _, e := range items {
		if matches(e.Name, e.CountryName(), e.CityName(), e.LocalDate(), c, true) {
			out = append(out, e)
		}
	}
	return out
}

// Attractions filters attractions using the enrichment-derived location and
// date fields; unenriched attractions carry empty strings there and only pass
// when the corresponding facets are inactive.
func Attractions(items []models.Attraction, c Criteria) []models.Attraction {
	if c.Empty() {
		return items
	}
	out := make([]models.Attraction, 0, len(items))
	for _, a := range items {
		if matches(a.Name, a.Country, a.City, a.Date, c, true) {
			out = append(out, a)
		}
	}
	return out
}

// Venues filters venues on their direct location fields. Venues have no date,
// so the date facet never excludes one.
func Venues(items []models.Venue, c Criteria) []models.Venue {
	if c.Empty() {
		return items
	}
	out := make([]models.Venue, 0, len(items))
	for _, v := range items {
		if matches(v.Name, v.Country.Name, v.City.Name, "", c, false) {
			out = append(out, v)
		}
	}
	return out
}

// Facets extracts the distinct country and city names present in events,
// sorted, for populating the filter selectors.
func Facets(events []models.Event) (countries, cities []string) {
	countrySet := make(map[string]bool)
	citySet := make(map[string]bool)
	for _, e := range events {
		if name := e.CountryName(); name != "" {
			countrySet[name] = true
		}
		if name := e.CityName(); name != "" {
			citySet[name] = true
		}
	}
	for name := range countrySet {
		countries = append(countries, name)
	}
	for name := range citySet {
		cities = append(cities, name)
	}
	sort.Strings(countries)
	sort.Strings(cities)
	return countries, cities
}
