package models

// Kind identifies one of the three catalog resource collections.
type Kind string

const (
	KindEvent      Kind = "events"
	KindAttraction Kind = "attractions"
	KindVenue      Kind = "venues"
)

// Valid reports whether k names a known resource kind.
func (k Kind) Valid() bool {
	switch k {
	case KindEvent, KindAttraction, KindVenue:
		return true
	}
	return false
}

// StorageKey returns the key/value store key holding the wishlist for this kind.
func (k Kind) StorageKey() string {
	return "wishlist_" + string(k)
}

// Cataloged is implemented by every catalog item kind so merging and
// display-readiness checks can treat the three collections uniformly.
type Cataloged interface {
	ItemID() string
	DisplayName() string
	PrimaryImage() string
}

// Image is a single catalog image reference.
type Image struct {
	URL    string `json:"url"`
	Ratio  string `json:"ratio,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// City and Country are the nested venue location records the catalog returns.
type City struct {
	Name string `json:"name"`
}

type Country struct {
	Name string `json:"name"`
	Code string `json:"countryCode,omitempty"`
}

// StartDate holds the catalog's split local date/time for an event.
type StartDate struct {
	LocalDate string `json:"localDate,omitempty"`
	LocalTime string `json:"localTime,omitempty"`
}

// EventDates wraps the start date the way the catalog nests it.
type EventDates struct {
	Start StartDate `json:"start"`
}

// Named is a classification leaf carrying only a display name.
type Named struct {
	Name string `json:"name,omitempty"`
}

// Classification is the catalog's segment/genre/sub-genre triple.
type Classification struct {
	Segment  Named `json:"segment,omitempty"`
	Genre    Named `json:"genre,omitempty"`
	SubGenre Named `json:"subGenre,omitempty"`
}

// ExternalLink is a single outbound link attached to an attraction.
type ExternalLink struct {
	URL string `json:"url"`
}

// Event is a normalized catalog event. Nested fields mirror the catalog's
// response shape and may all be absent.
type Event struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Test            bool             `json:"test,omitempty"`
	Info            string           `json:"info,omitempty"`
	Description     string           `json:"description,omitempty"`
	Images          []Image          `json:"images,omitempty"`
	Dates           EventDates       `json:"dates,omitempty"`
	Classifications []Classification `json:"classifications,omitempty"`
	Embedded        *EventEmbedded   `json:"_embedded,omitempty"`
}

// EventEmbedded holds the cross-referenced venues and attractions the catalog
// embeds inside an event.
type EventEmbedded struct {
	Venues      []Venue      `json:"venues,omitempty"`
	Attractions []Attraction `json:"attractions,omitempty"`
}

// Attraction is a normalized catalog attraction. City, Country and Date are
// derived by enrichment from the attraction's first related event; they stay
// empty strings when absent so filter predicates remain total.
type Attraction struct {
	ID              string                    `json:"id"`
	Name            string                    `json:"name"`
	Images          []Image                   `json:"images,omitempty"`
	Classifications []Classification          `json:"classifications,omitempty"`
	ExternalLinks   map[string][]ExternalLink `json:"externalLinks,omitempty"`

	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Date    string `json:"date,omitempty"`
}

// Venue is a normalized catalog venue. Venues carry their location directly
// rather than through an embedded reference, and have no date.
type Venue struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Images  []Image `json:"images,omitempty"`
	City    City    `json:"city,omitempty"`
	Country Country `json:"country,omitempty"`
}

func (e Event) ItemID() string      { return e.ID }
func (e Event) DisplayName() string { return e.Name }

// PrimaryImage returns the first image URL or "" when the event has none.
func (e Event) PrimaryImage() string {
	if len(e.Images) == 0 {
		return ""
	}
	return e.Images[0].URL
}

// FirstVenue returns the first embedded venue, or nil when none is attached.
func (e Event) FirstVenue() *Venue {
	if e.Embedded == nil || len(e.Embedded.Venues) == 0 {
		return nil
	}
	return &e.Embedded.Venues[0]
}

// CityName resolves the event's city through its first embedded venue.
func (e Event) CityName() string {
	if v := e.FirstVenue(); v != nil {
		return v.City.Name
	}
	return ""
}

// CountryName resolves the event's country through its first embedded venue.
func (e Event) CountryName() string {
	if v := e.FirstVenue(); v != nil {
		return v.Country.Name
	}
	return ""
}

// LocalDate returns the event's start date, or "" when the catalog omitted it.
func (e Event) LocalDate() string {
	return e.Dates.Start.LocalDate
}

// FirstAttraction returns the first embedded attraction, or nil when none is
// attached.
func (e Event) FirstAttraction() *Attraction {
	if e.Embedded == nil || len(e.Embedded.Attractions) == 0 {
		return nil
	}
	return &e.Embedded.Attractions[0]
}

// Genres flattens the first classification into segment/genre/sub-genre names,
// dropping blanks and the literal "undefined" the catalog sometimes returns.
func (e Event) Genres() []string {
	if len(e.Classifications) == 0 {
		return nil
	}
	c := e.Classifications[0]
	var out []string
	for _, n := range []string{c.Segment.Name, c.Genre.Name, c.SubGenre.Name} {
		if n == "" || n == "undefined" {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (a Attraction) ItemID() string      { return a.ID }
func (a Attraction) DisplayName() string { return a.Name }

func (a Attraction) PrimaryImage() string {
	if len(a.Images) == 0 {
		return ""
	}
	return a.Images[0].URL
}

func (v Venue) ItemID() string      { return v.ID }
func (v Venue) DisplayName() string { return v.Name }

func (v Venue) PrimaryImage() string {
	if len(v.Images) == 0 {
		return ""
	}
	return v.Images[0].URL
}
