package discovery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"billettlyst/models"
	"billettlyst/services/catalog"
)

// EventDetail is a single event with the supporting data the detail page
// shows: related events from the same attraction, festival passes among them,
// flattened genres and the attraction's social links.
type EventDetail struct {
	Event          models.Event      `json:"event"`
	Related        []models.Event    `json:"related"`
	FestivalPasses []models.Event    `json:"festivalPasses"`
	Genres         []string          `json:"genres"`
	SocialLinks    map[string]string `json:"socialLinks,omitempty"`
}

// EventDetail loads one event by id and assembles its detail view. Related
// events come from the event's first attraction, excluding the event itself
// and test events; a failed related lookup degrades to an empty list. Returns
// catalog.ErrNotFound when the event does not exist.
func (s *Service) EventDetail(ctx context.Context, id string) (*EventDetail, error) {
	event, err := s.catalog.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, fmt.Errorf("fetch event: %w", err)
	}

	detail := &EventDetail{
		Event:  *event,
		Genres: event.Genres(),
	}

	attraction := event.FirstAttraction()
	if attraction != nil {
		related, err := s.catalog.SearchEvents(ctx, catalog.SearchParams{
			AttractionID: attraction.ID,
			CountryCode:  "NO",
		})
		if err != nil {
			log.Printf("[discovery] related events for %s: %v", id, err)
		}
		for _, rel := range related {
			if rel.ID == event.ID || rel.Test {
				continue
			}
			detail.Related = append(detail.Related, rel)
		}
		for _, rel := range detail.Related {
			if strings.Contains(strings.ToLower(rel.Name), "pass") {
				detail.FestivalPasses = append(detail.FestivalPasses, rel)
			}
		}
		detail.SocialLinks = socialLinks(attraction)
	}

	return detail, nil
}

// socialLinks extracts the first URL for each known social platform from an
// attraction's external links.
func socialLinks(a *models.Attraction) map[string]string {
	if len(a.ExternalLinks) == 0 {
		return nil
	}
	links := make(map[string]string)
	for _, platform := range []string{"facebook", "instagram", "twitter", "homepage"} {
		if refs := a.ExternalLinks[platform]; len(refs) > 0 && refs[0].URL != "" {
			links[platform] = refs[0].URL
		}
	}
	if len(links) == 0 {
		return nil
	}
	return links
}
