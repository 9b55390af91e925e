package handlers

import (
	"context"
	"log"
	"net/http"

	"billettlyst/models"
	"billettlyst/services/discovery"
	"billettlyst/utils"
)

type homeService interface {
	FestivalSpotlight(ctx context.Context) []models.Event
	CityEvents(ctx context.Context, city string) ([]models.Event, error)
}

var _ homeService = (*discovery.Service)(nil)

// HomeHandler serves the front-page data: the festival spotlight and events
// for a selected city.
type HomeHandler struct {
	Discovery homeService
}

func NewHomeHandler(svc homeService) *HomeHandler {
	return &HomeHandler{Discovery: svc}
}

// Festivals responds to GET /api/home/festivals.
func (h *HomeHandler) Festivals(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"festivals": h.Discovery.FestivalSpotlight(r.Context()),
	})
}

// CityEvents responds to GET /api/home/city-events?city=Oslo. Oslo is the
// default city like on the front page.
func (h *HomeHandler) CityEvents(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		city = "Oslo"
	}

	events, err := h.Discovery.CityEvents(r.Context(), city)
	if err != nil {
		// A failed fetch degrades to an empty list; the error is for the log.
		log.Printf("[home-handler] city events for %q: %v", city, err)
		utils.WriteJSON(w, http.StatusOK, map[string]any{"city": city, "events": []models.Event{}})
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"city": city, "events": events})
}
