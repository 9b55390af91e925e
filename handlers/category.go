package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"billettlyst/models"
	"billettlyst/services/discovery"
	"billettlyst/services/wishlist"
	"billettlyst/utils"
	"billettlyst/utils/filter"
	"billettlyst/utils/merge"
)

type categoryService interface {
	Category(ctx context.Context, slug string) *discovery.CategoryData
}

var _ categoryService = (*discovery.Service)(nil)

// CategoryHandler serves the browse page for one category: the three
// collections fetched fresh, facet-filtered, and merged with the persisted
// wishlists so pinned items always appear first and bypass the filters.
type CategoryHandler struct {
	Discovery categoryService
	Wishlists *wishlist.Stores
}

func NewCategoryHandler(svc categoryService, stores *wishlist.Stores) *CategoryHandler {
	return &CategoryHandler{Discovery: svc, Wishlists: stores}
}

type categoryResponse struct {
	Slug        string              `json:"slug"`
	Keyword     string              `json:"keyword"`
	Attractions []models.Attraction `json:"attractions"`
	Events      []models.Event      `json:"events"`
	Venues      []models.Venue      `json:"venues"`
	Countries   []string            `json:"countries"`
	Cities      []string            `json:"cities"`
}

// Get responds to GET /api/categories/{slug}?search=&country=&city=&date=.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		utils.WriteError(w, http.StatusBadRequest, "missing category slug")
		return
	}

	query := r.URL.Query()
	criteria := filter.Criteria{
		Text:    query.Get("search"),
		Country: query.Get("country"),
		City:    query.Get("city"),
		Date:    query.Get("date"),
	}

	data := h.Discovery.Category(r.Context(), slug)

	resp := categoryResponse{
		Slug:      data.Slug,
		Keyword:   data.Keyword,
		Countries: data.Countries,
		Cities:    data.Cities,
		Attractions: merge.Project(
			h.Wishlists.Attractions.Load().Values(),
			filter.Attractions(data.Attractions, criteria),
		),
		Events: merge.Project(
			h.Wishlists.Events.Load().Values(),
			filter.Events(data.Events, criteria),
		),
		Venues: merge.Project(
			h.Wishlists.Venues.Load().Values(),
			filter.Venues(data.Venues, criteria),
		),
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
