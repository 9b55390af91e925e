package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"billettlyst/services/catalog"
	"billettlyst/services/discovery"
	"billettlyst/utils"
)

type eventDetailService interface {
	EventDetail(ctx context.Context, id string) (*discovery.EventDetail, error)
}

var _ eventDetailService = (*discovery.Service)(nil)

// EventHandler serves single-event detail pages.
type EventHandler struct {
	Discovery eventDetailService
}

func NewEventHandler(svc eventDetailService) *EventHandler {
	return &EventHandler{Discovery: svc}
}

// Get responds to GET /api/events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "missing event id")
		return
	}

	detail, err := h.Discovery.EventDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "event not found")
			return
		}
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, detail)
}
