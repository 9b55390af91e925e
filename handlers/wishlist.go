package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"billettlyst/models"
	"billettlyst/services/wishlist"
	"billettlyst/utils"
)

// WishlistHandler exposes the per-kind wishlists: list the pinned items and
// toggle one in or out.
type WishlistHandler struct {
	Stores *wishlist.Stores
}

func NewWishlistHandler(stores *wishlist.Stores) *WishlistHandler {
	return &WishlistHandler{Stores: stores}
}

func kindFromRequest(r *http.Request) (models.Kind, bool) {
	kind := models.Kind(mux.Vars(r)["kind"])
	return kind, kind.Valid()
}

// List responds to GET /api/wishlist/{kind} with the pinned items in the
// order they were pinned.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "unknown resource kind")
		return
	}

	var items any
	switch kind {
	case models.KindEvent:
		items = h.Stores.Events.Load().Values()
	case models.KindAttraction:
		items = h.Stores.Attractions.Load().Values()
	case models.KindVenue:
		items = h.Stores.Venues.Load().Values()
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"kind": kind, "items": items})
}

// Toggle responds to POST /api/wishlist/{kind} with the full catalog item as
// the body. A present item is removed, an absent one inserted; the updated
// list is written back before we respond.
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromRequest(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "unknown resource kind")
		return
	}

	var (
		items  any
		wished bool
		err    error
	)
	switch kind {
	case models.KindEvent:
		items, wished, err = toggle(h.Stores.Events, r.Body)
	case models.KindAttraction:
		items, wished, err = toggle(h.Stores.Attractions, r.Body)
	case models.KindVenue:
		items, wished, err = toggle(h.Stores.Venues, r.Body)
	}
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"kind":   kind,
		"wished": wished,
		"items":  items,
	})
}

func toggle[T models.Cataloged](store *wishlist.Store[T], body io.Reader) (any, bool, error) {
	var item T
	dec := json.NewDecoder(body)
	if err := dec.Decode(&item); err != nil {
		return nil, false, err
	}
	m, wished, err := store.Toggle(item)
	if err != nil {
		return nil, false, err
	}
	return m.Values(), wished, nil
}
