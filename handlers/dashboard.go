package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"billettlyst/models"
	"billettlyst/services/profile"
	"billettlyst/utils"
)

type profileService interface {
	Dashboard(ctx context.Context, username string) (*profile.Dashboard, error)
	EventDocument(ctx context.Context, id string) (*models.EventDocument, error)
	Login(ctx context.Context, username string) (*profile.Session, error)
	Logout() error
	Session() (*profile.Session, bool)
}

var _ profileService = (*profile.Service)(nil)

// DashboardHandler serves the logged-in user's dashboard and the login flow
// around it.
type DashboardHandler struct {
	Profiles profileService
}

func NewDashboardHandler(svc profileService) *DashboardHandler {
	return &DashboardHandler{Profiles: svc}
}

// Get responds to GET /api/dashboard for the logged-in user. A missing user
// document is a 404 with its own message, never conflated with a failed
// lookup.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.Profiles.Session()
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	dashboard, err := h.Profiles.Dashboard(r.Context(), session.Username)
	if err != nil {
		if errors.Is(err, profile.ErrUserNotFound) {
			utils.WriteError(w, http.StatusNotFound, "no user named "+session.Username)
			return
		}
		utils.WriteError(w, http.StatusBadGateway, "dashboard data unavailable")
		return
	}

	utils.WriteJSON(w, http.StatusOK, dashboard)
}

// EventDocument responds to GET /api/content/events/{id}.
func (h *DashboardHandler) EventDocument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	doc, err := h.Profiles.EventDocument(r.Context(), id)
	if err != nil {
		if errors.Is(err, profile.ErrEventNotFound) {
			utils.WriteError(w, http.StatusNotFound, "event document not found")
			return
		}
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, doc)
}

// Login responds to POST /api/auth/login with {"username": "..."}.
func (h *DashboardHandler) Login(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.Profiles.Login(r.Context(), request.Username)
	if err != nil {
		if errors.Is(err, profile.ErrUserNotFound) {
			utils.WriteError(w, http.StatusNotFound, "no user named "+request.Username)
			return
		}
		utils.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, session)
}

// Logout responds to POST /api/auth/logout.
func (h *DashboardHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Profiles.Logout(); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

// Session responds to GET /api/auth/session with the current login, if any.
func (h *DashboardHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, ok := h.Profiles.Session()
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	utils.WriteJSON(w, http.StatusOK, session)
}
