// Package profile reads user documents from the content store and derives the
// dashboard views: the visible wishlist, purchases and shared-interest
// signals. It never writes content-store data.
package profile

import (
	"context"
	"errors"
	"fmt"

	"billettlyst/internal/storage"
	"billettlyst/models"
	"billettlyst/services/content"
)

var (
	// ErrUserNotFound means the username resolved to no document. Handlers
	// surface it distinctly from loading and network failures.
	ErrUserNotFound = errors.New("user not found")
	// ErrEventNotFound means the requested event document does not exist.
	ErrEventNotFound = errors.New("event document not found")
)

// The projection mirrors the dashboard's needs: profile fields, resolved
// wishlist/purchase references and friends one level deep.
const (
	eventProjection = `{_id, title, apiId}`

	userByNameQuery = `*[_type == "user" && name == $username][0]{
		_id, name, email, dob, gender,
		"image": profileImage.asset->url,
		wishlist[]->` + eventProjection + `,
		previousPurchases[]->` + eventProjection + `,
		friends[]->{_id, name, "image": profileImage.asset->url, wishlist[]->` + eventProjection + `}
	}`

	userExistsQuery = `*[_type == "user" && name == $username][0]{_id, name}`

	eventByIDQuery = `*[_id == $id][0]{_id, title, apiId, kategori}`
)

type contentAPI interface {
	Query(ctx context.Context, query string, params map[string]string, out any) error
}

var _ contentAPI = (*content.Client)(nil)

// Service resolves profiles and manages the persisted login state.
type Service struct {
	content contentAPI
	kv      storage.Store
}

// NewService returns a profile service over the content store and the
// key/value store holding login state.
func NewService(api contentAPI, kv storage.Store) *Service {
	return &Service{content: api, kv: kv}
}

// Dashboard is the reconciled view of one user's profile.
type Dashboard struct {
	User            models.UserProfile     `json:"user"`
	VisibleWishlist []models.EventDocument `json:"visibleWishlist"`
	Purchases       []models.EventDocument `json:"purchases"`
	Shared          []SharedInterest       `json:"shared"`
}

// Dashboard loads username's profile and reconciles it. Returns
// ErrUserNotFound when no such user exists, which is distinct from a failed
// query.
func (s *Service) Dashboard(ctx context.Context, username string) (*Dashboard, error) {
	var user models.UserProfile
	if err := s.content.Query(ctx, userByNameQuery, map[string]string{"username": username}, &user); err != nil {
		return nil, fmt.Errorf("fetch user %q: %w", username, err)
	}
	if user.ID == "" {
		return nil, ErrUserNotFound
	}

	return &Dashboard{
		User:            user,
		VisibleWishlist: VisibleWishlist(user.Wishlist, user.PreviousPurchases),
		Purchases:       user.PreviousPurchases,
		Shared:          SharedInterests(user),
	}, nil
}

// EventDocument resolves a single content-store event by its document id.
func (s *Service) EventDocument(ctx context.Context, id string) (*models.EventDocument, error) {
	var doc models.EventDocument
	if err := s.content.Query(ctx, eventByIDQuery, map[string]string{"id": id}, &doc); err != nil {
		return nil, fmt.Errorf("fetch event document %q: %w", id, err)
	}
	if doc.ID == "" {
		return nil, ErrEventNotFound
	}
	return &doc, nil
}
