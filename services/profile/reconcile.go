package profile

import "billettlyst/models"

// SharedInterest is the "you both want to go" signal for one friend. Events
// holds the shared wishlist entries the user has not already purchased.
type SharedInterest struct {
	FriendID    string                 `json:"friendId"`
	FriendName  string                 `json:"friendName"`
	FriendImage string                 `json:"friendImage,omitempty"`
	Events      []models.EventDocument `json:"events"`
}

func idSet(docs []models.EventDocument) map[string]bool {
	set := make(map[string]bool, len(docs))
	for _, d := range docs {
		set[d.ID] = true
	}
	return set
}

// VisibleWishlist returns the wishlist entries worth showing: already
// purchased events are dropped, and duplicates are removed in one stable pass
// where the first occurrence wins.
func VisibleWishlist(wishlist, purchases []models.EventDocument) []models.EventDocument {
	purchased := idSet(purchases)
	seen := make(map[string]bool, len(wishlist))

	visible := make([]models.EventDocument, 0, len(wishlist))
	for _, entry := range wishlist {
		if purchased[entry.ID] || seen[entry.ID] {
			continue
		}
		seen[entry.ID] = true
		visible = append(visible, entry)
	}
	return visible
}

// SharedInterests computes, for each friend, the wishlist entries both the
// user and the friend want. A friend whose every shared entry is already in
// the user's purchases produces no signal; an aspiration already fulfilled is
// not worth surfacing.
func SharedInterests(user models.UserProfile) []SharedInterest {
	own := idSet(user.Wishlist)
	purchased := idSet(user.PreviousPurchases)

	var signals []SharedInterest
	for _, friend := range user.Friends {
		seen := make(map[string]bool)
		var remaining []models.EventDocument
		for _, entry := range friend.Wishlist {
			if !own[entry.ID] || seen[entry.ID] {
				continue
			}
			seen[entry.ID] = true
			if purchased[entry.ID] {
				continue
			}
			remaining = append(remaining, entry)
		}
		if len(remaining) == 0 {
			continue
		}
		signals = append(signals, SharedInterest{
			FriendID:    friend.ID,
			FriendName:  friend.Name,
			FriendImage: friend.Image,
			Events:      remaining,
		})
	}
	return signals
}
