package profile

import (
	"testing"

	"billettlyst/models"
)

func doc(id, title string) models.EventDocument {
	return models.EventDocument{ID: id, Title: title, APIID: "api-" + id}
}

func TestVisibleWishlistDropsPurchases(t *testing.T) {
	wishlist := []models.EventDocument{doc("A", "Findings"), doc("B", "Neon")}
	purchases := []models.EventDocument{doc("B", "Neon")}

	visible := VisibleWishlist(wishlist, purchases)
	if len(visible) != 1 || visible[0].ID != "A" {
		t.Fatalf("expected [A], got %v", visible)
	}
}

func TestVisibleWishlistDeduplicatesFirstWins(t *testing.T) {
	wishlist := []models.EventDocument{
		doc("A", "Findings"),
		doc("B", "Neon"),
		doc("A", "Findings"),
	}

	visible := VisibleWishlist(wishlist, nil)
	if len(visible) != 2 || visible[0].ID != "A" || visible[1].ID != "B" {
		t.Fatalf("expected stable [A B], got %v", visible)
	}
}

func TestPurchasedEventNeverVisible(t *testing.T) {
	wishlist := []models.EventDocument{doc("A", "X"), doc("B", "Y"), doc("A", "X")}
	purchases := []models.EventDocument{doc("A", "X")}

	for _, entry := range VisibleWishlist(wishlist, purchases) {
		if entry.ID == "A" {
			t.Fatalf("purchased event surfaced in visible wishlist: %v", entry)
		}
	}
}

func TestSharedInterestSignals(t *testing.T) {
	user := models.UserProfile{
		ID:       "u1",
		Name:     "Animalki",
		Wishlist: []models.EventDocument{doc("A", "Findings"), doc("C", "Tons of Rock")},
		Friends: []models.Friend{
			{ID: "f1", Name: "Kari", Wishlist: []models.EventDocument{doc("A", "Findings"), doc("Z", "Other")}},
			{ID: "f2", Name: "Ola", Wishlist: []models.EventDocument{doc("Z", "Other")}},
		},
	}

	signals := SharedInterests(user)
	if len(signals) != 1 {
		t.Fatalf("expected one signal, got %v", signals)
	}
	if signals[0].FriendID != "f1" || len(signals[0].Events) != 1 || signals[0].Events[0].ID != "A" {
		t.Fatalf("unexpected signal: %+v", signals[0])
	}
}

func TestSharedInterestSuppressedWhenAllPurchased(t *testing.T) {
	user := models.UserProfile{
		ID:                "u1",
		Wishlist:          []models.EventDocument{doc("C", "Tons of Rock")},
		PreviousPurchases: []models.EventDocument{doc("C", "Tons of Rock")},
		Friends: []models.Friend{
			{ID: "f1", Name: "Kari", Wishlist: []models.EventDocument{doc("C", "Tons of Rock")}},
		},
	}

	if signals := SharedInterests(user); len(signals) != 0 {
		t.Fatalf("expected no signal when every shared event is purchased, got %v", signals)
	}
}

func TestSharedInterestKeepsUnpurchasedShare(t *testing.T) {
	user := models.UserProfile{
		ID:                "u1",
		Wishlist:          []models.EventDocument{doc("A", "X"), doc("C", "Y")},
		PreviousPurchases: []models.EventDocument{doc("C", "Y")},
		Friends: []models.Friend{
			{ID: "f1", Name: "Kari", Wishlist: []models.EventDocument{doc("A", "X"), doc("C", "Y")}},
		},
	}

	signals := SharedInterests(user)
	if len(signals) != 1 || len(signals[0].Events) != 1 || signals[0].Events[0].ID != "A" {
		t.Fatalf("expected the unpurchased shared event to survive, got %v", signals)
	}
}
