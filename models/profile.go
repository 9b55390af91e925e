package models

// EventDocument is an event as stored in the content store. APIID is the sole
// join key back to the catalog; the content store holds no location or date
// facts for an event.
type EventDocument struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	APIID    string `json:"apiId"`
	Category string `json:"kategori,omitempty"`
}

// Friend is a user referenced from a profile's friend list. Friends are
// resolved one level deep only; a friend's own friends are never loaded.
type Friend struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Image    string          `json:"image,omitempty"`
	Wishlist []EventDocument `json:"wishlist,omitempty"`
}

// UserProfile is a content-store user document with its wishlist, purchase and
// friend references resolved.
type UserProfile struct {
	ID                string          `json:"_id"`
	Name              string          `json:"name"`
	Email             string          `json:"email,omitempty"`
	DOB               string          `json:"dob,omitempty"`
	Gender            string          `json:"gender,omitempty"`
	Image             string          `json:"image,omitempty"`
	Wishlist          []EventDocument `json:"wishlist,omitempty"`
	PreviousPurchases []EventDocument `json:"previousPurchases,omitempty"`
	Friends           []Friend        `json:"friends,omitempty"`
}
