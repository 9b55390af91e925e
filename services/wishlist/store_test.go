package wishlist_test

import (
	"testing"

	"billettlyst/internal/storage"
	"billettlyst/models"
	"billettlyst/services/wishlist"
)

func testVenue(id, name string) models.Venue {
	return models.Venue{ID: id, Name: name, Images: []models.Image{{URL: "https://img/" + id}}}
}

func TestToggleInsertsAndRemoves(t *testing.T) {
	stores := wishlist.NewStores(storage.NewMemory())

	m, wished, err := stores.Venues.Toggle(testVenue("v1", "Oslo Spektrum"))
	if err != nil {
		t.Fatalf("toggle returned error: %v", err)
	}
	if !wished || !m.Has("v1") {
		t.Fatalf("expected v1 to be pinned after first toggle")
	}

	m, wished, err = stores.Venues.Toggle(testVenue("v1", "Oslo Spektrum"))
	if err != nil {
		t.Fatalf("toggle returned error: %v", err)
	}
	if wished || m.Has("v1") {
		t.Fatalf("expected v1 to be unpinned after second toggle")
	}
	if m.Len() != 0 {
		t.Fatalf("expected empty map after double toggle, got %d items", m.Len())
	}
}

func TestDoubleToggleRestoresPersistedState(t *testing.T) {
	kv := storage.NewMemory()
	stores := wishlist.NewStores(kv)

	if _, _, err := stores.Venues.Toggle(testVenue("v1", "A")); err != nil {
		t.Fatalf("seed toggle failed: %v", err)
	}
	before, _ := kv.Get(models.KindVenue.StorageKey())

	if _, _, err := stores.Venues.Toggle(testVenue("v2", "B")); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, _, err := stores.Venues.Toggle(testVenue("v2", "B")); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	after, _ := kv.Get(models.KindVenue.StorageKey())
	if before != after {
		t.Fatalf("double toggle should restore persisted state:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestToggleWritesBeforeReturning(t *testing.T) {
	kv := storage.NewMemory()
	stores := wishlist.NewStores(kv)

	if _, _, err := stores.Events.Toggle(models.Event{ID: "e1", Name: "Findings"}); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if _, ok := kv.Get(models.KindEvent.StorageKey()); !ok {
		t.Fatalf("expected the wishlist to be persisted synchronously")
	}

	// A fresh store over the same kv must see the toggle.
	reloaded := wishlist.NewStores(kv).Events.Load()
	if !reloaded.Has("e1") {
		t.Fatalf("expected reloaded store to contain e1")
	}
}

func TestLoadSwallowsMalformedData(t *testing.T) {
	kv := storage.NewMemory()
	if err := kv.Set(models.KindVenue.StorageKey(), "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	m := wishlist.NewStores(kv).Venues.Load()
	if m.Len() != 0 {
		t.Fatalf("malformed data must load as an empty map, got %d items", m.Len())
	}
}

func TestKindsAreIsolated(t *testing.T) {
	stores := wishlist.NewStores(storage.NewMemory())

	if _, _, err := stores.Events.Toggle(models.Event{ID: "x", Name: "Shared ID"}); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if stores.Venues.Load().Has("x") || stores.Attractions.Load().Has("x") {
		t.Fatalf("toggling an event must not affect other kinds")
	}
}

func TestLoadPreservesPinOrder(t *testing.T) {
	kv := storage.NewMemory()
	stores := wishlist.NewStores(kv)

	for _, id := range []string{"v3", "v1", "v2"} {
		if _, _, err := stores.Venues.Toggle(testVenue(id, "Venue "+id)); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
	}

	values := wishlist.NewStores(kv).Venues.Load().Values()
	want := []string{"v3", "v1", "v2"}
	if len(values) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(values))
	}
	for i, v := range values {
		if v.ID != want[i] {
			t.Fatalf("expected pin order %v, got item %q at %d", want, v.ID, i)
		}
	}
}
