// Package wishlist persists the user's pinned catalog items, one collection
// per resource kind, in the durable key/value store.
package wishlist

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"billettlyst/internal/storage"
	"billettlyst/models"
)

// Map is one kind's wishlist: items keyed by id, preserving the order they
// were pinned in.
type Map[T models.Cataloged] struct {
	order []string
	items map[string]T
}

func newMap[T models.Cataloged]() *Map[T] {
	return &Map[T]{items: make(map[string]T)}
}

// Has reports whether id is pinned.
func (m *Map[T]) Has(id string) bool {
	_, ok := m.items[id]
	return ok
}

// Len returns the number of pinned items.
func (m *Map[T]) Len() int {
	return len(m.order)
}

// Values returns the pinned items in insertion order.
func (m *Map[T]) Values() []T {
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out
}

func (m *Map[T]) add(item T) {
	id := item.ItemID()
	if _, ok := m.items[id]; ok {
		return
	}
	m.items[id] = item
	m.order = append(m.order, id)
}

func (m *Map[T]) remove(id string) {
	if _, ok := m.items[id]; !ok {
		return
	}
	delete(m.items, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Store persists one kind's wishlist. Each Toggle is a synchronous
// read-modify-write against the key/value store, serialized by the mutex so
// toggles never race each other.
type Store[T models.Cataloged] struct {
	kind models.Kind
	kv   storage.Store
	mu   sync.Mutex
}

// NewStore returns a wishlist store for kind backed by kv.
func NewStore[T models.Cataloged](kind models.Kind, kv storage.Store) *Store[T] {
	return &Store[T]{kind: kind, kv: kv}
}

func (s *Store[T]) load() *Map[T] {
	m := newMap[T]()

	raw, ok := s.kv.Get(s.kind.StorageKey())
	if !ok || raw == "" {
		return m
	}

	// Stored as an ordered array so pinned ordering survives reload.
	// Corrupt data is treated exactly like an absent key.
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("[wishlist] discarding malformed %s data: %v", s.kind, err)
		return m
	}
	for _, item := range items {
		if item.ItemID() == "" {
			continue
		}
		m.add(item)
	}
	return m
}

func (s *Store[T]) persist(m *Map[T]) error {
	encoded, err := json.Marshal(m.Values())
	if err != nil {
		return fmt.Errorf("marshal %s wishlist: %w", s.kind, err)
	}
	if err := s.kv.Set(s.kind.StorageKey(), string(encoded)); err != nil {
		return fmt.Errorf("persist %s wishlist: %w", s.kind, err)
	}
	return nil
}

// Load reads the persisted wishlist. Missing or malformed data yields an
// empty map, never an error.
func (s *Store[T]) Load() *Map[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Toggle pins item when absent and unpins it when present, writing the
// updated map back before returning it. Toggling twice restores the original
// state.
func (s *Store[T]) Toggle(item T) (*Map[T], bool, error) {
	id := item.ItemID()
	if id == "" {
		return nil, false, fmt.Errorf("item has no id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.load()
	wished := !m.Has(id)
	if wished {
		m.add(item)
	} else {
		m.remove(id)
	}

	if err := s.persist(m); err != nil {
		return nil, false, err
	}
	return m, wished, nil
}

// Stores bundles the three per-kind wishlist stores over one key/value store.
type Stores struct {
	Events      *Store[models.Event]
	Attractions *Store[models.Attraction]
	Venues      *Store[models.Venue]
}

// NewStores builds the three kind stores over kv.
func NewStores(kv storage.Store) *Stores {
	return &Stores{
		Events:      NewStore[models.Event](models.KindEvent, kv),
		Attractions: NewStore[models.Attraction](models.KindAttraction, kv),
		Venues:      NewStore[models.Venue](models.KindVenue, kv),
	}
}
