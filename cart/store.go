package cart

import (
	"encoding/json"
	"log"
)

// StorageKey is the fixed key the cart is persisted under.
const StorageKey = "alumni_cart"

// Store owns the current cart for one session and persists it after every
// mutation. It is single-writer: one session, one active tab. Concurrent
// sessions sharing a Storage overwrite each other last-write-wins.
type Store struct {
	storage Storage
	current Cart
}

// NewStore rehydrates the cart from storage. Missing or malformed data is
// never an error: the store starts empty and the decode failure is logged.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}

	data, err := storage.Get(StorageKey)
	if err != nil {
		return s
	}
	var saved Cart
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Failed to load saved cart, starting empty: %v", err)
		return s
	}
	// Rebuild the total from the lines rather than trusting the stored one.
	s.current = build(saved.Items)
	return s
}

// AddItem merges the line into the cart and persists.
func (s *Store) AddItem(item Line) {
	s.current = s.current.Add(item)
	s.persist()
}

// RemoveItem drops the line with the given product id and persists.
func (s *Store) RemoveItem(id string) {
	s.current = s.current.Remove(id)
	s.persist()
}

// UpdateQuantity replaces the quantity of the matching line (<= 0 removes)
// and persists.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.current = s.current.UpdateQuantity(id, quantity)
	s.persist()
}

// Clear empties the cart and persists.
func (s *Store) Clear() {
	s.current = s.current.Clear()
	s.persist()
}

// Snapshot returns a copy of the current cart for downstream consumers.
func (s *Store) Snapshot() Cart {
	items := make([]Line, len(s.current.Items))
	copy(items, s.current.Items)
	return Cart{Items: items, Total: s.current.Total}
}

func (s *Store) persist() {
	data, err := json.Marshal(s.current)
	if err != nil {
		log.Printf("Failed to encode cart: %v", err)
		return
	}
	if err := s.storage.Set(StorageKey, data); err != nil {
		log.Printf("Failed to save cart: %v", err)
	}
}
