// Package session holds the per-session log collections. Nothing here is
// persisted: a session's logs live exactly as long as the process, and each
// session sees only its own entries.
package session

import (
	"sync"

	"github.com/satishgautham/New-Fitness-App/models"
)

// Store holds one session's three append-only log collections. Logging is
// append-only: there is no update or delete. The mutex exists only because
// the HTTP server handles requests concurrently; within a session the
// interaction model is synchronous.
type Store struct {
	mu          sync.Mutex
	food        []models.FoodLogEntry
	supplements []models.SupplementLogEntry
	weights     []models.WeightLogEntry
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{}
}

// AppendFood records a food entry. The caller has already computed and
// attached the derived macro values.
func (s *Store) AppendFood(e models.FoodLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.food = append(s.food, e)
}

// AppendSupplement records a supplement entry.
func (s *Store) AppendSupplement(e models.SupplementLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supplements = append(s.supplements, e)
}

// AppendWeight records a weight entry.
func (s *Store) AppendWeight(e models.WeightLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weights = append(s.weights, e)
}

// Food returns a copy of the food log in insertion order.
func (s *Store) Food() []models.FoodLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FoodLogEntry, len(s.food))
	copy(out, s.food)
	return out
}

// Supplements returns a copy of the supplement log in insertion order.
func (s *Store) Supplements() []models.SupplementLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SupplementLogEntry, len(s.supplements))
	copy(out, s.supplements)
	return out
}

// Weights returns a copy of the weight log in insertion order.
func (s *Store) Weights() []models.WeightLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WeightLogEntry, len(s.weights))
	copy(out, s.weights)
	return out
}
