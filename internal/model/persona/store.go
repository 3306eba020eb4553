package persona

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a persona id is not in the catalog.
var ErrNotFound = errors.New("persona not found")

// Store exposes persona retrieval for services and HTTP handlers.
type Store interface {
	List() []Persona
	FindByID(id string) (Persona, bool)
}

// MemoryStore keeps the catalog in an id-indexed map and remembers seed order for listing.
type MemoryStore struct {
	order []string
	byID  map[string]Persona
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied personas. Later duplicates
// replace earlier entries but keep the first position.
func NewMemoryStore(items []Persona) *MemoryStore {
	s := &MemoryStore{byID: make(map[string]Persona, len(items))}
	for _, item := range items {
		if _, seen := s.byID[item.ID]; !seen {
			s.order = append(s.order, item.ID)
		}
		s.byID[item.ID] = item
	}
	return s
}

// List returns the catalog in seed order.
func (s *MemoryStore) List() []Persona {
	out := make([]Persona, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// FindByID looks up a persona by identifier.
func (s *MemoryStore) FindByID(id string) (Persona, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Instruction resolves the system instruction of a persona.
func Instruction(store Store, id string) (string, error) {
	p, ok := store.FindByID(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p.Instruction, nil
}
