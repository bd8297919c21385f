package repository

import (
	"context"
	"sync"

	"github.com/edgardchm/pokedex-backend/models"
)

// MemoryTypeStore is the in-memory double of MongoTypeStore. Uniqueness
// on the stored name is enforced under the same ErrConflict contract.
type MemoryTypeStore struct {
	mu     sync.RWMutex
	types  map[int]models.Type
	byName map[string]int
	nextID int
}

func NewMemoryTypeStore() *MemoryTypeStore {
	return &MemoryTypeStore{
		types:  map[int]models.Type{},
		byName: map[string]int{},
	}
}

func (s *MemoryTypeStore) FindAll(_ context.Context) ([]models.Type, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := []models.Type{}
	for _, t := range s.types {
		types = append(types, t)
	}
	return types, nil
}

func (s *MemoryTypeStore) FindByID(_ context.Context, id int) (models.Type, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.types[id]
	if !ok {
		return models.Type{}, ErrNotFound
	}
	return t, nil
}

func (s *MemoryTypeStore) FindByName(_ context.Context, name string) (models.Type, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[name]
	if !ok {
		return models.Type{}, ErrNotFound
	}
	return s.types[id], nil
}

func (s *MemoryTypeStore) FindByIDs(_ context.Context, ids []int) ([]models.Type, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := []models.Type{}
	for _, id := range ids {
		if t, ok := s.types[id]; ok {
			types = append(types, t)
		}
	}
	return types, nil
}

func (s *MemoryTypeStore) Insert(_ context.Context, name string) (models.Type, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[name]; ok {
		return models.Type{}, ErrConflict
	}

	s.nextID++
	t := models.Type{ID: s.nextID, Name: name}
	s.types[t.ID] = t
	s.byName[t.Name] = t.ID
	return t, nil
}

var _ TypeStore = (*MemoryTypeStore)(nil)
