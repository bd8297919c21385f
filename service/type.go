package service

import (
	"context"
	"errors"
	"strings"

	"github.com/edgardchm/pokedex-backend/models"
	"github.com/edgardchm/pokedex-backend/repository"
)

// TypeService owns the type operations. Names are stored lower-cased,
// so "Fire" and "FIRE" are the same type.
type TypeService struct {
	types repository.TypeStore
}

func NewTypeService(types repository.TypeStore) *TypeService {
	return &TypeService{types: types}
}

func (s *TypeService) FindAll(ctx context.Context) ([]models.Type, error) {
	return s.types.FindAll(ctx)
}

func (s *TypeService) FindOne(ctx context.Context, id int) (models.Type, error) {
	return s.types.FindByID(ctx, id)
}

// Create persists a new type. Unlike FindOrCreate it surfaces
// repository.ErrConflict when the normalized name is already taken.
func (s *TypeService) Create(ctx context.Context, name string) (models.Type, error) {
	return s.types.Insert(ctx, strings.ToLower(name))
}

// FindOrCreate returns the existing type for the name or creates it.
// Losing a create race against a concurrent caller is fine: the unique
// index turns it into a conflict, and the row is re-fetched.
func (s *TypeService) FindOrCreate(ctx context.Context, name string) (models.Type, error) {
	normalized := strings.ToLower(name)

	t, err := s.types.FindByName(ctx, normalized)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return models.Type{}, err
	}

	t, err = s.types.Insert(ctx, normalized)
	if errors.Is(err, repository.ErrConflict) {
		return s.types.FindByName(ctx, normalized)
	}
	return t, err
}
