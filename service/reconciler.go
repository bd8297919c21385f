package service

import (
	"context"

	"github.com/edgardchm/pokedex-backend/models"
	"github.com/edgardchm/pokedex-backend/repository"
)

// TypeReconciler turns the typeNames/typeIds pair of a write request
// into the complete, deduplicated type set for a pokemon.
type TypeReconciler struct {
	types *TypeService
	store repository.TypeStore
}

func NewTypeReconciler(types *TypeService, store repository.TypeStore) *TypeReconciler {
	return &TypeReconciler{types: types, store: store}
}

// Resolve handles names first, in input order, creating missing ones on
// the fly, then bulk-resolves the ids. A type already collected under
// one list is not added again from the other. Ids that match no row are
// dropped, not reported; shape validation happened at the boundary.
func (r *TypeReconciler) Resolve(ctx context.Context, typeNames []string, typeIDs []int) ([]models.Type, error) {
	resolved := []models.Type{}
	seen := map[int]bool{}

	for _, name := range typeNames {
		t, err := r.types.FindOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		if !seen[t.ID] {
			seen[t.ID] = true
			resolved = append(resolved, t)
		}
	}

	if len(typeIDs) > 0 {
		byID, err := r.store.FindByIDs(ctx, typeIDs)
		if err != nil {
			return nil, err
		}
		for _, t := range byID {
			if !seen[t.ID] {
				seen[t.ID] = true
				resolved = append(resolved, t)
			}
		}
	}

	return resolved, nil
}
