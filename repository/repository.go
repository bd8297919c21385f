// Package repository provides durable storage for pokemon and type
// rows. The Mongo stores are the production backend; the memory stores
// back the test suite and the STORAGE=memory mode.
package repository

import (
	"context"
	"errors"

	"github.com/edgardchm/pokedex-backend/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// TypeStore owns type rows. Names passed in are expected to be
// normalized (lower-cased) already; the store enforces uniqueness on
// the stored name.
type TypeStore interface {
	FindAll(ctx context.Context) ([]models.Type, error)
	FindByID(ctx context.Context, id int) (models.Type, error)
	FindByName(ctx context.Context, name string) (models.Type, error)
	// FindByIDs resolves a set of ids in one lookup. Ids that match
	// nothing are simply absent from the result.
	FindByIDs(ctx context.Context, ids []int) ([]models.Type, error)
	// Insert assigns an id and persists the type. Returns ErrConflict
	// when a row with the same name already exists.
	Insert(ctx context.Context, name string) (models.Type, error)
}

// PokemonStore owns pokemon rows together with their embedded type
// associations. Deleting a pokemon never touches the type rows.
type PokemonStore interface {
	FindAll(ctx context.Context) ([]models.Pokemon, error)
	FindByID(ctx context.Context, id int) (models.Pokemon, error)
	// Insert assigns an id and persists the pokemon with its type set.
	Insert(ctx context.Context, pokemon models.Pokemon) (models.Pokemon, error)
	// Update replaces the stored document wholesale, type set included.
	Update(ctx context.Context, pokemon models.Pokemon) error
	Delete(ctx context.Context, id int) error
}
