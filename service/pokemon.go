package service

import (
	"context"
	"time"

	"github.com/edgardchm/pokedex-backend/models"
	"github.com/edgardchm/pokedex-backend/repository"
)

// PokemonService orchestrates the pokemon use-cases: reads return the
// type set fully resolved, writes reconcile the requested type set,
// persist, and only then broadcast to subscribers.
type PokemonService struct {
	pokemons   repository.PokemonStore
	reconciler *TypeReconciler
	notifier   Notifier
	writes     *keyMutex
}

func NewPokemonService(pokemons repository.PokemonStore, reconciler *TypeReconciler, notifier Notifier) *PokemonService {
	return &PokemonService{
		pokemons:   pokemons,
		reconciler: reconciler,
		notifier:   notifier,
		writes:     newKeyMutex(),
	}
}

func (s *PokemonService) FindAll(ctx context.Context) ([]models.Pokemon, error) {
	return s.pokemons.FindAll(ctx)
}

func (s *PokemonService) FindOne(ctx context.Context, id int) (models.Pokemon, error) {
	return s.pokemons.FindByID(ctx, id)
}

func (s *PokemonService) Create(ctx context.Context, input models.CreatePokemonInput) (models.Pokemon, error) {
	types, err := s.reconciler.Resolve(ctx, input.TypeNames, input.TypeIDs)
	if err != nil {
		return models.Pokemon{}, err
	}

	pokemon := models.Pokemon{
		Name:           input.Name,
		Height:         input.Height,
		Weight:         input.Weight,
		BaseExperience: input.BaseExperience,
		SpriteURL:      input.SpriteURL,
		CreatedAt:      time.Now().UTC(),
		Types:          types,
	}

	saved, err := s.pokemons.Insert(ctx, pokemon)
	if err != nil {
		return models.Pokemon{}, err
	}

	s.notifier.PokemonCreated(saved)
	return saved, nil
}

// Update applies only the fields present in the input. A present
// typeNames or typeIds list, even an empty one, replaces the whole type
// set; absent lists leave it alone.
func (s *PokemonService) Update(ctx context.Context, id int, input models.UpdatePokemonInput) (models.Pokemon, error) {
	m := s.writes.lock(id)
	defer m.Unlock()

	pokemon, err := s.pokemons.FindByID(ctx, id)
	if err != nil {
		return models.Pokemon{}, err
	}

	if input.Name != nil {
		pokemon.Name = *input.Name
	}
	if input.Height != nil {
		pokemon.Height = *input.Height
	}
	if input.Weight != nil {
		pokemon.Weight = *input.Weight
	}
	if input.BaseExperience != nil {
		pokemon.BaseExperience = *input.BaseExperience
	}
	if input.SpriteURL != nil {
		pokemon.SpriteURL = *input.SpriteURL
	}

	if input.TypeNames != nil || input.TypeIDs != nil {
		var names []string
		var ids []int
		if input.TypeNames != nil {
			names = *input.TypeNames
		}
		if input.TypeIDs != nil {
			ids = *input.TypeIDs
		}
		types, err := s.reconciler.Resolve(ctx, names, ids)
		if err != nil {
			return models.Pokemon{}, err
		}
		pokemon.Types = types
	}

	if err := s.pokemons.Update(ctx, pokemon); err != nil {
		return models.Pokemon{}, err
	}

	s.notifier.PokemonUpdated(pokemon)
	return pokemon, nil
}

func (s *PokemonService) Delete(ctx context.Context, id int) error {
	m := s.writes.lock(id)
	defer m.Unlock()

	if err := s.pokemons.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.PokemonDeleted(id)
	return nil
}
