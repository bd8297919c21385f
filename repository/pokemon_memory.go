package repository

import (
	"context"
	"sync"

	"github.com/edgardchm/pokedex-backend/models"
)

type MemoryPokemonStore struct {
	mu       sync.RWMutex
	pokemons map[int]models.Pokemon
	nextID   int
}

func NewMemoryPokemonStore() *MemoryPokemonStore {
	return &MemoryPokemonStore{pokemons: map[int]models.Pokemon{}}
}

func (s *MemoryPokemonStore) FindAll(_ context.Context) ([]models.Pokemon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pokemons := []models.Pokemon{}
	for _, p := range s.pokemons {
		pokemons = append(pokemons, clonePokemon(p))
	}
	return pokemons, nil
}

func (s *MemoryPokemonStore) FindByID(_ context.Context, id int) (models.Pokemon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pokemons[id]
	if !ok {
		return models.Pokemon{}, ErrNotFound
	}
	return clonePokemon(p), nil
}

func (s *MemoryPokemonStore) Insert(_ context.Context, pokemon models.Pokemon) (models.Pokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	pokemon.ID = s.nextID
	s.pokemons[pokemon.ID] = clonePokemon(pokemon)
	return pokemon, nil
}

func (s *MemoryPokemonStore) Update(_ context.Context, pokemon models.Pokemon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pokemons[pokemon.ID]; !ok {
		return ErrNotFound
	}
	s.pokemons[pokemon.ID] = clonePokemon(pokemon)
	return nil
}

func (s *MemoryPokemonStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pokemons[id]; !ok {
		return ErrNotFound
	}
	delete(s.pokemons, id)
	return nil
}

// clonePokemon copies the type slice so callers never share backing
// arrays with the store.
func clonePokemon(p models.Pokemon) models.Pokemon {
	p.Types = append([]models.Type{}, p.Types...)
	return p
}

var _ PokemonStore = (*MemoryPokemonStore)(nil)
