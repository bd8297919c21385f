package service

import "github.com/edgardchm/pokedex-backend/models"

// Notifier is the publish-only handle the write path uses to tell
// connected clients about committed mutations. The delete event carries
// only the id, the row is already gone.
type Notifier interface {
	PokemonCreated(pokemon models.Pokemon)
	PokemonUpdated(pokemon models.Pokemon)
	PokemonDeleted(id int)
}

// NopNotifier discards every event. Used by commands that mutate the
// catalog without any subscribers attached, like the populator.
type NopNotifier struct{}

func (NopNotifier) PokemonCreated(models.Pokemon) {}
func (NopNotifier) PokemonUpdated(models.Pokemon) {}
func (NopNotifier) PokemonDeleted(int)            {}
