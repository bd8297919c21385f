package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edgardchm/pokedex-backend/models"
)

type MongoPokemonStore struct {
	db *mongo.Database
}

func NewMongoPokemonStore(db *mongo.Database) *MongoPokemonStore {
	return &MongoPokemonStore{db: db}
}

func (s *MongoPokemonStore) FindAll(ctx context.Context) ([]models.Pokemon, error) {
	cur, err := s.db.Collection(pokemonsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	pokemons := []models.Pokemon{}
	for cur.Next(ctx) {
		var p models.Pokemon
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		pokemons = append(pokemons, p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return pokemons, nil
}

func (s *MongoPokemonStore) FindByID(ctx context.Context, id int) (models.Pokemon, error) {
	var p models.Pokemon
	err := s.db.Collection(pokemonsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Pokemon{}, ErrNotFound
	}
	return p, err
}

func (s *MongoPokemonStore) Insert(ctx context.Context, pokemon models.Pokemon) (models.Pokemon, error) {
	id, err := nextSequence(ctx, s.db, pokemonsCollection)
	if err != nil {
		return models.Pokemon{}, err
	}

	pokemon.ID = id
	if _, err := s.db.Collection(pokemonsCollection).InsertOne(ctx, pokemon); err != nil {
		return models.Pokemon{}, err
	}

	return pokemon, nil
}

func (s *MongoPokemonStore) Update(ctx context.Context, pokemon models.Pokemon) error {
	res, err := s.db.Collection(pokemonsCollection).ReplaceOne(ctx, bson.M{"_id": pokemon.ID}, pokemon)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the pokemon document only. The embedded type
// references go with it; the type rows themselves stay.
func (s *MongoPokemonStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.Collection(pokemonsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

var _ PokemonStore = (*MongoPokemonStore)(nil)
