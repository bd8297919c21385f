package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edgardchm/pokedex-backend/models"
)

type MongoTypeStore struct {
	db *mongo.Database
}

func NewMongoTypeStore(db *mongo.Database) *MongoTypeStore {
	return &MongoTypeStore{db: db}
}

// EnsureIndexes creates the unique index on the type name. The index is
// what makes concurrent find-or-create races collapse to a single row.
func (s *MongoTypeStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(typesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoTypeStore) FindAll(ctx context.Context) ([]models.Type, error) {
	cur, err := s.db.Collection(typesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeTypes(ctx, cur)
}

func (s *MongoTypeStore) FindByID(ctx context.Context, id int) (models.Type, error) {
	var t models.Type
	err := s.db.Collection(typesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return models.Type{}, ErrNotFound
	}
	return t, err
}

func (s *MongoTypeStore) FindByName(ctx context.Context, name string) (models.Type, error) {
	var t models.Type
	err := s.db.Collection(typesCollection).FindOne(ctx, bson.M{"name": name}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return models.Type{}, ErrNotFound
	}
	return t, err
}

func (s *MongoTypeStore) FindByIDs(ctx context.Context, ids []int) ([]models.Type, error) {
	if len(ids) == 0 {
		return []models.Type{}, nil
	}
	cur, err := s.db.Collection(typesCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	return decodeTypes(ctx, cur)
}

func (s *MongoTypeStore) Insert(ctx context.Context, name string) (models.Type, error) {
	id, err := nextSequence(ctx, s.db, typesCollection)
	if err != nil {
		return models.Type{}, err
	}

	t := models.Type{ID: id, Name: name}
	_, err = s.db.Collection(typesCollection).InsertOne(ctx, t)
	if mongo.IsDuplicateKeyError(err) {
		return models.Type{}, ErrConflict
	}
	if err != nil {
		return models.Type{}, err
	}

	return t, nil
}

func decodeTypes(ctx context.Context, cur *mongo.Cursor) ([]models.Type, error) {
	defer cur.Close(ctx)

	types := []models.Type{}
	for cur.Next(ctx) {
		var t models.Type
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

var _ TypeStore = (*MongoTypeStore)(nil)
