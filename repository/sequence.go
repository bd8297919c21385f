package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nextSequence allocates the next integer id for the named collection
// from the counters collection. The upsert makes the first allocation
// create the counter row, so no seeding step is needed.
func nextSequence(ctx context.Context, db *mongo.Database, name string) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	res := db.Collection(countersCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	)

	var counter struct {
		Seq int `bson:"seq"`
	}
	if err := res.Decode(&counter); err != nil {
		return 0, err
	}

	return counter.Seq, nil
}
