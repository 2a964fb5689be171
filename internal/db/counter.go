package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// jobCounterID keys the single counter document that mints job codes.
const jobCounterID = "jobCode"

// CounterCollection defines the interface for the job-code sequence source.
type CounterCollection interface {
	NextSequence(ctx context.Context) (int64, error)
}

// MongoCounterCollection implements CounterCollection for MongoDB.
type MongoCounterCollection struct {
	Collection *mongo.Collection
}

// NextSequence atomically increments the counter document and returns the
// post-increment value. The upsert bootstraps a fresh database, so the
// first issued value is 1. Uniqueness under concurrent callers rests on
// findAndModify being atomic server-side.
func (c *MongoCounterCollection) NextSequence(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Value int64 `bson:"sequence_value"`
	}
	err := c.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": jobCounterID},
		bson.M{"$inc": bson.M{"sequence_value": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Value, nil
}
