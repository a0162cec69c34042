package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Counter backs the numeric id sequences. Issues and users carry plain
// integer ids on the wire, so ids are allocated from a per-name counter
// document instead of ObjectIDs.
type Counter struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}

// NextSequence atomically increments and returns the sequence for the given
// name, creating the counter document on first use.
func NextSequence(collection *mongo.Collection, name string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter Counter
	err := collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}
