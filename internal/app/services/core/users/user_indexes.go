package users

import (
	"context"
	"heallink-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userIndexModels declares the indexes the users collection depends
// on. Username uniqueness is enforced here rather than by the
// registration check alone, so concurrent registrations of the same
// name cannot both insert. Health IDs are unique too, but sparse
// since most users never link one.
func userIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "healthId", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}
}

// EnsureUserIndexes creates the users indexes at startup. CreateMany
// is idempotent for indexes that already exist with the same options.
func EnsureUserIndexes(ctx context.Context, db *mongo.Client, dbName string) error {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionUsers)
	_, err := collection.Indexes().CreateMany(ctx, userIndexModels())
	return err
}
