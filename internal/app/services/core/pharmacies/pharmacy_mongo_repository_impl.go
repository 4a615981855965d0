package pharmacies

import (
	"context"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PharmacyMongoRepository struct {
	Collection *mongo.Collection
}

func NewPharmacyMongoRepository(db *mongo.Client, dbName string) contracts.PharmacyRepository {
	return &PharmacyMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPharmacies),
	}
}

func (r *PharmacyMongoRepository) FindPharmacyByUserID(ctx context.Context, userID string) (*models.PharmacyProfile, error) {
	var pharmacy models.PharmacyProfile
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&pharmacy)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &pharmacy, nil
}
