package healthrecords

import (
	"context"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// recordDate descending, insertion order preserved on ties.
var newestFirst = bson.D{{Key: "recordDate", Value: -1}, {Key: "_id", Value: 1}}

type HealthRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewHealthRecordMongoRepository(db *mongo.Client, dbName string) contracts.HealthRecordRepository {
	return &HealthRecordMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHealthRecords),
	}
}

func (r *HealthRecordMongoRepository) FindHealthRecordsByPatientID(ctx context.Context, patientID string) ([]models.HealthRecord, error) {
	var records []models.HealthRecord
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &records)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
