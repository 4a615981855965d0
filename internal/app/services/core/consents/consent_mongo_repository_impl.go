package consents

import (
	"context"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// requestedAt descending, insertion order preserved on ties.
var newestFirst = bson.D{{Key: "requestedAt", Value: -1}, {Key: "_id", Value: 1}}

type ConsentMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsentMongoRepository(db *mongo.Client, dbName string) contracts.ConsentRepository {
	return &ConsentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsentRequests),
	}
}

func (r *ConsentMongoRepository) CreateConsentRequest(ctx context.Context, consent *models.ConsentRequest) (string, error) {
	result, err := r.Collection.InsertOne(ctx, consent)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ConsentMongoRepository) FindConsentRequestByID(ctx context.Context, consentID string) (*models.ConsentRequest, error) {
	var consent models.ConsentRequest
	objectID, err := primitive.ObjectIDFromHex(consentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&consent)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consent, nil
}

func (r *ConsentMongoRepository) FindConsentRequestsByPatientID(ctx context.Context, patientID string) ([]models.ConsentRequest, error) {
	var consents []models.ConsentRequest
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &consents)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return consents, nil
}

func (r *ConsentMongoRepository) RespondPendingConsentRequest(ctx context.Context, consentID, patientID, status string, respondedAt time.Time) (*models.ConsentRequest, error) {
	objectID, err := primitive.ObjectIDFromHex(consentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":       objectID,
		"patientId": patientID,
		"status":    constvars.ConsentStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":      status,
			"respondedAt": respondedAt,
		},
	}

	var consent models.ConsentRequest
	err = r.Collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&consent)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &consent, nil
}
