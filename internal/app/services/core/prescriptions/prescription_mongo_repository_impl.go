package prescriptions

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

// Listings sort by createdAt descending; equal timestamps keep
// insertion order via the ascending _id tie-breaker.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (r *PrescriptionMongoRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	result, err := r.Collection.InsertOne(ctx, prescription)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PrescriptionMongoRepository) FindPrescriptionByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	var prescription models.Prescription
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) FindPrescriptionsByDoctorID(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	return r.findAll(ctx, bson.M{"doctorId": doctorID})
}

func (r *PrescriptionMongoRepository) FindPrescriptionsByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return r.findAll(ctx, bson.M{"patientId": patientID})
}

func (r *PrescriptionMongoRepository) FindPendingPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	return r.findAll(ctx, bson.M{"status": constvars.PrescriptionStatusPending})
}

func (r *PrescriptionMongoRepository) MarkPrescriptionDispensed(ctx context.Context, prescriptionID, pharmacyID string, dispensedMedicines []models.Medicine, dispensedAt time.Time) (*models.Prescription, error) {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":    objectID,
		"status": constvars.PrescriptionStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":             constvars.PrescriptionStatusDispensed,
			"pharmacyId":         pharmacyID,
			"dispensedMedicines": dispensedMedicines,
			"dispensedAt":        dispensedAt,
		},
	}

	var prescription models.Prescription
	err = r.Collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) SetPrescriptionExchangeRef(ctx context.Context, prescriptionID, exchangeRef string) error {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"exchangeRef": exchangeRef}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PrescriptionMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &prescriptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptions, nil
}
