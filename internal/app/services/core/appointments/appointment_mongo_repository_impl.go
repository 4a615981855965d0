package appointments

import (
	"context"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) FindAppointmentsByDoctorIDBetween(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"scheduledAt": bson.M{
			"$gte": from,
			"$lt":  to,
		},
	}
	return r.findAll(ctx, filter, bson.D{{Key: "scheduledAt", Value: 1}})
}

func (r *AppointmentMongoRepository) FindAppointmentsByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findAll(ctx, bson.M{"patientId": patientID}, bson.D{{Key: "scheduledAt", Value: -1}})
}

func (r *AppointmentMongoRepository) findAll(ctx context.Context, filter bson.M, sort bson.D) ([]models.Appointment, error) {
	var appointments []models.Appointment
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
