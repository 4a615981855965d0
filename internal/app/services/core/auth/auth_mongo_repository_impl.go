package auth

import (
	"context"
	"fmt"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuthMongoRepository struct {
	DB     *mongo.Client
	DBName string
}

func NewAuthMongoRepository(db *mongo.Client, dbName string) contracts.AuthRepository {
	return &AuthMongoRepository{
		DB:     db,
		DBName: dbName,
	}
}

func (repo *AuthMongoRepository) CreateUserWithProfile(ctx context.Context, user *models.User, buildProfile func(userID string) interface{}) (string, string, error) {
	session, err := repo.DB.StartSession()
	if err != nil {
		return "", "", exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	var userID, profileID string
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		db := repo.DB.Database(repo.DBName)

		result, err := db.Collection(constvars.MongoCollectionUsers).InsertOne(sessCtx, user)
		if err != nil {
			return nil, exceptions.ErrMongoDBInsertDocument(err)
		}
		userID = result.InsertedID.(primitive.ObjectID).Hex()

		profile := buildProfile(userID)
		collectionName, err := profileCollection(profile)
		if err != nil {
			return nil, err
		}

		profileResult, err := db.Collection(collectionName).InsertOne(sessCtx, profile)
		if err != nil {
			return nil, exceptions.ErrMongoDBInsertDocument(err)
		}
		profileID = profileResult.InsertedID.(primitive.ObjectID).Hex()
		return nil, nil
	})
	if err != nil {
		if _, ok := err.(*exceptions.CustomError); ok {
			return "", "", err
		}
		return "", "", exceptions.ErrMongoDBTransaction(err)
	}

	return userID, profileID, nil
}

func profileCollection(profile interface{}) (string, error) {
	switch profile.(type) {
	case *models.DoctorProfile:
		return constvars.MongoCollectionDoctors, nil
	case *models.PatientProfile:
		return constvars.MongoCollectionPatients, nil
	case *models.PharmacyProfile:
		return constvars.MongoCollectionPharmacies, nil
	default:
		return "", exceptions.ErrInvalidRoleType(fmt.Errorf("unsupported profile type %T", profile))
	}
}
