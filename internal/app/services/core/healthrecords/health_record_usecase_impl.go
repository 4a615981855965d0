package healthrecords

import (
	"context"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/dto/responses"
	"time"

	"go.uber.org/zap"
)

const presignedURLExpiry = 15 * time.Minute

type healthRecordUsecase struct {
	HealthRecordRepository contracts.HealthRecordRepository
	ObjectStorage          contracts.ObjectStorage
	Log                    *zap.Logger
}

func NewHealthRecordUsecase(
	healthRecordRepository contracts.HealthRecordRepository,
	objectStorage contracts.ObjectStorage,
	logger *zap.Logger,
) contracts.HealthRecordUsecase {
	return &healthRecordUsecase{
		HealthRecordRepository: healthRecordRepository,
		ObjectStorage:          objectStorage,
		Log:                    logger,
	}
}

func (uc *healthRecordUsecase) ListForPatient(ctx context.Context, session *models.Session) ([]responses.HealthRecord, error) {
	records, err := uc.HealthRecordRepository.FindHealthRecordsByPatientID(ctx, session.ProfileID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.HealthRecord, 0, len(records))
	for _, record := range records {
		response := responses.HealthRecord{HealthRecord: record}
		if record.FileObject != "" && uc.ObjectStorage != nil {
			fileURL, presignErr := uc.ObjectStorage.PresignedGetURL(ctx, record.FileObject, presignedURLExpiry)
			if presignErr != nil {
				// The record itself is still served without its file link.
				uc.Log.Warn("failed to presign health record file",
					zap.String(constvars.LoggingUserIDKey, session.UserID),
					zap.Error(presignErr),
				)
			} else {
				response.FileURL = fileURL
			}
		}
		result = append(result, response)
	}
	return result, nil
}
