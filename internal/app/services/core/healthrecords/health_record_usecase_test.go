package healthrecords

import (
	"context"
	"fmt"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockHealthRecordRepository struct {
	mock.Mock
}

func (m *MockHealthRecordRepository) FindHealthRecordsByPatientID(ctx context.Context, patientID string) ([]models.HealthRecord, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HealthRecord), args.Error(1)
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.String(0), args.Error(1)
}

func TestHealthRecordUsecase_ListForPatient(t *testing.T) {
	session := &models.Session{ProfileID: "pat-1", UserID: "user-pat", Role: constvars.RolePatient}

	t.Run("records with files get a presigned link", func(t *testing.T) {
		healthRecordRepo := new(MockHealthRecordRepository)
		objectStorage := new(MockObjectStorage)
		uc := NewHealthRecordUsecase(healthRecordRepo, objectStorage, zap.NewNop())

		healthRecordRepo.On("FindHealthRecordsByPatientID", mock.Anything, "pat-1").Return([]models.HealthRecord{
			{ID: "rec-1", Title: "Blood panel", FileObject: "records/rec-1.pdf"},
			{ID: "rec-2", Title: "Consultation note"},
		}, nil)
		objectStorage.On("PresignedGetURL", mock.Anything, "records/rec-1.pdf", presignedURLExpiry).
			Return("https://storage.example/records/rec-1.pdf?sig=abc", nil)

		records, err := uc.ListForPatient(context.Background(), session)

		assert.NoError(t, err)
		assert.Len(t, records, 2)
		assert.NotEmpty(t, records[0].FileURL)
		assert.Empty(t, records[1].FileURL)
		objectStorage.AssertExpectations(t)
	})

	t.Run("presign failure still serves the record", func(t *testing.T) {
		healthRecordRepo := new(MockHealthRecordRepository)
		objectStorage := new(MockObjectStorage)
		uc := NewHealthRecordUsecase(healthRecordRepo, objectStorage, zap.NewNop())

		healthRecordRepo.On("FindHealthRecordsByPatientID", mock.Anything, "pat-1").Return([]models.HealthRecord{
			{ID: "rec-1", Title: "Blood panel", FileObject: "records/rec-1.pdf"},
		}, nil)
		objectStorage.On("PresignedGetURL", mock.Anything, "records/rec-1.pdf", presignedURLExpiry).
			Return("", fmt.Errorf("bucket unreachable"))

		records, err := uc.ListForPatient(context.Background(), session)

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Empty(t, records[0].FileURL)
	})

	t.Run("no object storage configured skips presigning", func(t *testing.T) {
		healthRecordRepo := new(MockHealthRecordRepository)
		uc := NewHealthRecordUsecase(healthRecordRepo, nil, zap.NewNop())

		healthRecordRepo.On("FindHealthRecordsByPatientID", mock.Anything, "pat-1").Return([]models.HealthRecord{
			{ID: "rec-1", FileObject: "records/rec-1.pdf"},
		}, nil)

		records, err := uc.ListForPatient(context.Background(), session)

		assert.NoError(t, err)
		assert.Empty(t, records[0].FileURL)
	})
}
