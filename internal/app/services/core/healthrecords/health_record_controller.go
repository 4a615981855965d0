package healthrecords

import (
	"context"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"
	"heallink-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HealthRecordController struct {
	Log                 *zap.Logger
	HealthRecordUsecase contracts.HealthRecordUsecase
}

func NewHealthRecordController(logger *zap.Logger, healthRecordUsecase contracts.HealthRecordUsecase) *HealthRecordController {
	return &HealthRecordController{
		Log:                 logger,
		HealthRecordUsecase: healthRecordUsecase,
	}
}

func (ctrl *HealthRecordController) ListForPatient(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := ctrl.HealthRecordUsecase.ListForPatient(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthRecordListSuccess, records)
}
