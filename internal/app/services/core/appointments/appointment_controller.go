package appointments

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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) ListTodayForDoctor(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, ctrl.AppointmentUsecase.ListTodayForDoctor)
}

func (ctrl *AppointmentController) ListForPatient(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, ctrl.AppointmentUsecase.ListForPatient)
}

func (ctrl *AppointmentController) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context, *models.Session) ([]models.Appointment, error)) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointments, err := fetch(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, appointments)
}
