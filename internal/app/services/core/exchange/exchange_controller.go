package exchange

import (
	"context"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/dto/requests"
	"heallink-service/internal/pkg/exceptions"
	"heallink-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ExchangeController struct {
	Log             *zap.Logger
	ExchangeUsecase contracts.ExchangeUsecase
}

func NewExchangeController(logger *zap.Logger, exchangeUsecase contracts.ExchangeUsecase) *ExchangeController {
	return &ExchangeController{
		Log:             logger,
		ExchangeUsecase: exchangeUsecase,
	}
}

func (ctrl *ExchangeController) CreateHealthID(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateHealthIDOnExchange)
	err := utils.ParseRequestBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 35*time.Second)
	defer cancel()

	creation, err := ctrl.ExchangeUsecase.CreateHealthID(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExchangeHealthIDCreateSuccess, creation)
}

func (ctrl *ExchangeController) LookupPatient(w http.ResponseWriter, r *http.Request) {
	healthID := chi.URLParam(r, "healthID")

	ctx, cancel := context.WithTimeout(r.Context(), 35*time.Second)
	defer cancel()

	summary, err := ctrl.ExchangeUsecase.LookupPatient(ctx, healthID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExchangePatientFoundSuccess, summary)
}

func (ctrl *ExchangeController) VerifyPrescription(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VerifyPrescriptionOnExchange)
	err := utils.ParseRequestBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 35*time.Second)
	defer cancel()

	verification, err := ctrl.ExchangeUsecase.VerifyPrescription(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExchangeVerifySuccess, verification)
}
