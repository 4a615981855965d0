package chatbot

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

type ChatbotController struct {
	Log            *zap.Logger
	ChatbotUsecase contracts.ChatbotUsecase
}

func NewChatbotController(logger *zap.Logger, chatbotUsecase contracts.ChatbotUsecase) *ChatbotController {
	return &ChatbotController{
		Log:            logger,
		ChatbotUsecase: chatbotUsecase,
	}
}

func (ctrl *ChatbotController) Query(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ChatbotQuery)
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

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	reply, err := ctrl.ChatbotUsecase.Query(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatbotReplySuccess, reply)
}

func (ctrl *ChatbotController) PatientSummary(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summary, err := ctrl.ChatbotUsecase.PatientSummary(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatbotPatientSummarySuccess, summary)
}
