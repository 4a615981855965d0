package chatbot

import (
	"context"
	"fmt"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/dto/requests"
	"heallink-service/internal/pkg/dto/responses"
	"heallink-service/internal/pkg/exceptions"
	"strings"
	"time"

	"go.uber.org/zap"
)

// rule maps message keywords to a canned reply. Rules are evaluated in
// order; the first keyword hit wins.
type rule struct {
	keywords []string
	reply    string
}

var replyRules = []rule{
	{
		keywords: []string{"appointment", "book", "schedule"},
		reply:    "To book an appointment, go to the Appointments section in your dashboard. You can select your preferred doctor and available time slots.",
	},
	{
		keywords: []string{"prescription", "medicine", "medication"},
		reply:    "Your prescriptions can be found in the Prescriptions section. You can view active prescriptions, refill requests, and share them with pharmacies.",
	},
	{
		keywords: []string{"abha", "health id"},
		reply:    "Your ABHA (Ayushman Bharat Health Account) ID helps link your health records across the healthcare system. You can manage consent requests in your profile.",
	},
	{
		keywords: []string{"consent", "permission", "access"},
		reply:    "Consent management allows you to control who can access your health data. You can approve or deny access requests from doctors and healthcare providers.",
	},
	{
		keywords: []string{"emergency", "urgent", "help"},
		reply:    "For medical emergencies, please contact your nearest hospital or call emergency services immediately. This app is for non-emergency health management.",
	},
	{
		keywords: []string{"doctor", "consultation"},
		reply:    "You can find and consult with doctors through the app. Browse available doctors, view their specializations, and book consultations.",
	},
	{
		keywords: []string{"pharmacy", "medicine shop"},
		reply:    "Use the pharmacy section to find nearby pharmacies, share your prescriptions, and track medicine availability.",
	},
	{
		keywords: []string{"health record", "medical history"},
		reply:    "Your health records are securely stored and can be accessed through your dashboard. You can share them with healthcare providers as needed.",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! I'm your healthcare assistant. I can help you with appointments, prescriptions, ABHA services, and general health management questions.",
	},
	{
		keywords: []string{"thank", "thanks"},
		reply:    "You're welcome! I'm here to help with any healthcare-related questions you may have.",
	},
}

var defaultSuggestions = []string{
	"Book an appointment",
	"View prescriptions",
	"Manage health records",
	"Find nearby pharmacies",
}

const defaultInsights = "Patient shows stable health indicators. Recent prescriptions suggest ongoing management of chronic conditions."

const (
	maxSummaryPrescriptions = 5
	maxSummaryHealthRecords = 10
)

type chatbotUsecase struct {
	PatientRepository      contracts.PatientRepository
	PrescriptionRepository contracts.PrescriptionRepository
	HealthRecordRepository contracts.HealthRecordRepository
	Log                    *zap.Logger
}

func NewChatbotUsecase(
	patientRepository contracts.PatientRepository,
	prescriptionRepository contracts.PrescriptionRepository,
	healthRecordRepository contracts.HealthRecordRepository,
	logger *zap.Logger,
) contracts.ChatbotUsecase {
	return &chatbotUsecase{
		PatientRepository:      patientRepository,
		PrescriptionRepository: prescriptionRepository,
		HealthRecordRepository: healthRecordRepository,
		Log:                    logger,
	}
}

func (uc *chatbotUsecase) Query(ctx context.Context, request *requests.ChatbotQuery) (*responses.ChatbotReply, error) {
	message := strings.ToLower(request.Message)

	reply := ""
	for _, r := range replyRules {
		for _, keyword := range r.keywords {
			if strings.Contains(message, keyword) {
				reply = r.reply
				break
			}
		}
		if reply != "" {
			break
		}
	}
	if reply == "" {
		reply = fmt.Sprintf("I understand you're asking about %q. I can help with appointments, prescriptions, ABHA services, health records, and connecting with healthcare providers. For specific medical advice, please consult with a qualified healthcare professional.", request.Message)
	}

	chatContext := request.Context
	if chatContext == "" {
		chatContext = "general"
	}

	return &responses.ChatbotReply{
		Message:     reply,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Context:     chatContext,
		Suggestions: defaultSuggestions,
	}, nil
}

func (uc *chatbotUsecase) PatientSummary(ctx context.Context, patientID string) (*responses.PatientSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatbotUsecase.PatientSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(fmt.Errorf("patient %s does not exist", patientID))
	}

	prescriptions, err := uc.PrescriptionRepository.FindPrescriptionsByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if len(prescriptions) > maxSummaryPrescriptions {
		prescriptions = prescriptions[:maxSummaryPrescriptions]
	}

	healthRecords, err := uc.HealthRecordRepository.FindHealthRecordsByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if len(healthRecords) > maxSummaryHealthRecords {
		healthRecords = healthRecords[:maxSummaryHealthRecords]
	}

	return &responses.PatientSummary{
		Patient:             patient,
		RecentPrescriptions: prescriptions,
		HealthRecords:       healthRecords,
		Insights:            defaultInsights,
	}, nil
}
