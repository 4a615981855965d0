package responses

import "heallink-service/internal/app/models"

type ChatbotReply struct {
	Message     string   `json:"message"`
	Timestamp   string   `json:"timestamp"`
	Context     string   `json:"context"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type PatientSummary struct {
	Patient             *models.PatientProfile `json:"patient"`
	RecentPrescriptions []models.Prescription  `json:"recentPrescriptions"`
	HealthRecords       []models.HealthRecord  `json:"healthRecords"`
	Insights            string                 `json:"insights"`
}
