package requests

type CreateConsentRequest struct {
	PatientID       string   `json:"patientId" validate:"required"`
	Purpose         string   `json:"purpose" validate:"required"`
	DataTypes       []string `json:"dataTypes"`
	PatientHealthID string   `json:"patientHealthId"`
}

type RespondConsentRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
