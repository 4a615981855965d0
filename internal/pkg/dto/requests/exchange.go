package requests

type CreateHealthIDOnExchange struct {
	Mobile  string `json:"mobile" validate:"required,min=10"`
	Aadhaar string `json:"aadhaar,omitempty"`
}

type VerifyPrescriptionOnExchange struct {
	PrescriptionRef string `json:"prescriptionRef" validate:"required"`
	PatientHealthID string `json:"patientHealthId" validate:"required"`
}
