package requests

type Medicine struct {
	Name      string `json:"name" validate:"required"`
	Dosage    string `json:"dosage" validate:"required"`
	Frequency string `json:"frequency" validate:"required"`
	Duration  string `json:"duration" validate:"required"`
}

type CreatePrescription struct {
	PatientID       string     `json:"patientId" validate:"required"`
	Medicines       []Medicine `json:"medicines" validate:"required,min=1,dive"`
	Diagnosis       string     `json:"diagnosis"`
	Instructions    string     `json:"instructions"`
	PatientHealthID string     `json:"patientHealthId"`
}

// DispensePrescription accepts the dispensed list permissively; it is
// not cross-checked against the prescribed medicines.
type DispensePrescription struct {
	DispensedMedicines []Medicine `json:"dispensedMedicines" validate:"omitempty,dive"`
}
