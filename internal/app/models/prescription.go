package models

import "time"

// Medicine is one entry of a prescription's ordered medicine list. All
// four fields are required at the boundary.
type Medicine struct {
	Name      string `json:"name" bson:"name"`
	Dosage    string `json:"dosage" bson:"dosage"`
	Frequency string `json:"frequency" bson:"frequency"`
	Duration  string `json:"duration" bson:"duration"`
}

type Prescription struct {
	ID                 string     `json:"id" bson:"_id,omitempty"`
	DoctorID           string     `json:"doctorId" bson:"doctorId"`
	PatientID          string     `json:"patientId" bson:"patientId"`
	Medicines          []Medicine `json:"medicines" bson:"medicines"`
	Diagnosis          string     `json:"diagnosis" bson:"diagnosis"`
	Instructions       string     `json:"instructions" bson:"instructions"`
	Status             string     `json:"status" bson:"status"`
	ExchangeRef        string     `json:"exchangeRef,omitempty" bson:"exchangeRef,omitempty"`
	PharmacyID         string     `json:"pharmacyId,omitempty" bson:"pharmacyId,omitempty"`
	DispensedMedicines []Medicine `json:"dispensedMedicines,omitempty" bson:"dispensedMedicines,omitempty"`
	CreatedAt          time.Time  `json:"createdAt" bson:"createdAt"`
	DispensedAt        *time.Time `json:"dispensedAt,omitempty" bson:"dispensedAt,omitempty"`
}
