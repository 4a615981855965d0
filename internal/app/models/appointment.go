package models

import "time"

type Appointment struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	DoctorID    string    `json:"doctorId" bson:"doctorId"`
	PatientID   string    `json:"patientId" bson:"patientId"`
	ScheduledAt time.Time `json:"scheduledAt" bson:"scheduledAt"`
	Type        string    `json:"type" bson:"type"`
	Status      string    `json:"status" bson:"status"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
