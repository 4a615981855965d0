package models

import "time"

type ConsentRequest struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	DoctorID    string     `json:"doctorId" bson:"doctorId"`
	PatientID   string     `json:"patientId" bson:"patientId"`
	Purpose     string     `json:"purpose" bson:"purpose"`
	DataTypes   []string   `json:"dataTypes" bson:"dataTypes"`
	Status      string     `json:"status" bson:"status"`
	RequestedAt time.Time  `json:"requestedAt" bson:"requestedAt"`
	RespondedAt *time.Time `json:"respondedAt,omitempty" bson:"respondedAt,omitempty"`
}
