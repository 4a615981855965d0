package models

import "time"

type HealthRecord struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	PatientID   string    `json:"patientId" bson:"patientId"`
	Type        string    `json:"type" bson:"type"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	FileObject  string    `json:"-" bson:"fileObject,omitempty"`
	RecordDate  time.Time `json:"recordDate" bson:"recordDate"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
